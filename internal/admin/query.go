package admin

import (
	"context"

	client "github.com/influxdata/influxdb1-client/v2"

	"github.com/nerrad567/gray-logic-influx/internal/infrastructure/config"
	"github.com/nerrad567/gray-logic-influx/internal/infrastructure/influx"
)

// Query forwards a query string verbatim against the given database and
// returns the raw result structure untouched. Precision and chunked are
// passthrough options; precision defaults to seconds, chunked to false.
func (f *Forwarder) Query(ctx context.Context, database, command string, precision influx.Precision, chunked bool, conn config.Overrides) (*client.Response, error) {
	c, err := f.connect(conn)
	if err != nil {
		return nil, err
	}
	defer c.Close()

	return c.Query(database, command, precision, chunked)
}

// Ping probes the target server and returns its reported version.
func (f *Forwarder) Ping(ctx context.Context, conn config.Overrides) (string, error) {
	c, err := f.connect(conn)
	if err != nil {
		return "", err
	}
	defer c.Close()

	return c.Ping()
}
