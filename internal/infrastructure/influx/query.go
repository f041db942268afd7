package influx

import (
	"fmt"

	client "github.com/influxdata/influxdb1-client/v2"
)

// defaultChunkSize is the row batch size requested when chunking is enabled.
// Matches the server's own default.
const defaultChunkSize = 10000

// Query forwards a query string verbatim against the given database.
//
// The raw response is returned as-is, including any in-band server error it
// carries: the forwarder does no validation of the query text and no
// transformation of the result. Precision and chunked are passthrough
// options; precision is mapped to the server's epoch symbol at this
// boundary.
func (c *Client) Query(database, command string, precision Precision, chunked bool) (*client.Response, error) {
	q := client.Query{
		Command:   command,
		Database:  database,
		Precision: precision.String(),
		Chunked:   chunked,
	}
	if chunked {
		q.ChunkSize = defaultChunkSize
	}

	resp, err := c.inner.Query(q)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrQueryFailed, err)
	}
	return resp, nil
}
