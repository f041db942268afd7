package influx

import (
	"fmt"

	client "github.com/influxdata/influxdb1-client/v2"

	"github.com/nerrad567/gray-logic-influx/internal/infrastructure/config"
)

// Client issues administrative commands and queries against one InfluxDB
// 1.x-compatible server over its HTTP API.
//
// A Client is cheap to construct and is intended to be dialled fresh for a
// single operation and closed afterwards; it holds no server-side session
// and is never pooled or reused across operations.
//
// Timeout behaviour comes entirely from the underlying HTTP transport
// (Connection.Timeout); no local cancellation is performed.
type Client struct {
	conn  config.Connection
	inner client.Client
}

// Dial constructs a client handle for the resolved connection parameters.
//
// Construction performs no network round trip; the first remote call is the
// first use of the handle. Use Ping to probe connectivity explicitly.
func Dial(conn config.Connection) (*Client, error) {
	inner, err := client.NewHTTPClient(client.HTTPConfig{
		Addr:     conn.Addr(),
		Username: conn.User,
		Password: conn.Password,
		Timeout:  conn.Timeout,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDialFailed, err)
	}

	return &Client{conn: conn, inner: inner}, nil
}

// Close releases the handle's transport resources.
func (c *Client) Close() error {
	if c == nil || c.inner == nil {
		return nil
	}
	return c.inner.Close()
}

// Ping probes the server and returns its reported version.
func (c *Client) Ping() (string, error) {
	_, version, err := c.inner.Ping(c.conn.Timeout)
	if err != nil {
		return "", fmt.Errorf("%w: ping: %w", ErrQueryFailed, err)
	}
	return version, nil
}

// run executes an InfluxQL statement and surfaces both transport and in-band
// server errors. The label keeps error messages free of statement text,
// which may contain passwords.
func (c *Client) run(label string, q client.Query) (*client.Response, error) {
	resp, err := c.inner.Query(q)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrQueryFailed, label, err)
	}
	if err := resp.Error(); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrQueryFailed, label, err)
	}
	return resp, nil
}

// exec runs a statement that returns no rows of interest.
func (c *Client) exec(label, command, database string) error {
	_, err := c.run(label, client.Query{Command: command, Database: database})
	return err
}

// firstColumnStrings flattens a response into the string values of the first
// column of every row. Used for single-column listings (SHOW DATABASES).
func firstColumnStrings(resp *client.Response) []string {
	var out []string
	for _, result := range resp.Results {
		for _, row := range result.Series {
			for _, values := range row.Values {
				if len(values) == 0 {
					continue
				}
				if s, ok := values[0].(string); ok {
					out = append(out, s)
				}
			}
		}
	}
	return out
}
