// Package influx binds the forwarder to an InfluxDB 1.x-compatible server
// via the influxdb1-client library.
//
// It exposes exactly the administrative surface the forwarder needs:
// database listing/creation/removal, principal listing/creation/removal and
// password changes (expressed as InfluxQL admin statements), and verbatim
// query forwarding with precision and chunking passthrough.
//
// # Lifecycle
//
// Handles are dialled fresh for each operation and closed immediately after:
//
//	c, err := influx.Dial(conn)
//	if err != nil {
//	    return err
//	}
//	defer c.Close()
//
//	dbs, err := c.Databases()
//
// Construction is cheap (no network round trip) and no state is held between
// operations.
//
// # Error Handling
//
// Transport failures and in-band server errors on admin statements are both
// surfaced as wrapped ErrQueryFailed. Query forwarding is the exception: its
// raw response is returned untouched, in-band errors included, because the
// caller owns interpretation of query results.
package influx
