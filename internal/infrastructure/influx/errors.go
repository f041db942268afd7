package influx

import "errors"

// Sentinel errors for InfluxDB operations.
//
// These errors can be checked using errors.Is() for specific handling:
//
//	if errors.Is(err, influx.ErrDialFailed) {
//	    // Handle unreachable server
//	}
var (
	// ErrDialFailed indicates the client handle could not be constructed.
	ErrDialFailed = errors.New("influx: dial failed")

	// ErrQueryFailed indicates a remote call failed (transport or server error).
	ErrQueryFailed = errors.New("influx: query failed")

	// ErrUnknownPrecision indicates an unrecognised time precision symbol.
	ErrUnknownPrecision = errors.New("influx: unknown time precision")
)
