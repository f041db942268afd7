package influx

import (
	"fmt"
	"strings"
)

// Database is a single database record from SHOW DATABASES.
type Database struct {
	Name string `json:"name"`
}

// Principal is a named credential-holder on the server: either a cluster
// admin (server-wide privileges) or a user scoped to one database.
type Principal struct {
	Name  string `json:"name"`
	Admin bool   `json:"admin"`
}

// Precision selects the timestamp resolution of query results. It is a
// closed enumeration; the mapping to the server's epoch symbols happens at
// the client boundary only. The zero value is seconds.
type Precision int

const (
	PrecisionSeconds Precision = iota
	PrecisionMilliseconds
	PrecisionMicroseconds
)

// String returns the epoch symbol sent to the server.
func (p Precision) String() string {
	switch p {
	case PrecisionMilliseconds:
		return "ms"
	case PrecisionMicroseconds:
		return "u"
	default:
		return "s"
	}
}

// ParsePrecision converts a user-supplied precision symbol to a Precision.
// The legacy "m" spelling is accepted for milliseconds. An empty string
// selects the default (seconds).
func ParsePrecision(s string) (Precision, error) {
	switch strings.ToLower(s) {
	case "", "s", "sec", "seconds":
		return PrecisionSeconds, nil
	case "m", "ms", "milliseconds":
		return PrecisionMilliseconds, nil
	case "u", "us", "µ", "microseconds":
		return PrecisionMicroseconds, nil
	default:
		return PrecisionSeconds, fmt.Errorf("%w: %q", ErrUnknownPrecision, s)
	}
}

// quoteIdent quotes an InfluxQL identifier (database or user name).
func quoteIdent(name string) string {
	escaped := strings.NewReplacer(`\`, `\\`, `"`, `\"`).Replace(name)
	return `"` + escaped + `"`
}

// quoteString quotes an InfluxQL string literal (passwords).
func quoteString(s string) string {
	escaped := strings.NewReplacer(`\`, `\\`, `'`, `\'`).Replace(s)
	return "'" + escaped + "'"
}
