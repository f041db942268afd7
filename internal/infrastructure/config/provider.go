package config

import (
	"fmt"
	"strconv"
	"time"
)

// Built-in connection defaults. Used when neither an explicit argument nor a
// configuration value is available, so parameter resolution never fails.
const (
	DefaultUser           = "root"
	DefaultPassword       = "root"
	DefaultHost           = "localhost"
	DefaultPort           = 8086
	DefaultTimeoutSeconds = 10
)

// Provider supplies configuration values by dotted key (e.g. "influxdb.user").
// Implementations return fallback when they hold no value for the key.
//
// The forwarder consumes this capability instead of reading ambient
// configuration, so callers can inject any source (file config, a central
// store, a test stub).
type Provider interface {
	Option(key, fallback string) string
}

// Connection is a fully resolved set of connection parameters. It is built
// fresh for every operation and never cached.
type Connection struct {
	User     string
	Password string
	Host     string
	Port     int

	// Timeout bounds each HTTP round trip at the transport level.
	Timeout time.Duration
}

// Addr returns the server base URL for the connection.
func (c Connection) Addr() string {
	return fmt.Sprintf("http://%s:%d", c.Host, c.Port)
}

// Overrides carries explicit per-call connection arguments. Zero values mean
// "not supplied"; resolution fills them from the Provider or the defaults.
type Overrides struct {
	User     string
	Password string
	Host     string
	Port     int
}

// Resolve produces a complete Connection by precedence:
// explicit argument > configuration value > built-in default.
//
// It is a pure function and always succeeds; a nil Provider resolves straight
// to the defaults.
func Resolve(o Overrides, p Provider) Connection {
	conn := Connection{
		User:     o.User,
		Password: o.Password,
		Host:     o.Host,
		Port:     o.Port,
	}

	if conn.User == "" {
		conn.User = option(p, "influxdb.user", DefaultUser)
	}
	if conn.Password == "" {
		conn.Password = option(p, "influxdb.password", DefaultPassword)
	}
	if conn.Host == "" {
		conn.Host = option(p, "influxdb.host", DefaultHost)
	}
	if conn.Port == 0 {
		conn.Port = optionInt(p, "influxdb.port", DefaultPort)
	}
	conn.Timeout = time.Duration(optionInt(p, "influxdb.timeout", DefaultTimeoutSeconds)) * time.Second

	return conn
}

// option looks up key on the provider, tolerating a nil provider.
func option(p Provider, key, fallback string) string {
	if p == nil {
		return fallback
	}
	return p.Option(key, fallback)
}

// optionInt looks up an integer-valued key. Unparseable or non-positive
// values fall back to the default rather than failing resolution.
func optionInt(p Provider, key string, fallback int) int {
	raw := option(p, key, strconv.Itoa(fallback))
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}

// Option implements Provider over the loaded configuration file. Recognised
// keys mirror the YAML influxdb section; unknown keys return the fallback.
func (c *Config) Option(key, fallback string) string {
	switch key {
	case "influxdb.user":
		if c.InfluxDB.User != "" {
			return c.InfluxDB.User
		}
	case "influxdb.password":
		if c.InfluxDB.Password != "" {
			return c.InfluxDB.Password
		}
	case "influxdb.host":
		if c.InfluxDB.Host != "" {
			return c.InfluxDB.Host
		}
	case "influxdb.port":
		if c.InfluxDB.Port > 0 {
			return strconv.Itoa(c.InfluxDB.Port)
		}
	case "influxdb.timeout":
		if c.InfluxDB.Timeout > 0 {
			return strconv.Itoa(c.InfluxDB.Timeout)
		}
	}
	return fallback
}
