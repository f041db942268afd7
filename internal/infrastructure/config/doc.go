// Package config provides configuration loading for the InfluxDB admin forwarder.
//
// Configuration is loaded from YAML with environment variable overrides
// (INFLUXADMIN_* prefix). The package also defines the Provider lookup
// capability and the connection parameter resolution used by every
// forwarded operation:
//
//	explicit argument > configuration value > built-in default
//
// Built-in defaults (root/root at localhost:8086) exist for every connection
// field, so resolution is total: missing configuration is never an error.
//
// # Usage
//
//	cfg, err := config.Load("configs/config.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	conn := config.Resolve(config.Overrides{Host: "influx-prod"}, cfg)
//	// conn.User == cfg.InfluxDB.User (or "root" if unset)
package config
