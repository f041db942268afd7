package config

import (
	"testing"
	"time"
)

// stubProvider returns canned values for a fixed key set.
type stubProvider struct {
	values map[string]string
}

func (s *stubProvider) Option(key, fallback string) string {
	if v, ok := s.values[key]; ok {
		return v
	}
	return fallback
}

// TestResolve_Precedence covers the full matrix for a single field:
// explicit argument > provider value > built-in default.
func TestResolve_Precedence(t *testing.T) {
	tests := []struct {
		name     string
		explicit string
		provided string
		want     string
	}{
		{"explicit wins over provider and default", "cli-user", "cfg-user", "cli-user"},
		{"explicit wins over default", "cli-user", "", "cli-user"},
		{"provider wins over default", "", "cfg-user", "cfg-user"},
		{"default when nothing supplied", "", "", DefaultUser},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p Provider
			if tt.provided != "" {
				p = &stubProvider{values: map[string]string{"influxdb.user": tt.provided}}
			} else {
				p = &stubProvider{values: map[string]string{}}
			}

			conn := Resolve(Overrides{User: tt.explicit}, p)
			if conn.User != tt.want {
				t.Errorf("Resolve() user = %q, want %q", conn.User, tt.want)
			}
		})
	}
}

func TestResolve_NilProviderUsesDefaults(t *testing.T) {
	conn := Resolve(Overrides{}, nil)

	if conn.User != DefaultUser {
		t.Errorf("user = %q, want %q", conn.User, DefaultUser)
	}
	if conn.Password != DefaultPassword {
		t.Errorf("password = %q, want %q", conn.Password, DefaultPassword)
	}
	if conn.Host != DefaultHost {
		t.Errorf("host = %q, want %q", conn.Host, DefaultHost)
	}
	if conn.Port != DefaultPort {
		t.Errorf("port = %d, want %d", conn.Port, DefaultPort)
	}
	if conn.Timeout != DefaultTimeoutSeconds*time.Second {
		t.Errorf("timeout = %v, want %v", conn.Timeout, DefaultTimeoutSeconds*time.Second)
	}
}

func TestResolve_PortFromProvider(t *testing.T) {
	p := &stubProvider{values: map[string]string{"influxdb.port": "9086"}}

	conn := Resolve(Overrides{}, p)
	if conn.Port != 9086 {
		t.Errorf("port = %d, want 9086", conn.Port)
	}
}

func TestResolve_MalformedPortFallsBack(t *testing.T) {
	p := &stubProvider{values: map[string]string{"influxdb.port": "not-a-number"}}

	conn := Resolve(Overrides{}, p)
	if conn.Port != DefaultPort {
		t.Errorf("port = %d, want default %d for malformed provider value", conn.Port, DefaultPort)
	}
}

func TestConfig_Option(t *testing.T) {
	cfg := &Config{
		InfluxDB: InfluxDBConfig{
			User: "opt-user",
			Port: 9999,
		},
	}

	if got := cfg.Option("influxdb.user", "fallback"); got != "opt-user" {
		t.Errorf("Option(influxdb.user) = %q, want %q", got, "opt-user")
	}
	if got := cfg.Option("influxdb.port", "8086"); got != "9999" {
		t.Errorf("Option(influxdb.port) = %q, want %q", got, "9999")
	}
	// Empty field falls through to the fallback.
	if got := cfg.Option("influxdb.password", "fallback"); got != "fallback" {
		t.Errorf("Option(influxdb.password) = %q, want fallback", got)
	}
	// Unknown key falls through to the fallback.
	if got := cfg.Option("influxdb.unknown", "fallback"); got != "fallback" {
		t.Errorf("Option(unknown key) = %q, want fallback", got)
	}
}

func TestConnection_Addr(t *testing.T) {
	conn := Connection{Host: "influx.internal", Port: 8086}
	if got := conn.Addr(); got != "http://influx.internal:8086" {
		t.Errorf("Addr() = %q", got)
	}
}
