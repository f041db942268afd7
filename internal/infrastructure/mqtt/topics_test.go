package mqtt

import (
	"strings"
	"testing"

	"github.com/nerrad567/gray-logic-influx/internal/infrastructure/config"
)

func TestTopicBuilders(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"command", Topics{}.Command(), "graylogic/influx/command"},
		{"result", Topics{}.Result("adm-1a2b3c4d"), "graylogic/influx/result/adm-1a2b3c4d"},
		{"all results", Topics{}.AllResults(), "graylogic/influx/result/+"},
		{"status", Topics{}.Status(), "graylogic/influx/status"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("topic = %q, want %q", tt.got, tt.want)
			}
		})
	}
}

func TestBuildClientOptions(t *testing.T) {
	cfg := config.MQTTConfig{
		Broker: config.MQTTBrokerConfig{
			Host:     "broker.local",
			Port:     1883,
			ClientID: "influxadmin-test",
		},
		Auth: config.MQTTAuthConfig{Username: "agent", Password: "secret"},
		QoS:  1,
		Reconnect: config.MQTTReconnectConfig{
			InitialDelay: 1,
			MaxDelay:     5,
		},
	}

	opts := buildClientOptions(cfg)

	if len(opts.Servers) != 1 || opts.Servers[0].String() != "tcp://broker.local:1883" {
		t.Errorf("broker servers = %v, want tcp://broker.local:1883", opts.Servers)
	}
	if opts.ClientID != "influxadmin-test" {
		t.Errorf("client ID = %q", opts.ClientID)
	}
	if opts.Username != "agent" {
		t.Errorf("username = %q", opts.Username)
	}
	if !opts.AutoReconnect {
		t.Error("auto-reconnect disabled")
	}
}

func TestBuildClientOptions_TLSScheme(t *testing.T) {
	cfg := config.MQTTConfig{
		Broker: config.MQTTBrokerConfig{Host: "broker.local", Port: 8883, TLS: true, ClientID: "x"},
	}

	opts := buildClientOptions(cfg)

	if got := opts.Servers[0].String(); got != "ssl://broker.local:8883" {
		t.Errorf("broker URL = %q, want ssl scheme when TLS is enabled", got)
	}
	if opts.TLSConfig == nil {
		t.Error("TLS config not set")
	}
}

func TestStatusPayloads(t *testing.T) {
	online := buildOnlinePayload("influxadmin-01")
	if !strings.Contains(online, `"status":"online"`) || !strings.Contains(online, "influxadmin-01") {
		t.Errorf("online payload = %s", online)
	}

	offline := buildOfflinePayload("influxadmin-01")
	if !strings.Contains(offline, `"status":"offline"`) || !strings.Contains(offline, "graceful_shutdown") {
		t.Errorf("offline payload = %s", offline)
	}
}
