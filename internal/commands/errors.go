package commands

import "errors"

// Command-surface errors.
var (
	// ErrAuditDisabled is returned when an audit command runs without the
	// audit trail enabled in configuration.
	ErrAuditDisabled = errors.New("audit trail is disabled (set audit.enabled: true)")

	// ErrMQTTDisabled is returned when agent mode is started without MQTT
	// enabled in configuration.
	ErrMQTTDisabled = errors.New("agent mode requires mqtt.enabled: true")
)
