// Package agent exposes the administrative forwarder over MQTT.
//
// Each request is one JSON message on the command topic, carrying an
// operation name, its arguments and optional connection overrides. The agent
// dispatches to the same forwarder the CLI uses and publishes exactly one
// reply on graylogic/influx/result/<id>. Idempotency, fail-open existence
// checks and parameter resolution all behave identically over the bus and
// locally; the agent is a transport, not a second policy layer.
package agent
