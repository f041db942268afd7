// Package mqtt provides MQTT client connectivity for the remote
// administration agent.
//
// This package manages:
//   - Connection to the broker with auto-reconnect
//   - Message publishing with QoS guarantees
//   - Topic subscriptions with wildcard support
//   - Last Will and Testament (LWT) for offline detection
//   - Connection health monitoring
//
// # Architecture
//
// In agent mode the forwarder listens for operation requests on the command
// topic and publishes replies on per-request result topics. The broker
// decouples requesters (orchestration tooling, schedulers) from the host
// that can actually reach the InfluxDB server.
//
//	Requester ↔ MQTT Broker ↔ Agent ↔ InfluxDB
//
// # Security Considerations
//
//   - TLS is required for production deployments (cfg.Broker.TLS=true)
//   - Credentials are validated against broker ACL
//   - Anonymous access is only for local development
//   - Command payloads may carry connection passwords; restrict the
//     graylogic/influx subtree with broker ACLs
//
// # Usage
//
//	client, err := mqtt.Connect(cfg.MQTT)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Close()
//
//	err = client.Subscribe(mqtt.Topics{}.Command(), 1,
//	    func(topic string, payload []byte) error {
//	        return handleRequest(payload)
//	    })
package mqtt
