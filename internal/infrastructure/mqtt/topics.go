package mqtt

import "fmt"

// topicPrefix roots every topic the forwarder uses. Keeping the prefix in one
// place lets broker ACLs grant the agent exactly this subtree.
const topicPrefix = "graylogic/influx"

// Topics builds the topic strings used by the remote-administration agent.
//
// Layout:
//
//	graylogic/influx/command      — operation requests (agent subscribes)
//	graylogic/influx/result/<id>  — per-request replies (requester subscribes)
//	graylogic/influx/status       — agent online/offline status (retained + LWT)
type Topics struct{}

// Command returns the topic the agent receives operation requests on.
func (Topics) Command() string {
	return topicPrefix + "/command"
}

// Result returns the reply topic for the request with the given ID.
func (Topics) Result(id string) string {
	return fmt.Sprintf("%s/result/%s", topicPrefix, id)
}

// AllResults returns the wildcard pattern matching every reply topic.
func (Topics) AllResults() string {
	return topicPrefix + "/result/+"
}

// Status returns the agent status topic. Messages here are retained so new
// subscribers immediately learn whether the agent is up.
func (Topics) Status() string {
	return topicPrefix + "/status"
}
