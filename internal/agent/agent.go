package agent

import (
	"context"
	"encoding/json"
	"fmt"

	client "github.com/influxdata/influxdb1-client/v2"

	"github.com/nerrad567/gray-logic-influx/internal/admin"
	"github.com/nerrad567/gray-logic-influx/internal/infrastructure/config"
	"github.com/nerrad567/gray-logic-influx/internal/infrastructure/influx"
	"github.com/nerrad567/gray-logic-influx/internal/infrastructure/mqtt"
)

// Operations is the administrative surface the agent dispatches to.
// *admin.Forwarder satisfies it.
type Operations interface {
	DatabaseList(ctx context.Context, conn config.Overrides) ([]influx.Database, error)
	DatabaseExists(ctx context.Context, name string, conn config.Overrides) bool
	DatabaseCreate(ctx context.Context, name string, conn config.Overrides) (bool, error)
	DatabaseRemove(ctx context.Context, name string, conn config.Overrides) (bool, error)

	PrincipalList(ctx context.Context, database string, conn config.Overrides) ([]influx.Principal, error)
	PrincipalExists(ctx context.Context, name, database string, conn config.Overrides) bool
	PrincipalCreate(ctx context.Context, name, password, database string, conn config.Overrides) (bool, error)
	PrincipalChangePassword(ctx context.Context, name, password, database string, conn config.Overrides) (bool, error)
	PrincipalRemove(ctx context.Context, name, database string, conn config.Overrides) (bool, error)

	Query(ctx context.Context, database, command string, precision influx.Precision, chunked bool, conn config.Overrides) (*client.Response, error)
	Ping(ctx context.Context, conn config.Overrides) (string, error)
}

// Bus is the message-bus surface the agent needs. *mqtt.Client satisfies it.
type Bus interface {
	Subscribe(topic string, qos byte, handler mqtt.MessageHandler) error
	Unsubscribe(topic string) error
	Publish(topic string, payload []byte, qos byte, retained bool) error
}

// Logger is the logging surface the agent needs.
type Logger interface {
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// Request is an operation request received on the command topic.
//
// Connection overrides ride along with each request; the agent's own
// configuration fills whatever they leave out, exactly as for local calls.
type Request struct {
	ID         string     `json:"id"`
	Operation  string     `json:"operation"`
	Args       Args       `json:"args"`
	Connection Connection `json:"connection"`
}

// Args carries the operation-specific arguments. Unused fields are omitted.
type Args struct {
	Name      string `json:"name,omitempty"`
	Password  string `json:"password,omitempty"`
	Database  string `json:"database,omitempty"`
	Query     string `json:"query,omitempty"`
	Precision string `json:"precision,omitempty"`
	Chunked   bool   `json:"chunked,omitempty"`
}

// Connection carries per-request connection overrides.
type Connection struct {
	User     string `json:"user,omitempty"`
	Password string `json:"password,omitempty"`
	Host     string `json:"host,omitempty"`
	Port     int    `json:"port,omitempty"`
}

// Response is published on the per-request result topic.
type Response struct {
	ID        string `json:"id"`
	Operation string `json:"operation"`
	Success   bool   `json:"success"`
	Result    any    `json:"result,omitempty"`
	Error     string `json:"error,omitempty"`
}

// Agent subscribes to the command topic and dispatches operation requests to
// the forwarder, publishing one reply per request.
type Agent struct {
	ops Operations
	bus Bus
	log Logger
	qos byte
}

// New creates an Agent dispatching to the given operations surface.
func New(ops Operations, bus Bus, log Logger, qos byte) *Agent {
	return &Agent{ops: ops, bus: bus, log: log, qos: qos}
}

// Start subscribes to the command topic. Handlers run until the bus
// disconnects; ctx bounds the remote calls issued for each request.
func (a *Agent) Start(ctx context.Context) error {
	topic := mqtt.Topics{}.Command()
	err := a.bus.Subscribe(topic, a.qos, func(_ string, payload []byte) error {
		a.handle(ctx, payload)
		return nil
	})
	if err != nil {
		return fmt.Errorf("subscribing to command topic: %w", err)
	}

	a.log.Info("agent listening", "topic", topic)
	return nil
}

// Stop unsubscribes from the command topic. In-flight handlers run to
// completion; no new requests are received afterwards.
func (a *Agent) Stop() error {
	return a.bus.Unsubscribe(mqtt.Topics{}.Command())
}

// handle decodes one request, dispatches it and publishes the reply.
// Requests without an ID are dropped: there is no topic to reply on.
func (a *Agent) handle(ctx context.Context, payload []byte) {
	var req Request
	if err := json.Unmarshal(payload, &req); err != nil {
		a.log.Warn("discarding malformed request", "error", err)
		return
	}
	if req.ID == "" {
		a.log.Warn("discarding request without id", "operation", req.Operation)
		return
	}

	resp := a.dispatch(ctx, req)

	body, err := json.Marshal(resp)
	if err != nil {
		a.log.Error("encoding reply failed", "id", req.ID, "error", err)
		return
	}
	if err := a.bus.Publish(mqtt.Topics{}.Result(req.ID), body, a.qos, false); err != nil {
		a.log.Error("publishing reply failed", "id", req.ID, "error", err)
	}
}

// dispatch maps an operation name to the forwarder call it names.
func (a *Agent) dispatch(ctx context.Context, req Request) Response {
	conn := config.Overrides{
		User:     req.Connection.User,
		Password: req.Connection.Password,
		Host:     req.Connection.Host,
		Port:     req.Connection.Port,
	}

	result, err := a.invoke(ctx, req, conn)
	if err != nil {
		a.log.Warn("operation failed", "id", req.ID, "operation", req.Operation, "error", err)
		return Response{ID: req.ID, Operation: req.Operation, Success: false, Error: err.Error()}
	}
	return Response{ID: req.ID, Operation: req.Operation, Success: true, Result: result}
}

func (a *Agent) invoke(ctx context.Context, req Request, conn config.Overrides) (any, error) {
	args := req.Args

	switch req.Operation {
	case admin.OpDBList:
		return a.ops.DatabaseList(ctx, conn)
	case admin.OpDBExists:
		return a.ops.DatabaseExists(ctx, args.Name, conn), nil
	case admin.OpDBCreate:
		return a.ops.DatabaseCreate(ctx, args.Name, conn)
	case admin.OpDBRemove:
		return a.ops.DatabaseRemove(ctx, args.Name, conn)

	case admin.OpUserList:
		return a.ops.PrincipalList(ctx, args.Database, conn)
	case admin.OpUserExists:
		return a.ops.PrincipalExists(ctx, args.Name, args.Database, conn), nil
	case admin.OpUserCreate:
		return a.ops.PrincipalCreate(ctx, args.Name, args.Password, args.Database, conn)
	case admin.OpUserChpass:
		return a.ops.PrincipalChangePassword(ctx, args.Name, args.Password, args.Database, conn)
	case admin.OpUserRemove:
		return a.ops.PrincipalRemove(ctx, args.Name, args.Database, conn)

	case admin.OpQuery:
		precision, err := influx.ParsePrecision(args.Precision)
		if err != nil {
			return nil, err
		}
		return a.ops.Query(ctx, args.Database, args.Query, precision, args.Chunked, conn)

	case admin.OpPing:
		return a.ops.Ping(ctx, conn)
	}

	return nil, fmt.Errorf("unknown operation %q", req.Operation)
}
