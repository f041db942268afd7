package agent

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	client "github.com/influxdata/influxdb1-client/v2"

	"github.com/nerrad567/gray-logic-influx/internal/infrastructure/config"
	"github.com/nerrad567/gray-logic-influx/internal/infrastructure/influx"
	"github.com/nerrad567/gray-logic-influx/internal/infrastructure/mqtt"
)

// fakeBus captures the command handler on Subscribe and records publishes,
// so tests can feed requests straight to the agent.
type fakeBus struct {
	handler      mqtt.MessageHandler
	subscribed   string
	unsubscribed []string
	published    []publication
}

type publication struct {
	topic   string
	payload []byte
}

func (b *fakeBus) Subscribe(topic string, qos byte, handler mqtt.MessageHandler) error {
	b.subscribed = topic
	b.handler = handler
	return nil
}

func (b *fakeBus) Unsubscribe(topic string) error {
	b.unsubscribed = append(b.unsubscribed, topic)
	return nil
}

func (b *fakeBus) Publish(topic string, payload []byte, qos byte, retained bool) error {
	b.published = append(b.published, publication{topic: topic, payload: payload})
	return nil
}

// stubOps records the last invocation and returns canned results.
type stubOps struct {
	lastOp   string
	lastArgs []any
	lastConn config.Overrides

	boolResult bool
	err        error
}

func (s *stubOps) note(op string, conn config.Overrides, args ...any) {
	s.lastOp = op
	s.lastConn = conn
	s.lastArgs = args
}

func (s *stubOps) DatabaseList(ctx context.Context, conn config.Overrides) ([]influx.Database, error) {
	s.note("db_list", conn)
	return []influx.Database{{Name: "metrics"}}, s.err
}

func (s *stubOps) DatabaseExists(ctx context.Context, name string, conn config.Overrides) bool {
	s.note("db_exists", conn, name)
	return s.boolResult
}

func (s *stubOps) DatabaseCreate(ctx context.Context, name string, conn config.Overrides) (bool, error) {
	s.note("db_create", conn, name)
	return s.boolResult, s.err
}

func (s *stubOps) DatabaseRemove(ctx context.Context, name string, conn config.Overrides) (bool, error) {
	s.note("db_remove", conn, name)
	return s.boolResult, s.err
}

func (s *stubOps) PrincipalList(ctx context.Context, database string, conn config.Overrides) ([]influx.Principal, error) {
	s.note("user_list", conn, database)
	return []influx.Principal{{Name: "root", Admin: true}}, s.err
}

func (s *stubOps) PrincipalExists(ctx context.Context, name, database string, conn config.Overrides) bool {
	s.note("user_exists", conn, name, database)
	return s.boolResult
}

func (s *stubOps) PrincipalCreate(ctx context.Context, name, password, database string, conn config.Overrides) (bool, error) {
	s.note("user_create", conn, name, password, database)
	return s.boolResult, s.err
}

func (s *stubOps) PrincipalChangePassword(ctx context.Context, name, password, database string, conn config.Overrides) (bool, error) {
	s.note("user_chpass", conn, name, password, database)
	return s.boolResult, s.err
}

func (s *stubOps) PrincipalRemove(ctx context.Context, name, database string, conn config.Overrides) (bool, error) {
	s.note("user_remove", conn, name, database)
	return s.boolResult, s.err
}

func (s *stubOps) Query(ctx context.Context, database, command string, precision influx.Precision, chunked bool, conn config.Overrides) (*client.Response, error) {
	s.note("query", conn, database, command, precision.String(), chunked)
	return &client.Response{}, s.err
}

func (s *stubOps) Ping(ctx context.Context, conn config.Overrides) (string, error) {
	s.note("ping", conn)
	return "1.8-test", s.err
}

type nopLogger struct{}

func (nopLogger) Info(msg string, args ...any)  {}
func (nopLogger) Warn(msg string, args ...any)  {}
func (nopLogger) Error(msg string, args ...any) {}

func startAgent(t *testing.T, ops *stubOps) (*fakeBus, func(Request) Response) {
	t.Helper()

	bus := &fakeBus{}
	a := New(ops, bus, nopLogger{}, 1)
	if err := a.Start(context.Background()); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	if bus.subscribed != "graylogic/influx/command" {
		t.Fatalf("subscribed to %q, want the command topic", bus.subscribed)
	}

	send := func(req Request) Response {
		body, err := json.Marshal(req)
		if err != nil {
			t.Fatalf("marshalling request: %v", err)
		}
		before := len(bus.published)
		if err := bus.handler("graylogic/influx/command", body); err != nil {
			t.Fatalf("handler error = %v", err)
		}
		if len(bus.published) != before+1 {
			t.Fatalf("published %d replies, want 1", len(bus.published)-before)
		}
		pub := bus.published[len(bus.published)-1]
		wantTopic := "graylogic/influx/result/" + req.ID
		if pub.topic != wantTopic {
			t.Fatalf("reply topic = %q, want %q", pub.topic, wantTopic)
		}
		var resp Response
		if err := json.Unmarshal(pub.payload, &resp); err != nil {
			t.Fatalf("decoding reply: %v", err)
		}
		return resp
	}
	return bus, send
}

func TestAgent_DatabaseCreate(t *testing.T) {
	ops := &stubOps{boolResult: true}
	_, send := startAgent(t, ops)

	resp := send(Request{
		ID:        "req-1",
		Operation: "db_create",
		Args:      Args{Name: "metrics"},
	})

	if !resp.Success {
		t.Fatalf("reply = %+v, want success", resp)
	}
	if resp.Result != true {
		t.Errorf("result = %v, want true", resp.Result)
	}
	if ops.lastOp != "db_create" || ops.lastArgs[0] != "metrics" {
		t.Errorf("dispatched %s(%v)", ops.lastOp, ops.lastArgs)
	}
}

func TestAgent_ConnectionOverridesForwarded(t *testing.T) {
	ops := &stubOps{}
	_, send := startAgent(t, ops)

	send(Request{
		ID:         "req-2",
		Operation:  "db_list",
		Connection: Connection{User: "admin", Host: "influx.prod", Port: 8087},
	})

	want := config.Overrides{User: "admin", Host: "influx.prod", Port: 8087}
	if ops.lastConn != want {
		t.Errorf("overrides = %+v, want %+v", ops.lastConn, want)
	}
}

func TestAgent_UserCreateScoped(t *testing.T) {
	ops := &stubOps{boolResult: true}
	_, send := startAgent(t, ops)

	resp := send(Request{
		ID:        "req-3",
		Operation: "user_create",
		Args:      Args{Name: "alice", Password: "secret", Database: "metrics"},
	})

	if !resp.Success {
		t.Fatalf("reply = %+v, want success", resp)
	}
	if ops.lastOp != "user_create" {
		t.Fatalf("dispatched %s, want user_create", ops.lastOp)
	}
	if ops.lastArgs[2] != "metrics" {
		t.Errorf("database argument = %v, want metrics", ops.lastArgs[2])
	}
}

func TestAgent_QueryPrecisionParsed(t *testing.T) {
	ops := &stubOps{}
	_, send := startAgent(t, ops)

	resp := send(Request{
		ID:        "req-4",
		Operation: "query",
		Args:      Args{Database: "metrics", Query: "SELECT * FROM cpu", Precision: "m", Chunked: true},
	})

	if !resp.Success {
		t.Fatalf("reply = %+v, want success", resp)
	}
	// Legacy "m" maps to milliseconds on the wire.
	if ops.lastArgs[2] != "ms" {
		t.Errorf("precision = %v, want ms", ops.lastArgs[2])
	}
	if ops.lastArgs[3] != true {
		t.Error("chunked flag not forwarded")
	}
}

func TestAgent_QueryBadPrecision(t *testing.T) {
	ops := &stubOps{}
	_, send := startAgent(t, ops)

	resp := send(Request{
		ID:        "req-5",
		Operation: "query",
		Args:      Args{Database: "metrics", Query: "SELECT 1", Precision: "fortnights"},
	})

	if resp.Success {
		t.Fatal("reply succeeded for an unknown precision")
	}
	if resp.Error == "" {
		t.Error("reply carries no error message")
	}
	if ops.lastOp != "" {
		t.Errorf("operation %s dispatched despite invalid precision", ops.lastOp)
	}
}

func TestAgent_UnknownOperation(t *testing.T) {
	ops := &stubOps{}
	_, send := startAgent(t, ops)

	resp := send(Request{ID: "req-6", Operation: "db_vacuum"})

	if resp.Success {
		t.Fatal("reply succeeded for an unknown operation")
	}
	if resp.Error == "" {
		t.Error("reply carries no error message")
	}
}

func TestAgent_OperationErrorReported(t *testing.T) {
	ops := &stubOps{err: errors.New("connection refused")}
	_, send := startAgent(t, ops)

	resp := send(Request{ID: "req-7", Operation: "db_create", Args: Args{Name: "metrics"}})

	if resp.Success {
		t.Fatal("reply succeeded despite operation error")
	}
	if resp.Error != "connection refused" {
		t.Errorf("error = %q", resp.Error)
	}
}

func TestAgent_DropsRequestWithoutID(t *testing.T) {
	ops := &stubOps{}
	bus, _ := startAgent(t, ops)

	body, _ := json.Marshal(Request{Operation: "db_list"})
	if err := bus.handler("graylogic/influx/command", body); err != nil {
		t.Fatalf("handler error = %v", err)
	}

	if len(bus.published) != 0 {
		t.Errorf("published %d replies for an unaddressable request, want 0", len(bus.published))
	}
}

func TestAgent_StopUnsubscribesCommandTopic(t *testing.T) {
	bus := &fakeBus{}
	a := New(&stubOps{}, bus, nopLogger{}, 1)
	if err := a.Start(context.Background()); err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	if err := a.Stop(); err != nil {
		t.Fatalf("Stop() error = %v", err)
	}

	if len(bus.unsubscribed) != 1 || bus.unsubscribed[0] != "graylogic/influx/command" {
		t.Errorf("unsubscribed from %v, want the command topic", bus.unsubscribed)
	}
}

func TestAgent_DropsMalformedPayload(t *testing.T) {
	ops := &stubOps{}
	bus, _ := startAgent(t, ops)

	if err := bus.handler("graylogic/influx/command", []byte("{not json")); err != nil {
		t.Fatalf("handler error = %v", err)
	}

	if len(bus.published) != 0 {
		t.Errorf("published %d replies for a malformed request, want 0", len(bus.published))
	}
	if ops.lastOp != "" {
		t.Errorf("operation %s dispatched from malformed payload", ops.lastOp)
	}
}
