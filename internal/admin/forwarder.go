package admin

import (
	"context"

	client "github.com/influxdata/influxdb1-client/v2"

	"github.com/nerrad567/gray-logic-influx/internal/audit"
	"github.com/nerrad567/gray-logic-influx/internal/infrastructure/config"
	"github.com/nerrad567/gray-logic-influx/internal/infrastructure/influx"
)

// Operation names, shared by the audit trail, the CLI and the MQTT agent.
const (
	OpDBList     = "db_list"
	OpDBExists   = "db_exists"
	OpDBCreate   = "db_create"
	OpDBRemove   = "db_remove"
	OpUserList   = "user_list"
	OpUserExists = "user_exists"
	OpUserCreate = "user_create"
	OpUserChpass = "user_chpass"
	OpUserRemove = "user_remove"
	OpQuery      = "query"
	OpPing       = "ping"
)

// Client is the database client surface the forwarder drives. It is an
// opaque collaborator: wire protocol, authentication and transport all live
// behind it. *influx.Client satisfies it.
type Client interface {
	Databases() ([]influx.Database, error)
	CreateDatabase(name string) error
	DropDatabase(name string) error

	ClusterAdmins() ([]influx.Principal, error)
	DatabaseUsers(database string) ([]influx.Principal, error)
	CreateClusterAdmin(name, password string) error
	CreateDatabaseUser(database, name, password string) error
	SetPassword(name, password string) error
	DropUser(name string) error

	Query(database, command string, precision influx.Precision, chunked bool) (*client.Response, error)
	Ping() (string, error)
	Close() error
}

// Dialer constructs a client handle for one operation. Handles are dialled
// fresh per remote call and closed before the operation returns.
type Dialer func(config.Connection) (Client, error)

// DialInflux adapts influx.Dial to the Dialer signature.
func DialInflux(conn config.Connection) (Client, error) {
	return influx.Dial(conn)
}

// Logger is the logging surface the forwarder needs.
// Compatible with logging.Logger and slog.Logger.
type Logger interface {
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
}

// Auditor records administrative mutations. Recording failures never fail
// the forwarded operation.
type Auditor interface {
	Record(ctx context.Context, entry *audit.Entry) error
}

// Forwarder exposes the administrative operation surface of one InfluxDB
// server, with existence-gated idempotency on mutations.
//
// The forwarder holds no state between calls: every operation resolves
// connection parameters afresh (explicit argument > configuration >
// defaults), dials a new client handle, performs at most one listing call
// and one action call, and discards the handle.
//
// Concurrent invocations are independent and unsynchronised; there is no
// shared mutable state and no ordering guarantee against the same server.
type Forwarder struct {
	provider config.Provider
	dial     Dialer
	log      Logger
	auditor  Auditor
}

// New creates a Forwarder resolving configuration from the given provider.
// A nil dialer selects the real InfluxDB client; a nil provider resolves
// connection parameters straight to the built-in defaults.
func New(provider config.Provider, dial Dialer) *Forwarder {
	if dial == nil {
		dial = DialInflux
	}
	return &Forwarder{provider: provider, dial: dial}
}

// SetLogger sets the logger for informational no-op and fail-open messages.
// Without a logger those messages are dropped; return values alone do not
// distinguish "already in desired state" from "operation failed".
func (f *Forwarder) SetLogger(log Logger) {
	f.log = log
}

// SetAuditor enables recording of administrative mutations.
func (f *Forwarder) SetAuditor(a Auditor) {
	f.auditor = a
}

// connect resolves connection parameters and dials a fresh client handle.
func (f *Forwarder) connect(conn config.Overrides) (Client, error) {
	return f.dial(config.Resolve(conn, f.provider))
}

func (f *Forwarder) info(msg string, args ...any) {
	if f.log != nil {
		f.log.Info(msg, args...)
	}
}

func (f *Forwarder) warn(msg string, args ...any) {
	if f.log != nil {
		f.log.Warn(msg, args...)
	}
}

// record writes an audit entry if an auditor is configured.
func (f *Forwarder) record(ctx context.Context, operation, target, database, outcome, detail string) {
	if f.auditor == nil {
		return
	}
	entry := &audit.Entry{
		Operation: operation,
		Target:    target,
		Database:  database,
		Outcome:   outcome,
		Detail:    detail,
	}
	if err := f.auditor.Record(ctx, entry); err != nil {
		f.warn("audit record failed", "operation", operation, "target", target, "error", err)
	}
}
