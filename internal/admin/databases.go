package admin

import (
	"context"

	"github.com/nerrad567/gray-logic-influx/internal/audit"
	"github.com/nerrad567/gray-logic-influx/internal/infrastructure/config"
	"github.com/nerrad567/gray-logic-influx/internal/infrastructure/influx"
)

// DatabaseList lists all databases on the target server.
func (f *Forwarder) DatabaseList(ctx context.Context, conn config.Overrides) ([]influx.Database, error) {
	c, err := f.connect(conn)
	if err != nil {
		return nil, err
	}
	defer c.Close()

	return c.Databases()
}

// DatabaseExists reports whether a database with the given name exists.
//
// The check is fail-open: if the listing call fails for any reason
// (unreachable server, permission error), the database is treated as absent
// and the failure is logged, not propagated. Callers that need to tell a
// real absence from a masked failure must consult the log.
func (f *Forwarder) DatabaseExists(ctx context.Context, name string, conn config.Overrides) bool {
	dbs, err := f.DatabaseList(ctx, conn)
	if err != nil {
		f.warn("database listing failed, treating as absent", "database", name, "error", err)
		return false
	}

	for _, db := range dbs {
		if db.Name == name {
			return true
		}
	}
	return false
}

// DatabaseCreate creates a database unless it already exists.
//
// Returns (false, nil) when the database is already present (no remote
// create is issued), (true, nil) when the create was applied, and
// (false, err) when the create call itself failed. The existence check and
// the create are separate round trips; a concurrent mutation between them
// surfaces as the create call's own error.
func (f *Forwarder) DatabaseCreate(ctx context.Context, name string, conn config.Overrides) (bool, error) {
	if f.DatabaseExists(ctx, name, conn) {
		f.info("database already exists", "database", name)
		f.record(ctx, OpDBCreate, name, "", audit.OutcomeSkipped, "already exists")
		return false, nil
	}

	c, err := f.connect(conn)
	if err != nil {
		f.record(ctx, OpDBCreate, name, "", audit.OutcomeFailed, err.Error())
		return false, err
	}
	defer c.Close()

	if err := c.CreateDatabase(name); err != nil {
		f.record(ctx, OpDBCreate, name, "", audit.OutcomeFailed, err.Error())
		return false, err
	}

	f.record(ctx, OpDBCreate, name, "", audit.OutcomeApplied, "")
	return true, nil
}

// DatabaseRemove removes a database if it exists.
//
// Returns (false, nil) when the database is absent (no remote drop is
// issued), (true, nil) when the drop was applied, and (false, err) when the
// drop call itself failed.
func (f *Forwarder) DatabaseRemove(ctx context.Context, name string, conn config.Overrides) (bool, error) {
	if !f.DatabaseExists(ctx, name, conn) {
		f.info("database does not exist", "database", name)
		f.record(ctx, OpDBRemove, name, "", audit.OutcomeSkipped, "does not exist")
		return false, nil
	}

	c, err := f.connect(conn)
	if err != nil {
		f.record(ctx, OpDBRemove, name, "", audit.OutcomeFailed, err.Error())
		return false, err
	}
	defer c.Close()

	if err := c.DropDatabase(name); err != nil {
		f.record(ctx, OpDBRemove, name, "", audit.OutcomeFailed, err.Error())
		return false, err
	}

	f.record(ctx, OpDBRemove, name, "", audit.OutcomeApplied, "")
	return true, nil
}
