package admin

import (
	"context"

	"github.com/nerrad567/gray-logic-influx/internal/audit"
	"github.com/nerrad567/gray-logic-influx/internal/infrastructure/config"
	"github.com/nerrad567/gray-logic-influx/internal/infrastructure/influx"
)

// Principal operations take an optional database name. A non-empty database
// scopes the operation to that database's users; an empty database routes to
// cluster-admin semantics. The two scopes use different listing and mutation
// calls on the client.

// PrincipalList lists database users when database is non-empty, or cluster
// admins when it is empty.
func (f *Forwarder) PrincipalList(ctx context.Context, database string, conn config.Overrides) ([]influx.Principal, error) {
	c, err := f.connect(conn)
	if err != nil {
		return nil, err
	}
	defer c.Close()

	if database != "" {
		return c.DatabaseUsers(database)
	}
	return c.ClusterAdmins()
}

// PrincipalExists reports whether the named principal exists in the selected
// scope. Fail-open: a failed listing is treated as absence and logged.
func (f *Forwarder) PrincipalExists(ctx context.Context, name, database string, conn config.Overrides) bool {
	principals, err := f.PrincipalList(ctx, database, conn)
	if err != nil {
		f.warn("principal listing failed, treating as absent",
			"principal", name, "database", database, "error", err)
		return false
	}

	for _, p := range principals {
		if p.Name == name {
			return true
		}
	}
	return false
}

// PrincipalCreate creates a database user (database non-empty) or a cluster
// admin (database empty), unless a principal of that name already exists in
// the selected scope. Returns the idempotency sentinel: (false, nil) no-op,
// (true, nil) applied, (false, err) remote failure.
func (f *Forwarder) PrincipalCreate(ctx context.Context, name, password, database string, conn config.Overrides) (bool, error) {
	if f.PrincipalExists(ctx, name, database, conn) {
		if database != "" {
			f.info("user already exists", "principal", name, "database", database)
		} else {
			f.info("cluster admin already exists", "principal", name)
		}
		f.record(ctx, OpUserCreate, name, database, audit.OutcomeSkipped, "already exists")
		return false, nil
	}

	c, err := f.connect(conn)
	if err != nil {
		f.record(ctx, OpUserCreate, name, database, audit.OutcomeFailed, err.Error())
		return false, err
	}
	defer c.Close()

	if database != "" {
		err = c.CreateDatabaseUser(database, name, password)
	} else {
		err = c.CreateClusterAdmin(name, password)
	}
	if err != nil {
		f.record(ctx, OpUserCreate, name, database, audit.OutcomeFailed, err.Error())
		return false, err
	}

	f.record(ctx, OpUserCreate, name, database, audit.OutcomeApplied, "")
	return true, nil
}

// PrincipalChangePassword changes the password of an existing principal in
// the selected scope; a missing principal is a no-op. The change always
// targets the named principal, never the connecting user.
func (f *Forwarder) PrincipalChangePassword(ctx context.Context, name, password, database string, conn config.Overrides) (bool, error) {
	if !f.PrincipalExists(ctx, name, database, conn) {
		if database != "" {
			f.info("user does not exist", "principal", name, "database", database)
		} else {
			f.info("cluster admin does not exist", "principal", name)
		}
		f.record(ctx, OpUserChpass, name, database, audit.OutcomeSkipped, "does not exist")
		return false, nil
	}

	c, err := f.connect(conn)
	if err != nil {
		f.record(ctx, OpUserChpass, name, database, audit.OutcomeFailed, err.Error())
		return false, err
	}
	defer c.Close()

	if err := c.SetPassword(name, password); err != nil {
		f.record(ctx, OpUserChpass, name, database, audit.OutcomeFailed, err.Error())
		return false, err
	}

	f.record(ctx, OpUserChpass, name, database, audit.OutcomeApplied, "")
	return true, nil
}

// PrincipalRemove removes an existing principal in the selected scope; a
// missing principal is a no-op. The drop always targets the named principal,
// never the connecting user.
func (f *Forwarder) PrincipalRemove(ctx context.Context, name, database string, conn config.Overrides) (bool, error) {
	if !f.PrincipalExists(ctx, name, database, conn) {
		if database != "" {
			f.info("user does not exist", "principal", name, "database", database)
		} else {
			f.info("cluster admin does not exist", "principal", name)
		}
		f.record(ctx, OpUserRemove, name, database, audit.OutcomeSkipped, "does not exist")
		return false, nil
	}

	c, err := f.connect(conn)
	if err != nil {
		f.record(ctx, OpUserRemove, name, database, audit.OutcomeFailed, err.Error())
		return false, err
	}
	defer c.Close()

	if err := c.DropUser(name); err != nil {
		f.record(ctx, OpUserRemove, name, database, audit.OutcomeFailed, err.Error())
		return false, err
	}

	f.record(ctx, OpUserRemove, name, database, audit.OutcomeApplied, "")
	return true, nil
}
