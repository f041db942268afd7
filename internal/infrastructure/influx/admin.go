package influx

import (
	"fmt"

	client "github.com/influxdata/influxdb1-client/v2"
)

// Databases lists all databases on the server.
func (c *Client) Databases() ([]Database, error) {
	resp, err := c.run("show databases", client.Query{Command: "SHOW DATABASES"})
	if err != nil {
		return nil, err
	}

	names := firstColumnStrings(resp)
	dbs := make([]Database, 0, len(names))
	for _, name := range names {
		dbs = append(dbs, Database{Name: name})
	}
	return dbs, nil
}

// CreateDatabase creates a database. The server treats creation of an
// existing database as a success; idempotency reporting is the forwarder's
// concern, not ours.
func (c *Client) CreateDatabase(name string) error {
	return c.exec("create database", fmt.Sprintf("CREATE DATABASE %s", quoteIdent(name)), "")
}

// DropDatabase removes a database and all of its data.
func (c *Client) DropDatabase(name string) error {
	return c.exec("drop database", fmt.Sprintf("DROP DATABASE %s", quoteIdent(name)), "")
}

// users lists every principal on the server with its admin flag.
func (c *Client) users() ([]Principal, error) {
	resp, err := c.run("show users", client.Query{Command: "SHOW USERS"})
	if err != nil {
		return nil, err
	}

	var principals []Principal
	for _, result := range resp.Results {
		for _, row := range result.Series {
			for _, values := range row.Values {
				if len(values) < 2 {
					continue
				}
				name, ok := values[0].(string)
				if !ok {
					continue
				}
				admin, _ := values[1].(bool)
				principals = append(principals, Principal{Name: name, Admin: admin})
			}
		}
	}
	return principals, nil
}

// ClusterAdmins lists principals holding server-wide admin privileges.
func (c *Client) ClusterAdmins() ([]Principal, error) {
	all, err := c.users()
	if err != nil {
		return nil, err
	}

	admins := make([]Principal, 0, len(all))
	for _, p := range all {
		if p.Admin {
			admins = append(admins, p)
		}
	}
	return admins, nil
}

// DatabaseUsers lists non-admin principals holding a privilege grant on the
// given database. The 1.x API has no direct per-database user listing, so
// this checks grants per user: one SHOW GRANTS round trip for each non-admin
// principal on the server.
func (c *Client) DatabaseUsers(database string) ([]Principal, error) {
	all, err := c.users()
	if err != nil {
		return nil, err
	}

	var users []Principal
	for _, p := range all {
		if p.Admin {
			continue
		}
		granted, err := c.hasGrant(p.Name, database)
		if err != nil {
			return nil, err
		}
		if granted {
			users = append(users, p)
		}
	}
	return users, nil
}

// hasGrant reports whether the named principal holds any privilege on the database.
func (c *Client) hasGrant(name, database string) (bool, error) {
	resp, err := c.run("show grants", client.Query{
		Command: fmt.Sprintf("SHOW GRANTS FOR %s", quoteIdent(name)),
	})
	if err != nil {
		return false, err
	}

	for _, db := range firstColumnStrings(resp) {
		if db == database {
			return true, nil
		}
	}
	return false, nil
}

// CreateClusterAdmin creates a principal with server-wide admin privileges.
func (c *Client) CreateClusterAdmin(name, password string) error {
	return c.exec("create cluster admin",
		fmt.Sprintf("CREATE USER %s WITH PASSWORD %s WITH ALL PRIVILEGES",
			quoteIdent(name), quoteString(password)), "")
}

// CreateDatabaseUser creates a principal and grants it full privileges on
// one database: two statements, issued in order. A failure of the grant
// leaves the bare user behind; the caller sees the error as-is.
func (c *Client) CreateDatabaseUser(database, name, password string) error {
	err := c.exec("create user",
		fmt.Sprintf("CREATE USER %s WITH PASSWORD %s",
			quoteIdent(name), quoteString(password)), "")
	if err != nil {
		return err
	}

	return c.exec("grant privileges",
		fmt.Sprintf("GRANT ALL ON %s TO %s",
			quoteIdent(database), quoteIdent(name)), "")
}

// SetPassword changes a principal's password. The statement is identical for
// cluster admins and database-scoped users.
func (c *Client) SetPassword(name, password string) error {
	return c.exec("set password",
		fmt.Sprintf("SET PASSWORD FOR %s = %s",
			quoteIdent(name), quoteString(password)), "")
}

// DropUser removes a principal. Grants are removed with the user.
func (c *Client) DropUser(name string) error {
	return c.exec("drop user", fmt.Sprintf("DROP USER %s", quoteIdent(name)), "")
}
