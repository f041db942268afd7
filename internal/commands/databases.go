package commands

import (
	"context"

	"github.com/urfave/cli/v3"
)

func (rt *runtime) dbList() *cli.Command {
	return &cli.Command{
		Name:  "db_list",
		Usage: "List all databases on the server",
		Action: func(ctx context.Context, c *cli.Command) error {
			dbs, err := rt.fwd.DatabaseList(ctx, overrides(c))
			if err != nil {
				return err
			}
			return printJSON(dbs)
		},
	}
}

func (rt *runtime) dbExists() *cli.Command {
	return &cli.Command{
		Name:      "db_exists",
		Usage:     "Check whether a database exists",
		Arguments: []cli.Argument{&cli.StringArg{Name: "name"}},
		Action: func(ctx context.Context, c *cli.Command) error {
			name := c.StringArg("name")
			if err := requireArg(name, "name"); err != nil {
				return err
			}
			return printBool(rt.fwd.DatabaseExists(ctx, name, overrides(c)))
		},
	}
}

func (rt *runtime) dbCreate() *cli.Command {
	return &cli.Command{
		Name:      "db_create",
		Usage:     "Create a database (no-op if it already exists)",
		Arguments: []cli.Argument{&cli.StringArg{Name: "name"}},
		Action: func(ctx context.Context, c *cli.Command) error {
			name := c.StringArg("name")
			if err := requireArg(name, "name"); err != nil {
				return err
			}
			created, err := rt.fwd.DatabaseCreate(ctx, name, overrides(c))
			if err != nil {
				return err
			}
			return printBool(created)
		},
	}
}

func (rt *runtime) dbRemove() *cli.Command {
	return &cli.Command{
		Name:      "db_remove",
		Usage:     "Remove a database (no-op if it does not exist)",
		Arguments: []cli.Argument{&cli.StringArg{Name: "name"}},
		Action: func(ctx context.Context, c *cli.Command) error {
			name := c.StringArg("name")
			if err := requireArg(name, "name"); err != nil {
				return err
			}
			removed, err := rt.fwd.DatabaseRemove(ctx, name, overrides(c))
			if err != nil {
				return err
			}
			return printBool(removed)
		},
	}
}
