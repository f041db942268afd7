package commands

import (
	"context"

	"github.com/urfave/cli/v3"
)

// Principal commands take an optional trailing DATABASE argument: present
// selects database-user semantics, absent selects cluster-admin semantics.

func (rt *runtime) userList() *cli.Command {
	return &cli.Command{
		Name:      "user_list",
		Usage:     "List cluster admins, or a database's users when DATABASE is given",
		Arguments: []cli.Argument{&cli.StringArg{Name: "database"}},
		Action: func(ctx context.Context, c *cli.Command) error {
			users, err := rt.fwd.PrincipalList(ctx, c.StringArg("database"), overrides(c))
			if err != nil {
				return err
			}
			return printJSON(users)
		},
	}
}

func (rt *runtime) userExists() *cli.Command {
	return &cli.Command{
		Name:  "user_exists",
		Usage: "Check whether a user exists in the selected scope",
		Arguments: []cli.Argument{
			&cli.StringArg{Name: "name"},
			&cli.StringArg{Name: "database"},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			name := c.StringArg("name")
			if err := requireArg(name, "name"); err != nil {
				return err
			}
			return printBool(rt.fwd.PrincipalExists(ctx, name, c.StringArg("database"), overrides(c)))
		},
	}
}

func (rt *runtime) userCreate() *cli.Command {
	return &cli.Command{
		Name:  "user_create",
		Usage: "Create a cluster admin, or a database user when DATABASE is given",
		Arguments: []cli.Argument{
			&cli.StringArg{Name: "name"},
			&cli.StringArg{Name: "user-password"},
			&cli.StringArg{Name: "database"},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			name := c.StringArg("name")
			password := c.StringArg("user-password")
			if err := requireArg(name, "name"); err != nil {
				return err
			}
			if err := requireArg(password, "user-password"); err != nil {
				return err
			}
			created, err := rt.fwd.PrincipalCreate(ctx, name, password, c.StringArg("database"), overrides(c))
			if err != nil {
				return err
			}
			return printBool(created)
		},
	}
}

func (rt *runtime) userChpass() *cli.Command {
	return &cli.Command{
		Name:  "user_chpass",
		Usage: "Change an existing user's password in the selected scope",
		Arguments: []cli.Argument{
			&cli.StringArg{Name: "name"},
			&cli.StringArg{Name: "user-password"},
			&cli.StringArg{Name: "database"},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			name := c.StringArg("name")
			password := c.StringArg("user-password")
			if err := requireArg(name, "name"); err != nil {
				return err
			}
			if err := requireArg(password, "user-password"); err != nil {
				return err
			}
			changed, err := rt.fwd.PrincipalChangePassword(ctx, name, password, c.StringArg("database"), overrides(c))
			if err != nil {
				return err
			}
			return printBool(changed)
		},
	}
}

func (rt *runtime) userRemove() *cli.Command {
	return &cli.Command{
		Name:  "user_remove",
		Usage: "Remove an existing user in the selected scope",
		Arguments: []cli.Argument{
			&cli.StringArg{Name: "name"},
			&cli.StringArg{Name: "database"},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			name := c.StringArg("name")
			if err := requireArg(name, "name"); err != nil {
				return err
			}
			removed, err := rt.fwd.PrincipalRemove(ctx, name, c.StringArg("database"), overrides(c))
			if err != nil {
				return err
			}
			return printBool(removed)
		},
	}
}
