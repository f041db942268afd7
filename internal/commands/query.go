package commands

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/nerrad567/gray-logic-influx/internal/infrastructure/influx"
)

func (rt *runtime) queryCmd() *cli.Command {
	return &cli.Command{
		Name:  "query",
		Usage: "Run a query string verbatim against a database",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "precision",
				Usage: "Timestamp precision: s, m (milliseconds), or u",
				Value: "s",
			},
			&cli.BoolFlag{
				Name:  "chunked",
				Usage: "Request chunked result delivery from the server",
			},
		},
		Arguments: []cli.Argument{
			&cli.StringArg{Name: "database"},
			&cli.StringArg{Name: "query"},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			database := c.StringArg("database")
			query := c.StringArg("query")
			if err := requireArg(database, "database"); err != nil {
				return err
			}
			if err := requireArg(query, "query"); err != nil {
				return err
			}

			precision, err := influx.ParsePrecision(c.String("precision"))
			if err != nil {
				return err
			}

			resp, err := rt.fwd.Query(ctx, database, query, precision, c.Bool("chunked"), overrides(c))
			if err != nil {
				return err
			}
			// The response is rendered as-is, including any statement-level
			// error the server reported in-band.
			return printJSON(resp)
		},
	}
}

func (rt *runtime) pingCmd() *cli.Command {
	return &cli.Command{
		Name:  "ping",
		Usage: "Probe the server and print its version",
		Action: func(ctx context.Context, c *cli.Command) error {
			version, err := rt.fwd.Ping(ctx, overrides(c))
			if err != nil {
				return err
			}
			return printJSON(map[string]string{"version": version})
		},
	}
}
