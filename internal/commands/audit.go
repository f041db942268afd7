package commands

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/nerrad567/gray-logic-influx/internal/audit"
)

func (rt *runtime) auditCmd() *cli.Command {
	return &cli.Command{
		Name:  "audit",
		Usage: "Inspect the local audit trail",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List recorded administrative mutations, newest first",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "operation",
						Usage: "Filter by operation name (db_create, user_remove, ...)",
					},
					&cli.StringFlag{
						Name:  "outcome",
						Usage: "Filter by outcome (applied, skipped, failed)",
					},
					&cli.IntFlag{
						Name:  "limit",
						Usage: "Maximum entries to return",
					},
					&cli.IntFlag{
						Name:  "offset",
						Usage: "Entries to skip (pagination)",
					},
				},
				Action: rt.auditList,
			},
		},
	}
}

func (rt *runtime) auditList(ctx context.Context, c *cli.Command) error {
	if rt.trail == nil {
		return ErrAuditDisabled
	}

	entries, err := rt.trail.List(ctx, audit.Filter{
		Operation: c.String("operation"),
		Outcome:   c.String("outcome"),
		Limit:     c.Int("limit"),
		Offset:    c.Int("offset"),
	})
	if err != nil {
		return err
	}
	return printJSON(entries)
}
