// Package commands wires the CLI surface of the forwarder.
//
// Each subcommand maps one-to-one onto a forwarder operation; the command
// layer only parses arguments, resolves shared setup (config, logging, audit)
// and renders results. Results go to stdout as JSON (bare true/false for the
// idempotency sentinel); logs go to stderr.
package commands

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/nerrad567/gray-logic-influx/internal/admin"
	"github.com/nerrad567/gray-logic-influx/internal/audit"
	"github.com/nerrad567/gray-logic-influx/internal/infrastructure/config"
	"github.com/nerrad567/gray-logic-influx/internal/infrastructure/database"
	"github.com/nerrad567/gray-logic-influx/internal/infrastructure/logging"

	// Register the embedded audit schema; Migrate applies nothing without it.
	_ "github.com/nerrad567/gray-logic-influx/migrations"
)

// Version is stamped by the build; "dev" otherwise.
var Version = "dev"

const defaultConfigPath = "configs/config.yaml"

// runtime carries the shared state built once in the Before hook.
type runtime struct {
	cfg   *config.Config
	log   *logging.Logger
	fwd   *admin.Forwarder
	db    *database.DB
	trail audit.Repository
}

// NewApp returns the root CLI command with all subcommands registered.
func NewApp() *cli.Command {
	rt := &runtime{}

	return &cli.Command{
		Name:    "influxadmin",
		Usage:   "Administrative command forwarder for InfluxDB",
		Version: Version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Usage:   "Path to the YAML configuration file",
				Value:   defaultConfigPath,
				Sources: cli.EnvVars("INFLUXADMIN_CONFIG"),
			},
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "Log level (debug, info, warn, error)",
				Sources: cli.EnvVars("INFLUXADMIN_LOG_LEVEL"),
			},
			&cli.StringFlag{
				Name:  "user",
				Usage: "Connection user (overrides configuration)",
			},
			&cli.StringFlag{
				Name:  "password",
				Usage: "Connection password (overrides configuration)",
			},
			&cli.StringFlag{
				Name:  "host",
				Usage: "Server host (overrides configuration)",
			},
			&cli.IntFlag{
				Name:  "port",
				Usage: "Server port (overrides configuration)",
			},
		},
		Before: rt.setup,
		After:  rt.teardown,
		Commands: []*cli.Command{
			rt.dbList(),
			rt.dbExists(),
			rt.dbCreate(),
			rt.dbRemove(),
			rt.userList(),
			rt.userExists(),
			rt.userCreate(),
			rt.userChpass(),
			rt.userRemove(),
			rt.queryCmd(),
			rt.pingCmd(),
			rt.auditCmd(),
			rt.agentCmd(),
		},
	}
}

// setup loads configuration and builds the forwarder. A missing config file
// at the default path is not an error: every connection parameter has a
// built-in default.
func (rt *runtime) setup(ctx context.Context, c *cli.Command) (context.Context, error) {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) || c.IsSet("config") {
			return ctx, err
		}
		cfg = config.Default()
	}
	rt.cfg = cfg

	logCfg := cfg.Logging
	if lvl := c.String("log-level"); lvl != "" {
		logCfg.Level = lvl
	}
	// Results own stdout; logs always go to stderr in CLI mode.
	logCfg.Output = "stderr"
	rt.log = logging.New(logCfg, Version)

	rt.fwd = admin.New(cfg, nil)
	rt.fwd.SetLogger(rt.log)

	if cfg.Audit.Enabled {
		db, err := database.Open(ctx, database.Config{Path: cfg.Audit.Path})
		if err != nil {
			return ctx, fmt.Errorf("opening audit store: %w", err)
		}
		if err := db.Migrate(ctx); err != nil {
			db.Close()
			return ctx, fmt.Errorf("migrating audit store: %w", err)
		}
		rt.db = db
		rt.trail = audit.NewSQLiteRepository(db.DB)
		rt.fwd.SetAuditor(rt.trail)
	}

	return ctx, nil
}

func (rt *runtime) teardown(ctx context.Context, c *cli.Command) error {
	if rt.db != nil {
		return rt.db.Close()
	}
	return nil
}

// overrides collects the global connection flags into per-call overrides.
func overrides(c *cli.Command) config.Overrides {
	return config.Overrides{
		User:     c.String("user"),
		Password: c.String("password"),
		Host:     c.String("host"),
		Port:     c.Int("port"),
	}
}

// printJSON renders a result on stdout.
func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// printBool renders the idempotency sentinel. Both values exit 0: false means
// "already in the desired state", not failure.
func printBool(v bool) error {
	_, err := fmt.Println(v)
	return err
}

// requireArg fails with a usage error when a positional argument is missing.
func requireArg(value, name string) error {
	if value == "" {
		return fmt.Errorf("missing required argument: %s", name)
	}
	return nil
}
