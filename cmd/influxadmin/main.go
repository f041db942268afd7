package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/nerrad567/gray-logic-influx/internal/commands"
	"github.com/nerrad567/gray-logic-influx/internal/infrastructure/logging"
)

// version is stamped at build time via -ldflags "-X main.version=...".
var version = "dev"

func main() {
	commands.Version = version

	// Agent mode runs until interrupted; one-shot commands just ignore the
	// signal context.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app := commands.NewApp()
	if err := app.Run(ctx, os.Args); err != nil {
		// Failures before config loads have no configured logger; the
		// bootstrap logger covers both cases.
		logging.Default().Error("fatal", "error", err)
		os.Exit(1)
	}
}
