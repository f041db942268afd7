package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/nerrad567/gray-logic-influx/internal/agent"
	"github.com/nerrad567/gray-logic-influx/internal/infrastructure/mqtt"
)

// healthInterval is how often agent mode probes its long-lived resources.
const healthInterval = 30 * time.Second

func (rt *runtime) agentCmd() *cli.Command {
	return &cli.Command{
		Name:   "agent",
		Usage:  "Serve operation requests over MQTT until interrupted",
		Action: rt.runAgent,
	}
}

// runAgent connects to the broker, subscribes the dispatcher and blocks until
// the context is cancelled (SIGINT/SIGTERM from main).
func (rt *runtime) runAgent(ctx context.Context, c *cli.Command) error {
	if !rt.cfg.MQTT.Enabled {
		return ErrMQTTDisabled
	}

	bus, err := mqtt.Connect(rt.cfg.MQTT)
	if err != nil {
		return fmt.Errorf("connecting to broker: %w", err)
	}
	defer bus.Close()
	bus.SetLogger(rt.log)

	a := agent.New(rt.fwd, bus, rt.log.With("component", "agent"), byte(rt.cfg.MQTT.QoS))
	if err := a.Start(ctx); err != nil {
		return err
	}

	rt.log.Info("agent started",
		"broker", fmt.Sprintf("%s:%d", rt.cfg.MQTT.Broker.Host, rt.cfg.MQTT.Broker.Port),
		"client_id", rt.cfg.MQTT.Broker.ClientID,
	)

	checks := map[string]healthChecker{"mqtt": bus}
	if rt.db != nil {
		checks["audit"] = rt.db
	}
	go watchHealth(ctx, healthInterval, rt.log, checks)

	<-ctx.Done()
	rt.log.Info("agent shutting down")
	if err := a.Stop(); err != nil {
		rt.log.Warn("unsubscribe on shutdown failed", "error", err)
	}
	return nil
}

// healthChecker is the probe surface shared by the agent's long-lived
// resources (broker connection, audit store).
type healthChecker interface {
	HealthCheck(ctx context.Context) error
}

type warnLogger interface {
	Warn(msg string, args ...any)
}

// watchHealth probes each resource on a fixed interval until the context is
// cancelled. Failures are logged, not acted on: the broker connection
// recovers itself and a failed audit store never blocks forwarding.
func watchHealth(ctx context.Context, interval time.Duration, log warnLogger, checks map[string]healthChecker) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			for name, check := range checks {
				if err := check.HealthCheck(ctx); err != nil {
					log.Warn("health check failed", "component", name, "error", err)
				}
			}
		}
	}
}
