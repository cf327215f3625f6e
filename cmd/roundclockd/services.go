package main

import (
	"fmt"
	"os"

	"github.com/jonboulle/clockwork"

	"github.com/fitkit/roundclock/internal/feedback"
	"github.com/fitkit/roundclock/internal/gateway"
	"github.com/fitkit/roundclock/internal/roundtimer"
)

// Services bundles the wired application components
type Services struct {
	Runner  *roundtimer.Runner
	Gateway *gateway.Service
}

func setupServices(cfg *Config) (*Services, error) {
	// One connection pool shared by the broadcaster and the HTTP surface.
	gwCfg := gateway.DefaultConfig()
	cm := gateway.NewConnectionManager(gwCfg.ConnectionConfig)

	signals := feedback.Multi(
		feedback.NewLogSignals(),
		feedback.NewBellSignals(os.Stdout),
	)

	runner, err := roundtimer.NewRunner(cfg.Timer, signals, gateway.NewBroadcaster(cm), clockwork.NewRealClock())
	if err != nil {
		return nil, fmt.Errorf("failed to create timer runner: %w", err)
	}

	return &Services{
		Runner:  runner,
		Gateway: gateway.NewService(cm, runner, runner),
	}, nil
}
