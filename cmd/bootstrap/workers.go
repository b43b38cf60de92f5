package bootstrap

import (
	"context"
	"log/slog"
	"sync"

	"hotel-booking/internal/pkg/config"
	"hotel-booking/internal/usecase/outbox"
	"hotel-booking/internal/usecase/reaper"

	"go.uber.org/fx"
)

var WorkersModule = fx.Module("workers",
	fx.Invoke(
		StartWorkers,
	),
)

type WorkerParams struct {
	fx.In

	Lifecycle fx.Lifecycle
	Config    config.Config
	Reaper    *reaper.ExpiryReaper
	Relay     *outbox.Relay
	Logger    *slog.Logger
}

// StartWorkers runs the expiry reaper and the outbox relay for the lifetime
// of the application. Both loops exit when their context is cancelled.
func StartWorkers(p WorkerParams) {
	ctx, cancel := context.WithCancel(context.Background())
	var wg sync.WaitGroup

	run := func(name string, enabled bool, loop func(context.Context)) {
		if !enabled {
			p.Logger.Info("worker disabled", "worker", name)
			return
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			p.Logger.Info("worker started", "worker", name)
			loop(ctx)
			p.Logger.Info("worker stopped", "worker", name)
		}()
	}

	p.Lifecycle.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			run("expiry-reaper", p.Config.Reaper.Enabled, p.Reaper.Run)
			run("outbox-relay", p.Config.Outbox.Enabled, p.Relay.Run)
			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			cancel()
			done := make(chan struct{})
			go func() {
				wg.Wait()
				close(done)
			}()
			select {
			case <-done:
				return nil
			case <-stopCtx.Done():
				return stopCtx.Err()
			}
		},
	})
}
