package bootstrap

import (
	"hotel-booking/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		func(cfg config.Config) config.HoldConfig { return cfg.Hold },
		func(cfg config.Config) config.ReaperConfig { return cfg.Reaper },
		func(cfg config.Config) config.OutboxConfig { return cfg.Outbox },
	),
)
