package bootstrap

import (
	"log/slog"

	"hotel-booking/internal/pkg/config"
	"hotel-booking/internal/pkg/logger"

	"go.uber.org/fx"
)

var LoggerModule = fx.Module("logger",
	fx.Provide(
		NewLogger,
	),
)

func NewLogger(cfg config.Config) *slog.Logger {
	return logger.New(cfg.Log)
}
