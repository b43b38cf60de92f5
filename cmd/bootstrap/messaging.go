package bootstrap

import (
	"context"
	"log/slog"

	"hotel-booking/internal/infra/publisher"
	"hotel-booking/internal/pkg/config"
	"hotel-booking/internal/usecase/outbox"

	"go.uber.org/fx"
)

var MessagingModule = fx.Module("messaging",
	fx.Provide(
		NewPublisher,
	),
)

func NewPublisher(lc fx.Lifecycle, cfg config.OutboxConfig, logger *slog.Logger) outbox.Publisher {
	p := publisher.NewKafkaPublisher(publisher.NewKafkaWriter(cfg), logger)

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return p.Close()
		},
	})

	return p
}
