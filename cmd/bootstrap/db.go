package bootstrap

import (
	"context"
	"log/slog"
	"time"

	"hotel-booking/internal/infra/db"
	"hotel-booking/internal/infra/migrations"
	"hotel-booking/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

const connectTimeout = 10 * time.Second

var DBModule = fx.Module("db",
	fx.Provide(
		NewDB,
	),
)

func NewDB(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (*pgxpool.Pool, error) {
	if cfg.DB.MigrateOnStart {
		if err := migrate(cfg.DB, logger); err != nil {
			return nil, err
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	pool, cleanup, err := db.Connect(ctx, cfg.DB, logger)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			if cleanup != nil {
				cleanup()
			}
			return nil
		},
	})

	return pool, nil
}

func migrate(cfg config.DBConfig, logger *slog.Logger) error {
	sqlDB, err := db.OpenSQL(cfg)
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	return migrations.Up(sqlDB, logger)
}
