package components

import (
	"hotel-booking/internal/pkg/clock"
	"hotel-booking/internal/usecase/commands"
	"hotel-booking/internal/usecase/outbox"
	"hotel-booking/internal/usecase/queries"
	"hotel-booking/internal/usecase/reaper"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
	usecaseWorkersModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		fx.Annotate(
			commands.NewHoldCommands,
			fx.As(fx.Self()),
			fx.As(new(reaper.HoldReleaser)),
		),
		commands.NewBookingCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewHoldQueries,
		queries.NewAvailabilityQueries,
	),
)

var usecaseWorkersModule = fx.Module("usecase/workers",
	fx.Provide(
		reaper.NewExpiryReaper,
		outbox.NewRelay,
	),
)
