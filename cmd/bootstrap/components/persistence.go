package components

import (
	"hotel-booking/internal/infra/readstore"
	"hotel-booking/internal/infra/repository"
	sqlc "hotel-booking/internal/infra/sqlc/generated"
	"hotel-booking/internal/infra/uow"
	"hotel-booking/internal/usecase/queries"
	"hotel-booking/internal/usecase/reaper"
	"hotel-booking/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	repositoryModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Hold
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.HoldReadQueries)),
		),
		fx.Annotate(
			readstore.NewHoldReadStore,
			fx.As(new(queries.HoldReadStore)),
			fx.As(new(reaper.ExpiredHoldFinder)),
		),
	),
)

// Hold, outbox and cancellation repositories are built per transaction by
// the unit of work; only the ledger is also used outside one.
var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		// UnitOfWork
		fx.Annotate(
			uow.NewPostgresUoW,
			fx.As(new(shared.UnitOfWork)),
		),
		// InventoryLedger
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(repository.InventoryLedgerQueries)),
		),
		fx.Annotate(
			repository.NewInventoryLedger,
			fx.As(new(shared.InventoryLedger)),
		),
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}
