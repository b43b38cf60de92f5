package shared

import (
	"context"
	"time"

	"hotel-booking/internal/domain/hold"
	"hotel-booking/internal/domain/inventory"
	sqlc "hotel-booking/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
}

type Tx interface {
	Ledger() InventoryLedger
	Holds() HoldRepository
	Outbox() OutboxRepository
	Cancellations() BookingCancellationRepository
	DB() sqlc.DBTX
}

// InventoryLedger is the only writer of room_inventory counters. Mutations
// need a transaction handle; each is all-or-nothing within it.
type InventoryLedger interface {
	TryReserve(ctx context.Context, tx sqlc.DBTX, hotelID uuid.UUID, lines []inventory.RoomLine, stay inventory.DateRange) (bool, error)
	Release(ctx context.Context, tx sqlc.DBTX, lines []inventory.RoomLine, stay inventory.DateRange) (inventory.Adjustment, error)
	CommitBooking(ctx context.Context, tx sqlc.DBTX, lines []inventory.RoomLine, stay inventory.DateRange) (bool, error)
	ReleaseBooking(ctx context.Context, tx sqlc.DBTX, lines []inventory.RoomLine, stay inventory.DateRange) (inventory.Adjustment, error)
	CheckAvailability(ctx context.Context, db sqlc.DBTX, lines []inventory.RoomLine, stay inventory.DateRange) (bool, error)
	NightlyRates(ctx context.Context, db sqlc.DBTX, hotelID uuid.UUID, roomTypeIDs []uuid.UUID, stay inventory.DateRange) ([]inventory.NightlyRate, error)
	PruneElapsed(ctx context.Context, db sqlc.DBTX, before inventory.StayDate) (int64, error)
}

type HoldRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, h *hold.Hold) error
	// GetForUpdate locks the hold row until the transaction ends.
	GetForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*hold.Hold, error)
	// SaveTransition persists a status change away from active.
	SaveTransition(ctx context.Context, tx sqlc.DBTX, h *hold.Hold) error
}

type OutboxRepository interface {
	Append(ctx context.Context, tx sqlc.DBTX, msg OutboxMessage) (int64, error)
	ClaimBatch(ctx context.Context, tx sqlc.DBTX, limit int) ([]OutboxMessage, error)
	MarkPublished(ctx context.Context, tx sqlc.DBTX, ids []int64, at time.Time) error
}

type BookingCancellationRepository interface {
	Record(ctx context.Context, tx sqlc.DBTX, holdID uuid.UUID, at time.Time) error
}

type OutboxMessage struct {
	ID          int64
	AggregateID uuid.UUID
	EventType   string
	Payload     []byte
	CreatedAt   time.Time
}
