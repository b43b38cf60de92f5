//go:build e2e

package pgtest

import (
	"context"
	"testing"

	"hotel-booking/internal/domain/inventory"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

// DBLike covers both a pool and a transaction.
type DBLike interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type Counters struct {
	Total  int
	Booked int
	Held   int
	Status string
}

// SeedInventory opens nights [from, from+nights) of one room type.
func SeedInventory(t *testing.T, db DBLike, hotelID, roomTypeID uuid.UUID, from inventory.StayDate, nights, totalUnits int, rate string) {
	t.Helper()

	ctx := context.Background()
	for i := range nights {
		_, err := db.Exec(ctx, `
			INSERT INTO room_inventory (room_type_id, stay_date, hotel_id, total_units, rate_per_night)
			VALUES ($1, $2, $3, $4, $5::numeric)`,
			roomTypeID, from.AddDays(i).Time(), hotelID, totalUnits, rate)
		require.NoError(t, err)
	}
}

func SetCounters(t *testing.T, db DBLike, roomTypeID uuid.UUID, d inventory.StayDate, booked, held int) {
	t.Helper()

	_, err := db.Exec(context.Background(),
		`UPDATE room_inventory SET booked_units = $3, held_units = $4 WHERE room_type_id = $1 AND stay_date = $2`,
		roomTypeID, d.Time(), booked, held)
	require.NoError(t, err)
}

func CloseNight(t *testing.T, db DBLike, roomTypeID uuid.UUID, d inventory.StayDate) {
	t.Helper()

	_, err := db.Exec(context.Background(),
		`UPDATE room_inventory SET status = 'closed' WHERE room_type_id = $1 AND stay_date = $2`,
		roomTypeID, d.Time())
	require.NoError(t, err)
}

func ReadCounters(t *testing.T, db DBLike, roomTypeID uuid.UUID, d inventory.StayDate) Counters {
	t.Helper()

	var c Counters
	err := db.QueryRow(context.Background(),
		`SELECT total_units, booked_units, held_units, status FROM room_inventory WHERE room_type_id = $1 AND stay_date = $2`,
		roomTypeID, d.Time()).Scan(&c.Total, &c.Booked, &c.Held, &c.Status)
	require.NoError(t, err)
	return c
}

func HoldStatus(t *testing.T, db DBLike, holdID uuid.UUID) string {
	t.Helper()

	var status string
	err := db.QueryRow(context.Background(), `SELECT status FROM holds WHERE id = $1`, holdID).Scan(&status)
	require.NoError(t, err)
	return status
}

func CountOutbox(t *testing.T, db DBLike, eventType string) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(),
		`SELECT count(*) FROM outbox_events WHERE event_type = $1`, eventType).Scan(&n)
	require.NoError(t, err)
	return n
}

func CountInventory(t *testing.T, db DBLike) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(), `SELECT count(*) FROM room_inventory`).Scan(&n)
	require.NoError(t, err)
	return n
}
