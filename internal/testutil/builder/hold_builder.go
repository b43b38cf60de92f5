//go:build unit || e2e

package builder

import (
	"time"

	"hotel-booking/internal/domain/hold"
	"hotel-booking/internal/domain/inventory"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var DefaultCheckIn = inventory.NewStayDate(2026, time.March, 15)

type HoldBuilder struct {
	UserID         uuid.UUID
	HotelID        uuid.UUID
	CheckIn        inventory.StayDate
	CheckOut       inventory.StayDate
	Lines          []inventory.RoomLine
	NumberOfGuests int
	TotalPrice     decimal.Decimal
	Currency       string
	Now            time.Time
	TTL            time.Duration
}

func NewHoldBuilder() *HoldBuilder {
	return &HoldBuilder{
		UserID:         uuid.New(),
		HotelID:        uuid.New(),
		CheckIn:        DefaultCheckIn,
		CheckOut:       DefaultCheckIn.AddDays(3),
		Lines:          []inventory.RoomLine{{RoomTypeID: uuid.New(), Quantity: 2}},
		NumberOfGuests: 2,
		TotalPrice:     decimal.RequireFromString("600.00"),
		Currency:       "USD",
		Now:            time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
		TTL:            15 * time.Minute,
	}
}

func (b *HoldBuilder) With(mutate func(*HoldBuilder)) *HoldBuilder {
	mutate(b)
	return b
}

func (b *HoldBuilder) WithGuests(n int) *HoldBuilder {
	b.NumberOfGuests = n
	return b
}

func (b *HoldBuilder) WithCurrency(c string) *HoldBuilder {
	b.Currency = c
	return b
}

func (b *HoldBuilder) WithTTL(ttl time.Duration) *HoldBuilder {
	b.TTL = ttl
	return b
}

func (b *HoldBuilder) WithLines(lines ...inventory.RoomLine) *HoldBuilder {
	b.Lines = lines
	return b
}

// Build methods
func (b *HoldBuilder) Stay() inventory.DateRange {
	r, err := inventory.NewDateRange(b.CheckIn, b.CheckOut)
	if err != nil {
		panic(err)
	}
	return r
}

func (b *HoldBuilder) BuildDomain() (*hold.Hold, error) {
	return hold.New(hold.NewParams{
		UserID:         b.UserID,
		HotelID:        b.HotelID,
		Stay:           b.Stay(),
		Lines:          b.Lines,
		NumberOfGuests: b.NumberOfGuests,
		TotalPrice:     b.TotalPrice,
		Currency:       b.Currency,
	}, b.Now, b.TTL)
}

// BuildWithStatus reconstructs a hold already in the given state.
func (b *HoldBuilder) BuildWithStatus(status hold.Status) *hold.Hold {
	var releasedAt *time.Time
	if status.IsTerminal() {
		at := b.Now
		releasedAt = &at
	}
	return hold.Reconstruct(hold.ReconstructParams{
		ID:             uuid.New(),
		UserID:         b.UserID,
		HotelID:        b.HotelID,
		Stay:           b.Stay(),
		Lines:          b.Lines,
		NumberOfGuests: b.NumberOfGuests,
		TotalPrice:     b.TotalPrice,
		Currency:       b.Currency,
		Status:         status,
		ExpiresAt:      b.Now.Add(b.TTL),
		CreatedAt:      b.Now,
		ReleasedAt:     releasedAt,
	})
}
