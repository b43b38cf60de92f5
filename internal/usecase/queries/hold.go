package queries

import (
	"context"
	"time"

	"hotel-booking/internal/domain/hold"
	"hotel-booking/internal/infra"
	"hotel-booking/internal/pkg/clock"
	"hotel-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

type HoldLineView struct {
	RoomTypeID uuid.UUID `json:"room_type_id"`
	Quantity   int       `json:"quantity"`
}

// HoldView prices are rendered with two decimal places.
type HoldView struct {
	ID             uuid.UUID      `json:"id"`
	UserID         uuid.UUID      `json:"user_id"`
	HotelID        uuid.UUID      `json:"hotel_id"`
	CheckIn        string         `json:"check_in"`
	CheckOut       string         `json:"check_out"`
	Lines          []HoldLineView `json:"lines"`
	NumberOfGuests int            `json:"number_of_guests"`
	TotalPrice     string         `json:"total_price"`
	Currency       string         `json:"currency"`
	Status         string         `json:"status"`
	ExpiresAt      time.Time      `json:"expires_at"`
	CreatedAt      time.Time      `json:"created_at"`
	ReleasedAt     *time.Time     `json:"released_at,omitempty"`
	IsExpired      bool           `json:"is_expired"`
}

// Derive fills the fields computed from the clock rather than stored.
func (v *HoldView) Derive(now time.Time) {
	v.IsExpired = !now.Before(v.ExpiresAt) || v.Status != hold.StatusActive.String()
}

func NewHoldView(h *hold.Hold, now time.Time) *HoldView {
	lines := make([]HoldLineView, 0, len(h.Lines()))
	for _, l := range h.Lines() {
		lines = append(lines, HoldLineView{RoomTypeID: l.RoomTypeID, Quantity: l.Quantity})
	}
	return &HoldView{
		ID:             h.ID(),
		UserID:         h.UserID(),
		HotelID:        h.HotelID(),
		CheckIn:        h.Stay().CheckIn().String(),
		CheckOut:       h.Stay().CheckOut().String(),
		Lines:          lines,
		NumberOfGuests: h.NumberOfGuests(),
		TotalPrice:     h.TotalPrice().StringFixed(2),
		Currency:       h.Currency(),
		Status:         h.Status().String(),
		ExpiresAt:      h.ExpiresAt(),
		CreatedAt:      h.CreatedAt(),
		ReleasedAt:     h.ReleasedAt(),
		IsExpired:      h.IsExpiredAt(now),
	}
}

// ExpiredHold is the minimal projection the expiry sweep needs.
type ExpiredHold struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	ExpiresAt time.Time
}

type HoldReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*HoldView, error)
	// ListActiveByUser returns holds with status active and expires_at > now,
	// soonest expiry first.
	ListActiveByUser(ctx context.Context, userID uuid.UUID, now time.Time) ([]*HoldView, error)
	FindExpired(ctx context.Context, now time.Time, limit int) ([]ExpiredHold, error)
}

type HoldQueries interface {
	Get(ctx context.Context, holdID, requesterID uuid.UUID) (*HoldView, error)
	ListActiveForUser(ctx context.Context, userID uuid.UUID) ([]*HoldView, error)
}

type holdQueriesImpl struct {
	store HoldReadStore
	clock clock.Clock
}

func NewHoldQueries(store HoldReadStore, clk clock.Clock) HoldQueries {
	return &holdQueriesImpl{store: store, clock: clk}
}

func (q *holdQueriesImpl) Get(ctx context.Context, holdID, requesterID uuid.UUID) (*HoldView, error) {
	view, err := q.store.FindByID(ctx, holdID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrHoldNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if view.UserID != requesterID {
		return nil, errs.Wrapf(errs.ErrForbidden, "hold %s belongs to another user", holdID)
	}

	view.Derive(q.clock.Now())
	return view, nil
}

func (q *holdQueriesImpl) ListActiveForUser(ctx context.Context, userID uuid.UUID) ([]*HoldView, error) {
	now := q.clock.Now()
	views, err := q.store.ListActiveByUser(ctx, userID, now)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	for _, v := range views {
		v.Derive(now)
	}
	return views, nil
}
