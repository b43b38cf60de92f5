package shared

import (
	"encoding/json"
	"time"

	"hotel-booking/internal/domain/hold"
	"hotel-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

const (
	EventBookingReady     = "booking.ready"
	EventHoldExpired      = "hold.expired"
	EventBookingCancelled = "booking.cancelled"
)

type EventLine struct {
	RoomTypeID uuid.UUID `json:"room_type_id"`
	Quantity   int       `json:"quantity"`
}

// BookingReady is emitted once a hold's units are converted into booked units.
type BookingReady struct {
	HoldID         uuid.UUID   `json:"hold_id"`
	UserID         uuid.UUID   `json:"user_id"`
	HotelID        uuid.UUID   `json:"hotel_id"`
	CheckIn        string      `json:"check_in"`
	CheckOut       string      `json:"check_out"`
	NumberOfGuests int         `json:"number_of_guests"`
	Lines          []EventLine `json:"lines"`
	TotalPrice     string      `json:"total_price"`
	Currency       string      `json:"currency"`
	CompletedAt    time.Time   `json:"completed_at"`
}

type HoldExpired struct {
	HoldID    uuid.UUID `json:"hold_id"`
	UserID    uuid.UUID `json:"user_id"`
	HotelID   uuid.UUID `json:"hotel_id"`
	ExpiresAt time.Time `json:"expires_at"`
	ExpiredAt time.Time `json:"expired_at"`
}

type BookingCancelled struct {
	HoldID      uuid.UUID `json:"hold_id"`
	UserID      uuid.UUID `json:"user_id"`
	HotelID     uuid.UUID `json:"hotel_id"`
	CancelledAt time.Time `json:"cancelled_at"`
}

func NewBookingReady(h *hold.Hold, completedAt time.Time) BookingReady {
	lines := make([]EventLine, 0, len(h.Lines()))
	for _, l := range h.Lines() {
		lines = append(lines, EventLine{RoomTypeID: l.RoomTypeID, Quantity: l.Quantity})
	}
	return BookingReady{
		HoldID:         h.ID(),
		UserID:         h.UserID(),
		HotelID:        h.HotelID(),
		CheckIn:        h.Stay().CheckIn().String(),
		CheckOut:       h.Stay().CheckOut().String(),
		NumberOfGuests: h.NumberOfGuests(),
		Lines:          lines,
		TotalPrice:     h.TotalPrice().StringFixed(2),
		Currency:       h.Currency(),
		CompletedAt:    completedAt,
	}
}

// NewOutboxMessage serializes payload for the outbox table.
func NewOutboxMessage(aggregateID uuid.UUID, eventType string, payload any, now time.Time) (OutboxMessage, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return OutboxMessage{}, errs.Wrapf(err, "marshal %s payload", eventType)
	}
	return OutboxMessage{
		AggregateID: aggregateID,
		EventType:   eventType,
		Payload:     body,
		CreatedAt:   now,
	}, nil
}
