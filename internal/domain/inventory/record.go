package inventory

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusOpen   Status = "open"
	StatusClosed Status = "closed"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusOpen, StatusClosed:
		return true
	default:
		return false
	}
}

// Record is a snapshot of one ledger row. It is never written back;
// counters change only through the ledger's conditional updates.
type Record struct {
	RoomTypeID   uuid.UUID
	HotelID      uuid.UUID
	Date         StayDate
	TotalUnits   int
	BookedUnits  int
	HeldUnits    int
	RatePerNight decimal.Decimal
	Status       Status
}

func (r Record) FreeUnits() int {
	free := r.TotalUnits - r.BookedUnits - r.HeldUnits
	if free < 0 {
		return 0
	}
	return free
}

func (r Record) CanFit(qty int) bool {
	return r.Status == StatusOpen && r.BookedUnits+r.HeldUnits+qty <= r.TotalUnits
}

type recordKey struct {
	roomTypeID uuid.UUID
	day        int64
}

func keyOf(roomTypeID uuid.UUID, d StayDate) recordKey {
	return recordKey{roomTypeID: roomTypeID, day: d.t.Unix()}
}

// CanAccommodate reports whether records cover every cell of lines over r
// with enough free capacity. A missing or closed night fails the whole range.
func CanAccommodate(records []Record, lines []RoomLine, r DateRange) bool {
	cells := Cells(lines, r)
	if len(cells) == 0 {
		return false
	}

	byKey := make(map[recordKey]Record, len(records))
	for _, rec := range records {
		byKey[keyOf(rec.RoomTypeID, rec.Date)] = rec
	}

	for _, c := range cells {
		rec, ok := byKey[keyOf(c.RoomTypeID, c.Date)]
		if !ok || !rec.CanFit(c.Quantity) {
			return false
		}
	}
	return true
}

// Adjustment summarizes an unconditional counter decrement. Clamped and
// Missing rows point at an upstream bookkeeping error.
type Adjustment struct {
	Rows    int
	Clamped int
	Missing int
}

func (a Adjustment) IsClean() bool {
	return a.Clamped == 0 && a.Missing == 0
}
