package inventory

import (
	"bytes"
	"slices"

	"hotel-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

// MaxQuantity caps the units of one room type a single request can ask for.
// Ledger counters are int4 columns.
const MaxQuantity = 1000

// RoomLine asks for Quantity units of one room type on every night of a range.
type RoomLine struct {
	RoomTypeID uuid.UUID
	Quantity   int
}

// NormalizeLines validates lines, merges repeated room types by summing
// their quantities and sorts the result by room type id.
func NormalizeLines(lines []RoomLine) ([]RoomLine, error) {
	if len(lines) == 0 {
		return nil, errs.Wrap(errs.ErrInvalidRoomLines, "at least one room line is required")
	}

	merged := make(map[uuid.UUID]int, len(lines))
	for _, l := range lines {
		if l.RoomTypeID == uuid.Nil {
			return nil, errs.Wrap(errs.ErrInvalidRoomLines, "room type id is required")
		}
		if l.Quantity < 1 {
			return nil, errs.Wrapf(errs.ErrInvalidRoomLines, "quantity for room type %s must be positive, got %d", l.RoomTypeID, l.Quantity)
		}
		if l.Quantity > MaxQuantity {
			return nil, errs.Wrapf(errs.ErrInvalidRoomLines, "quantity for room type %s must not exceed %d, got %d", l.RoomTypeID, MaxQuantity, l.Quantity)
		}
		merged[l.RoomTypeID] += l.Quantity
	}

	out := make([]RoomLine, 0, len(merged))
	for id, qty := range merged {
		if qty > MaxQuantity {
			return nil, errs.Wrapf(errs.ErrInvalidRoomLines, "merged quantity for room type %s must not exceed %d, got %d", id, MaxQuantity, qty)
		}
		out = append(out, RoomLine{RoomTypeID: id, Quantity: qty})
	}
	SortLines(out)
	return out, nil
}

func SortLines(lines []RoomLine) {
	slices.SortFunc(lines, func(a, b RoomLine) int {
		return bytes.Compare(a.RoomTypeID[:], b.RoomTypeID[:])
	})
}

func RoomTypeIDs(lines []RoomLine) []uuid.UUID {
	ids := make([]uuid.UUID, len(lines))
	for i, l := range lines {
		ids[i] = l.RoomTypeID
	}
	return ids
}

// Cell is one (room type, night) counter touched by a ledger operation.
type Cell struct {
	RoomTypeID uuid.UUID
	Date       StayDate
	Quantity   int
}

// Cells expands lines over every night of r, ordered by room type id and
// then by date. Ledger mutations lock rows in this order.
func Cells(lines []RoomLine, r DateRange) []Cell {
	sorted := slices.Clone(lines)
	SortLines(sorted)

	nights := r.Nights()
	cells := make([]Cell, 0, len(sorted)*len(nights))
	for _, l := range sorted {
		for _, d := range nights {
			cells = append(cells, Cell{RoomTypeID: l.RoomTypeID, Date: d, Quantity: l.Quantity})
		}
	}
	return cells
}
