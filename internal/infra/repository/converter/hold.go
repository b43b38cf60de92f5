package converter

import (
	"hotel-booking/internal/domain/hold"
	"hotel-booking/internal/domain/inventory"
	sqlc "hotel-booking/internal/infra/sqlc/generated"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

func HoldToInsertParams(h *hold.Hold) sqlc.InsertHoldParams {
	return sqlc.InsertHoldParams{
		ID:             h.ID(),
		UserID:         h.UserID(),
		HotelID:        h.HotelID(),
		CheckIn:        DateToInfra(h.Stay().CheckIn()),
		CheckOut:       DateToInfra(h.Stay().CheckOut()),
		NumberOfGuests: pgconv.IntToInt32(h.NumberOfGuests()),
		TotalPrice:     pgconv.DecimalToNumeric(h.TotalPrice()),
		Currency:       h.Currency(),
		Status:         h.Status().String(),
		ExpiresAt:      pgconv.TimeToPgtype(h.ExpiresAt()),
		CreatedAt:      pgconv.TimeToPgtype(h.CreatedAt()),
	}
}

func HoldLinesToInsertParams(h *hold.Hold) []sqlc.InsertHoldLineParams {
	lines := h.Lines()
	params := make([]sqlc.InsertHoldLineParams, 0, len(lines))
	for _, l := range lines {
		params = append(params, sqlc.InsertHoldLineParams{
			HoldID:     h.ID(),
			RoomTypeID: l.RoomTypeID,
			Quantity:   pgconv.IntToInt32(l.Quantity),
		})
	}
	return params
}

func LinesFromInfra(rows []sqlc.HoldLines) []inventory.RoomLine {
	lines := make([]inventory.RoomLine, 0, len(rows))
	for _, row := range rows {
		lines = append(lines, inventory.RoomLine{RoomTypeID: row.RoomTypeID, Quantity: int(row.Quantity)})
	}
	inventory.SortLines(lines)
	return lines
}

func StayFromInfra(checkIn, checkOut pgtype.Date) (inventory.DateRange, error) {
	return inventory.NewDateRange(
		inventory.StayDateOf(pgconv.DateFromPgtype(checkIn)),
		inventory.StayDateOf(pgconv.DateFromPgtype(checkOut)),
	)
}

func HoldFromInfra(row sqlc.Holds, lineRows []sqlc.HoldLines) (*hold.Hold, error) {
	stay, err := StayFromInfra(row.CheckIn, row.CheckOut)
	if err != nil {
		return nil, errs.Wrapf(err, "stored stay of hold %s", row.ID)
	}
	total, err := pgconv.DecimalFromNumeric(row.TotalPrice)
	if err != nil {
		return nil, errs.Wrapf(err, "stored total of hold %s", row.ID)
	}
	status := hold.Status(row.Status)
	if !status.IsValid() {
		return nil, errs.New("unknown hold status " + row.Status)
	}

	return hold.Reconstruct(hold.ReconstructParams{
		ID:             row.ID,
		UserID:         row.UserID,
		HotelID:        row.HotelID,
		Stay:           stay,
		Lines:          LinesFromInfra(lineRows),
		NumberOfGuests: int(row.NumberOfGuests),
		TotalPrice:     total,
		Currency:       row.Currency,
		Status:         status,
		ExpiresAt:      pgconv.TimeFromPgtype(row.ExpiresAt),
		CreatedAt:      pgconv.TimeFromPgtype(row.CreatedAt),
		ReleasedAt:     pgconv.TimePtrFromPgtype(row.ReleasedAt),
	}), nil
}
