package errs

// Sentinel errors shared by the command and query use cases
var (
	// Validation errors
	ErrInvalidDateRange = New("invalid date range")
	ErrInvalidRoomLines = New("invalid room lines")
	ErrValidationFailed = New("validation failed")

	// Capacity errors
	ErrRoomsNotAvailable = New("rooms not available")

	// Hold errors
	ErrHoldNotFound  = New("hold not found")
	ErrHoldNotActive = New("hold not active")
	ErrForbidden     = New("forbidden")

	// Booking errors
	ErrHoldNotCompleted        = New("hold not completed")
	ErrBookingAlreadyCancelled = New("booking already cancelled")

	// Operation errors
	ErrDatabaseOperationFailed = New("database operation failed")
)

// Code is the stable, client-facing identifier of an outcome.
type Code string

const (
	CodeInvalidDateRange        Code = "INVALID_DATE_RANGE"
	CodeInvalidRoomLines        Code = "INVALID_ROOM_LINES"
	CodeValidationFailed        Code = "VALIDATION_FAILED"
	CodeRoomsNotAvailable       Code = "ROOMS_NOT_AVAILABLE"
	CodeHoldNotFound            Code = "HOLD_NOT_FOUND"
	CodeHoldNotActive           Code = "HOLD_NOT_ACTIVE"
	CodeForbidden               Code = "FORBIDDEN"
	CodeHoldNotCompleted        Code = "HOLD_NOT_COMPLETED"
	CodeBookingAlreadyCancelled Code = "BOOKING_ALREADY_CANCELLED"
	CodeInternal                Code = "INTERNAL"
)

// checked in order; a more specific mark wins over ErrDatabaseOperationFailed
var codeTable = []struct {
	err  error
	code Code
}{
	{ErrInvalidDateRange, CodeInvalidDateRange},
	{ErrInvalidRoomLines, CodeInvalidRoomLines},
	{ErrValidationFailed, CodeValidationFailed},
	{ErrRoomsNotAvailable, CodeRoomsNotAvailable},
	{ErrHoldNotFound, CodeHoldNotFound},
	{ErrHoldNotActive, CodeHoldNotActive},
	{ErrForbidden, CodeForbidden},
	{ErrHoldNotCompleted, CodeHoldNotCompleted},
	{ErrBookingAlreadyCancelled, CodeBookingAlreadyCancelled},
}

// CodeOf returns "" for a nil error and CodeInternal for anything that is
// not one of the sentinels above.
func CodeOf(err error) Code {
	if err == nil {
		return ""
	}
	for _, entry := range codeTable {
		if Is(err, entry.err) {
			return entry.code
		}
	}
	return CodeInternal
}

// IsExpected reports whether err is a business outcome rather than an
// infrastructure failure.
func IsExpected(err error) bool {
	code := CodeOf(err)
	return code != "" && code != CodeInternal
}
