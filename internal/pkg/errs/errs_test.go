//go:build unit

package errs_test

import (
	"errors"
	"testing"

	"hotel-booking/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func TestCodeOf(t *testing.T) {
	testCases := []struct {
		name string
		err  error
		want errs.Code
	}{
		{name: "nil error has no code", err: nil, want: ""},
		{name: "bare sentinel", err: errs.ErrHoldNotActive, want: errs.CodeHoldNotActive},
		{name: "marked low-level error", err: errs.Mark(errors.New("predicate failed"), errs.ErrRoomsNotAvailable), want: errs.CodeRoomsNotAvailable},
		{name: "wrapped sentinel", err: errs.Wrap(errs.ErrForbidden, "release hold"), want: errs.CodeForbidden},
		{name: "unknown error is internal", err: errors.New("connection reset"), want: errs.CodeInternal},
		{name: "database failure is internal", err: errs.Mark(errors.New("boom"), errs.ErrDatabaseOperationFailed), want: errs.CodeInternal},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, errs.CodeOf(tc.err))
		})
	}
}

func TestIsExpected(t *testing.T) {
	assert.True(t, errs.IsExpected(errs.ErrRoomsNotAvailable))
	assert.True(t, errs.IsExpected(errs.Mark(errors.New("x"), errs.ErrHoldNotFound)))
	assert.False(t, errs.IsExpected(errors.New("dial tcp: refused")))
	assert.False(t, errs.IsExpected(nil))
}

func TestMark(t *testing.T) {
	t.Run("nil error returns the mark itself", func(t *testing.T) {
		assert.Equal(t, errs.ErrHoldNotFound, errs.Mark(nil, errs.ErrHoldNotFound))
	})

	t.Run("marked error keeps its message", func(t *testing.T) {
		err := errs.Mark(errors.New("no rows in result set"), errs.ErrHoldNotFound)
		assert.True(t, errs.Is(err, errs.ErrHoldNotFound))
		assert.Contains(t, err.Error(), "no rows in result set")
	})
}
