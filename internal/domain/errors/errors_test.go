package errors

import (
	"net/http"
	"testing"

	"locator/internal/errors"

	"github.com/stretchr/testify/assert"
)

type statusString string

func (s statusString) String() string { return string(s) }

func TestBaseError_IsMatchesDetailedCopies(t *testing.T) {
	detailed := ErrSlotConflict.WithDetails("provider p1 2024-06-10 09:00")
	wrapped := errors.Wrap(detailed, "create appointment")

	assert.True(t, errors.Is(wrapped, ErrSlotConflict))
	assert.False(t, errors.Is(wrapped, ErrInvalidAppointmentState))
	assert.Equal(t, "SLOT_ALREADY_BOOKED", detailed.ErrorCode())
	assert.Equal(t, http.StatusConflict, detailed.HTTPCode())
}

func TestNewValidationError(t *testing.T) {
	err := NewValidationError("latitude", "must be between -90 and 90")

	assert.True(t, errors.Is(err, ErrValidationFailed))
	assert.Equal(t, "latitude: must be between -90 and 90", err.Details())
	assert.Equal(t, http.StatusBadRequest, err.HTTPCode())
}

func TestNewInvalidTransitionError(t *testing.T) {
	err := NewInvalidTransitionError(statusString("pending"), statusString("completed"))

	assert.True(t, errors.Is(err, ErrInvalidStatusTransition))
	assert.Equal(t, "pending -> completed", err.Details())
	assert.Equal(t, http.StatusUnprocessableEntity, err.HTTPCode())
}

func TestNewInvalidStateError(t *testing.T) {
	err := NewInvalidStateError(statusString("completed"))

	assert.True(t, errors.Is(err, ErrInvalidAppointmentState))
	assert.Contains(t, err.Error(), "completed")
}

func TestDatabaseExecuteError(t *testing.T) {
	cause := errors.New("connection reset")
	err := NewDatabaseExecuteError(cause, "insert appointment")

	assert.Equal(t, "DATABASE_EXECUTE_FAILED", err.ErrorCode())
	assert.Equal(t, http.StatusInternalServerError, err.HTTPCode())
	assert.True(t, errors.Is(err, cause))
	assert.Contains(t, err.Error(), "connection reset")
}
