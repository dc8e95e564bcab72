package entity

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppointmentStatus_CanTransitionTo(t *testing.T) {
	t.Parallel()

	all := []AppointmentStatus{StatusPending, StatusConfirmed, StatusInProgress, StatusCompleted, StatusCancelled}
	legal := map[[2]AppointmentStatus]bool{
		{StatusPending, StatusConfirmed}:    true,
		{StatusPending, StatusCancelled}:    true,
		{StatusConfirmed, StatusInProgress}: true,
		{StatusConfirmed, StatusCancelled}:  true,
		{StatusInProgress, StatusCompleted}: true,
	}

	for _, from := range all {
		for _, to := range all {
			assert.Equal(t, legal[[2]AppointmentStatus{from, to}], from.CanTransitionTo(to), "%s -> %s", from, to)
		}
	}
}

func TestAppointmentStatus_Terminal(t *testing.T) {
	t.Parallel()

	assert.True(t, StatusCompleted.IsTerminal())
	assert.True(t, StatusCancelled.IsTerminal())
	assert.False(t, StatusInProgress.IsTerminal())

	assert.True(t, StatusPending.IsCancellable())
	assert.True(t, StatusConfirmed.IsCancellable())
	assert.False(t, StatusInProgress.IsCancellable())
	assert.False(t, StatusCompleted.IsCancellable())

	assert.False(t, AppointmentStatus("in-progress").IsValid())
}

func TestSlotHoldingStatuses_AllButCancelled(t *testing.T) {
	t.Parallel()

	all := []AppointmentStatus{StatusPending, StatusConfirmed, StatusInProgress, StatusCompleted, StatusCancelled}
	for _, status := range all {
		assert.Equal(t, status != StatusCancelled, slices.Contains(SlotHoldingStatuses, status), "%s", status)
	}
}
