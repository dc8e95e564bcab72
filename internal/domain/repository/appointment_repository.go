package repository

import (
	"context"
	"time"

	"locator/internal/domain/entity"
	"locator/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for appointment persistence.
var (
	// ErrAppointmentNotFound is returned when an appointment is not found.
	ErrAppointmentNotFound = errors.New("appointment not found")
	// ErrSlotTaken is returned when a non-cancelled appointment already holds the slot.
	ErrSlotTaken = errors.New("slot already taken")
	// ErrStatusMismatch is returned when a conditional status update finds a different current status.
	ErrStatusMismatch = errors.New("appointment status changed concurrently")
)

// StatusChange is a conditional status update: it applies only while the
// appointment is still in status From.
type StatusChange struct {
	ID         uuid.UUID
	From       entity.AppointmentStatus
	To         entity.AppointmentStatus
	ActualCost *float64
	At         time.Time
}

// AppointmentRepository is the booking ledger.
type AppointmentRepository interface {
	// InsertIfAbsent atomically inserts the appointment unless a non-cancelled
	// appointment already holds the same provider, date and slot, in which
	// case it returns ErrSlotTaken and writes nothing.
	InsertIfAbsent(ctx context.Context, appointment *entity.Appointment) error

	// FindByProviderAndDate returns the provider's appointments on date whose
	// status is one of statuses, ordered by slot.
	FindByProviderAndDate(ctx context.Context, providerID uuid.UUID, date time.Time, statuses []entity.AppointmentStatus) ([]*entity.Appointment, error)

	// FindByID retrieves an appointment by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Appointment, error)

	// UpdateStatus applies change and returns the updated appointment, or
	// ErrStatusMismatch if the appointment is no longer in change.From.
	UpdateStatus(ctx context.Context, change StatusChange) (*entity.Appointment, error)
}
