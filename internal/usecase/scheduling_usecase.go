package usecase

import (
	"context"
	"time"

	"locator/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateAppointmentInput represents a booking request for one slot
type CreateAppointmentInput struct {
	UserID        uuid.UUID
	ProviderID    uuid.UUID
	ServiceType   entity.ServiceType
	Date          time.Time
	Slot          entity.Slot
	VehicleInfo   string
	Description   string
	EstimatedCost *float64
}

// SchedulingUsecase defines the interface for slot scheduling use cases
type SchedulingUsecase interface {
	// AvailableSlots splits the provider's slot grid for date into free and booked slots.
	AvailableSlots(ctx context.Context, providerID uuid.UUID, date time.Time) (*entity.SlotGrid, error)

	// CreateAppointment books a slot in pending status.
	CreateAppointment(ctx context.Context, input *CreateAppointmentInput) (*entity.Appointment, error)

	// CancelAppointment cancels a pending or confirmed appointment on behalf of
	// its requester or an admin.
	CancelAppointment(ctx context.Context, actor Actor, appointmentID uuid.UUID) (*entity.Appointment, error)

	// UpdateStatus moves an appointment along the status state machine on
	// behalf of the provider operator or an admin.
	UpdateStatus(ctx context.Context, actor Actor, appointmentID uuid.UUID, status entity.AppointmentStatus, actualCost *float64) (*entity.Appointment, error)

	// GetAppointment returns an appointment visible to the actor.
	GetAppointment(ctx context.Context, actor Actor, appointmentID uuid.UUID) (*entity.Appointment, error)
}
