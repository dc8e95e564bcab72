package entity

import (
	"time"

	"github.com/google/uuid"
)

// Appointment is a booking of one slot with a provider on a calendar date.
type Appointment struct {
	ID            uuid.UUID
	ProviderID    uuid.UUID
	UserID        uuid.UUID
	ServiceType   ServiceType
	Date          time.Time // Calendar date at midnight UTC
	Slot          Slot
	Status        AppointmentStatus
	VehicleInfo   string
	Description   string
	EstimatedCost *float64
	ActualCost    *float64
	CancelledAt   *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// BookedBy reports whether the appointment was requested by the given user.
func (a *Appointment) BookedBy(userID uuid.UUID) bool {
	return a.UserID == userID
}
