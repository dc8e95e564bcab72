package model

import (
	"time"

	"github.com/google/uuid"
)

// AppointmentModel is the GORM-specific struct for the 'appointments' table.
// A partial unique index on (provider_id, appointment_date, slot_minute)
// excluding cancelled rows enforces one live booking per slot.
type AppointmentModel struct {
	ID              uuid.UUID  `gorm:"type:uuid;primary_key"`
	ProviderID      uuid.UUID  `gorm:"type:uuid;not null;index:idx_appointments_provider_date"`
	UserID          uuid.UUID  `gorm:"type:uuid;not null;index"`
	ServiceType     string     `gorm:"type:varchar(50);not null"`
	AppointmentDate time.Time  `gorm:"type:date;not null;index:idx_appointments_provider_date"`
	SlotMinute      int        `gorm:"not null"`
	Status          string     `gorm:"type:varchar(20);not null"`
	VehicleInfo     string     `gorm:"type:text;not null;default:''"`
	Description     string     `gorm:"type:text;not null;default:''"`
	EstimatedCost   *float64   `gorm:"type:decimal(12,2)"`
	ActualCost      *float64   `gorm:"type:decimal(12,2)"`
	CancelledAt     *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (AppointmentModel) TableName() string {
	return "appointments"
}
