package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// SearchLogModel is the GORM-specific struct for the 'search_logs' table.
type SearchLogModel struct {
	ID          uuid.UUID                   `gorm:"type:uuid;primary_key"`
	RequestID   string                      `gorm:"type:varchar(64);index"`
	Kind        string                      `gorm:"type:varchar(16);not null"`
	Query       string                      `gorm:"type:text"`
	Longitude   *float64                    `gorm:"type:decimal(11,8)"`
	Latitude    *float64                    `gorm:"type:decimal(10,8)"`
	RadiusKm    *float64                    `gorm:"type:decimal(8,3)"`
	MinRating   *float64                    `gorm:"type:decimal(3,2)"`
	Service     string                      `gorm:"type:varchar(50)"`
	SortBy      string                      `gorm:"type:varchar(16);not null"`
	ResultCount int                         `gorm:"not null"`
	ProviderIDs datatypes.JSONSlice[string] `gorm:"type:jsonb;not null"`
	OccurredAt  time.Time                   `gorm:"not null;index"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (SearchLogModel) TableName() string {
	return "search_logs"
}

// AppointmentEventModel is the GORM-specific struct for the 'appointment_events' table.
type AppointmentEventModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key"`
	RequestID     string    `gorm:"type:varchar(64);index"`
	AppointmentID uuid.UUID `gorm:"type:uuid;not null;index"`
	ProviderID    uuid.UUID `gorm:"type:uuid;not null"`
	UserID        uuid.UUID `gorm:"type:uuid;not null"`
	ActorID       uuid.UUID `gorm:"type:uuid;not null"`
	Date          string    `gorm:"type:varchar(10);not null"`
	Slot          string    `gorm:"type:varchar(5);not null"`
	Status        string    `gorm:"type:varchar(20);not null"`
	OccurredAt    time.Time `gorm:"not null"`
	CreatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (AppointmentEventModel) TableName() string {
	return "appointment_events"
}
