package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ProviderModel is the GORM-specific struct for the 'providers' table.
// The PostGIS 'location' column is generated from longitude/latitude by the
// database and is only referenced from raw spatial queries.
type ProviderModel struct {
	ID        uuid.UUID                   `gorm:"type:uuid;primary_key"`
	OwnerID   uuid.UUID                   `gorm:"type:uuid;not null;index"`
	Name      string                      `gorm:"type:varchar(255);not null"`
	Address   string                      `gorm:"type:text;not null"`
	Latitude  float64                     `gorm:"type:decimal(10,8);not null"`
	Longitude float64                     `gorm:"type:decimal(11,8);not null"`
	Rating    float64                     `gorm:"type:decimal(3,2);not null;default:0"`
	Services  datatypes.JSONSlice[string] `gorm:"type:jsonb;not null"`
	IsActive  bool                        `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time

	WorkingHours []WorkingHoursModel `gorm:"foreignKey:ProviderID"`
}

// TableName explicitly sets the table name for GORM.
func (ProviderModel) TableName() string {
	return "providers"
}

// WorkingHoursModel is one weekday row of a provider's opening hours.
type WorkingHoursModel struct {
	ProviderID  uuid.UUID `gorm:"type:uuid;primaryKey"`
	Weekday     int16     `gorm:"primaryKey"`
	OpenMinute  int       `gorm:"not null"`
	CloseMinute int       `gorm:"not null"`
	Closed      bool      `gorm:"not null;default:false"`
}

// TableName explicitly sets the table name for GORM.
func (WorkingHoursModel) TableName() string {
	return "provider_working_hours"
}
