package postgres

import (
	"fmt"
	"testing"
	"time"

	"locator/internal/domain/entity"
	"locator/internal/domain/service"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestConstraintViolations(t *testing.T) {
	unique := fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505", ConstraintName: "uq_appointments_active_slot"})
	foreignKey := &pgconn.PgError{Code: "23503"}

	assert.True(t, isUniqueConstraintViolation(unique))
	assert.True(t, isUniqueConstraintViolation(gorm.ErrDuplicatedKey))
	assert.False(t, isUniqueConstraintViolation(foreignKey))

	assert.True(t, isForeignKeyConstraintViolation(foreignKey))
	assert.True(t, isCheckConstraintViolation(&pgconn.PgError{Code: "23514"}))
	assert.False(t, isCheckConstraintViolation(gorm.ErrRecordNotFound))
}

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, `100\% auto\_care \\ co`, escapeLike(`100% auto_care \ co`))
	assert.Equal(t, "brake", escapeLike("brake"))
}

func TestProviderMapping(t *testing.T) {
	provider := &entity.Provider{
		ID:       uuid.New(),
		OwnerID:  uuid.New(),
		Name:     "Downtown Auto",
		Address:  "1 Main St",
		Location: entity.NewGeoPoint(-73.9855, 40.758),
		Rating:   4.5,
		Services: []entity.ServiceType{entity.ServiceOilChange, entity.ServiceBrakeRepair},
		WorkingHours: entity.WorkingHours{
			time.Monday: {Open: entity.NewSlot(9, 0), Close: entity.NewSlot(17, 0)},
			time.Sunday: {Closed: true},
		},
		IsActive: true,
	}

	providerM := fromProviderDomain(provider)
	require.Len(t, providerM.WorkingHours, 2)
	assert.Equal(t, int16(time.Sunday), providerM.WorkingHours[0].Weekday)
	assert.Equal(t, 540, providerM.WorkingHours[1].OpenMinute)

	back := toProviderDomain(providerM)
	assert.Equal(t, provider.Location, back.Location)
	assert.Equal(t, provider.Services, back.Services)
	assert.Equal(t, provider.WorkingHours, back.WorkingHours)
	assert.True(t, back.WorkingHours.For(time.Tuesday).Closed)
}

func TestAppointmentMapping_NormalizesDate(t *testing.T) {
	local := time.FixedZone("UTC+8", 8*60*60)
	appointment := &entity.Appointment{
		ID:          uuid.New(),
		ProviderID:  uuid.New(),
		UserID:      uuid.New(),
		ServiceType: entity.ServiceTireService,
		Date:        time.Date(2026, 3, 2, 0, 0, 0, 0, local),
		Slot:        entity.NewSlot(10, 0),
		Status:      entity.StatusPending,
	}

	appointmentM := fromAppointmentDomain(appointment)
	assert.Equal(t, "2026-03-02", entity.FormatDate(appointmentM.AppointmentDate))
	assert.Equal(t, 600, appointmentM.SlotMinute)

	back := toAppointmentDomain(appointmentM)
	assert.Equal(t, time.UTC, back.Date.Location())
	assert.Equal(t, entity.StatusPending, back.Status)
}

func TestFromAppointmentEvent_RejectsMalformedIDs(t *testing.T) {
	_, err := fromAppointmentEvent(&service.AppointmentEvent{
		AppointmentID: "not-a-uuid",
		ProviderID:    uuid.NewString(),
		UserID:        uuid.NewString(),
		ActorID:       uuid.NewString(),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "appointment_id")
}
