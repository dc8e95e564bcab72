package postgres

import (
	"context"
	"time"

	"locator/internal/domain/entity"
	domainerrors "locator/internal/domain/errors"
	"locator/internal/domain/repository"
	"locator/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

// appointmentRepository implements the repository.AppointmentRepository interface.
// All ledger statements are pinned to the primary: a replica may lag behind
// the insert that decided a slot.
type appointmentRepository struct {
	db *gorm.DB
}

// NewAppointmentRepository is the constructor for appointmentRepository.
func NewAppointmentRepository(db *gorm.DB) repository.AppointmentRepository {
	return &appointmentRepository{
		db: db,
	}
}

func (repo *appointmentRepository) primary(ctx context.Context) *gorm.DB {
	return repo.db.WithContext(ctx).Clauses(dbresolver.Write)
}

// InsertIfAbsent relies on the partial unique index uq_appointments_active_slot:
// the single INSERT either wins the slot or fails with a unique violation.
func (repo *appointmentRepository) InsertIfAbsent(ctx context.Context, appointment *entity.Appointment) error {
	appointmentM := fromAppointmentDomain(appointment)

	if err := repo.primary(ctx).Create(appointmentM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrSlotTaken
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrProviderNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to insert appointment")
	}

	appointment.CreatedAt = appointmentM.CreatedAt
	appointment.UpdatedAt = appointmentM.UpdatedAt

	return nil
}

// FindByProviderAndDate returns the provider's appointments on date whose status is in statuses.
func (repo *appointmentRepository) FindByProviderAndDate(
	ctx context.Context,
	providerID uuid.UUID,
	date time.Time,
	statuses []entity.AppointmentStatus,
) ([]*entity.Appointment, error) {
	if len(statuses) == 0 {
		return []*entity.Appointment{}, nil
	}

	names := make([]string, 0, len(statuses))
	for _, s := range statuses {
		names = append(names, s.String())
	}

	var appointmentModels []*model.AppointmentModel
	if err := repo.primary(ctx).
		Where("provider_id = ? AND appointment_date = ?", providerID, entity.FormatDate(date)).
		Where("status IN ?", names).
		Order("slot_minute").
		Find(&appointmentModels).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find appointments by provider and date")
	}

	appointments := make([]*entity.Appointment, 0, len(appointmentModels))
	for _, appointmentM := range appointmentModels {
		appointments = append(appointments, toAppointmentDomain(appointmentM))
	}

	return appointments, nil
}

// FindByID retrieves an appointment by its unique ID.
func (repo *appointmentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Appointment, error) {
	var appointmentM model.AppointmentModel

	if err := repo.primary(ctx).
		Where("id = ?", id).
		First(&appointmentM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAppointmentNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find appointment by ID")
	}

	return toAppointmentDomain(&appointmentM), nil
}

// UpdateStatus issues UPDATE ... WHERE id = ? AND status = ?. When no row is
// affected it re-reads the row to tell a missing appointment from a lost race.
func (repo *appointmentRepository) UpdateStatus(ctx context.Context, change repository.StatusChange) (*entity.Appointment, error) {
	updates := map[string]any{
		"status":     change.To.String(),
		"updated_at": change.At,
	}
	if change.ActualCost != nil {
		updates["actual_cost"] = *change.ActualCost
	}
	if change.To == entity.StatusCancelled {
		updates["cancelled_at"] = change.At
	}

	result := repo.primary(ctx).
		Model(&model.AppointmentModel{}).
		Where("id = ? AND status = ?", change.ID, change.From.String()).
		Updates(updates)
	if result.Error != nil {
		return nil, domainerrors.NewDatabaseExecuteError(result.Error, "failed to update appointment status")
	}

	current, err := repo.FindByID(ctx, change.ID)
	if err != nil {
		return nil, err
	}
	if result.RowsAffected == 0 {
		return nil, repository.ErrStatusMismatch
	}

	return current, nil
}

// toAppointmentDomain converts a GORM AppointmentModel to a domain Appointment entity.
func toAppointmentDomain(data *model.AppointmentModel) *entity.Appointment {
	if data == nil {
		return nil
	}

	return &entity.Appointment{
		ID:            data.ID,
		ProviderID:    data.ProviderID,
		UserID:        data.UserID,
		ServiceType:   entity.ServiceType(data.ServiceType),
		Date:          entity.DateOf(data.AppointmentDate),
		Slot:          entity.Slot(data.SlotMinute),
		Status:        entity.AppointmentStatus(data.Status),
		VehicleInfo:   data.VehicleInfo,
		Description:   data.Description,
		EstimatedCost: data.EstimatedCost,
		ActualCost:    data.ActualCost,
		CancelledAt:   data.CancelledAt,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

// fromAppointmentDomain converts a domain Appointment entity to a GORM AppointmentModel.
func fromAppointmentDomain(data *entity.Appointment) *model.AppointmentModel {
	if data == nil {
		return nil
	}

	return &model.AppointmentModel{
		ID:              data.ID,
		ProviderID:      data.ProviderID,
		UserID:          data.UserID,
		ServiceType:     data.ServiceType.String(),
		AppointmentDate: entity.DateOf(data.Date),
		SlotMinute:      int(data.Slot),
		Status:          data.Status.String(),
		VehicleInfo:     data.VehicleInfo,
		Description:     data.Description,
		EstimatedCost:   data.EstimatedCost,
		ActualCost:      data.ActualCost,
		CancelledAt:     data.CancelledAt,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}
