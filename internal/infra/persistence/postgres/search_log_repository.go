package postgres

import (
	"context"

	domainerrors "locator/internal/domain/errors"
	"locator/internal/domain/repository"
	"locator/internal/domain/service"
	"locator/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// searchLogRepository implements the repository.SearchLogRepository interface.
type searchLogRepository struct {
	db *gorm.DB
}

// NewSearchLogRepository is the constructor for searchLogRepository.
func NewSearchLogRepository(db *gorm.DB) repository.SearchLogRepository {
	return &searchLogRepository{
		db: db,
	}
}

// AppendSearch records a performed search.
func (repo *searchLogRepository) AppendSearch(ctx context.Context, event *service.SearchEvent) error {
	providerIDs := event.ProviderIDs
	if providerIDs == nil {
		providerIDs = []string{}
	}

	searchLogM := &model.SearchLogModel{
		ID:          uuid.New(),
		RequestID:   event.RequestID,
		Kind:        event.Kind,
		Query:       event.Query,
		Longitude:   event.Longitude,
		Latitude:    event.Latitude,
		RadiusKm:    event.RadiusKm,
		MinRating:   event.MinRating,
		Service:     event.Service,
		SortBy:      event.SortBy,
		ResultCount: event.ResultCount,
		ProviderIDs: datatypes.NewJSONSlice(providerIDs),
		OccurredAt:  event.OccurredAt,
	}

	if err := repo.db.WithContext(ctx).Create(searchLogM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to append search log")
	}

	return nil
}

// AppendAppointmentEvent records an appointment lifecycle change.
func (repo *searchLogRepository) AppendAppointmentEvent(ctx context.Context, event *service.AppointmentEvent) error {
	eventM, err := fromAppointmentEvent(event)
	if err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).Create(eventM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to append appointment event")
	}

	return nil
}

func fromAppointmentEvent(event *service.AppointmentEvent) (*model.AppointmentEventModel, error) {
	ids := make([]uuid.UUID, 4)
	for i, field := range []struct{ name, value string }{
		{"appointment_id", event.AppointmentID},
		{"provider_id", event.ProviderID},
		{"user_id", event.UserID},
		{"actor_id", event.ActorID},
	} {
		id, err := uuid.Parse(field.value)
		if err != nil {
			return nil, domainerrors.NewValidationError(field.name, "must be a UUID")
		}
		ids[i] = id
	}

	return &model.AppointmentEventModel{
		ID:            uuid.New(),
		RequestID:     event.RequestID,
		AppointmentID: ids[0],
		ProviderID:    ids[1],
		UserID:        ids[2],
		ActorID:       ids[3],
		Date:          event.Date,
		Slot:          event.Slot,
		Status:        event.Status,
		OccurredAt:    event.OccurredAt,
	}, nil
}
