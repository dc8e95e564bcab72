package impl

import (
	"context"
	"log/slog"
	"math"
	"strings"
	"time"

	deliverycontext "locator/internal/delivery/context"
	"locator/internal/domain/entity"
	domainerrors "locator/internal/domain/errors"
	"locator/internal/domain/geo"
	"locator/internal/domain/repository"
	"locator/internal/domain/service"
	"locator/internal/errors"
	"locator/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type providerService struct {
	providerRepo repository.ProviderRepository
	txManager    repository.TransactionManager
	invalidator  repository.ProviderCacheInvalidator
	clock        service.Clock
	logger       *slog.Logger
}

// ProviderServiceParams holds dependencies for ProviderService, injected by Fx.
type ProviderServiceParams struct {
	fx.In

	ProviderRepo repository.ProviderRepository
	TxManager    repository.TransactionManager
	Invalidator  repository.ProviderCacheInvalidator `optional:"true"`
	Clock        service.Clock                       `optional:"true"`
	Logger       *slog.Logger
}

// NewProviderService creates a new provider administration service instance
func NewProviderService(params ProviderServiceParams) usecase.ProviderUsecase {
	return &providerService{
		providerRepo: params.ProviderRepo,
		txManager:    params.TxManager,
		invalidator:  params.Invalidator,
		clock:        service.ClockOrSystem(params.Clock),
		logger:       params.Logger,
	}
}

// UpsertProvider creates or replaces a provider and its working hours atomically
func (s *providerService) UpsertProvider(ctx context.Context, actor usecase.Actor, id uuid.UUID, input *usecase.UpsertProviderInput) (*entity.Provider, error) {
	if !actor.IsAdmin() {
		return nil, domainerrors.ErrForbidden
	}

	provider, err := buildProvider(id, input, s.clock.Now().UTC())
	if err != nil {
		return nil, err
	}

	err = s.txManager.Execute(ctx, func(txRepoFactory repository.RepositoryFactory) error {
		repo := txRepoFactory.NewProviderRepository()

		existing, err := repo.GetProvider(ctx, id)
		switch {
		case err == nil:
			provider.CreatedAt = existing.CreatedAt
		case errors.Is(err, repository.ErrProviderNotFound):
		default:
			return errors.Wrap(err, "failed to load provider")
		}

		return repo.UpsertProvider(ctx, provider)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to upsert provider")
	}

	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)
	if s.invalidator != nil {
		if err := s.invalidator.InvalidateProvider(ctx, id); err != nil {
			// The entry expires on its own TTL.
			logger.Warn("Failed to invalidate cached provider",
				slog.String("providerID", id.String()),
				slog.Any("error", err),
			)
		}
	}

	logger.Info("Provider upserted",
		slog.String("providerID", id.String()),
		slog.Bool("isActive", provider.IsActive),
	)

	return provider, nil
}

// GetProvider returns a provider regardless of its active state
func (s *providerService) GetProvider(ctx context.Context, actor usecase.Actor, id uuid.UUID) (*entity.Provider, error) {
	if !actor.IsAdmin() {
		return nil, domainerrors.ErrForbidden
	}

	provider, err := s.providerRepo.GetProvider(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProviderNotFound) {
			return nil, domainerrors.ErrProviderNotFound.WithDetails(id.String())
		}

		return nil, errors.Wrap(err, "failed to get provider")
	}

	return provider, nil
}

func buildProvider(id uuid.UUID, input *usecase.UpsertProviderInput, now time.Time) (*entity.Provider, error) {
	switch {
	case input == nil:
		return nil, domainerrors.NewValidationError("body", "is required")
	case id == uuid.Nil:
		return nil, domainerrors.NewValidationError("id", "is required")
	case input.OwnerID == uuid.Nil:
		return nil, domainerrors.NewValidationError("owner_id", "is required")
	case strings.TrimSpace(input.Name) == "":
		return nil, domainerrors.NewValidationError("name", "must not be empty")
	case math.IsNaN(input.Rating) || input.Rating < 0 || input.Rating > maxRating:
		return nil, domainerrors.NewValidationError("rating", "must be between 0 and 5")
	}

	location := entity.NewGeoPoint(input.Longitude, input.Latitude)
	if err := geo.ValidatePoint(location); err != nil {
		return nil, err
	}

	services := make([]entity.ServiceType, 0, len(input.Services))
	seen := make(map[entity.ServiceType]struct{}, len(input.Services))
	for _, svc := range input.Services {
		if !svc.IsValid() {
			return nil, domainerrors.NewValidationError("services", "unknown service type "+string(svc))
		}
		if _, dup := seen[svc]; dup {
			continue
		}
		seen[svc] = struct{}{}
		services = append(services, svc)
	}

	hours, err := parseWorkingHours(input.WorkingHours)
	if err != nil {
		return nil, err
	}

	return &entity.Provider{
		ID:           id,
		OwnerID:      input.OwnerID,
		Name:         strings.TrimSpace(input.Name),
		Address:      strings.TrimSpace(input.Address),
		Location:     location,
		Rating:       input.Rating,
		Services:     services,
		WorkingHours: hours,
		IsActive:     input.IsActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

func parseWorkingHours(input map[string]usecase.DayHoursInput) (entity.WorkingHours, error) {
	hours := make(entity.WorkingHours, len(input))
	for name, day := range input {
		weekday, ok := entity.WeekdayNames[strings.ToLower(name)]
		if !ok {
			return nil, domainerrors.NewValidationError("working_hours", "unknown weekday "+name)
		}

		if day.Closed {
			hours[weekday] = entity.DayHours{Closed: true}

			continue
		}

		open, err := entity.ParseSlot(day.Open)
		if err != nil {
			return nil, domainerrors.NewValidationError("working_hours."+name+".open", "must be HH:MM")
		}
		closing, err := entity.ParseSlot(day.Close)
		if err != nil {
			return nil, domainerrors.NewValidationError("working_hours."+name+".close", "must be HH:MM")
		}
		if open >= closing {
			return nil, domainerrors.NewValidationError("working_hours."+name, "open must be before close")
		}

		hours[weekday] = entity.DayHours{Open: open, Close: closing}
	}

	return hours, nil
}
