package usecase

import (
	"context"

	"locator/internal/domain/entity"

	"github.com/google/uuid"
)

// DayHoursInput is the opening window of one weekday in "HH:MM" form
type DayHoursInput struct {
	Open   string `json:"open"`
	Close  string `json:"close"`
	Closed bool   `json:"closed"`
}

// UpsertProviderInput represents the administrative view of a provider
type UpsertProviderInput struct {
	OwnerID      uuid.UUID
	Name         string
	Address      string
	Longitude    float64
	Latitude     float64
	Rating       float64
	Services     []entity.ServiceType
	WorkingHours map[string]DayHoursInput // Keyed by lowercase weekday name
	IsActive     bool
}

// ProviderUsecase defines the interface for provider directory administration
type ProviderUsecase interface {
	// UpsertProvider creates or replaces the provider with the given ID.
	UpsertProvider(ctx context.Context, actor Actor, id uuid.UUID, input *UpsertProviderInput) (*entity.Provider, error)

	// GetProvider returns a provider regardless of its active state.
	GetProvider(ctx context.Context, actor Actor, id uuid.UUID) (*entity.Provider, error)
}
