// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"locator/internal/domain/entity"
	"locator/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for provider persistence.
var (
	// ErrProviderNotFound is returned when no provider (or no active provider) has the given ID.
	ErrProviderNotFound = errors.New("provider not found")
)

// ProviderRepository is the read side of the provider directory plus the
// administrative write used to maintain it.
type ProviderRepository interface {
	// GetActiveProvider returns the provider only if it exists and is active.
	GetActiveProvider(ctx context.Context, id uuid.UUID) (*entity.Provider, error)

	// GetProvider returns the provider regardless of its active state.
	GetProvider(ctx context.Context, id uuid.UUID) (*entity.Provider, error)

	// FindWithinRadius returns active providers whose location lies within
	// radiusKm of point. The result may include a few providers slightly
	// outside the radius; callers re-check the exact distance.
	FindWithinRadius(ctx context.Context, point entity.GeoPoint, radiusKm float64) ([]*entity.Provider, error)

	// TextMatch returns active providers whose name or address matches query,
	// ordered by relevance.
	TextMatch(ctx context.Context, query string) ([]*entity.Provider, error)

	// UpsertProvider creates or replaces a provider together with its working hours.
	UpsertProvider(ctx context.Context, provider *entity.Provider) error
}

// ProviderCacheInvalidator evicts cached copies of a provider after it changes.
type ProviderCacheInvalidator interface {
	InvalidateProvider(ctx context.Context, id uuid.UUID) error
}
