package usecase

import (
	"context"

	"locator/internal/domain/entity"
)

// NearbyQuery represents a proximity search around a point
type NearbyQuery struct {
	Point     entity.GeoPoint
	RadiusKm  float64
	MinRating *float64
	Service   *entity.ServiceType
	SortBy    entity.SortBy // Empty means distance
}

// TextQuery represents a name/address search, optionally anchored at a point
type TextQuery struct {
	Query     string
	Point     *entity.GeoPoint
	RadiusKm  *float64 // Requires Point; defaults to the configured radius
	MinRating *float64
	SortBy    entity.SortBy
}

// SearchUsecase defines the interface for provider search use cases
type SearchUsecase interface {
	// FindNearby returns active providers within the radius, closest first
	// unless rating order is requested.
	FindNearby(ctx context.Context, query *NearbyQuery) ([]*entity.DistanceAnnotatedProvider, error)

	// TextSearch returns active providers matching the query text.
	TextSearch(ctx context.Context, query *TextQuery) ([]*entity.DistanceAnnotatedProvider, error)
}
