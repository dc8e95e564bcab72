package handler

import (
	"net/http"

	"locator/config"
	"locator/internal/delivery/api/response"
	"locator/internal/domain/entity"
	domainerrors "locator/internal/domain/errors"
	"locator/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SearchHandlerParams holds dependencies for SearchHandler, injected by Fx.
type SearchHandlerParams struct {
	fx.In

	SearchUC usecase.SearchUsecase
	Config   *config.Config
}

// SearchHandler serves the provider search endpoints
type SearchHandler struct {
	searchUC        usecase.SearchUsecase
	defaultRadiusKm float64
}

// NewSearchHandler is the constructor for SearchHandler
func NewSearchHandler(params SearchHandlerParams) *SearchHandler {
	return &SearchHandler{
		searchUC:        params.SearchUC,
		defaultRadiusKm: params.Config.Search.DefaultRadiusKm,
	}
}

// ProviderEntry is one provider in a search result
type ProviderEntry struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Address  string    `json:"address"`
	Rating   float64   `json:"rating"`
	Distance *float64  `json:"distance,omitempty"` // Kilometers, present when the search carried a point
	Services []string  `json:"services"`
}

// Nearby handles GET /api/v1/providers/nearby
func (h *SearchHandler) Nearby(c echo.Context) error {
	if c.QueryParam("lng") == "" || c.QueryParam("lat") == "" {
		return domainerrors.NewValidationError("lng,lat", "are required")
	}

	query := &usecase.NearbyQuery{
		RadiusKm: h.defaultRadiusKm,
		SortBy:   entity.SortBy(c.QueryParam("sort_by")),
	}
	err := echo.QueryParamsBinder(c).
		Float64("lng", &query.Point.Longitude).
		Float64("lat", &query.Point.Latitude).
		Float64("radius_km", &query.RadiusKm).
		BindError()
	if err != nil {
		return queryBindError(err)
	}

	if query.MinRating, err = optionalFloat(c, "min_rating"); err != nil {
		return err
	}
	if raw := c.QueryParam("service"); raw != "" {
		serviceType := entity.ServiceType(raw)
		query.Service = &serviceType
	}

	hits, err := h.searchUC.FindNearby(c.Request().Context(), query)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toProviderEntries(hits))
}

// Search handles GET /api/v1/providers/search
func (h *SearchHandler) Search(c echo.Context) error {
	query := &usecase.TextQuery{
		Query:  c.QueryParam("q"),
		SortBy: entity.SortBy(c.QueryParam("sort_by")),
	}

	lng, err := optionalFloat(c, "lng")
	if err != nil {
		return err
	}
	lat, err := optionalFloat(c, "lat")
	if err != nil {
		return err
	}
	switch {
	case lng != nil && lat != nil:
		point := entity.NewGeoPoint(*lng, *lat)
		query.Point = &point
	case lng != nil || lat != nil:
		return domainerrors.NewValidationError("lng,lat", "must be given together")
	}

	if query.RadiusKm, err = optionalFloat(c, "radius_km"); err != nil {
		return err
	}
	if query.MinRating, err = optionalFloat(c, "min_rating"); err != nil {
		return err
	}

	hits, err := h.searchUC.TextSearch(c.Request().Context(), query)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toProviderEntries(hits))
}

func toProviderEntries(hits []*entity.DistanceAnnotatedProvider) []ProviderEntry {
	entries := make([]ProviderEntry, 0, len(hits))
	for _, hit := range hits {
		entries = append(entries, ProviderEntry{
			ID:       hit.Provider.ID,
			Name:     hit.Provider.Name,
			Address:  hit.Provider.Address,
			Rating:   hit.Provider.Rating,
			Distance: hit.DistanceKm,
			Services: hit.Provider.ServiceNames(),
		})
	}

	return entries
}
