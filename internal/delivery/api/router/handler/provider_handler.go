package handler

import (
	"net/http"
	"strings"
	"time"

	"locator/internal/delivery/api/middleware"
	"locator/internal/delivery/api/response"
	"locator/internal/domain/entity"
	"locator/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ProviderHandlerParams holds dependencies for ProviderHandler, injected by Fx.
type ProviderHandlerParams struct {
	fx.In

	ProviderUC usecase.ProviderUsecase
}

// ProviderHandler serves the provider directory administration endpoints
type ProviderHandler struct {
	providerUC usecase.ProviderUsecase
}

// NewProviderHandler is the constructor for ProviderHandler
func NewProviderHandler(params ProviderHandlerParams) *ProviderHandler {
	return &ProviderHandler{providerUC: params.ProviderUC}
}

// UpsertProviderRequest represents the request body for creating or replacing a provider
type UpsertProviderRequest struct {
	OwnerID      string                           `json:"owner_id" validate:"required,uuid"`
	Name         string                           `json:"name" validate:"required,max=200"`
	Address      string                           `json:"address" validate:"max=500"`
	Longitude    *float64                         `json:"longitude" validate:"required,min=-180,max=180"`
	Latitude     *float64                         `json:"latitude" validate:"required,min=-90,max=90"`
	Rating       float64                          `json:"rating" validate:"min=0,max=5"`
	Services     []string                         `json:"services" validate:"dive,service_type"`
	WorkingHours map[string]usecase.DayHoursInput `json:"working_hours"`
	IsActive     *bool                            `json:"is_active"`
}

// ProviderResponse is the administrative wire form of a provider
type ProviderResponse struct {
	ID           uuid.UUID                        `json:"id"`
	OwnerID      uuid.UUID                        `json:"owner_id"`
	Name         string                           `json:"name"`
	Address      string                           `json:"address"`
	Longitude    float64                          `json:"longitude"`
	Latitude     float64                          `json:"latitude"`
	Rating       float64                          `json:"rating"`
	Services     []string                         `json:"services"`
	WorkingHours map[string]usecase.DayHoursInput `json:"working_hours"`
	IsActive     bool                             `json:"is_active"`
	CreatedAt    time.Time                        `json:"created_at"`
	UpdatedAt    time.Time                        `json:"updated_at"`
}

// GetProvider handles GET /api/v1/admin/providers/:id
func (h *ProviderHandler) GetProvider(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	provider, err := h.providerUC.GetProvider(c.Request().Context(), middleware.GetActor(c), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toProviderResponse(provider))
}

// UpsertProvider handles PUT /api/v1/admin/providers/:id
func (h *ProviderHandler) UpsertProvider(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req UpsertProviderRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	services := make([]entity.ServiceType, 0, len(req.Services))
	for _, s := range req.Services {
		services = append(services, entity.ServiceType(s))
	}

	input := &usecase.UpsertProviderInput{
		OwnerID:      uuid.MustParse(req.OwnerID),
		Name:         req.Name,
		Address:      req.Address,
		Longitude:    *req.Longitude,
		Latitude:     *req.Latitude,
		Rating:       req.Rating,
		Services:     services,
		WorkingHours: req.WorkingHours,
		IsActive:     req.IsActive == nil || *req.IsActive,
	}

	provider, err := h.providerUC.UpsertProvider(c.Request().Context(), middleware.GetActor(c), id, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toProviderResponse(provider))
}

func toProviderResponse(p *entity.Provider) ProviderResponse {
	hours := make(map[string]usecase.DayHoursInput, len(p.WorkingHours))
	for weekday, day := range p.WorkingHours {
		name := strings.ToLower(weekday.String())
		if day.Closed {
			hours[name] = usecase.DayHoursInput{Closed: true}

			continue
		}
		hours[name] = usecase.DayHoursInput{Open: day.Open.String(), Close: day.Close.String()}
	}

	return ProviderResponse{
		ID:           p.ID,
		OwnerID:      p.OwnerID,
		Name:         p.Name,
		Address:      p.Address,
		Longitude:    p.Location.Longitude,
		Latitude:     p.Location.Latitude,
		Rating:       p.Rating,
		Services:     p.ServiceNames(),
		WorkingHours: hours,
		IsActive:     p.IsActive,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}
