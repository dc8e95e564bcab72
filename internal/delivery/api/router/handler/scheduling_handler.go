package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"locator/config"
	"locator/internal/delivery/api/middleware"
	"locator/internal/delivery/api/response"
	deliverycontext "locator/internal/delivery/context"
	"locator/internal/domain/entity"
	"locator/internal/domain/service"
	"locator/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SchedulingHandlerParams holds dependencies for SchedulingHandler, injected by Fx.
type SchedulingHandlerParams struct {
	fx.In

	SchedulingUC usecase.SchedulingUsecase
	Publisher    service.EventPublisher `optional:"true"`
	Clock        service.Clock          `optional:"true"`
	Config       *config.Config
	Logger       *slog.Logger
}

// SchedulingHandler serves slot listing and the appointment lifecycle
type SchedulingHandler struct {
	schedulingUC   usecase.SchedulingUsecase
	publisher      service.EventPublisher
	clock          service.Clock
	publishTimeout time.Duration
	logger         *slog.Logger
}

// NewSchedulingHandler is the constructor for SchedulingHandler
func NewSchedulingHandler(params SchedulingHandlerParams) *SchedulingHandler {
	return &SchedulingHandler{
		schedulingUC:   params.SchedulingUC,
		publisher:      params.Publisher,
		clock:          service.ClockOrSystem(params.Clock),
		publishTimeout: params.Config.Search.EventPublishTimeout,
		logger:         params.Logger,
	}
}

// CreateAppointmentRequest represents the request body for booking a slot
type CreateAppointmentRequest struct {
	ProviderID    string   `json:"provider_id" validate:"required,uuid"`
	ServiceType   string   `json:"service_type" validate:"required,service_type"`
	Date          string   `json:"date" validate:"required,date"`
	Slot          string   `json:"slot" validate:"required,hhmm"`
	VehicleInfo   string   `json:"vehicle_info" validate:"max=500"`
	Description   string   `json:"description" validate:"max=2000"`
	EstimatedCost *float64 `json:"estimated_cost,omitempty" validate:"omitempty,min=0"`
}

// UpdateStatusRequest represents the request body for a status change
type UpdateStatusRequest struct {
	Status     string   `json:"status" validate:"required,appointment_status"`
	ActualCost *float64 `json:"actual_cost,omitempty" validate:"omitempty,min=0"`
}

// SlotsResponse lists the free and taken slots of one day
type SlotsResponse struct {
	Available []string `json:"available"`
	Booked    []string `json:"booked"`
}

// AppointmentResponse is the wire form of an appointment
type AppointmentResponse struct {
	ID            uuid.UUID  `json:"id"`
	ProviderID    uuid.UUID  `json:"provider_id"`
	UserID        uuid.UUID  `json:"user_id"`
	ServiceType   string     `json:"service_type"`
	Date          string     `json:"date"`
	Slot          string     `json:"slot"`
	Status        string     `json:"status"`
	VehicleInfo   string     `json:"vehicle_info,omitempty"`
	Description   string     `json:"description,omitempty"`
	EstimatedCost *float64   `json:"estimated_cost,omitempty"`
	ActualCost    *float64   `json:"actual_cost,omitempty"`
	CancelledAt   *time.Time `json:"cancelled_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// Slots handles GET /api/v1/providers/:id/slots
func (h *SchedulingHandler) Slots(c echo.Context) error {
	providerID, err := pathID(c)
	if err != nil {
		return err
	}
	date, err := queryDate(c, "date")
	if err != nil {
		return err
	}

	grid, err := h.schedulingUC.AvailableSlots(c.Request().Context(), providerID, date)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, SlotsResponse{
		Available: entity.SlotStrings(grid.Available),
		Booked:    entity.SlotStrings(grid.Booked),
	})
}

// CreateAppointment handles POST /api/v1/appointments
func (h *SchedulingHandler) CreateAppointment(c echo.Context) error {
	var req CreateAppointmentRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	// Formats were checked by the validator.
	date, _ := entity.ParseDate(req.Date)
	slot, _ := entity.ParseSlot(req.Slot)

	actor := middleware.GetActor(c)
	appointment, err := h.schedulingUC.CreateAppointment(c.Request().Context(), &usecase.CreateAppointmentInput{
		UserID:        actor.UserID,
		ProviderID:    uuid.MustParse(req.ProviderID),
		ServiceType:   entity.ServiceType(req.ServiceType),
		Date:          date,
		Slot:          slot,
		VehicleInfo:   req.VehicleInfo,
		Description:   req.Description,
		EstimatedCost: req.EstimatedCost,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	h.publishAppointment(c, actor, appointment)

	return response.Success(c, http.StatusCreated, toAppointmentResponse(appointment))
}

// GetAppointment handles GET /api/v1/appointments/:id
func (h *SchedulingHandler) GetAppointment(c echo.Context) error {
	appointmentID, err := pathID(c)
	if err != nil {
		return err
	}

	appointment, err := h.schedulingUC.GetAppointment(c.Request().Context(), middleware.GetActor(c), appointmentID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toAppointmentResponse(appointment))
}

// CancelAppointment handles POST /api/v1/appointments/:id/cancel
func (h *SchedulingHandler) CancelAppointment(c echo.Context) error {
	appointmentID, err := pathID(c)
	if err != nil {
		return err
	}

	actor := middleware.GetActor(c)
	appointment, err := h.schedulingUC.CancelAppointment(c.Request().Context(), actor, appointmentID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	h.publishAppointment(c, actor, appointment)

	return response.Success(c, http.StatusOK, toAppointmentResponse(appointment))
}

// UpdateStatus handles PATCH /api/v1/appointments/:id/status
func (h *SchedulingHandler) UpdateStatus(c echo.Context) error {
	appointmentID, err := pathID(c)
	if err != nil {
		return err
	}

	var req UpdateStatusRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	actor := middleware.GetActor(c)
	appointment, err := h.schedulingUC.UpdateStatus(
		c.Request().Context(),
		actor,
		appointmentID,
		entity.AppointmentStatus(req.Status),
		req.ActualCost,
	)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	h.publishAppointment(c, actor, appointment)

	return response.Success(c, http.StatusOK, toAppointmentResponse(appointment))
}

// publishAppointment announces the change in the background; the response
// never waits on or fails because of it.
func (h *SchedulingHandler) publishAppointment(c echo.Context, actor usecase.Actor, appointment *entity.Appointment) {
	if h.publisher == nil {
		return
	}

	ctx := c.Request().Context()
	event := &service.AppointmentEvent{
		RequestID:     deliverycontext.GetRequestID(c),
		AppointmentID: appointment.ID.String(),
		ProviderID:    appointment.ProviderID.String(),
		UserID:        appointment.UserID.String(),
		ActorID:       actor.UserID.String(),
		Date:          entity.FormatDate(appointment.Date),
		Slot:          appointment.Slot.String(),
		Status:        string(appointment.Status),
		OccurredAt:    h.clock.Now().UTC(),
	}

	logger := deliverycontext.GetLoggerOrDefault(ctx, h.logger)
	pubCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), h.publishTimeout)

	go func() {
		defer cancel()

		if err := h.publisher.PublishAppointmentEvent(pubCtx, event); err != nil {
			logger.Warn("Failed to publish appointment event",
				slog.String("appointmentID", event.AppointmentID),
				slog.String("status", event.Status),
				slog.Any("error", err),
			)
		}
	}()
}

func toAppointmentResponse(a *entity.Appointment) AppointmentResponse {
	return AppointmentResponse{
		ID:            a.ID,
		ProviderID:    a.ProviderID,
		UserID:        a.UserID,
		ServiceType:   string(a.ServiceType),
		Date:          entity.FormatDate(a.Date),
		Slot:          a.Slot.String(),
		Status:        string(a.Status),
		VehicleInfo:   a.VehicleInfo,
		Description:   a.Description,
		EstimatedCost: a.EstimatedCost,
		ActualCost:    a.ActualCost,
		CancelledAt:   a.CancelledAt,
		CreatedAt:     a.CreatedAt,
		UpdatedAt:     a.UpdatedAt,
	}
}
