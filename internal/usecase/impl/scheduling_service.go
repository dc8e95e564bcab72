package impl

import (
	"context"
	"log/slog"
	"math"
	"time"

	"locator/config"
	deliverycontext "locator/internal/delivery/context"
	"locator/internal/domain/entity"
	domainerrors "locator/internal/domain/errors"
	"locator/internal/domain/repository"
	"locator/internal/domain/schedule"
	"locator/internal/domain/service"
	"locator/internal/errors"
	"locator/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type schedulingService struct {
	providerRepo    repository.ProviderRepository
	appointmentRepo repository.AppointmentRepository
	clock           service.Clock
	slotMinutes     int
	logger          *slog.Logger
}

// SchedulingServiceParams holds dependencies for SchedulingService, injected by Fx.
type SchedulingServiceParams struct {
	fx.In

	ProviderRepo    repository.ProviderRepository
	AppointmentRepo repository.AppointmentRepository
	Clock           service.Clock `optional:"true"`
	Config          *config.Config
	Logger          *slog.Logger
}

// NewSchedulingService creates a new scheduling service instance
func NewSchedulingService(params SchedulingServiceParams) usecase.SchedulingUsecase {
	slotMinutes := schedule.DefaultSlotMinutes
	if params.Config.Scheduling != nil && params.Config.Scheduling.SlotMinutes > 0 {
		slotMinutes = params.Config.Scheduling.SlotMinutes
	}

	return &schedulingService{
		providerRepo:    params.ProviderRepo,
		appointmentRepo: params.AppointmentRepo,
		clock:           service.ClockOrSystem(params.Clock),
		slotMinutes:     slotMinutes,
		logger:          params.Logger,
	}
}

func (s *schedulingService) getLogger(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// AvailableSlots splits the provider's grid for the date into free and booked slots
func (s *schedulingService) AvailableSlots(ctx context.Context, providerID uuid.UUID, date time.Time) (*entity.SlotGrid, error) {
	provider, err := s.activeProvider(ctx, providerID)
	if err != nil {
		return nil, err
	}

	date = entity.DateOf(date)
	grid := schedule.BuildGrid(provider.WorkingHours.For(date.Weekday()), s.slotMinutes)
	if len(grid) == 0 {
		return schedule.Partition(grid, nil), nil
	}

	appointments, err := s.appointmentRepo.FindByProviderAndDate(ctx, providerID, date, entity.SlotHoldingStatuses)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find appointments for date")
	}

	taken := make([]entity.Slot, 0, len(appointments))
	for _, a := range appointments {
		taken = append(taken, a.Slot)
	}

	return schedule.Partition(grid, taken), nil
}

// CreateAppointment books a slot in pending status
func (s *schedulingService) CreateAppointment(ctx context.Context, input *usecase.CreateAppointmentInput) (*entity.Appointment, error) {
	if err := validateCreateInput(input); err != nil {
		return nil, err
	}

	provider, err := s.activeProvider(ctx, input.ProviderID)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now().UTC()
	date := entity.DateOf(input.Date)
	if date.Before(entity.DateOf(now)) {
		return nil, domainerrors.NewValidationError("date", "must not be in the past")
	}

	grid := schedule.BuildGrid(provider.WorkingHours.For(date.Weekday()), s.slotMinutes)
	if !schedule.Contains(grid, input.Slot) {
		return nil, domainerrors.NewValidationError("slot", input.Slot.String()+" is not offered on "+entity.FormatDate(date))
	}

	appointment := &entity.Appointment{
		ID:            uuid.New(),
		ProviderID:    provider.ID,
		UserID:        input.UserID,
		ServiceType:   input.ServiceType,
		Date:          date,
		Slot:          input.Slot,
		Status:        entity.StatusPending,
		VehicleInfo:   input.VehicleInfo,
		Description:   input.Description,
		EstimatedCost: input.EstimatedCost,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.appointmentRepo.InsertIfAbsent(ctx, appointment); err != nil {
		if errors.Is(err, repository.ErrSlotTaken) {
			return nil, domainerrors.ErrSlotConflict.WithDetailsf("%s %s", entity.FormatDate(date), input.Slot)
		}

		return nil, errors.Wrap(err, "failed to insert appointment")
	}

	s.getLogger(ctx).Info("Appointment created",
		slog.String("appointmentID", appointment.ID.String()),
		slog.String("providerID", provider.ID.String()),
		slog.String("date", entity.FormatDate(date)),
		slog.String("slot", input.Slot.String()),
	)

	return appointment, nil
}

func validateCreateInput(input *usecase.CreateAppointmentInput) error {
	switch {
	case input == nil:
		return domainerrors.NewValidationError("body", "is required")
	case input.UserID == uuid.Nil:
		return domainerrors.NewValidationError("user_id", "is required")
	case input.ProviderID == uuid.Nil:
		return domainerrors.NewValidationError("provider_id", "is required")
	case !input.ServiceType.IsValid():
		return domainerrors.NewValidationError("service_type", "unknown service type")
	case input.Date.IsZero():
		return domainerrors.NewValidationError("date", "is required")
	case input.Slot < 0 || input.Slot >= entity.MinutesPerDay:
		return domainerrors.NewValidationError("slot", "must be a time of day")
	case input.EstimatedCost != nil && (math.IsNaN(*input.EstimatedCost) || *input.EstimatedCost < 0):
		return domainerrors.NewValidationError("estimated_cost", "must be non-negative")
	}

	return nil
}

// CancelAppointment cancels a pending or confirmed appointment
func (s *schedulingService) CancelAppointment(ctx context.Context, actor usecase.Actor, appointmentID uuid.UUID) (*entity.Appointment, error) {
	appointment, err := s.findAppointment(ctx, appointmentID)
	if err != nil {
		return nil, err
	}

	if !appointment.BookedBy(actor.UserID) && !actor.IsAdmin() {
		return nil, domainerrors.ErrForbidden.WithDetails("only the requester or an admin may cancel")
	}

	if !appointment.Status.IsCancellable() {
		return nil, domainerrors.NewInvalidStateError(appointment.Status)
	}

	updated, err := s.applyStatusChange(ctx, repository.StatusChange{
		ID:   appointment.ID,
		From: appointment.Status,
		To:   entity.StatusCancelled,
		At:   s.clock.Now().UTC(),
	})
	if err != nil {
		return nil, err
	}

	s.getLogger(ctx).Info("Appointment cancelled",
		slog.String("appointmentID", appointment.ID.String()),
		slog.String("actorID", actor.UserID.String()),
	)

	return updated, nil
}

// UpdateStatus moves an appointment along the state machine
func (s *schedulingService) UpdateStatus(
	ctx context.Context,
	actor usecase.Actor,
	appointmentID uuid.UUID,
	status entity.AppointmentStatus,
	actualCost *float64,
) (*entity.Appointment, error) {
	if !status.IsValid() {
		return nil, domainerrors.NewValidationError("status", "unknown status "+string(status))
	}
	if actualCost != nil && (math.IsNaN(*actualCost) || *actualCost < 0) {
		return nil, domainerrors.NewValidationError("actual_cost", "must be non-negative")
	}

	appointment, err := s.findAppointment(ctx, appointmentID)
	if err != nil {
		return nil, err
	}

	if !actor.IsAdmin() {
		provider, err := s.provider(ctx, appointment.ProviderID)
		if err != nil {
			return nil, err
		}
		if provider.OwnerID != actor.UserID {
			return nil, domainerrors.ErrForbidden.WithDetails("only the provider operator or an admin may change status")
		}
	}

	if !appointment.Status.CanTransitionTo(status) {
		return nil, domainerrors.NewInvalidTransitionError(appointment.Status, status)
	}

	updated, err := s.applyStatusChange(ctx, repository.StatusChange{
		ID:         appointment.ID,
		From:       appointment.Status,
		To:         status,
		ActualCost: actualCost,
		At:         s.clock.Now().UTC(),
	})
	if err != nil {
		return nil, err
	}

	s.getLogger(ctx).Info("Appointment status updated",
		slog.String("appointmentID", appointment.ID.String()),
		slog.String("from", string(appointment.Status)),
		slog.String("to", string(status)),
	)

	return updated, nil
}

// GetAppointment returns an appointment to its requester, the provider operator or an admin
func (s *schedulingService) GetAppointment(ctx context.Context, actor usecase.Actor, appointmentID uuid.UUID) (*entity.Appointment, error) {
	appointment, err := s.findAppointment(ctx, appointmentID)
	if err != nil {
		return nil, err
	}

	if appointment.BookedBy(actor.UserID) || actor.IsAdmin() {
		return appointment, nil
	}

	provider, err := s.provider(ctx, appointment.ProviderID)
	if err != nil {
		return nil, err
	}
	if provider.OwnerID != actor.UserID {
		return nil, domainerrors.ErrForbidden
	}

	return appointment, nil
}

// applyStatusChange runs the conditional update. Losing a race against another
// status change reports the status that won.
func (s *schedulingService) applyStatusChange(ctx context.Context, change repository.StatusChange) (*entity.Appointment, error) {
	updated, err := s.appointmentRepo.UpdateStatus(ctx, change)
	if err == nil {
		return updated, nil
	}

	switch {
	case errors.Is(err, repository.ErrStatusMismatch):
		current, findErr := s.appointmentRepo.FindByID(ctx, change.ID)
		if findErr != nil {
			return nil, domainerrors.ErrInvalidAppointmentState.WithDetails("status changed concurrently")
		}

		return nil, domainerrors.NewInvalidStateError(current.Status)
	case errors.Is(err, repository.ErrAppointmentNotFound):
		return nil, domainerrors.ErrAppointmentNotFound.WithDetails(change.ID.String())
	default:
		return nil, errors.Wrap(err, "failed to update appointment status")
	}
}

func (s *schedulingService) findAppointment(ctx context.Context, id uuid.UUID) (*entity.Appointment, error) {
	appointment, err := s.appointmentRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrAppointmentNotFound) {
			return nil, domainerrors.ErrAppointmentNotFound.WithDetails(id.String())
		}

		return nil, errors.Wrap(err, "failed to find appointment")
	}

	return appointment, nil
}

func (s *schedulingService) activeProvider(ctx context.Context, id uuid.UUID) (*entity.Provider, error) {
	provider, err := s.providerRepo.GetActiveProvider(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProviderNotFound) {
			return nil, domainerrors.ErrProviderNotFound.WithDetails(id.String())
		}

		return nil, errors.Wrap(err, "failed to get active provider")
	}

	return provider, nil
}

func (s *schedulingService) provider(ctx context.Context, id uuid.UUID) (*entity.Provider, error) {
	provider, err := s.providerRepo.GetProvider(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProviderNotFound) {
			return nil, domainerrors.ErrProviderNotFound.WithDetails(id.String())
		}

		return nil, errors.Wrap(err, "failed to get provider")
	}

	return provider, nil
}
