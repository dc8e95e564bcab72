package memory

import (
	"context"
	"slices"
	"time"

	"locator/internal/domain/entity"
	"locator/internal/domain/repository"

	"github.com/google/uuid"
)

type appointmentRepository struct {
	store *Store
}

// NewAppointmentRepository creates an in-memory booking ledger.
func NewAppointmentRepository(store *Store) repository.AppointmentRepository {
	return &appointmentRepository{store: store}
}

// InsertIfAbsent inserts the appointment unless a non-cancelled one holds the slot.
func (r *appointmentRepository) InsertIfAbsent(ctx context.Context, appointment *entity.Appointment) error {
	if err := checkContext(ctx, "failed to insert appointment"); err != nil {
		return err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, existing := range r.store.appointments {
		if existing.Status != entity.StatusCancelled &&
			existing.ProviderID == appointment.ProviderID &&
			existing.Date.Equal(appointment.Date) &&
			existing.Slot == appointment.Slot {
			return repository.ErrSlotTaken
		}
	}

	r.store.appointments[appointment.ID] = cloneAppointment(appointment)

	return nil
}

// FindByProviderAndDate returns the provider's appointments on date in the given statuses.
func (r *appointmentRepository) FindByProviderAndDate(
	ctx context.Context,
	providerID uuid.UUID,
	date time.Time,
	statuses []entity.AppointmentStatus,
) ([]*entity.Appointment, error) {
	if err := checkContext(ctx, "failed to find appointments by provider and date"); err != nil {
		return nil, err
	}

	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	result := make([]*entity.Appointment, 0)
	for _, a := range r.store.appointments {
		if a.ProviderID == providerID && a.Date.Equal(date) && slices.Contains(statuses, a.Status) {
			result = append(result, cloneAppointment(a))
		}
	}
	slices.SortFunc(result, func(a, b *entity.Appointment) int {
		return int(a.Slot) - int(b.Slot)
	})

	return result, nil
}

// FindByID retrieves an appointment by its unique ID.
func (r *appointmentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Appointment, error) {
	if err := checkContext(ctx, "failed to find appointment by ID"); err != nil {
		return nil, err
	}

	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	appointment, ok := r.store.appointments[id]
	if !ok {
		return nil, repository.ErrAppointmentNotFound
	}

	return cloneAppointment(appointment), nil
}

// UpdateStatus applies the change if the appointment is still in change.From.
func (r *appointmentRepository) UpdateStatus(ctx context.Context, change repository.StatusChange) (*entity.Appointment, error) {
	if err := checkContext(ctx, "failed to update appointment status"); err != nil {
		return nil, err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	appointment, ok := r.store.appointments[change.ID]
	if !ok {
		return nil, repository.ErrAppointmentNotFound
	}
	if appointment.Status != change.From {
		return nil, repository.ErrStatusMismatch
	}

	appointment.Status = change.To
	appointment.UpdatedAt = change.At
	if change.ActualCost != nil {
		cost := *change.ActualCost
		appointment.ActualCost = &cost
	}
	if change.To == entity.StatusCancelled {
		at := change.At
		appointment.CancelledAt = &at
	}

	return cloneAppointment(appointment), nil
}
