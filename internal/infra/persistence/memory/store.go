// Package memory contains an in-process implementation of the persistence
// layer, used for local development and tests.
package memory

import (
	"context"
	"sync"

	"locator/internal/domain/entity"
	domainerrors "locator/internal/domain/errors"
	"locator/internal/domain/service"

	"github.com/google/uuid"
)

// Store holds the shared state behind the in-memory repositories. A single
// mutex guards it so check-and-insert on the ledger is atomic.
type Store struct {
	mu                sync.RWMutex
	clock             service.Clock
	providers         map[uuid.UUID]*entity.Provider
	appointments      map[uuid.UUID]*entity.Appointment
	searches          []*service.SearchEvent
	appointmentEvents []*service.AppointmentEvent
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithClock sets the clock used for record timestamps.
func WithClock(clock service.Clock) StoreOption {
	return func(s *Store) {
		s.clock = service.ClockOrSystem(clock)
	}
}

// NewStore creates an empty store.
func NewStore(opts ...StoreOption) *Store {
	s := &Store{
		clock:        service.SystemClock{},
		providers:    make(map[uuid.UUID]*entity.Provider),
		appointments: make(map[uuid.UUID]*entity.Appointment),
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// checkContext reports a cancelled or expired caller context as a store failure.
func checkContext(ctx context.Context, op string) error {
	if err := ctx.Err(); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, op)
	}

	return nil
}

func cloneProvider(p *entity.Provider) *entity.Provider {
	if p == nil {
		return nil
	}

	cp := *p
	cp.Services = append([]entity.ServiceType(nil), p.Services...)
	if p.WorkingHours != nil {
		cp.WorkingHours = make(entity.WorkingHours, len(p.WorkingHours))
		for day, hours := range p.WorkingHours {
			cp.WorkingHours[day] = hours
		}
	}

	return &cp
}

func cloneAppointment(a *entity.Appointment) *entity.Appointment {
	if a == nil {
		return nil
	}

	cp := *a
	if a.EstimatedCost != nil {
		v := *a.EstimatedCost
		cp.EstimatedCost = &v
	}
	if a.ActualCost != nil {
		v := *a.ActualCost
		cp.ActualCost = &v
	}
	if a.CancelledAt != nil {
		v := *a.CancelledAt
		cp.CancelledAt = &v
	}

	return &cp
}
