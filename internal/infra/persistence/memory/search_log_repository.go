package memory

import (
	"context"

	"locator/internal/domain/repository"
	"locator/internal/domain/service"
)

type searchLogRepository struct {
	store *Store
}

// NewSearchLogRepository creates an in-memory event log.
func NewSearchLogRepository(store *Store) repository.SearchLogRepository {
	return &searchLogRepository{store: store}
}

// AppendSearch records a performed search.
func (r *searchLogRepository) AppendSearch(ctx context.Context, event *service.SearchEvent) error {
	if err := checkContext(ctx, "failed to append search log"); err != nil {
		return err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	cp := *event
	r.store.searches = append(r.store.searches, &cp)

	return nil
}

// AppendAppointmentEvent records an appointment lifecycle change.
func (r *searchLogRepository) AppendAppointmentEvent(ctx context.Context, event *service.AppointmentEvent) error {
	if err := checkContext(ctx, "failed to append appointment event"); err != nil {
		return err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	cp := *event
	r.store.appointmentEvents = append(r.store.appointmentEvents, &cp)

	return nil
}

// Searches returns a snapshot of the recorded searches.
func (s *Store) Searches() []*service.SearchEvent {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]*service.SearchEvent(nil), s.searches...)
}

// AppointmentEvents returns a snapshot of the recorded appointment events.
func (s *Store) AppointmentEvents() []*service.AppointmentEvent {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]*service.AppointmentEvent(nil), s.appointmentEvents...)
}
