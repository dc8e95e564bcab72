package repository

import (
	"context"

	"locator/internal/domain/service"
)

// SearchLogRepository stores the events drained from the event queue.
type SearchLogRepository interface {
	// AppendSearch records a performed search.
	AppendSearch(ctx context.Context, event *service.SearchEvent) error

	// AppendAppointmentEvent records an appointment lifecycle change.
	AppendAppointmentEvent(ctx context.Context, event *service.AppointmentEvent) error
}
