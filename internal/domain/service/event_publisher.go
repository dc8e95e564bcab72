package service

import (
	"context"
	"time"
)

// SearchEvent records one provider search for analytics.
type SearchEvent struct {
	RequestID   string    `json:"request_id,omitempty"` // For distributed tracing
	Kind        string    `json:"kind"`                 // "nearby" or "text"
	Query       string    `json:"query,omitempty"`
	Longitude   *float64  `json:"longitude,omitempty"`
	Latitude    *float64  `json:"latitude,omitempty"`
	RadiusKm    *float64  `json:"radius_km,omitempty"`
	MinRating   *float64  `json:"min_rating,omitempty"`
	Service     string    `json:"service,omitempty"`
	SortBy      string    `json:"sort_by"`
	ResultCount int       `json:"result_count"`
	ProviderIDs []string  `json:"provider_ids"`
	OccurredAt  time.Time `json:"occurred_at"`
}

// Search event kinds.
const (
	SearchKindNearby = "nearby"
	SearchKindText   = "text"
)

// AppointmentEvent announces an appointment lifecycle change to downstream
// collaborators such as reminders and notifications.
type AppointmentEvent struct {
	RequestID     string    `json:"request_id,omitempty"`
	AppointmentID string    `json:"appointment_id"`
	ProviderID    string    `json:"provider_id"`
	UserID        string    `json:"user_id"`
	ActorID       string    `json:"actor_id"`
	Date          string    `json:"date"`
	Slot          string    `json:"slot"`
	Status        string    `json:"status"`
	OccurredAt    time.Time `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishSearchEvent publishes a search event for async processing
	PublishSearchEvent(ctx context.Context, event *SearchEvent) error

	// PublishAppointmentEvent publishes an appointment change for async processing
	PublishAppointmentEvent(ctx context.Context, event *AppointmentEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
