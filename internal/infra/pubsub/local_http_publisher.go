package pubsub

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"locator/internal/domain/service"

	"github.com/pkg/errors"
)

const localPushTimeout = 30 * time.Second

// localHTTPPublisher implements EventPublisher by POSTing Pub/Sub push
// envelopes straight to the event worker, for development.
type localHTTPPublisher struct {
	endpoint   string
	httpClient *http.Client
	logger     *slog.Logger
}

// PushMessage is the envelope Google Pub/Sub uses when pushing to HTTP endpoints.
type PushMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// NewLocalHTTPPublisher creates a new local HTTP publisher for development
func NewLocalHTTPPublisher(endpoint string, logger *slog.Logger) service.EventPublisher {
	return &localHTTPPublisher{
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: localPushTimeout,
		},
		logger: logger,
	}
}

// PublishSearchEvent pushes a search event to the local worker
func (p *localHTTPPublisher) PublishSearchEvent(ctx context.Context, event *service.SearchEvent) error {
	msg, err := newSearchMessage(event)
	if err != nil {
		return err
	}

	return p.push(ctx, msg, event.RequestID)
}

// PublishAppointmentEvent pushes an appointment change to the local worker
func (p *localHTTPPublisher) PublishAppointmentEvent(ctx context.Context, event *service.AppointmentEvent) error {
	msg, err := newAppointmentMessage(event)
	if err != nil {
		return err
	}

	return p.push(ctx, msg, event.RequestID)
}

func (p *localHTTPPublisher) push(ctx context.Context, msg *outgoingMessage, requestID string) error {
	pushMsg := PushMessage{
		Subscription: "projects/local/subscriptions/locator-events",
	}
	pushMsg.Message.Data = base64.StdEncoding.EncodeToString(msg.data)
	pushMsg.Message.Attributes = msg.attributes
	pushMsg.Message.MessageID = msg.id
	pushMsg.Message.PublishTime = time.Now().UTC().Format(time.RFC3339)

	body, err := json.Marshal(pushMsg)
	if err != nil {
		return errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if requestID != "" {
		req.Header.Set("X-Request-Id", requestID)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return errors.WithStack(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errors.Errorf("worker returned non-success status: %d", resp.StatusCode)
	}

	p.logger.DebugContext(ctx, "[LocalPubSub] Event pushed",
		slog.String("endpoint", p.endpoint),
		slog.String("event_type", msg.eventType),
		slog.String("message_id", msg.id),
	)

	return nil
}

// Close releases resources (no-op for HTTP client)
func (p *localHTTPPublisher) Close() error {
	return nil
}
