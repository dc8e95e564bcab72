package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"locator/config"
	deliverycontext "locator/internal/delivery/context"
	"locator/internal/domain/constants"
	domainerrors "locator/internal/domain/errors"
	"locator/internal/domain/repository"
	"locator/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// PubSubMessage represents the structure of a Pub/Sub push message
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// errMalformedEvent marks a message that will never succeed, so it is acked
// instead of retried.
var errMalformedEvent = errors.New("malformed event")

// tokenValidator checks a Google-signed OIDC token for the audience.
type tokenValidator func(ctx context.Context, token, audience string) (*idtoken.Payload, error)

// PushHandler drains search and appointment events into the event log
type PushHandler struct {
	verifyPushAuth bool
	audience       string
	validateToken  tokenValidator
	logger         *slog.Logger
	searchLogRepo  repository.SearchLogRepository
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config        *config.Config
	Logger        *slog.Logger
	SearchLogRepo repository.SearchLogRepository
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	// Only Google pushes carry OIDC tokens, and local development skips them
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop

	var audience string
	if params.Config.PubSub != nil {
		audience = params.Config.PubSub.PushAudience
	}

	return &PushHandler{
		verifyPushAuth: verifyPushAuth,
		audience:       audience,
		validateToken:  idtoken.Validate,
		logger:         params.Logger,
		searchLogRepo:  params.SearchLogRepo,
	}
}

// HandlePush handles incoming Pub/Sub push messages. 2xx acks, 4xx marks the
// message as undeliverable and 503 asks Pub/Sub to retry.
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verifyPushAuth {
		if err := h.verifyPubSubToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg PubSubMessage
	if err := json.NewDecoder(c.Request().Body).Decode(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		h.logger.Error("[Worker] Failed to decode message data",
			slog.String("message_id", pushMsg.Message.MessageID),
			slog.Any("error", err),
		)

		return c.NoContent(http.StatusBadRequest)
	}

	requestID := extractRequestID(ctx, &pushMsg, data)
	reqLogger := h.logger.With(slog.String("request_id", requestID))
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	eventType := pushMsg.Message.Attributes[constants.EventAttributeType]
	if err := h.processEvent(ctx, eventType, data); err != nil {
		malformed := isMalformed(err)
		reqLogger.Error("[Worker] Failed to process event",
			slog.String("message_id", pushMsg.Message.MessageID),
			slog.String("event_type", eventType),
			slog.Bool("retryable", !malformed),
			slog.Any("error", err),
		)
		if malformed {
			return c.NoContent(http.StatusBadRequest)
		}

		return c.NoContent(http.StatusServiceUnavailable)
	}

	reqLogger.Info("[Worker] Event recorded",
		slog.String("message_id", pushMsg.Message.MessageID),
		slog.String("event_type", eventType),
	)

	return c.NoContent(http.StatusOK)
}

func (h *PushHandler) processEvent(ctx context.Context, eventType string, data []byte) error {
	switch eventType {
	case constants.EventTypeSearch:
		var event service.SearchEvent
		if err := json.Unmarshal(data, &event); err != nil {
			return errors.Wrap(errMalformedEvent, err.Error())
		}
		if event.Kind != service.SearchKindNearby && event.Kind != service.SearchKindText {
			return errors.Wrapf(errMalformedEvent, "unknown search kind %q", event.Kind)
		}

		return errors.WithStack(h.searchLogRepo.AppendSearch(ctx, &event))
	case constants.EventTypeAppointment:
		var event service.AppointmentEvent
		if err := json.Unmarshal(data, &event); err != nil {
			return errors.Wrap(errMalformedEvent, err.Error())
		}

		return errors.WithStack(h.searchLogRepo.AppendAppointmentEvent(ctx, &event))
	default:
		return errors.Wrapf(errMalformedEvent, "unknown event type %q", eventType)
	}
}

// isMalformed reports whether retrying the message cannot help.
func isMalformed(err error) bool {
	return errors.Is(err, errMalformedEvent) || errors.Is(err, domainerrors.ErrValidationFailed)
}

// extractRequestID extracts request_id from message attributes, event payload, or generates a new one
func extractRequestID(ctx context.Context, pushMsg *PubSubMessage, data []byte) string {
	// 1. Try message attributes (from Pub/Sub)
	if requestID := pushMsg.Message.Attributes["request_id"]; requestID != "" {
		return requestID
	}

	// 2. Try the event payload
	var payload struct {
		RequestID string `json:"request_id"`
	}
	if err := json.Unmarshal(data, &payload); err == nil && payload.RequestID != "" {
		return payload.RequestID
	}

	// 3. Try existing context (from RequestIDMiddleware via X-Request-Id header)
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.New().String()
}

// verifyPubSubToken verifies the JWT token from Google Pub/Sub push requests
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func (h *PushHandler) verifyPubSubToken(req *http.Request) error {
	authHeader := req.Header.Get("Authorization")
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	token, ok := strings.CutPrefix(authHeader, "Bearer ")
	if !ok {
		return errors.New("invalid authorization header format")
	}

	// Without a configured audience the push endpoint URL is expected
	audience := h.audience
	if audience == "" {
		scheme := "https"
		if req.TLS == nil {
			scheme = "http"
		}
		audience = fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)
	}

	payload, err := h.validateToken(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
