package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"locator/config"
	"locator/internal/domain/constants"
	domainerrors "locator/internal/domain/errors"
	"locator/internal/domain/service"
	mockRepo "locator/internal/mocks/repository"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"
)

func newTestHandler(t *testing.T, cfg *config.Config) (*PushHandler, *mockRepo.MockSearchLogRepository) {
	t.Helper()

	repo := mockRepo.NewMockSearchLogRepository(t)
	if cfg == nil {
		cfg = &config.Config{}
		cfg.Env.Env = constants.EnvDevelop
	}

	h := NewPushHandler(PushHandlerParams{
		Config:        cfg,
		Logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
		SearchLogRepo: repo,
	})

	return h, repo
}

func pushBody(t *testing.T, eventType string, payload any, attrs map[string]string) string {
	t.Helper()

	data, err := json.Marshal(payload)
	require.NoError(t, err)

	var msg PubSubMessage
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.MessageID = "msg-1"
	msg.Message.Attributes = map[string]string{constants.EventAttributeType: eventType}
	for k, v := range attrs {
		msg.Message.Attributes[k] = v
	}

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return string(body)
}

func serve(t *testing.T, h *PushHandler, body string, header http.Header) int {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for k, v := range header {
		req.Header[k] = v
	}
	rec := httptest.NewRecorder()

	require.NoError(t, h.HandlePush(echo.New().NewContext(req, rec)))

	return rec.Code
}

func TestHandlePush_SearchEvent(t *testing.T) {
	h, repo := newTestHandler(t, nil)
	event := &service.SearchEvent{
		RequestID:   "req-payload",
		Kind:        service.SearchKindNearby,
		SortBy:      "distance",
		ResultCount: 1,
		ProviderIDs: []string{"2b6f0cc9-4c3b-4f51-8a59-5b5d0a0c7a11"},
	}

	repo.EXPECT().
		AppendSearch(mock.Anything, mock.MatchedBy(func(e *service.SearchEvent) bool {
			return e.Kind == service.SearchKindNearby && e.ResultCount == 1
		})).
		Return(nil)

	code := serve(t, h, pushBody(t, constants.EventTypeSearch, event, nil), nil)

	assert.Equal(t, http.StatusOK, code)
}

func TestHandlePush_AppointmentEvent(t *testing.T) {
	h, repo := newTestHandler(t, nil)
	event := &service.AppointmentEvent{
		AppointmentID: "a7a3c1f4-8b7e-4b3e-9a51-1c4e0c2d9f01",
		Status:        "confirmed",
	}

	repo.EXPECT().
		AppendAppointmentEvent(mock.Anything, mock.MatchedBy(func(e *service.AppointmentEvent) bool {
			return e.AppointmentID == event.AppointmentID && e.Status == "confirmed"
		})).
		Return(nil)

	code := serve(t, h, pushBody(t, constants.EventTypeAppointment, event, map[string]string{"request_id": "req-attr"}), nil)

	assert.Equal(t, http.StatusOK, code)
}

func TestHandlePush_MalformedMessagesAreNotRetried(t *testing.T) {
	h, _ := newTestHandler(t, nil)

	tests := []struct {
		name string
		body string
	}{
		{name: "invalid json envelope", body: `{"message":`},
		{name: "invalid base64", body: `{"message":{"data":"%%%","attributes":{"event_type":"search.performed"}}}`},
		{name: "unknown event type", body: pushBody(t, "order.created", map[string]string{}, nil)},
		{name: "missing event type", body: pushBody(t, "", map[string]string{}, nil)},
		{name: "unknown search kind", body: pushBody(t, constants.EventTypeSearch, &service.SearchEvent{Kind: "fuzzy"}, nil)},
		{name: "payload is not an object", body: pushBody(t, constants.EventTypeAppointment, []int{1, 2}, nil)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, http.StatusBadRequest, serve(t, h, tt.body, nil))
		})
	}
}

func TestHandlePush_StoreErrors(t *testing.T) {
	event := &service.AppointmentEvent{AppointmentID: "not-a-uuid"}

	t.Run("validation failure is acked", func(t *testing.T) {
		h, repo := newTestHandler(t, nil)
		repo.EXPECT().
			AppendAppointmentEvent(mock.Anything, mock.Anything).
			Return(domainerrors.NewValidationError("appointment_id", "must be a UUID"))

		assert.Equal(t, http.StatusBadRequest, serve(t, h, pushBody(t, constants.EventTypeAppointment, event, nil), nil))
	})

	t.Run("store failure is retried", func(t *testing.T) {
		h, repo := newTestHandler(t, nil)
		repo.EXPECT().
			AppendAppointmentEvent(mock.Anything, mock.Anything).
			Return(errors.New("connection refused"))

		assert.Equal(t, http.StatusServiceUnavailable, serve(t, h, pushBody(t, constants.EventTypeAppointment, event, nil), nil))
	})
}

func TestHandlePush_VerifiesGoogleTokens(t *testing.T) {
	cfg := &config.Config{PubSub: &config.PubSubConfig{
		Provider:     constants.PubSubProviderGoogle,
		PushAudience: "https://worker.example.com/push",
	}}
	cfg.Env.Env = constants.EnvProduction

	h, repo := newTestHandler(t, cfg)
	require.True(t, h.verifyPushAuth)

	var gotAudience string
	h.validateToken = func(_ context.Context, token, audience string) (*idtoken.Payload, error) {
		gotAudience = audience
		switch token {
		case "good":
			return &idtoken.Payload{Issuer: "https://accounts.google.com", Claims: map[string]any{"email_verified": true}}, nil
		case "foreign":
			return &idtoken.Payload{Issuer: "https://evil.example.com"}, nil
		default:
			return nil, errors.New("bad signature")
		}
	}

	body := pushBody(t, constants.EventTypeSearch, &service.SearchEvent{Kind: service.SearchKindText}, nil)

	assert.Equal(t, http.StatusUnauthorized, serve(t, h, body, nil))
	assert.Equal(t, http.StatusUnauthorized, serve(t, h, body, http.Header{"Authorization": {"Bearer forged"}}))
	assert.Equal(t, http.StatusUnauthorized, serve(t, h, body, http.Header{"Authorization": {"Bearer foreign"}}))

	repo.EXPECT().AppendSearch(mock.Anything, mock.Anything).Return(nil).Once()
	assert.Equal(t, http.StatusOK, serve(t, h, body, http.Header{"Authorization": {"Bearer good"}}))
	assert.Equal(t, "https://worker.example.com/push", gotAudience)
}

func TestExtractRequestID(t *testing.T) {
	var msg PubSubMessage
	msg.Message.Attributes = map[string]string{"request_id": "from-attr"}
	assert.Equal(t, "from-attr", extractRequestID(context.Background(), &msg, []byte(`{"request_id":"from-payload"}`)))

	msg.Message.Attributes = nil
	assert.Equal(t, "from-payload", extractRequestID(context.Background(), &msg, []byte(`{"request_id":"from-payload"}`)))

	assert.NotEmpty(t, extractRequestID(context.Background(), &msg, []byte(`{}`)))
}
