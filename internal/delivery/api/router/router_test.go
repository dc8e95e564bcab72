package router

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"locator/config"
	apimiddleware "locator/internal/delivery/api/middleware"
	"locator/internal/delivery/api/response"
	"locator/internal/delivery/api/router/handler"
	"locator/internal/delivery/api/validator"
	"locator/internal/delivery/middleware"
	"locator/internal/domain/entity"
	"locator/internal/domain/service"
	"locator/internal/infra/auth"
	"locator/internal/infra/persistence/memory"
	"locator/internal/usecase/impl"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Monday.
var testNow = time.Date(2026, time.March, 2, 8, 0, 0, 0, time.UTC)

const testDate = "2026-03-02"

var queensPoint = entity.NewGeoPoint(-73.9352, 40.7306)

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

type recordingPublisher struct {
	appointments chan *service.AppointmentEvent
}

func (p *recordingPublisher) PublishSearchEvent(context.Context, *service.SearchEvent) error {
	return nil
}

func (p *recordingPublisher) PublishAppointmentEvent(_ context.Context, event *service.AppointmentEvent) error {
	p.appointments <- event

	return nil
}

func (p *recordingPublisher) Close() error { return nil }

type testEnv struct {
	e         *echo.Echo
	secret    string
	publisher *recordingPublisher
	owner     uuid.UUID
	shop      *entity.Provider
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{
		SecretKey: config.SecretKeyConfig{Access: "test-secret"},
		Search: &config.SearchConfig{
			MaxRadiusKm:         50,
			DefaultRadiusKm:     10,
			MaxResults:          10,
			EventPublishTimeout: time.Second,
		},
		Scheduling: &config.SchedulingConfig{SlotMinutes: 60},
	}

	tokens, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	clock := fixedClock{now: testNow}
	store := memory.NewStore(memory.WithClock(clock))
	providerRepo := memory.NewProviderRepository(store)
	appointmentRepo := memory.NewAppointmentRepository(store)

	owner := uuid.New()
	shop := &entity.Provider{
		ID:       uuid.New(),
		OwnerID:  owner,
		Name:     "Queens Brake Center",
		Address:  "12 Main St",
		Location: entity.NewGeoPoint(queensPoint.Longitude, queensPoint.Latitude+0.01),
		Rating:   4.2,
		Services: []entity.ServiceType{entity.ServiceBrakeRepair, entity.ServiceOilChange},
		WorkingHours: entity.WorkingHours{
			time.Monday: {Open: entity.NewSlot(9, 0), Close: entity.NewSlot(12, 0)},
		},
		IsActive: true,
	}
	farther := &entity.Provider{
		ID:       uuid.New(),
		OwnerID:  uuid.New(),
		Name:     "Astoria Tire",
		Address:  "99 Ditmars Blvd",
		Location: entity.NewGeoPoint(queensPoint.Longitude, queensPoint.Latitude+0.05),
		Rating:   4.8,
		Services: []entity.ServiceType{entity.ServiceTireService},
		IsActive: true,
	}
	outside := &entity.Provider{
		ID:       uuid.New(),
		OwnerID:  uuid.New(),
		Name:     "Far Away Garage",
		Location: entity.NewGeoPoint(queensPoint.Longitude, queensPoint.Latitude+0.5),
		Rating:   5,
		IsActive: true,
	}
	for _, p := range []*entity.Provider{shop, farther, outside} {
		require.NoError(t, providerRepo.UpsertProvider(context.Background(), p))
	}

	publisher := &recordingPublisher{appointments: make(chan *service.AppointmentEvent, 8)}

	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = apimiddleware.NewErrorMiddleware(logger).HandleHTTPError
	e.Use(middleware.NewRequestIDMiddleware(logger).Process)

	r := NewRouter(RouterParams{
		SearchHandler: handler.NewSearchHandler(handler.SearchHandlerParams{
			SearchUC: impl.NewSearchService(impl.SearchServiceParams{
				ProviderRepo: providerRepo,
				Clock:        clock,
				Config:       cfg,
				Logger:       logger,
			}),
			Config: cfg,
		}),
		SchedulingHandler: handler.NewSchedulingHandler(handler.SchedulingHandlerParams{
			SchedulingUC: impl.NewSchedulingService(impl.SchedulingServiceParams{
				ProviderRepo:    providerRepo,
				AppointmentRepo: appointmentRepo,
				Clock:           clock,
				Config:          cfg,
				Logger:          logger,
			}),
			Publisher: publisher,
			Clock:     clock,
			Config:    cfg,
			Logger:    logger,
		}),
		ProviderHandler: handler.NewProviderHandler(handler.ProviderHandlerParams{
			ProviderUC: impl.NewProviderService(impl.ProviderServiceParams{
				ProviderRepo: providerRepo,
				TxManager:    memory.NewTransactionManager(store),
				Clock:        clock,
				Logger:       logger,
			}),
		}),
		AuthMiddleware: apimiddleware.NewAuthMiddleware(tokens),
	})
	r.RegisterRoutes(e)

	return &testEnv{e: e, secret: cfg.SecretKey.Access, publisher: publisher, owner: owner, shop: shop}
}

func (env *testEnv) token(t *testing.T, userID uuid.UUID, roles ...entity.Role) string {
	t.Helper()

	claims := &service.Claims{
		Roles: entity.Roles(roles).Strings(),
		Type:  "access",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(env.secret))
	require.NoError(t, err)

	return token
}

func (env *testEnv) do(t *testing.T, method, target, token, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	env.e.ServeHTTP(rec, req)

	return rec
}

func decodeData[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var envelope struct {
		Data T                  `json:"data"`
		Meta *response.MetaInfo `json:"meta"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.NotNil(t, envelope.Meta)
	assert.NotEmpty(t, envelope.Meta.RequestID)

	return envelope.Data
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) *response.ErrorInfo {
	t.Helper()

	var envelope response.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.NotNil(t, envelope.Error)

	return envelope.Error
}

func (env *testEnv) book(t *testing.T, userID uuid.UUID, slot string) *httptest.ResponseRecorder {
	t.Helper()

	body := `{"provider_id":"` + env.shop.ID.String() + `","service_type":"brake_repair","date":"` + testDate + `","slot":"` + slot + `"}`

	return env.do(t, http.MethodPost, "/api/v1/appointments", env.token(t, userID, entity.RoleUser), body)
}

func TestHealth(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/health", "", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", decodeData[map[string]string](t, rec)["status"])
}

func TestNearby(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/api/v1/providers/nearby?lng=-73.9352&lat=40.7306", "", "")
	require.Equal(t, http.StatusOK, rec.Code)

	entries := decodeData[[]handler.ProviderEntry](t, rec)
	require.Len(t, entries, 2)
	assert.Equal(t, "Queens Brake Center", entries[0].Name)
	assert.Equal(t, "Astoria Tire", entries[1].Name)
	require.NotNil(t, entries[0].Distance)
	assert.Equal(t, 1.1, *entries[0].Distance)
	assert.Equal(t, []string{"brake_repair", "oil_change"}, entries[0].Services)
}

func TestNearby_RatingSortAndServiceFilter(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/api/v1/providers/nearby?lng=-73.9352&lat=40.7306&sort_by=rating", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	entries := decodeData[[]handler.ProviderEntry](t, rec)
	require.Len(t, entries, 2)
	assert.Equal(t, "Astoria Tire", entries[0].Name)

	rec = env.do(t, http.MethodGet, "/api/v1/providers/nearby?lng=-73.9352&lat=40.7306&service=tire_service", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	entries = decodeData[[]handler.ProviderEntry](t, rec)
	require.Len(t, entries, 1)
	assert.Equal(t, "Astoria Tire", entries[0].Name)
}

func TestNearby_InvalidQuery(t *testing.T) {
	env := newTestEnv(t)

	tests := []struct {
		name    string
		query   string
		details string
	}{
		{name: "missing point", query: "lng=-73.9", details: "lng,lat: are required"},
		{name: "non numeric longitude", query: "lng=abc&lat=40.7", details: "lng: must be a number"},
		{name: "latitude out of range", query: "lng=-73.9&lat=91", details: "latitude"},
		{name: "radius above maximum", query: "lng=-73.9&lat=40.7&radius_km=51", details: "radius_km"},
		{name: "unknown sort", query: "lng=-73.9&lat=40.7&sort_by=price", details: "sort_by"},
		{name: "unknown service", query: "lng=-73.9&lat=40.7&service=car_wash", details: "service"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := env.do(t, http.MethodGet, "/api/v1/providers/nearby?"+tt.query, "", "")

			require.Equal(t, http.StatusBadRequest, rec.Code)
			errInfo := decodeError(t, rec)
			assert.Equal(t, "VALIDATION_FAILED", errInfo.Code)
			assert.Contains(t, errInfo.Details, tt.details)
		})
	}
}

func TestTextSearch(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/api/v1/providers/search?q=brake", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	entries := decodeData[[]handler.ProviderEntry](t, rec)
	require.Len(t, entries, 1)
	assert.Equal(t, env.shop.ID, entries[0].ID)
	assert.Nil(t, entries[0].Distance)

	rec = env.do(t, http.MethodGet, "/api/v1/providers/search?q=brake&lng=-73.9352&lat=40.7306", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	entries = decodeData[[]handler.ProviderEntry](t, rec)
	require.Len(t, entries, 1)
	assert.NotNil(t, entries[0].Distance)

	rec = env.do(t, http.MethodGet, "/api/v1/providers/search?q=brake&lng=-73.9352", "", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = env.do(t, http.MethodGet, "/api/v1/providers/search?q=%20", "", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSlots(t *testing.T) {
	env := newTestEnv(t)
	target := "/api/v1/providers/" + env.shop.ID.String() + "/slots?date=" + testDate

	rec := env.do(t, http.MethodGet, target, "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	slots := decodeData[handler.SlotsResponse](t, rec)
	assert.Equal(t, []string{"09:00", "10:00", "11:00"}, slots.Available)
	assert.Empty(t, slots.Booked)

	require.Equal(t, http.StatusCreated, env.book(t, uuid.New(), "10:00").Code)

	rec = env.do(t, http.MethodGet, target, "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	slots = decodeData[handler.SlotsResponse](t, rec)
	assert.Equal(t, []string{"09:00", "11:00"}, slots.Available)
	assert.Equal(t, []string{"10:00"}, slots.Booked)
}

func TestSlots_InvalidInput(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/api/v1/providers/not-a-uuid/slots?date="+testDate, "", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = env.do(t, http.MethodGet, "/api/v1/providers/"+env.shop.ID.String()+"/slots?date=03/02/2026", "", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = env.do(t, http.MethodGet, "/api/v1/providers/"+uuid.NewString()+"/slots?date="+testDate, "", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "PROVIDER_NOT_FOUND", decodeError(t, rec).Code)
}

func TestCreateAppointment(t *testing.T) {
	env := newTestEnv(t)
	userID := uuid.New()

	rec := env.book(t, userID, "09:00")
	require.Equal(t, http.StatusCreated, rec.Code)

	appointment := decodeData[handler.AppointmentResponse](t, rec)
	assert.Equal(t, env.shop.ID, appointment.ProviderID)
	assert.Equal(t, userID, appointment.UserID)
	assert.Equal(t, "pending", appointment.Status)
	assert.Equal(t, "09:00", appointment.Slot)
	assert.Equal(t, testDate, appointment.Date)

	select {
	case event := <-env.publisher.appointments:
		assert.Equal(t, appointment.ID.String(), event.AppointmentID)
		assert.Equal(t, "pending", event.Status)
		assert.Equal(t, userID.String(), event.ActorID)
		assert.NotEmpty(t, event.RequestID)
		assert.Equal(t, testNow, event.OccurredAt)
	case <-time.After(time.Second):
		t.Fatal("appointment event was not published")
	}

	rec = env.book(t, uuid.New(), "09:00")
	require.Equal(t, http.StatusConflict, rec.Code)
	errInfo := decodeError(t, rec)
	assert.Equal(t, "SLOT_ALREADY_BOOKED", errInfo.Code)
	assert.Equal(t, testDate+" 09:00", errInfo.Details)
}

func TestCreateAppointment_Rejected(t *testing.T) {
	env := newTestEnv(t)
	token := env.token(t, uuid.New(), entity.RoleUser)

	tests := []struct {
		name   string
		token  string
		body   string
		status int
		code   string
	}{
		{
			name:   "missing token",
			body:   `{}`,
			status: http.StatusUnauthorized,
			code:   "UNAUTHORIZED",
		},
		{
			name:   "malformed json",
			token:  token,
			body:   `{"provider_id":`,
			status: http.StatusBadRequest,
			code:   "VALIDATION_FAILED",
		},
		{
			name:   "bad slot format",
			token:  token,
			body:   `{"provider_id":"` + env.shop.ID.String() + `","service_type":"brake_repair","date":"` + testDate + `","slot":"9am"}`,
			status: http.StatusBadRequest,
			code:   "VALIDATION_FAILED",
		},
		{
			name:   "slot outside working hours",
			token:  token,
			body:   `{"provider_id":"` + env.shop.ID.String() + `","service_type":"brake_repair","date":"` + testDate + `","slot":"12:00"}`,
			status: http.StatusBadRequest,
			code:   "VALIDATION_FAILED",
		},
		{
			name:   "past date",
			token:  token,
			body:   `{"provider_id":"` + env.shop.ID.String() + `","service_type":"brake_repair","date":"2026-03-01","slot":"09:00"}`,
			status: http.StatusBadRequest,
			code:   "VALIDATION_FAILED",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := env.do(t, http.MethodPost, "/api/v1/appointments", tt.token, tt.body)

			require.Equal(t, tt.status, rec.Code)
			assert.Equal(t, tt.code, decodeError(t, rec).Code)
		})
	}
}

func TestAppointmentLifecycle(t *testing.T) {
	env := newTestEnv(t)
	userID := uuid.New()

	rec := env.book(t, userID, "11:00")
	require.Equal(t, http.StatusCreated, rec.Code)
	created := decodeData[handler.AppointmentResponse](t, rec)
	base := "/api/v1/appointments/" + created.ID.String()

	userToken := env.token(t, userID, entity.RoleUser)
	strangerToken := env.token(t, uuid.New(), entity.RoleUser)
	ownerToken := env.token(t, env.owner, entity.RoleProvider)
	otherOperatorToken := env.token(t, uuid.New(), entity.RoleProvider)

	// Visibility.
	assert.Equal(t, http.StatusOK, env.do(t, http.MethodGet, base, userToken, "").Code)
	assert.Equal(t, http.StatusOK, env.do(t, http.MethodGet, base, ownerToken, "").Code)
	assert.Equal(t, http.StatusForbidden, env.do(t, http.MethodGet, base, strangerToken, "").Code)

	// Only provider or admin roles reach the status endpoint.
	rec = env.do(t, http.MethodPatch, base+"/status", userToken, `{"status":"confirmed"}`)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	rec = env.do(t, http.MethodPatch, base+"/status", otherOperatorToken, `{"status":"confirmed"}`)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = env.do(t, http.MethodPatch, base+"/status", ownerToken, `{"status":"completed"}`)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "INVALID_STATUS_TRANSITION", decodeError(t, rec).Code)

	rec = env.do(t, http.MethodPatch, base+"/status", ownerToken, `{"status":"confirmed"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "confirmed", decodeData[handler.AppointmentResponse](t, rec).Status)

	// Cancel is reserved for the requester.
	assert.Equal(t, http.StatusForbidden, env.do(t, http.MethodPost, base+"/cancel", strangerToken, "").Code)

	rec = env.do(t, http.MethodPost, base+"/cancel", userToken, "")
	require.Equal(t, http.StatusOK, rec.Code)
	cancelled := decodeData[handler.AppointmentResponse](t, rec)
	assert.Equal(t, "cancelled", cancelled.Status)
	assert.NotNil(t, cancelled.CancelledAt)

	rec = env.do(t, http.MethodPost, base+"/cancel", userToken, "")
	require.Equal(t, http.StatusConflict, rec.Code)
	errInfo := decodeError(t, rec)
	assert.Equal(t, "INVALID_APPOINTMENT_STATE", errInfo.Code)
	assert.Equal(t, "current status: cancelled", errInfo.Details)

	// The slot is free again.
	assert.Equal(t, http.StatusCreated, env.book(t, uuid.New(), "11:00").Code)

	rec = env.do(t, http.MethodGet, "/api/v1/appointments/"+uuid.NewString(), userToken, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAdminProviders(t *testing.T) {
	env := newTestEnv(t)
	adminToken := env.token(t, uuid.New(), entity.RoleAdmin)
	id := uuid.New()
	target := "/api/v1/admin/providers/" + id.String()
	body := `{
		"owner_id":"` + uuid.NewString() + `",
		"name":"Jamaica Transmission",
		"address":"1 Hillside Ave",
		"longitude":-73.80,
		"latitude":40.70,
		"rating":3.5,
		"services":["transmission"],
		"working_hours":{"saturday":{"open":"08:00","close":"14:00"},"sunday":{"closed":true}}
	}`

	rec := env.do(t, http.MethodPut, target, env.token(t, uuid.New(), entity.RoleUser), body)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = env.do(t, http.MethodPut, target, adminToken, body)
	require.Equal(t, http.StatusOK, rec.Code)
	saved := decodeData[handler.ProviderResponse](t, rec)
	assert.Equal(t, id, saved.ID)
	assert.True(t, saved.IsActive)
	assert.Equal(t, "08:00", saved.WorkingHours["saturday"].Open)
	assert.True(t, saved.WorkingHours["sunday"].Closed)

	rec = env.do(t, http.MethodGet, target, adminToken, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Jamaica Transmission", decodeData[handler.ProviderResponse](t, rec).Name)

	rec = env.do(t, http.MethodPut, target, adminToken, `{"owner_id":"`+uuid.NewString()+`","name":"x","longitude":-73.8}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeError(t, rec).Details, "latitude")

	rec = env.do(t, http.MethodGet, "/api/v1/admin/providers/"+uuid.NewString(), adminToken, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
