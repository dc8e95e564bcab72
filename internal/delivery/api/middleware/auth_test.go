package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"locator/internal/delivery/api/response"
	deliverycontext "locator/internal/delivery/context"
	"locator/internal/domain/entity"
	"locator/internal/domain/service"
	"locator/internal/errors"
	mockService "locator/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthContext(authHeader string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/appointments", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func decodeErrorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var body response.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotNil(t, body.Error)

	return body.Error.Code
}

func TestAuthMiddleware_Authenticate_StoresCaller(t *testing.T) {
	tokenSvc := mockService.NewMockTokenService(t)
	m := NewAuthMiddleware(tokenSvc)

	userID := uuid.New()
	tokenSvc.EXPECT().
		ValidateToken("good-token").
		Return(&service.Claims{UserID: userID, Roles: []string{"provider", "unknown"}}, nil)

	c, rec := newAuthContext("Bearer good-token")
	var actorSeen bool
	err := m.Authenticate(func(c echo.Context) error {
		actor := GetActor(c)
		assert.Equal(t, userID, actor.UserID)
		assert.Equal(t, entity.Roles{entity.RoleProvider}, actor.Roles)
		actorSeen = true

		return c.NoContent(http.StatusNoContent)
	})(c)

	require.NoError(t, err)
	assert.True(t, actorSeen)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestAuthMiddleware_Authenticate_Rejects(t *testing.T) {
	tests := []struct {
		name     string
		header   string
		validate bool
	}{
		{name: "missing header", header: ""},
		{name: "not bearer", header: "Basic abc"},
		{name: "empty bearer", header: "Bearer "},
		{name: "invalid token", header: "Bearer expired-token", validate: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokenSvc := mockService.NewMockTokenService(t)
			if tt.validate {
				tokenSvc.EXPECT().
					ValidateToken("expired-token").
					Return(nil, errors.New("token is expired"))
			}
			m := NewAuthMiddleware(tokenSvc)

			c, rec := newAuthContext(tt.header)
			err := m.Authenticate(func(echo.Context) error {
				t.Fatal("next handler must not run")

				return nil
			})(c)

			require.NoError(t, err)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Equal(t, "UNAUTHORIZED", decodeErrorCode(t, rec))
		})
	}
}

func TestAuthMiddleware_RequireRoles(t *testing.T) {
	tests := []struct {
		name   string
		held   entity.Roles
		status int
	}{
		{name: "admin allowed", held: entity.Roles{entity.RoleAdmin}, status: http.StatusNoContent},
		{name: "provider allowed", held: entity.Roles{entity.RoleUser, entity.RoleProvider}, status: http.StatusNoContent},
		{name: "user forbidden", held: entity.Roles{entity.RoleUser}, status: http.StatusForbidden},
		{name: "no roles forbidden", held: nil, status: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewAuthMiddleware(mockService.NewMockTokenService(t))

			c, rec := newAuthContext("")
			if tt.held != nil {
				c.Set(string(deliverycontext.KeyRoles), tt.held)
			}

			err := m.RequireRoles(entity.RoleProvider, entity.RoleAdmin)(func(c echo.Context) error {
				return c.NoContent(http.StatusNoContent)
			})(c)

			require.NoError(t, err)
			assert.Equal(t, tt.status, rec.Code)
			if tt.status == http.StatusForbidden {
				assert.Equal(t, "FORBIDDEN", decodeErrorCode(t, rec))
			}
		})
	}
}
