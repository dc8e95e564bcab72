package middleware

import (
	"strings"

	"locator/internal/delivery/api/response"
	deliverycontext "locator/internal/delivery/context"
	"locator/internal/domain/entity"
	"locator/internal/domain/service"
	"locator/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const bearerPrefix = "Bearer "

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the bearer access token and stores the caller on the context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.Unauthorized(c, "UNAUTHORIZED", "Authorization header is missing")
		}

		tokenString, ok := strings.CutPrefix(authHeader, bearerPrefix)
		if !ok || tokenString == "" {
			return response.Unauthorized(c, "UNAUTHORIZED", "Invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return response.Unauthorized(c, "UNAUTHORIZED", "Invalid or expired token")
		}

		c.Set(string(deliverycontext.KeyUserID), claims.UserID)
		c.Set(string(deliverycontext.KeyRoles), entity.RolesFromStrings(claims.Roles))

		return next(c)
	}
}

// RequireRoles allows the request when the caller holds any of the roles.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRoles(roles ...entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			held := GetRoles(c)
			for _, role := range roles {
				if held.Has(role) {
					return next(c)
				}
			}

			return response.Forbidden(c, "FORBIDDEN", "Permission denied")
		}
	}
}

// GetUserID returns the authenticated user ID, or uuid.Nil outside Authenticate.
func GetUserID(c echo.Context) uuid.UUID {
	if id, ok := c.Get(string(deliverycontext.KeyUserID)).(uuid.UUID); ok {
		return id
	}

	return uuid.Nil
}

// GetRoles returns the authenticated caller's roles.
func GetRoles(c echo.Context) entity.Roles {
	if roles, ok := c.Get(string(deliverycontext.KeyRoles)).(entity.Roles); ok {
		return roles
	}

	return nil
}

// GetActor builds the usecase actor for the authenticated caller.
func GetActor(c echo.Context) usecase.Actor {
	return usecase.Actor{
		UserID: GetUserID(c),
		Roles:  GetRoles(c),
	}
}
