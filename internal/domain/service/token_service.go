package service

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the custom claims for the JWT access tokens. The user ID
// travels in the standard "sub" claim and is parsed into UserID on validation.
type Claims struct {
	UserID uuid.UUID `json:"-"`
	Roles  []string  `json:"roles"`
	Type   string    `json:"type"`
	jwt.RegisteredClaims
}

// TokenService validates access tokens issued by the identity service.
type TokenService interface {
	// ValidateToken checks the validity of an access token string.
	ValidateToken(tokenString string) (*Claims, error)
}
