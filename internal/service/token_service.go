package service

import (
	"fmt"

	"tipbot/internal/core/ports"
	"tipbot/pkg/apperror"

	"github.com/golang-jwt/jwt/v5"
)

// JWTTokenService implements ports.TokenService. Tokens are issued by
// the identity provider; this service only validates them for the
// callable entry points.
type JWTTokenService struct {
	secret []byte
	issuer string
}

// NewJWTTokenService creates a new JWTTokenService.
func NewJWTTokenService(secret, issuer string) *JWTTokenService {
	return &JWTTokenService{secret: []byte(secret), issuer: issuer}
}

type tokenClaims struct {
	Username string `json:"username,omitempty"`
	jwt.RegisteredClaims
}

// Validate parses and verifies a bearer token and returns its claims.
func (s *JWTTokenService) Validate(tokenString string) (*ports.TokenClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &tokenClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithIssuer(s.issuer), jwt.WithExpirationRequired())
	if err != nil {
		return nil, apperror.Unauthenticated()
	}

	claims, ok := token.Claims.(*tokenClaims)
	if !ok || claims.Subject == "" {
		return nil, apperror.Unauthenticated()
	}

	return &ports.TokenClaims{
		UserID:   claims.Subject,
		Username: claims.Username,
	}, nil
}
