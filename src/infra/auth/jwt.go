// Package auth implements token issuing and verification for the API.
package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"jokehub/src/core/domain"
	"jokehub/src/core/ports"
	"jokehub/src/infra/config"
)

// JWTManager issues and verifies HMAC-signed access tokens carrying the
// user id as subject.
type JWTManager struct {
	secret []byte
	ttl    time.Duration
}

// NewJWTManager constructs a manager from auth configuration.
func NewJWTManager(cfg config.AuthConfig) *JWTManager {
	return &JWTManager{
		secret: []byte(cfg.JWTSecret),
		ttl:    cfg.TokenTTL,
	}
}

var _ ports.TokenIssuer = (*JWTManager)(nil)

// Issue mints a signed token for the given user.
func (m *JWTManager) Issue(userID domain.UserID) (string, time.Time, error) {
	if userID.IsEmpty() {
		return "", time.Time{}, domain.NewValidationError("user_id", "must not be empty")
	}

	now := time.Now().UTC()
	expiresAt := now.Add(m.ttl)
	claims := jwt.RegisteredClaims{
		Subject:   userID.String(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}
	return token, expiresAt, nil
}

// Verify parses a token and returns the user id it was issued for.
func (m *JWTManager) Verify(token string) (domain.UserID, error) {
	parsed, err := jwt.ParseWithClaims(token, &jwt.RegisteredClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
		}
		return m.secret, nil
	})
	if err != nil {
		return domain.UserID{}, fmt.Errorf("parse token: %w", err)
	}

	claims, ok := parsed.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return domain.UserID{}, fmt.Errorf("token has no subject")
	}
	return domain.NewUserID(claims.Subject)
}
