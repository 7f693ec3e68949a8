package helpers

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims is what the client reads out of a bearer token issued by the
// API server. The signature is not verified here; the server remains the
// only authority on token validity.
type TokenClaims struct {
	UserID string `json:"uid"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

var ErrMalformedToken = errors.New("malformed bearer token")

// ReadTokenClaims decodes the claims of a bearer token without verifying
// its signature. Used on session restore to recover the subject and expiry.
func ReadTokenClaims(token string) (*TokenClaims, error) {
	claims := &TokenClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return nil, ErrMalformedToken
	}
	return claims, nil
}

// Expired reports whether the token carries an expiry in the past.
// Tokens without an expiry claim are not considered expired; the server
// decides with a 401.
func (c *TokenClaims) Expired(now time.Time) bool {
	if c.ExpiresAt == nil {
		return false
	}
	return c.ExpiresAt.Time.Before(now)
}
