package helpers

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, claims TokenClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return token
}

func TestReadTokenClaims(t *testing.T) {
	now := time.Now()
	token := signedToken(t, TokenClaims{
		UserID: "u1",
		Role:   "student",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		},
	})

	claims, err := ReadTokenClaims(token)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.UserID)
	assert.Equal(t, "student", claims.Role)
	assert.False(t, claims.Expired(now))
	assert.True(t, claims.Expired(now.Add(2*time.Hour)))
}

func TestReadTokenClaimsRejectsGarbage(t *testing.T) {
	_, err := ReadTokenClaims("not-a-token")
	assert.ErrorIs(t, err, ErrMalformedToken)
}

func TestTokensWithoutExpiryNeverExpire(t *testing.T) {
	claims, err := ReadTokenClaims(signedToken(t, TokenClaims{UserID: "u1"}))
	require.NoError(t, err)
	assert.False(t, claims.Expired(time.Now().Add(24*time.Hour)))
}
