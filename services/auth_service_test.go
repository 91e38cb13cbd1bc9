package services

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func signTestToken(t *testing.T, expiresIn time.Duration) string {
	t.Helper()
	now := time.Now()
	claims := Claims{
		Username: "alice",
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(expiresIn)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("testsecret"))
	assert.NoError(t, err)
	return signed
}

func TestParseTokenRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "testsecret")

	token := signTestToken(t, time.Hour)
	claims, err := ParseToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "alice", claims.Username)
	assert.NotEmpty(t, claims.ID)
}

func TestParseTokenExpired(t *testing.T) {
	t.Setenv("JWT_SECRET", "testsecret")

	token := signTestToken(t, -time.Hour)
	_, err := ParseToken(token)
	assert.Error(t, err)
}

func TestParseTokenWrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "othersecret")

	token := signTestToken(t, time.Hour)
	_, err := ParseToken(token)
	assert.Error(t, err)
}

func TestIsRevokedWithoutRedis(t *testing.T) {
	// No redis configured: nothing is ever considered revoked.
	assert.False(t, IsRevoked(context.Background(), "some-jti"))
}
