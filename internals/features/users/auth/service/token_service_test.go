// file: internals/features/users/auth/service/token_service_test.go
package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kampusku_backend/internals/configs"
)

func TestIssueAccessToken(t *testing.T) {
	configs.JWTSecret = "test-secret"
	t.Cleanup(func() { configs.JWTSecret = "" })

	userID := uuid.New()
	signed, exp, err := IssueAccessToken(userID, "budi", "student")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(AccessTokenTTL), exp, 5*time.Second)

	parsed, err := jwt.Parse(signed, func(tok *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	require.True(t, parsed.Valid)

	claims, ok := parsed.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, userID.String(), claims["sub"])
	assert.Equal(t, "budi", claims["user_name"])
	assert.Equal(t, "student", claims["role"])
}

func TestIssueAccessTokenWithoutSecret(t *testing.T) {
	configs.JWTSecret = ""

	_, _, err := IssueAccessToken(uuid.New(), "budi", "student")
	assert.Error(t, err)
}

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("rahasia-123")
	require.NoError(t, err)
	assert.NotEqual(t, "rahasia-123", hash)

	assert.True(t, CheckPassword(hash, "rahasia-123"))
	assert.False(t, CheckPassword(hash, "salah"))
}
