package services

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTService_RoundTrip(t *testing.T) {
	svc := &JWTService{secretKey: "round-trip", ttl: time.Hour}
	userID := uuid.NewString()

	token, err := svc.GenerateUserJWT(userID, "staff@example.com", true)
	require.NoError(t, err)

	claims, err := svc.VerifyUserJWT(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "staff@example.com", claims.Email)
	assert.True(t, claims.IsStaff)
	assert.Equal(t, "storefront-api", claims.Issuer)
}

func TestJWTService_Rejects(t *testing.T) {
	svc := &JWTService{secretKey: "one", ttl: time.Hour}
	token, err := svc.GenerateUserJWT(uuid.NewString(), "jane@example.com", false)
	require.NoError(t, err)

	t.Run("wrong secret", func(t *testing.T) {
		other := &JWTService{secretKey: "two", ttl: time.Hour}
		_, err := other.VerifyUserJWT(token)
		assert.Error(t, err)
	})

	t.Run("expired", func(t *testing.T) {
		expired := &JWTService{secretKey: "one", ttl: -time.Minute}
		stale, err := expired.GenerateUserJWT(uuid.NewString(), "jane@example.com", false)
		require.NoError(t, err)
		_, err = svc.VerifyUserJWT(stale)
		assert.Error(t, err)
	})

	t.Run("empty claims", func(t *testing.T) {
		_, err := svc.GenerateUserJWT("", "", false)
		assert.Error(t, err)
	})
}

func TestExtractTokenFromHeader(t *testing.T) {
	token, err := ExtractTokenFromHeader("Bearer abc.def")
	require.NoError(t, err)
	assert.Equal(t, "abc.def", token)

	for _, header := range []string{"", "Bearer", "Bearer   ", "Basic abc"} {
		_, err := ExtractTokenFromHeader(header)
		assert.Error(t, err, header)
	}
}

func TestPasswordService(t *testing.T) {
	svc := NewPasswordService(4)

	hash, err := svc.HashPassword("s3cret-pass")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-pass", hash)
	assert.True(t, svc.VerifyPassword(hash, "s3cret-pass"))
	assert.False(t, svc.VerifyPassword(hash, "wrong"))
}
