package adapters

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestPasswordService(t *testing.T) {
	svc := NewPasswordService(bcrypt.MinCost)

	hash, err := svc.HashPassword("s3cret-pass")
	require.NoError(t, err)
	assert.NoError(t, svc.VerifyPassword(hash, "s3cret-pass"))
	assert.Error(t, svc.VerifyPassword(hash, "wrong-pass"))

	assert.Error(t, svc.ValidatePasswordStrength("short"))
	assert.NoError(t, svc.ValidatePasswordStrength("long enough"))
}

func TestTokenService(t *testing.T) {
	svc := NewTokenService("test-secret", time.Hour)
	userID := uuid.New()

	token, err := svc.GenerateAccessToken(userID, "owner@example.com")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), token.ExpiresAt, 5*time.Second)

	claims, err := svc.ValidateAccessToken(token.Token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "owner@example.com", claims.Email)

	t.Run("rejects a token signed with another secret", func(t *testing.T) {
		other := NewTokenService("other-secret", time.Hour)
		_, err := other.ValidateAccessToken(token.Token)
		assert.Error(t, err)
	})

	t.Run("rejects an expired token", func(t *testing.T) {
		expired := &tokenService{
			secret:   []byte("test-secret"),
			duration: time.Minute,
			now:      func() time.Time { return time.Now().Add(-time.Hour) },
		}
		old, err := expired.GenerateAccessToken(userID, "owner@example.com")
		require.NoError(t, err)

		_, err = svc.ValidateAccessToken(old.Token)
		assert.ErrorIs(t, err, jwt.ErrTokenExpired)
	})

	t.Run("rejects garbage", func(t *testing.T) {
		_, err := svc.ValidateAccessToken("not-a-jwt")
		assert.Error(t, err)
	})
}
