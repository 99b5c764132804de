package jwt

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHMACService_AccessRoundTrip(t *testing.T) {
	svc := NewHMACService("access-secret", "refresh-secret", time.Minute, time.Hour)
	id := uuid.New()

	tok, err := svc.GenerateAccessToken(id, "a@b.c", "employer")
	require.NoError(t, err)

	claims, err := svc.ValidateToken(tok)
	require.NoError(t, err)
	assert.Equal(t, id, claims.UserID)
	assert.Equal(t, "employer", claims.Role)
	assert.Equal(t, TokenTypeAccess, claims.TokenType)
	assert.False(t, svc.IsRefreshToken(claims))
}

func TestHMACService_Refresh(t *testing.T) {
	svc := NewHMACService("access-secret", "refresh-secret", time.Minute, time.Hour)
	tok, err := svc.GenerateRefreshToken(uuid.New())
	require.NoError(t, err)

	claims, err := svc.ValidateToken(tok)
	require.NoError(t, err)
	assert.True(t, svc.IsRefreshToken(claims))
	assert.Empty(t, claims.Role)
}

func TestHMACService_Expired(t *testing.T) {
	svc := NewHMACService("access-secret", "refresh-secret", time.Minute, time.Hour)
	svc.now = func() time.Time { return time.Now().Add(-2 * time.Minute) }

	tok, err := svc.GenerateAccessToken(uuid.New(), "", "worker")
	require.NoError(t, err)

	svc.now = time.Now
	_, err = svc.ValidateToken(tok)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestHMACService_WrongSecret(t *testing.T) {
	a := NewHMACService("one", "two", time.Minute, time.Hour)
	b := NewHMACService("three", "four", time.Minute, time.Hour)

	tok, err := a.GenerateAccessToken(uuid.New(), "", "admin")
	require.NoError(t, err)

	_, err = b.ValidateToken(tok)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestHMACService_MissingSecret(t *testing.T) {
	svc := NewHMACService("", "refresh", time.Minute, time.Hour)
	_, err := svc.GenerateAccessToken(uuid.New(), "", "admin")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}
