package app

import (
	"context"
	"testing"
	"time"

	"github.com/ayxworxfr/go_admin_client/internal/domain/vo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSession_JWTExpiry(t *testing.T) {
	ctx := context.Background()
	s := NewSession(time.Minute)

	s.SetToken(ctx, testToken(t, time.Now().Add(30*time.Second)))
	assert.True(t, s.Expired(), "expires within skew")

	token := testToken(t, time.Now().Add(time.Hour))
	s.SetToken(ctx, token)
	assert.False(t, s.Expired())

	got, err := s.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, token, got)
}

func TestSession_ExpiredTokenStillSent(t *testing.T) {
	ctx := context.Background()
	s := NewSession(0)
	token := testToken(t, time.Now().Add(-time.Hour))
	s.SetToken(ctx, token)

	got, err := s.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, token, got)
	assert.True(t, s.Expired())
}

func TestSession_ApplyOpaqueToken(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	s := NewSession(0)
	s.now = func() time.Time { return now }

	s.Apply(ctx, vo.LoginData{Token: vo.Token{AccessToken: "opaque", ExpiresIn: "7200"}})
	assert.Nil(t, s.Claims())
	assert.Equal(t, now.Add(2*time.Hour), s.ExpiresAt())
	assert.False(t, s.Expired())

	s.now = func() time.Time { return now.Add(3 * time.Hour) }
	assert.True(t, s.Expired())
}

func TestSession_Clear(t *testing.T) {
	ctx := context.Background()
	s := NewSession(0)
	s.SetToken(ctx, "opaque")
	s.Clear()

	got, err := s.Token(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.True(t, s.ExpiresAt().IsZero())
}
