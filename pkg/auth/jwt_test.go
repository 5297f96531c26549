package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestTokenManager(t *testing.T) {
	m := NewTokenManager(Config{Secret: "secret", TTL: time.Hour, Issuer: "library"})

	token, exp, err := m.Issue("S001", RoleStudent)
	require.NoError(t, err)
	require.WithinDuration(t, time.Now().Add(time.Hour), exp, time.Minute)

	claims, err := m.Parse(token)
	require.NoError(t, err)
	require.Equal(t, Identity{Subject: "S001", Role: RoleStudent}, claims.Identity())
	require.Equal(t, "S001", claims.Subject)

	t.Run("wrong secret", func(t *testing.T) {
		other := NewTokenManager(Config{Secret: "other", TTL: time.Hour})
		_, err := other.Parse(token)
		require.ErrorIs(t, err, ErrTokenInvalid)
	})

	t.Run("expired", func(t *testing.T) {
		old := NewTokenManager(Config{Secret: "secret", TTL: time.Minute})
		old.now = func() time.Time { return time.Now().Add(-time.Hour) }
		expired, _, err := old.Issue("staff", RoleStaff)
		require.NoError(t, err)

		_, err = m.Parse(expired)
		require.ErrorIs(t, err, ErrTokenExpired)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := m.Parse("not.a.token")
		require.ErrorIs(t, err, ErrTokenInvalid)
	})
}

func TestFromContext(t *testing.T) {
	require.Equal(t, Anonymous, FromContext(context.Background()))

	ctx := SetAuthContext(context.Background(), "admin", RoleAdmin)
	require.Equal(t, Identity{Subject: "admin", Role: RoleAdmin}, FromContext(ctx))
}
