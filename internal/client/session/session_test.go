package session

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "admin",
		"exp": exp.Unix(),
	})
	s, err := tok.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return s
}

func TestIsValid(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	origNow := now
	now = func() time.Time { return base }
	t.Cleanup(func() { now = origNow })

	t.Run("no token", func(t *testing.T) {
		s := New()
		require.False(t, s.IsValid())
	})

	t.Run("unexpired jwt", func(t *testing.T) {
		s := New()
		s.SetToken(signedToken(t, base.Add(time.Hour)))
		require.True(t, s.IsValid())
	})

	t.Run("expired jwt", func(t *testing.T) {
		s := New()
		s.SetToken(signedToken(t, base.Add(-time.Hour)))
		require.False(t, s.IsValid())
	})

	t.Run("opaque token accepted", func(t *testing.T) {
		s := New()
		s.SetToken("not-a-jwt")
		require.True(t, s.IsValid())
	})
}

func TestInvalidate_NotifiesHandlersAndClearsToken(t *testing.T) {
	s := New()
	s.SetToken("tok")

	fired := 0
	s.OnExpire(func() { fired++ })

	s.Invalidate()
	require.Equal(t, 1, fired)
	require.Empty(t, s.Token())

	// Already logged out: no second notification.
	s.Invalidate()
	require.Equal(t, 1, fired)
}

func TestOnExpire_CancelStopsNotification(t *testing.T) {
	s := New()
	s.SetToken("tok")

	a, b := 0, 0
	cancel := s.OnExpire(func() { a++ })
	s.OnExpire(func() { b++ })
	cancel()

	s.Invalidate()
	require.Zero(t, a)
	require.Equal(t, 1, b)
}

func TestSetToken_RestoresValidity(t *testing.T) {
	s := New()
	s.SetToken("tok")
	s.Invalidate()
	require.False(t, s.IsValid())

	s.SetToken("tok2")
	require.True(t, s.IsValid())
}
