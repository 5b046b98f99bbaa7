package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func TestIssueParseRoundTrip(t *testing.T) {
	issuer := NewIssuer([]byte("secret"), time.Hour)

	token, err := issuer.Issue("abc123", "a@x.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := issuer.Parse(token)
	require.NoError(t, err)
	require.Equal(t, "abc123", claims.UserID)
	require.Equal(t, "a@x.com", claims.Email)
	require.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, time.Minute)
}

func TestParseWrongSecret(t *testing.T) {
	token, err := NewIssuer([]byte("one"), time.Hour).Issue("abc123", "a@x.com")
	require.NoError(t, err)

	_, err = NewIssuer([]byte("two"), time.Hour).Parse(token)
	require.Error(t, err)
}

func TestParseExpired(t *testing.T) {
	issuer := NewIssuer([]byte("secret"), -time.Minute)
	token, err := issuer.Issue("abc123", "a@x.com")
	require.NoError(t, err)

	_, err = issuer.Parse(token)
	require.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestParseGarbage(t *testing.T) {
	_, err := NewIssuer([]byte("secret"), time.Hour).Parse("not.a.token")
	require.Error(t, err)
}
