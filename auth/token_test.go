package auth

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSessionTokenRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := IssueSessionToken(SessionClaims{
		UserID:  "uid-123",
		Email:   "user@example.com",
		IsAdmin: true,
	})
	require.NoError(t, err)
	require.NotEmpty(t, token)

	sc, err := ParseSessionToken(token)
	require.NoError(t, err)
	require.Equal(t, "uid-123", sc.UserID)
	require.Equal(t, "user@example.com", sc.Email)
	require.True(t, sc.IsAdmin)
	require.False(t, sc.Anonymous)
}

func TestSessionTokenAnonymousFlag(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := IssueSessionToken(SessionClaims{UserID: "anon-1", Anonymous: true})
	require.NoError(t, err)

	sc, err := ParseSessionToken(token)
	require.NoError(t, err)
	require.True(t, sc.Anonymous)
	require.False(t, sc.IsAdmin)
}

func TestParseRejectsTamperedToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := IssueSessionToken(SessionClaims{UserID: "uid-123"})
	require.NoError(t, err)

	_, err = ParseSessionToken(token + "x")
	require.Error(t, err)

	t.Setenv("JWT_SECRET", "different-secret")
	_, err = ParseSessionToken(token)
	require.Error(t, err)
}

func TestParseRejectsGarbage(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	_, err := ParseSessionToken("not-a-jwt")
	require.Error(t, err)
}
