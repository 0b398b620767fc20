package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestIssueAndVerify(t *testing.T) {
	tm := NewTokenManager("test-secret", 24*time.Hour)

	token, err := tm.Issue(42)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := tm.Verify(token)
	require.NoError(t, err)
	require.Equal(t, uint64(42), userID)
}

func TestVerifyExpired(t *testing.T) {
	// Negative expiry produces a token that is already past its exp claim.
	tm := NewTokenManager("test-secret", -time.Minute)

	token, err := tm.Issue(7)
	require.NoError(t, err)

	_, err = tm.Verify(token)
	require.ErrorIs(t, err, ErrTokenExpired)
}

func TestVerifyWrongSecret(t *testing.T) {
	issuer := NewTokenManager("secret-a", time.Hour)
	verifier := NewTokenManager("secret-b", time.Hour)

	token, err := issuer.Issue(7)
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	require.ErrorIs(t, err, ErrTokenSignatureInvalid)
}

func TestVerifyMalformed(t *testing.T) {
	tm := NewTokenManager("test-secret", time.Hour)

	for _, tok := range []string{"", "garbage", "a.b.c"} {
		_, err := tm.Verify(tok)
		require.ErrorIs(t, err, ErrTokenMalformed, "token %q", tok)
	}
}
