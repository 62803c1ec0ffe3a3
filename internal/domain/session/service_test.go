package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

func TestService_IssueAndVerify(t *testing.T) {
	svc := NewService("test-signing-secret", slog.Default())

	token, err := svc.Issue("admin")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	identity, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "admin", identity)
}

func TestService_Verify_WrongSecret(t *testing.T) {
	issuer := NewService("correct-secret", slog.Default())
	verifier := NewService("wrong-secret", slog.Default())

	token, err := issuer.Issue("admin")
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestService_Verify_Garbage(t *testing.T) {
	svc := NewService("test-signing-secret", slog.Default())

	_, err := svc.Verify("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = svc.Verify("")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestService_Verify_Expired(t *testing.T) {
	svc := NewService("test-signing-secret", slog.Default())

	issuedAt := time.Now().Add(-TTL - time.Minute)
	svc.now = func() time.Time { return issuedAt }
	token, err := svc.Issue("admin")
	require.NoError(t, err)

	// Back to real time: the token is past its 8 hour window.
	svc.now = time.Now
	_, err = svc.Verify(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestService_TokenTTL(t *testing.T) {
	svc := NewService("test-signing-secret", slog.Default())

	fixed := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }
	token, err := svc.Issue("admin")
	require.NoError(t, err)

	// Still valid just before expiry, rejected just after.
	svc.now = func() time.Time { return fixed.Add(TTL - time.Second) }
	_, err = svc.Verify(token)
	assert.NoError(t, err)

	svc.now = func() time.Time { return fixed.Add(TTL + time.Second) }
	_, err = svc.Verify(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}
