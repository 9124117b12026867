package auth_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hgmendoza/recaudo/internal/auth"
)

func TestTokens_RoundTrip(t *testing.T) {
	tokens := auth.NewTokens("test-secret", 12*time.Hour)

	raw, err := tokens.Sign(auth.Session{
		UserID:   42,
		Username: "carlos",
		Role:     auth.RoleAgent,
	}, time.Now())
	require.NoError(t, err)

	sess, err := tokens.Verify(raw)
	require.NoError(t, err)
	assert.Equal(t, int64(42), sess.UserID)
	assert.Equal(t, "carlos", sess.Username)
	assert.Equal(t, auth.RoleAgent, sess.Role)
}

func TestTokens_RejectsTampering(t *testing.T) {
	tokens := auth.NewTokens("test-secret", time.Hour)

	raw, err := tokens.Sign(auth.Session{UserID: 1, Username: "a", Role: auth.RoleAdmin}, time.Now())
	require.NoError(t, err)

	// Signed with a different key.
	other := auth.NewTokens("other-secret", time.Hour)
	_, err = other.Verify(raw)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)

	_, err = tokens.Verify(raw + "x")
	assert.ErrorIs(t, err, auth.ErrInvalidToken)

	_, err = tokens.Verify("not-a-token")
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestTokens_RejectsExpired(t *testing.T) {
	tokens := auth.NewTokens("test-secret", time.Minute)

	raw, err := tokens.Sign(auth.Session{UserID: 1, Username: "a", Role: auth.RoleAgent},
		time.Now().Add(-2*time.Minute))
	require.NoError(t, err)

	_, err = tokens.Verify(raw)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}
