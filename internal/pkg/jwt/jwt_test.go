package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidate(t *testing.T) {
	svc := New("test-secret-123", time.Hour)

	token, err := svc.GenerateToken(42, "alice", "user")
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, "user", claims.Level)
}

func TestValidate_ExpiredToken(t *testing.T) {
	svc := New("test-secret-123", -1*time.Minute)

	token, err := svc.GenerateToken(42, "alice", "user")
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidate_WrongSecret(t *testing.T) {
	issuer := New("secret-a", time.Hour)
	verifier := New("secret-b", time.Hour)

	token, err := issuer.GenerateToken(42, "alice", "user")
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidate_Garbage(t *testing.T) {
	svc := New("test-secret-123", time.Hour)

	for _, bad := range []string{"", "not-a-jwt", "a.b.c"} {
		_, err := svc.ValidateToken(bad)
		assert.ErrorIs(t, err, ErrInvalidToken, "input %q", bad)
	}
}
