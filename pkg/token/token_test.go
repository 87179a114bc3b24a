package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateToken(t *testing.T) {
	maker := NewMaker("test-secret", time.Hour)

	tok, err := maker.GenerateToken(42)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	claims, err := maker.ValidateToken(tok)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.NotEmpty(t, claims.TokenID)
}

func TestTokenIDsAreUnique(t *testing.T) {
	maker := NewMaker("test-secret", time.Hour)

	first, err := maker.GenerateToken(1)
	require.NoError(t, err)
	second, err := maker.GenerateToken(1)
	require.NoError(t, err)

	a, err := maker.ValidateToken(first)
	require.NoError(t, err)
	b, err := maker.ValidateToken(second)
	require.NoError(t, err)
	assert.NotEqual(t, a.TokenID, b.TokenID)
}

func TestExpiredTokenIsRejected(t *testing.T) {
	maker := NewMaker("test-secret", -time.Minute)

	tok, err := maker.GenerateToken(42)
	require.NoError(t, err)

	_, err = maker.ValidateToken(tok)
	assert.Error(t, err)
}

func TestTokenFromDifferentSecretIsRejected(t *testing.T) {
	maker := NewMaker("test-secret", time.Hour)
	other := NewMaker("another-secret", time.Hour)

	tok, err := other.GenerateToken(42)
	require.NoError(t, err)

	_, err = maker.ValidateToken(tok)
	assert.Error(t, err)
}
