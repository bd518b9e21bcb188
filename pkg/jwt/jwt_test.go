package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParseToken(t *testing.T) {
	mgr := NewManager("test-signing-key", "resto-go-pos", time.Hour)

	token, err := mgr.GenerateToken(42, 7, 1)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := mgr.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, 42, claims.UID)
	assert.Equal(t, 7, claims.RID)
	assert.Equal(t, 1, claims.TYPE)
	assert.Equal(t, "resto-go-pos", claims.Issuer)
}

func TestParseTokenExpired(t *testing.T) {
	mgr := NewManager("test-signing-key", "resto-go-pos", time.Hour)

	token, err := mgr.GenerateToken(1, 0, 1, -time.Minute)
	require.NoError(t, err)

	_, err = mgr.ParseToken(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestParseTokenWrongKey(t *testing.T) {
	mgr := NewManager("key-a", "resto-go-pos", time.Hour)
	other := NewManager("key-b", "resto-go-pos", time.Hour)

	token, err := mgr.GenerateToken(1, 0, 1)
	require.NoError(t, err)

	_, err = other.ParseToken(token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestParseTokenMalformed(t *testing.T) {
	mgr := NewManager("test-signing-key", "resto-go-pos", time.Hour)
	_, err := mgr.ParseToken("not-a-token")
	assert.ErrorIs(t, err, ErrTokenMalformed)
}

func TestRemainingTTL(t *testing.T) {
	mgr := NewManager("test-signing-key", "resto-go-pos", time.Hour)

	token, err := mgr.GenerateToken(1, 0, 1)
	require.NoError(t, err)

	ttl := mgr.RemainingTTL(token)
	assert.Greater(t, ttl, 50*time.Minute)
	assert.LessOrEqual(t, ttl, time.Hour)

	assert.Zero(t, mgr.RemainingTTL("garbage"))
}
