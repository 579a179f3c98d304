package lib

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	tm := NewTokenManager("test-secret", time.Hour)

	token, err := tm.Generate("507f1f77bcf86cd799439011")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := tm.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "507f1f77bcf86cd799439011", userID)
}

func TestTokenParse_Garbage(t *testing.T) {
	tm := NewTokenManager("test-secret", time.Hour)

	_, err := tm.Parse("not-a-jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenParse_Tampered(t *testing.T) {
	tm := NewTokenManager("test-secret", time.Hour)

	token, err := tm.Generate("507f1f77bcf86cd799439011")
	require.NoError(t, err)

	_, err = tm.Parse(token + "x")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenParse_WrongSecret(t *testing.T) {
	token, err := NewTokenManager("secret-a", time.Hour).Generate("507f1f77bcf86cd799439011")
	require.NoError(t, err)

	_, err = NewTokenManager("secret-b", time.Hour).Parse(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenParse_Expired(t *testing.T) {
	tm := NewTokenManager("test-secret", -time.Minute)

	token, err := tm.Generate("507f1f77bcf86cd799439011")
	require.NoError(t, err)

	_, err = tm.Parse(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenParse_EmptyUserID(t *testing.T) {
	tm := NewTokenManager("test-secret", time.Hour)

	token, err := tm.Generate("")
	require.NoError(t, err)

	_, err = tm.Parse(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
