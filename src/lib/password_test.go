package lib

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword_SaltsFreshly(t *testing.T) {
	first, err := HashPassword("admin123")
	require.NoError(t, err)

	second, err := HashPassword("admin123")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestCheckPassword(t *testing.T) {
	digest, err := HashPassword("admin123")
	require.NoError(t, err)

	assert.True(t, CheckPassword("admin123", digest))
	assert.False(t, CheckPassword("admin124", digest))
	assert.False(t, CheckPassword("", digest))
	assert.False(t, CheckPassword("admin123", "not-a-digest"))
}
