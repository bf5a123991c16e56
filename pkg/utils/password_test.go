package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	salt, err := GenerateSalt()
	require.NoError(t, err)

	hash, err := HashPassword("Secret123", salt)
	require.NoError(t, err)
	assert.Len(t, hash, 64) // 32 bytes hex encoded

	// Same password and salt derive the same hash
	again, err := HashPassword("Secret123", salt)
	require.NoError(t, err)
	assert.Equal(t, hash, again)

	// A different salt derives a different hash
	otherSalt, err := GenerateSalt()
	require.NoError(t, err)
	otherHash, err := HashPassword("Secret123", otherSalt)
	require.NoError(t, err)
	assert.NotEqual(t, hash, otherHash)
}

func TestHashPassword_InvalidSalt(t *testing.T) {
	_, err := HashPassword("Secret123", "not-hex")
	assert.Error(t, err)
}

func TestCheckPasswordHash(t *testing.T) {
	salt, err := GenerateSalt()
	require.NoError(t, err)
	hash, err := HashPassword("Secret123", salt)
	require.NoError(t, err)

	assert.True(t, CheckPasswordHash("Secret123", salt, hash))
	assert.False(t, CheckPasswordHash("secret123", salt, hash))
	assert.False(t, CheckPasswordHash("", salt, hash))
	assert.False(t, CheckPasswordHash("Secret123", salt, "deadbeef"))
}

func TestGenerateSalt(t *testing.T) {
	first, err := GenerateSalt()
	require.NoError(t, err)
	second, err := GenerateSalt()
	require.NoError(t, err)

	assert.Len(t, first, 32) // 16 bytes hex encoded
	assert.NotEqual(t, first, second)
}
