package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("artesanias2024")
	require.NoError(t, err)

	parts := strings.Split(hash, "$")
	require.Len(t, parts, 3)
	assert.Equal(t, "scrypt", parts[0])

	assert.True(t, VerifyPassword("artesanias2024", hash))
	assert.False(t, VerifyPassword("artesanias2025", hash))
}

func TestHashPassword_TooShort(t *testing.T) {
	_, err := HashPassword("corta")
	assert.ErrorIs(t, err, ErrPasswordTooShort)
}

func TestHashPassword_UniqueSalts(t *testing.T) {
	first, err := HashPassword("artesanias2024")
	require.NoError(t, err)
	second, err := HashPassword("artesanias2024")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, VerifyPassword("artesanias2024", first))
	assert.True(t, VerifyPassword("artesanias2024", second))
}

func TestVerifyPassword_MalformedHashes(t *testing.T) {
	tests := []struct {
		name string
		hash string
	}{
		{name: "empty", hash: ""},
		{name: "missing segments", hash: "scrypt$abc"},
		{name: "wrong algorithm", hash: "bcrypt$aa$bb"},
		{name: "bad hex salt", hash: "scrypt$zz$abcd"},
		{name: "bad hex digest", hash: "scrypt$abcd$zz"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.False(t, VerifyPassword("whatever1", tt.hash))
		})
	}
}

func TestNewResetToken(t *testing.T) {
	token, err := NewResetToken()
	require.NoError(t, err)
	assert.Len(t, token, 64)

	other, err := NewResetToken()
	require.NoError(t, err)
	assert.NotEqual(t, token, other)
}
