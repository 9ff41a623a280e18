package helpers

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	hash, err := HashPassword("pw123")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	require.NotEqual(t, "pw123", hash)

	require.True(t, CompareHashAndPassword(hash, "pw123"))
	require.False(t, CompareHashAndPassword(hash, "wrong"))
}

func TestHashPassword_Salted(t *testing.T) {
	h1, err := HashPassword("pw123")
	require.NoError(t, err)
	h2, err := HashPassword("pw123")
	require.NoError(t, err)
	require.NotEqual(t, h1, h2)
}
