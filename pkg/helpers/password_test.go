package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndComparePassword(t *testing.T) {
	hash, err := HashPassword("testpass123")
	require.NoError(t, err)
	assert.NotEqual(t, "testpass123", hash)

	assert.True(t, CompareHashAndPassword(hash, "testpass123"))
	assert.False(t, CompareHashAndPassword(hash, "wrongpass"))
}
