package utils_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/svctracker/service_tracker_app/internal/utils"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	hash, err := utils.HashPassword("correct-horse")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "correct-horse", hash)

	assert.True(t, utils.CheckPasswordHash("correct-horse", hash))
	assert.False(t, utils.CheckPasswordHash("wrong-horse", hash))
}

func TestRandomHexString(t *testing.T) {
	first, err := utils.RandomHexString(16)
	require.NoError(t, err)
	assert.Len(t, first, 32)

	second, err := utils.RandomHexString(16)
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}

func TestRandomHexString_RejectsNonPositiveLength(t *testing.T) {
	_, err := utils.RandomHexString(0)
	assert.Error(t, err)
}
