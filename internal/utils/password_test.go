package utils_test

import (
	"testing"

	"github.com/homefolio/expense_tracker_app/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := utils.HashPassword("secret")
	require.NoError(t, err)
	assert.NotEqual(t, "secret", hash)

	assert.True(t, utils.CheckPasswordHash("secret", hash))
	assert.False(t, utils.CheckPasswordHash("wrong", hash))
	assert.False(t, utils.CheckPasswordHash("secret", "not-a-hash"))
}

func TestCheckAnyPasswordHash(t *testing.T) {
	first, err := utils.HashPassword("aaditya")
	require.NoError(t, err)
	second, err := utils.HashPassword("archana")
	require.NoError(t, err)
	hashes := []string{first, second}

	assert.True(t, utils.CheckAnyPasswordHash("aaditya", hashes))
	assert.True(t, utils.CheckAnyPasswordHash("archana", hashes))
	assert.False(t, utils.CheckAnyPasswordHash("rajesh", hashes))
	assert.False(t, utils.CheckAnyPasswordHash("aaditya", nil))
}
