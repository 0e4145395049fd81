package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("s3cret-pass")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-pass", hash)

	assert.True(t, CheckPassword(hash, "s3cret-pass"))
	assert.False(t, CheckPassword(hash, "wrong-pass"))
}

func TestGenerateTemporaryPassword(t *testing.T) {
	password, err := GenerateTemporaryPassword(12)
	require.NoError(t, err)
	assert.Len(t, password, 12)

	for _, c := range password {
		assert.True(t, strings.ContainsRune(tempPasswordChars, c),
			"unexpected character %q", c)
	}
}

func TestGenerateTemporaryPasswordDefaultsLength(t *testing.T) {
	password, err := GenerateTemporaryPassword(0)
	require.NoError(t, err)
	assert.Len(t, password, 12)
}

func TestGenerateTemporaryPasswordUnique(t *testing.T) {
	first, err := GenerateTemporaryPassword(12)
	require.NoError(t, err)
	second, err := GenerateTemporaryPassword(12)
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}
