package auth_test

import (
	"strings"
	"testing"

	"jobboard-backend/pkg/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := auth.HashPassword("s3cret-pass")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-pass", hash)

	assert.True(t, auth.CheckPassword(hash, "s3cret-pass"))
	assert.False(t, auth.CheckPassword(hash, "wrong"))
	assert.False(t, auth.CheckPassword("not-a-hash", "s3cret-pass"))
}

func TestValidatePasswordLength(t *testing.T) {
	assert.NoError(t, auth.ValidatePasswordLength(strings.Repeat("a", 72)))
	assert.ErrorIs(t, auth.ValidatePasswordLength(strings.Repeat("a", 73)), auth.ErrPasswordTooLong)
}
