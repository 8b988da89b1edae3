//go:build unit

package password_test

import (
	"testing"

	"hotel-admin/internal/pkg/password"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCompare(t *testing.T) {
	hash, err := password.HashPassword("password123")
	require.NoError(t, err)
	assert.NotEqual(t, "password123", hash)

	assert.NoError(t, password.ComparePassword(hash, "password123"))
	assert.ErrorIs(t, password.ComparePassword(hash, "wrongpassword"), password.ErrComparisonFailed)
}

func TestHashPassword_Empty(t *testing.T) {
	_, err := password.HashPassword("")
	assert.ErrorIs(t, err, password.ErrInvalidPassword)
}

func TestComparePassword_Empty(t *testing.T) {
	assert.ErrorIs(t, password.ComparePassword("", "x"), password.ErrInvalidPassword)
	assert.ErrorIs(t, password.ComparePassword("x", ""), password.ErrInvalidPassword)
}

func TestHashPassword_Salted(t *testing.T) {
	first, err := password.HashPassword("same-input")
	require.NoError(t, err)
	second, err := password.HashPassword("same-input")
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}

func TestBcryptHasher(t *testing.T) {
	h := password.NewBcryptHasherWithCost(4)

	hash, err := h.Hash("s3cret-pass")
	require.NoError(t, err)
	assert.NoError(t, h.Compare(hash, "s3cret-pass"))
	assert.ErrorIs(t, h.Compare(hash, "other"), password.ErrComparisonFailed)
}
