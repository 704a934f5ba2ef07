// file: internals/features/users/auth/service/password_service_test.go
package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashAndCompare(t *testing.T) {
	h := BcryptHasher{}

	hash, err := h.Hash("correct horse battery", bcrypt.MinCost)
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse battery", hash)

	assert.True(t, h.Compare(hash, "correct horse battery"))
	assert.False(t, h.Compare(hash, "wrong password"))
}

func TestCompareMalformedHashIsNonMatch(t *testing.T) {
	h := BcryptHasher{}

	assert.False(t, h.Compare("", "anything"))
	assert.False(t, h.Compare("not-a-bcrypt-hash", "anything"))
}

func TestHashClampsOutOfRangeCost(t *testing.T) {
	h := BcryptHasher{}

	hash, err := h.Hash("pw", 99)
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.DefaultCost, cost)
}
