package users

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"kampusku_backend/internals/constants"
	authService "kampusku_backend/internals/features/users/auth/service"
)

func TestNewSeedUserHashesAtInteractiveCost(t *testing.T) {
	u, err := newSeedUser(authService.BcryptHasher{}, UserSeed{
		Email:    "  Admin@Kampusku.ac.id ",
		Password: "ChangeMe-Admin-1",
		FullName: "System Administrator",
		Role:     "SUPER_ADMIN",
	})
	require.NoError(t, err)

	assert.Equal(t, "admin@kampusku.ac.id", u.Email)
	assert.Equal(t, constants.RoleSuperAdmin, u.Role)
	assert.True(t, u.IsActive)
	assert.True(t, authService.BcryptHasher{}.Compare(u.Password, "ChangeMe-Admin-1"))

	// Initial accounts are privileged: interactive cost, not the bulk one.
	cost, err := bcrypt.Cost([]byte(u.Password))
	require.NoError(t, err)
	assert.Equal(t, authService.CostInteractive(), cost)
	assert.NotEqual(t, authService.CostBulk(), cost)
}

func TestNewSeedUserRejectsInvalidRole(t *testing.T) {
	_, err := newSeedUser(authService.BcryptHasher{}, UserSeed{
		Email:    "x@kampusku.ac.id",
		Password: "pw",
		Role:     "JANITOR",
	})
	assert.Error(t, err)
}
