package users

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	"gorm.io/gorm"

	"kampusku_backend/internals/constants"
	authService "kampusku_backend/internals/features/users/auth/service"
	userModel "kampusku_backend/internals/features/users/user/model"
)

type UserSeed struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
	Role     string `json:"role"`
}

// newSeedUser builds the account row for one seed entry. Seed accounts are
// privileged initial credentials, so they hash at the interactive cost, not
// the bulk-provisioning one.
func newSeedUser(hasher authService.PasswordHasher, data UserSeed) (userModel.UserModel, error) {
	role := constants.Role(data.Role)
	if !constants.IsValidRole(role) {
		return userModel.UserModel{}, fmt.Errorf("invalid role %q", data.Role)
	}

	hash, err := hasher.Hash(data.Password, authService.CostInteractive())
	if err != nil {
		return userModel.UserModel{}, err
	}

	return userModel.UserModel{
		Email:    strings.ToLower(strings.TrimSpace(data.Email)),
		Password: hash,
		FullName: strings.TrimSpace(data.FullName),
		Role:     role,
		IsActive: true,
	}, nil
}

// SeedUsersFromJSON inserts bootstrap accounts (the initial admin, demo
// users). Existing emails are skipped, so re-running is safe.
func SeedUsersFromJSON(db *gorm.DB, hasher authService.PasswordHasher, filePath string) {
	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Fatalf("[SEED ERROR] read %s: %v", filePath, err)
	}

	var inputs []UserSeed
	if err := json.Unmarshal(file, &inputs); err != nil {
		log.Fatalf("[SEED ERROR] decode %s: %v", filePath, err)
	}

	for _, data := range inputs {
		u, err := newSeedUser(hasher, data)
		if err != nil {
			log.Printf("[SEED ERROR] user %s: %v, skipped", data.Email, err)
			continue
		}

		var existing userModel.UserModel
		if err := db.Where("LOWER(email) = ?", u.Email).First(&existing).Error; err == nil {
			log.Printf("[SEED] user %s already exists, skipped", u.Email)
			continue
		}

		if err := db.Create(&u).Error; err != nil {
			log.Printf("[SEED ERROR] insert user %s: %v", u.Email, err)
		} else {
			log.Printf("[SEED] inserted user %s (%s)", u.Email, u.Role)
		}
	}
}
