// file: internals/features/users/auth/service/password_service.go
package service

import (
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"

	"kampusku_backend/internals/configs"
)

/* ==========================
   Password Hasher
========================== */

// PasswordHasher is injected everywhere a credential is written or checked.
type PasswordHasher interface {
	Hash(plaintext string, cost int) (string, error)
	// Compare reports whether plaintext matches hash. A malformed hash is a
	// non-match, never an error.
	Compare(hash, plaintext string) bool
}

// Cost factors: self-service credential changes and seeded accounts pay the
// higher cost; admin bulk provisioning of dependent accounts uses the lower
// one to keep batch latency sane.
func CostInteractive() int { return configs.BcryptCost }
func CostBulk() int        { return configs.BcryptCostBulk }

type BcryptHasher struct{}

func (BcryptHasher) Hash(plaintext string, cost int) (string, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	b, err := bcrypt.GenerateFromPassword([]byte(plaintext), cost)
	if err != nil {
		return "", fiber.NewError(fiber.StatusInternalServerError, "Password hashing failed")
	}
	return string(b), nil
}

func (BcryptHasher) Compare(hash, plaintext string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
