// file: internals/middlewares/auth/auth_middleware.go
package auth

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	userModel "kampusku_backend/internals/features/users/user/model"
	authService "kampusku_backend/internals/features/users/auth/service"
	helper "kampusku_backend/internals/helpers"
)

// ActiveChecker reports whether an account may still act. nil means the
// check is skipped (unit tests, stateless deployments).
type ActiveChecker func(c *fiber.Ctx, userID uuid.UUID) error

// EnsureUserActive is the production ActiveChecker backed by the users table.
func EnsureUserActive(db *gorm.DB) ActiveChecker {
	return func(c *fiber.Ctx, userID uuid.UUID) error {
		var user userModel.UserModel
		err := db.WithContext(c.UserContext()).
			Select("id", "is_active").
			First(&user, "id = ?", userID).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
			}
			log.Printf("[ERROR] active check: %v", err)
			return fiber.NewError(fiber.StatusInternalServerError, "Internal Server Error")
		}
		if !user.IsActive {
			return fiber.NewError(fiber.StatusForbidden, "Account deactivated")
		}
		return nil
	}
}

// AuthMiddleware verifies the bearer access token via the issuer's public
// verify and stores the identity claims in Locals.
func AuthMiddleware(issuer *authService.TokenIssuer, isActive ActiveChecker) fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := helper.GetRawAccessToken(c)
		if raw == "" {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized - Missing access token")
		}

		claims, err := issuer.VerifyAccess(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized - Invalid or expired token")
		}

		if isActive != nil {
			if err := isActive(c, claims.UserID); err != nil {
				return helper.FromFiberError(c, err)
			}
		}

		c.Locals(helper.LocUserID, claims.UserID.String())
		c.Locals(helper.LocEmail, claims.Email)
		c.Locals(helper.LocRole, claims.Role.String())
		return c.Next()
	}
}
