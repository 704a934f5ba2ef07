// file: internals/helpers/token.go
package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"kampusku_backend/internals/constants"
)

// Locals keys set by the auth middleware.
const (
	LocUserID = "user_id"
	LocEmail  = "email"
	LocRole   = "role"
)

// GetRawAccessToken returns the access token from the Authorization header
// ("Bearer <token>") or, as a fallback, the "access_token" cookie.
func GetRawAccessToken(c *fiber.Ctx) string {
	const p = "Bearer "
	auth := c.Get("Authorization")
	if len(auth) > len(p) && strings.HasPrefix(auth, p) {
		return strings.TrimSpace(auth[len(p):])
	}
	return strings.TrimSpace(c.Cookies("access_token"))
}

func GetRefreshTokenFromCookie(c *fiber.Ctx) string {
	return strings.TrimSpace(c.Cookies("refresh_token"))
}

// GetUserID reads the authenticated user id set by the auth middleware.
func GetUserID(c *fiber.Ctx) (uuid.UUID, error) {
	v, ok := c.Locals(LocUserID).(string)
	if !ok || v == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
	}
	id, err := uuid.Parse(v)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
	}
	return id, nil
}

func GetRole(c *fiber.Ctx) constants.Role {
	if v, ok := c.Locals(LocRole).(string); ok {
		return constants.Role(v)
	}
	return ""
}
