// file: internals/middlewares/auth/role_middleware.go
package auth

import (
	"github.com/gofiber/fiber/v2"

	"kampusku_backend/internals/constants"
	helper "kampusku_backend/internals/helpers"
)

// RequireRoles gates a route group to the given roles. Must run after
// AuthMiddleware.
func RequireRoles(feature string, roles ...constants.Role) fiber.Handler {
	allowed := make(map[constants.Role]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}

	return func(c *fiber.Ctx) error {
		role := helper.GetRole(c)
		if _, ok := allowed[role]; !ok {
			return helper.JsonError(c, fiber.StatusForbidden, constants.RoleErrorFaculty(feature))
		}
		return c.Next()
	}
}

// RequireAdmin is the common admin-only gate.
func RequireAdmin(feature string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := helper.GetRole(c)
		for _, r := range constants.AdminAndAbove {
			if role == r {
				return c.Next()
			}
		}
		return helper.JsonError(c, fiber.StatusForbidden, constants.RoleErrorAdmin(feature))
	}
}
