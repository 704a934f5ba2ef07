// file: internals/features/users/user/route/user_route.go
package route

import (
	"github.com/gofiber/fiber/v2"

	userController "kampusku_backend/internals/features/users/user/controller"
	authMw "kampusku_backend/internals/middlewares/auth"
)

// UserAdminRoutes: account administration, admin-gated.
func UserAdminRoutes(api fiber.Router, ctl *userController.UserController, authed fiber.Handler) {
	grp := api.Group("/users", authed, authMw.RequireAdmin("user management"))

	grp.Get("/", ctl.List)
	grp.Get("/:id", ctl.Get)
	grp.Patch("/:id/role", ctl.ChangeRole)
	grp.Patch("/:id/active", ctl.SetActive)
	grp.Delete("/:id", ctl.Delete)
}
