// file: internals/features/academics/faculty/route/faculty_route.go
package route

import (
	"github.com/gofiber/fiber/v2"

	facultyController "kampusku_backend/internals/features/academics/faculty/controller"
	authMw "kampusku_backend/internals/middlewares/auth"
)

func FacultyRoutes(api fiber.Router, ctl *facultyController.FacultyController, authed fiber.Handler) {
	grp := api.Group("/faculty", authed, authMw.RequireAdmin("faculty"))

	grp.Get("/", ctl.List)
	grp.Post("/", ctl.Provision)
}
