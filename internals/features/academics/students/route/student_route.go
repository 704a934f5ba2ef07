// file: internals/features/academics/students/route/student_route.go
package route

import (
	"github.com/gofiber/fiber/v2"

	"kampusku_backend/internals/constants"
	studentController "kampusku_backend/internals/features/academics/students/controller"
	authMw "kampusku_backend/internals/middlewares/auth"
)

func StudentRoutes(api fiber.Router, ctl *studentController.StudentController, authed fiber.Handler) {
	grp := api.Group("/students", authed)

	grp.Get("/", authMw.RequireRoles("students", constants.FacultyAndAbove...), ctl.List)
	grp.Post("/", authMw.RequireAdmin("students"), ctl.Provision)
}
