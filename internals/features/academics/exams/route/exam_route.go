// file: internals/features/academics/exams/route/exam_route.go
package route

import (
	"github.com/gofiber/fiber/v2"

	"kampusku_backend/internals/constants"
	examController "kampusku_backend/internals/features/academics/exams/controller"
	authMw "kampusku_backend/internals/middlewares/auth"
)

func ExamRoutes(api fiber.Router, ctl *examController.ExamController, authed fiber.Handler) {
	grp := api.Group("/exams", authed)

	grp.Get("/", ctl.List)
	grp.Get("/:id/results", ctl.ListResults)

	faculty := authMw.RequireRoles("exams", constants.FacultyAndAbove...)
	grp.Post("/", faculty, ctl.Create)
	grp.Post("/:id/results", faculty, ctl.EnterResults)
}
