// file: internals/features/academics/subjects/route/subject_route.go
package route

import (
	"github.com/gofiber/fiber/v2"

	subjectController "kampusku_backend/internals/features/academics/subjects/controller"
	authMw "kampusku_backend/internals/middlewares/auth"
)

func SubjectRoutes(api fiber.Router, ctl *subjectController.SubjectController, authed fiber.Handler) {
	grp := api.Group("/subjects", authed)

	grp.Get("/", ctl.List)
	grp.Post("/", authMw.RequireAdmin("subjects"), ctl.Create)
	grp.Delete("/:id", authMw.RequireAdmin("subjects"), ctl.Delete)
}
