// file: internals/features/notices/route/notice_route.go
package route

import (
	"github.com/gofiber/fiber/v2"

	noticeController "kampusku_backend/internals/features/notices/controller"
	authMw "kampusku_backend/internals/middlewares/auth"
)

func NoticeRoutes(api fiber.Router, ctl *noticeController.NoticeController, authed fiber.Handler) {
	grp := api.Group("/notices", authed)

	grp.Get("/", ctl.List)

	admin := authMw.RequireAdmin("notices")
	grp.Post("/", admin, ctl.Create)
	grp.Patch("/:id", admin, ctl.Update)
	grp.Delete("/:id", admin, ctl.Delete)
}
