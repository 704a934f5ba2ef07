// file: internals/features/academics/attendance/route/attendance_route.go
package route

import (
	"github.com/gofiber/fiber/v2"

	"kampusku_backend/internals/constants"
	attendanceController "kampusku_backend/internals/features/academics/attendance/controller"
	authMw "kampusku_backend/internals/middlewares/auth"
)

func AttendanceRoutes(api fiber.Router, ctl *attendanceController.AttendanceController, authed fiber.Handler) {
	grp := api.Group("/attendance", authed)

	grp.Get("/", ctl.List)
	grp.Post("/mark", authMw.RequireRoles("attendance", constants.FacultyAndAbove...), ctl.Mark)
}
