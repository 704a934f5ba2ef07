// file: internals/features/finance/fees/route/fee_route.go
package route

import (
	"github.com/gofiber/fiber/v2"

	feeController "kampusku_backend/internals/features/finance/fees/controller"
	authMw "kampusku_backend/internals/middlewares/auth"
)

func FeeRoutes(api fiber.Router, ctl *feeController.FeeController, authed fiber.Handler) {
	grp := api.Group("/fees")

	// Gateway callback carries no user token.
	grp.Post("/webhook", ctl.HandleGatewayNotification)

	grp.Get("/", authed, ctl.List)
	grp.Post("/:id/pay", authed, ctl.Pay)
	grp.Post("/", authed, authMw.RequireAdmin("fees"), ctl.CreateInvoice)
}
