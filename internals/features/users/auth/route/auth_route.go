// file: internals/features/users/auth/route/auth_route.go
package route

import (
	"github.com/gofiber/fiber/v2"

	authController "kampusku_backend/internals/features/users/auth/controller"
	"kampusku_backend/internals/middlewares"
)

// AuthRoutes mounts the auth surface under /api/auth. authed is the
// middleware chain for routes that require a valid access token.
func AuthRoutes(api fiber.Router, ctl *authController.AuthController, authed fiber.Handler) {
	grp := api.Group("/auth")

	grp.Post("/register", middlewares.RegisterRateLimiter(), ctl.Register)
	grp.Post("/login", middlewares.LoginRateLimiter(), ctl.Login)
	grp.Post("/login-google", middlewares.LoginRateLimiter(), ctl.LoginGoogle)
	grp.Post("/refresh-token", ctl.RefreshToken)
	grp.Post("/logout", ctl.Logout)
	grp.Post("/forgot-password", middlewares.ForgotPasswordRateLimiter(), ctl.ForgotPassword)
	grp.Post("/reset-password", ctl.ResetPassword)

	grp.Post("/logout-all", authed, ctl.LogoutAll)
	grp.Post("/change-password", authed, ctl.ChangePassword)
	grp.Get("/me", authed, ctl.Me)
}
