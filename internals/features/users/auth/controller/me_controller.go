// file: internals/features/users/auth/controller/me_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"

	authDTO "kampusku_backend/internals/features/users/auth/dto"
	helper "kampusku_backend/internals/helpers"
)

// GET /api/auth/me  (requires valid access token)
func (h *AuthController) Me(c *fiber.Ctx) error {
	userID, err := helper.GetUserID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	user, err := h.Service.Users.FindByID(c.UserContext(), userID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "User not found")
	}
	return helper.JsonOK(c, "ok", authDTO.ToUserResponse(user))
}
