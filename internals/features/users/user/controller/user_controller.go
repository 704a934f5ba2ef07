// file: internals/features/users/user/controller/user_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"kampusku_backend/internals/constants"
	authDTO "kampusku_backend/internals/features/users/auth/dto"
	userDTO "kampusku_backend/internals/features/users/user/dto"
	userRepo "kampusku_backend/internals/features/users/user/repository"
	helper "kampusku_backend/internals/helpers"
)

type UserController struct {
	Repo     *userRepo.UserAdminRepository
	validate *validator.Validate
}

func NewUserController(repo *userRepo.UserAdminRepository) *UserController {
	return &UserController{Repo: repo, validate: validator.New()}
}

// GET /api/users (admin)
func (h *UserController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	users, total, err := h.Repo.List(c.UserContext(), paging.Offset, paging.Limit)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list users")
	}

	out := make([]authDTO.UserResponse, 0, len(users))
	for i := range users {
		out = append(out, authDTO.ToUserResponse(&users[i]))
	}
	return helper.JsonList(c, "ok", out,
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// GET /api/users/:id (admin)
func (h *UserController) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid user id")
	}

	user, err := h.Repo.Get(c.UserContext(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "User not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch user")
	}
	return helper.JsonOK(c, "ok", authDTO.ToUserResponse(user))
}

// PATCH /api/users/:id/role (admin)
func (h *UserController) ChangeRole(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid user id")
	}

	var req userDTO.ChangeRoleRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if !constants.IsValidRole(req.Role) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid role")
	}

	if err := h.Repo.UpdateRole(c.UserContext(), id, req.Role); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "User not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update role")
	}
	return helper.JsonUpdated(c, "Role updated", nil)
}

// PATCH /api/users/:id/active (admin)
func (h *UserController) SetActive(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid user id")
	}

	var req userDTO.SetActiveRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	if err := h.Repo.SetActive(c.UserContext(), id, req.IsActive); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "User not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update account")
	}
	return helper.JsonUpdated(c, "Account updated", nil)
}

// DELETE /api/users/:id (admin). Removes dependent sessions too.
func (h *UserController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid user id")
	}

	if err := h.Repo.DeleteAccount(c.UserContext(), id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "User not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete account")
	}
	return helper.JsonDeleted(c, "Account deleted", nil)
}
