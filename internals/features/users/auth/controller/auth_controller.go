// file: internals/features/users/auth/controller/auth_controller.go
package controller

import (
	googleAuthIDTokenVerifier "github.com/futurenda/google-auth-id-token-verifier"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"kampusku_backend/internals/configs"
	authDTO "kampusku_backend/internals/features/users/auth/dto"
	authService "kampusku_backend/internals/features/users/auth/service"
	helper "kampusku_backend/internals/helpers"
)

type AuthController struct {
	Service  *authService.AuthService
	validate *validator.Validate
}

func NewAuthController(svc *authService.AuthService) *AuthController {
	return &AuthController{
		Service:  svc,
		validate: validator.New(),
	}
}

// POST /api/auth/register
func (h *AuthController) Register(c *fiber.Ctx) error {
	var req authDTO.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := h.validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMap(err))
	}

	res, err := h.Service.Register(c.UserContext(), authService.RegisterInput{
		Email:    req.Email,
		Password: req.Password,
		FullName: req.FullName,
		Role:     req.Role,
	})
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.JsonCreated(c, "Registration successful",
		authDTO.AuthPayload(res.User, res.Tokens.AccessToken, res.Tokens.RefreshToken))
}

// POST /api/auth/login
func (h *AuthController) Login(c *fiber.Ctx) error {
	var req authDTO.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := h.validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMap(err))
	}

	res, err := h.Service.Login(c.UserContext(), req.Email, req.Password)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.JsonOK(c, "Login successful",
		authDTO.AuthPayload(res.User, res.Tokens.AccessToken, res.Tokens.RefreshToken))
}

// POST /api/auth/login-google
func (h *AuthController) LoginGoogle(c *fiber.Ctx) error {
	var req authDTO.LoginGoogleRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := h.validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMap(err))
	}

	v := googleAuthIDTokenVerifier.Verifier{}
	if err := v.VerifyIDToken(req.IDToken, []string{configs.GoogleClientID}); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid Google ID token")
	}
	claimSet, err := googleAuthIDTokenVerifier.Decode(req.IDToken)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to decode ID token")
	}

	res, err := h.Service.LoginGoogle(c.UserContext(), claimSet.Email, claimSet.Name, claimSet.Sub)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.JsonOK(c, "Login successful",
		authDTO.AuthPayload(res.User, res.Tokens.AccessToken, res.Tokens.RefreshToken))
}

// POST /api/auth/refresh-token
func (h *AuthController) RefreshToken(c *fiber.Ctx) error {
	var req authDTO.RefreshTokenRequest
	_ = c.BodyParser(&req) // body optional; cookie fallback below
	raw := req.RefreshToken
	if raw == "" {
		raw = helper.GetRefreshTokenFromCookie(c)
	}

	res, err := h.Service.Refresh(c.UserContext(), raw)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.JsonOK(c, "Token refreshed", fiber.Map{
		"access_token":  res.Tokens.AccessToken,
		"refresh_token": res.Tokens.RefreshToken,
	})
}

// POST /api/auth/logout
func (h *AuthController) Logout(c *fiber.Ctx) error {
	var req authDTO.LogoutRequest
	_ = c.BodyParser(&req) // body optional; cookie fallback below
	raw := req.RefreshToken
	if raw == "" {
		raw = helper.GetRefreshTokenFromCookie(c)
	}

	if err := h.Service.Logout(c.UserContext(), raw); err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "Logout successful", nil)
}

// POST /api/auth/logout-all  (requires valid access token)
func (h *AuthController) LogoutAll(c *fiber.Ctx) error {
	userID, err := helper.GetUserID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	n, err := h.Service.LogoutAll(c.UserContext(), userID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "All sessions revoked", fiber.Map{"revoked": n})
}

// POST /api/auth/change-password  (requires valid access token)
func (h *AuthController) ChangePassword(c *fiber.Ctx) error {
	userID, err := helper.GetUserID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req authDTO.ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := h.validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMap(err))
	}

	if err := h.Service.ChangePassword(c.UserContext(), userID, req.CurrentPassword, req.NewPassword); err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonUpdated(c, "Password changed successfully", nil)
}

// POST /api/auth/forgot-password. Always 200, regardless of existence.
func (h *AuthController) ForgotPassword(c *fiber.Ctx) error {
	var req authDTO.ForgotPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := h.validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMap(err))
	}

	if err := h.Service.ForgotPassword(c.UserContext(), req.Email); err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "If the email exists, reset instructions have been sent", nil)
}

// POST /api/auth/reset-password
func (h *AuthController) ResetPassword(c *fiber.Ctx) error {
	var req authDTO.ResetPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := h.validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMap(err))
	}

	if err := h.Service.ResetPassword(c.UserContext(), req.Token, req.NewPassword); err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonUpdated(c, "Password reset successfully", nil)
}
