// file: internals/features/users/auth/dto/auth_dto.go
package dto

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"kampusku_backend/internals/constants"
	userModel "kampusku_backend/internals/features/users/user/model"
)

type RegisterRequest struct {
	Email    string         `json:"email" validate:"required,email"`
	Password string         `json:"password" validate:"required,min=8"`
	FullName string         `json:"full_name" validate:"max=100"`
	Role     constants.Role `json:"role,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginGoogleRequest struct {
	IDToken string `json:"id_token" validate:"required"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type LogoutRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=8"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type ResetPasswordRequest struct {
	Token       string `json:"token" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=8"`
}

// UserResponse is the external shape of an account; the hash never leaves.
type UserResponse struct {
	ID            string     `json:"id"`
	Email         string     `json:"email"`
	FullName      string     `json:"full_name"`
	Role          string     `json:"role"`
	IsActive      bool       `json:"is_active"`
	EmailVerified bool       `json:"email_verified"`
	LastLoginAt   *time.Time `json:"last_login_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

func ToUserResponse(u *userModel.UserModel) UserResponse {
	return UserResponse{
		ID:            u.ID.String(),
		Email:         u.Email,
		FullName:      u.FullName,
		Role:          u.Role.String(),
		IsActive:      u.IsActive,
		EmailVerified: u.EmailVerified,
		LastLoginAt:   u.LastLoginAt,
		CreatedAt:     u.CreatedAt,
	}
}

func AuthPayload(u *userModel.UserModel, accessToken, refreshToken string) fiber.Map {
	return fiber.Map{
		"user":          ToUserResponse(u),
		"access_token":  accessToken,
		"refresh_token": refreshToken,
	}
}
