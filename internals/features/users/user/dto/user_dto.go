// file: internals/features/users/user/dto/user_dto.go
package dto

import "kampusku_backend/internals/constants"

type ChangeRoleRequest struct {
	Role constants.Role `json:"role" validate:"required"`
}

type SetActiveRequest struct {
	IsActive bool `json:"is_active"`
}
