package model

import (
	"time"

	"github.com/google/uuid"

	"kampusku_backend/internals/constants"
)

// UserModel is the identity root. Email uniqueness is case-insensitive:
// emails are lower-cased before write and lookups compare on LOWER(email).
type UserModel struct {
	ID            uuid.UUID      `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Email         string         `gorm:"column:email;size:255;uniqueIndex;not null" json:"email" validate:"required,email"`
	Password      string         `gorm:"column:password;not null" json:"-" validate:"required,min=8"`
	FullName      string         `gorm:"column:full_name;size:100" json:"full_name"`
	Role          constants.Role `gorm:"column:role;type:varchar(20);not null;default:'STUDENT'" json:"role"`
	GoogleID      *string        `gorm:"column:google_id;size:255;unique" json:"-"`
	IsActive      bool           `gorm:"column:is_active;not null;default:true" json:"is_active"`
	EmailVerified bool           `gorm:"column:email_verified;not null;default:false" json:"email_verified"`
	LastLoginAt   *time.Time     `gorm:"column:last_login_at;type:timestamptz" json:"last_login_at,omitempty"`
	CreatedAt     time.Time      `gorm:"column:created_at;type:timestamptz;autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time      `gorm:"column:updated_at;type:timestamptz;autoUpdateTime" json:"updated_at"`
}

func (UserModel) TableName() string {
	return "users"
}
