package model

import (
	"time"

	"github.com/google/uuid"
)

// PasswordReset is a one-time credential for the forgot-password flow,
// stored as a SHA-256 hash with a short TTL. Consumed (deleted) on use,
// same semantics as refresh tokens.
type PasswordReset struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"column:user_id;type:uuid;not null;index" json:"user_id"`
	TokenHash []byte    `gorm:"column:token_hash;type:bytea;not null;uniqueIndex" json:"-"`
	ExpiresAt time.Time `gorm:"column:expires_at;type:timestamptz;not null" json:"expires_at"`
	CreatedAt time.Time `gorm:"column:created_at;type:timestamptz;autoCreateTime" json:"created_at"`
}

func (PasswordReset) TableName() string {
	return "password_resets"
}
