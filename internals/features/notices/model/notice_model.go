package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
)

// NoticeModel is a campus announcement targeted at one or more roles.
type NoticeModel struct {
	ID        uuid.UUID         `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Title     string            `gorm:"column:title;size:150;not null" json:"title"`
	Body      string            `gorm:"column:body;type:text;not null" json:"body"`
	Audience  pq.StringArray    `gorm:"column:audience;type:text[];not null" json:"audience"`
	Metadata  datatypes.JSONMap `gorm:"column:metadata" json:"metadata,omitempty"`
	IsPinned  bool              `gorm:"column:is_pinned;default:false" json:"is_pinned"`
	PostedBy  uuid.UUID         `gorm:"column:posted_by;type:uuid;not null" json:"posted_by"`
	ExpiresAt *time.Time        `gorm:"column:expires_at;type:timestamptz" json:"expires_at,omitempty"`
	CreatedAt time.Time         `gorm:"column:created_at;type:timestamptz;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time         `gorm:"column:updated_at;type:timestamptz;autoUpdateTime" json:"updated_at"`
}

func (NoticeModel) TableName() string {
	return "notices"
}
