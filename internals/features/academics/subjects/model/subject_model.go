package model

import (
	"time"

	"github.com/google/uuid"
)

type SubjectModel struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Code      string    `gorm:"column:code;size:20;uniqueIndex;not null" json:"code" validate:"required,max=20"`
	Name      string    `gorm:"column:name;size:100;not null" json:"name" validate:"required,max=100"`
	Credits   int       `gorm:"column:credits;not null;default:0" json:"credits" validate:"gte=0,lte=10"`
	CreatedAt time.Time `gorm:"column:created_at;type:timestamptz;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;type:timestamptz;autoUpdateTime" json:"updated_at"`
}

func (SubjectModel) TableName() string {
	return "subjects"
}
