package model

import (
	"time"

	"github.com/google/uuid"
)

// StudentModel is the academic profile behind a STUDENT account.
type StudentModel struct {
	ID           uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID       uuid.UUID `gorm:"column:user_id;type:uuid;not null;uniqueIndex" json:"user_id"`
	StudentNo    string    `gorm:"column:student_no;size:20;uniqueIndex;not null" json:"student_no"`
	Program      string    `gorm:"column:program;size:100" json:"program"`
	YearEnrolled int       `gorm:"column:year_enrolled" json:"year_enrolled"`
	CreatedAt    time.Time `gorm:"column:created_at;type:timestamptz;autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at;type:timestamptz;autoUpdateTime" json:"updated_at"`
}

func (StudentModel) TableName() string {
	return "students"
}
