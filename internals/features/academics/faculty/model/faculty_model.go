package model

import (
	"time"

	"github.com/google/uuid"
)

// FacultyModel is the staff profile behind a FACULTY account.
type FacultyModel struct {
	ID         uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID     uuid.UUID `gorm:"column:user_id;type:uuid;not null;uniqueIndex" json:"user_id"`
	EmployeeNo string    `gorm:"column:employee_no;size:20;uniqueIndex;not null" json:"employee_no"`
	Department string    `gorm:"column:department;size:100" json:"department"`
	CreatedAt  time.Time `gorm:"column:created_at;type:timestamptz;autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time `gorm:"column:updated_at;type:timestamptz;autoUpdateTime" json:"updated_at"`
}

func (FacultyModel) TableName() string {
	return "faculty"
}
