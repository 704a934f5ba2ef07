package model

import (
	"time"

	"github.com/google/uuid"
)

// ExamModel is a scheduled assessment for one subject.
type ExamModel struct {
	ID         uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	SubjectID  uuid.UUID `gorm:"column:subject_id;type:uuid;not null;index" json:"subject_id"`
	Name       string    `gorm:"column:name;size:100;not null" json:"name"`
	ExamDate   time.Time `gorm:"column:exam_date;type:date;not null" json:"exam_date"`
	TotalMarks float64   `gorm:"column:total_marks;not null" json:"total_marks"`
	CreatedAt  time.Time `gorm:"column:created_at;type:timestamptz;autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time `gorm:"column:updated_at;type:timestamptz;autoUpdateTime" json:"updated_at"`
}

func (ExamModel) TableName() string {
	return "exams"
}
