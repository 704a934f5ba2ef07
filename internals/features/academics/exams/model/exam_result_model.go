package model

import (
	"time"

	"github.com/google/uuid"
)

// ExamResultModel is one student's score on one exam. The composite
// unique index makes re-entered results overwrite the previous score.
type ExamResultModel struct {
	ID            uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	ExamID        uuid.UUID `gorm:"column:exam_id;type:uuid;not null;uniqueIndex:idx_exam_result" json:"exam_id"`
	StudentID     uuid.UUID `gorm:"column:student_id;type:uuid;not null;uniqueIndex:idx_exam_result" json:"student_id"`
	MarksObtained float64   `gorm:"column:marks_obtained;not null" json:"marks_obtained"`
	Grade         string    `gorm:"column:grade;size:2;not null" json:"grade"`
	IsAbsent      bool      `gorm:"column:is_absent;default:false" json:"is_absent"`
	Remarks       string    `gorm:"column:remarks;size:255" json:"remarks,omitempty"`
	EnteredBy     uuid.UUID `gorm:"column:entered_by;type:uuid;not null" json:"entered_by"`
	CreatedAt     time.Time `gorm:"column:created_at;type:timestamptz;autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time `gorm:"column:updated_at;type:timestamptz;autoUpdateTime" json:"updated_at"`
}

func (ExamResultModel) TableName() string {
	return "exam_results"
}
