// file: internals/features/academics/exams/dto/exam_dto.go
package dto

import "github.com/google/uuid"

type CreateExamRequest struct {
	SubjectID  uuid.UUID `json:"subject_id" validate:"required"`
	Name       string    `json:"name" validate:"required,max=100"`
	ExamDate   string    `json:"exam_date" validate:"required,datetime=2006-01-02"`
	TotalMarks float64   `json:"total_marks" validate:"required,gt=0"`
}

type ExamResultEntry struct {
	StudentID     uuid.UUID `json:"student_id" validate:"required"`
	MarksObtained float64   `json:"marks_obtained" validate:"gte=0"`
	IsAbsent      bool      `json:"is_absent"`
	Remarks       string    `json:"remarks" validate:"max=255"`
}

type EnterResultsRequest struct {
	Results []ExamResultEntry `json:"results" validate:"required,min=1,dive"`
}

type EnterResultsResponse struct {
	Count int `json:"count"`
}
