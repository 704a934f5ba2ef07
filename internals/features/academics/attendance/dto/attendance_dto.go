// file: internals/features/academics/attendance/dto/attendance_dto.go
package dto

import "github.com/google/uuid"

type AttendanceEntry struct {
	StudentID uuid.UUID `json:"student_id" validate:"required"`
	Status    string    `json:"status" validate:"required,oneof=PRESENT ABSENT LATE"`
	Remarks   string    `json:"remarks" validate:"max=255"`
}

type MarkAttendanceRequest struct {
	Date      string            `json:"date" validate:"required,datetime=2006-01-02"`
	SubjectID uuid.UUID         `json:"subject_id" validate:"required"`
	Records   []AttendanceEntry `json:"records" validate:"required,min=1,dive"`
}

type MarkAttendanceResponse struct {
	Count int `json:"count"`
}
