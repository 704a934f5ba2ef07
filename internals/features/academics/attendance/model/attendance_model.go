package model

import (
	"time"

	"github.com/google/uuid"
)

type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "PRESENT"
	AttendanceAbsent  AttendanceStatus = "ABSENT"
	AttendanceLate    AttendanceStatus = "LATE"
)

func (s AttendanceStatus) Valid() bool {
	switch s {
	case AttendancePresent, AttendanceAbsent, AttendanceLate:
		return true
	}
	return false
}

// AttendanceModel holds one student's attendance for one subject on one
// date. The composite unique index makes repeated marking an update of
// status and remarks instead of a second row.
type AttendanceModel struct {
	ID        uuid.UUID        `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Date      time.Time        `gorm:"column:date;type:date;not null;uniqueIndex:idx_attendance_day" json:"date"`
	StudentID uuid.UUID        `gorm:"column:student_id;type:uuid;not null;uniqueIndex:idx_attendance_day" json:"student_id"`
	SubjectID uuid.UUID        `gorm:"column:subject_id;type:uuid;not null;uniqueIndex:idx_attendance_day" json:"subject_id"`
	Status    AttendanceStatus `gorm:"column:status;size:10;not null" json:"status"`
	Remarks   string           `gorm:"column:remarks;size:255" json:"remarks,omitempty"`
	MarkedBy  uuid.UUID        `gorm:"column:marked_by;type:uuid;not null" json:"marked_by"`
	CreatedAt time.Time        `gorm:"column:created_at;type:timestamptz;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time        `gorm:"column:updated_at;type:timestamptz;autoUpdateTime" json:"updated_at"`
}

func (AttendanceModel) TableName() string {
	return "attendance_records"
}
