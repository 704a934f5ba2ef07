// file: internals/features/academics/attendance/service/attendance_service.go
package service

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	attendanceDTO "kampusku_backend/internals/features/academics/attendance/dto"
	attendanceModel "kampusku_backend/internals/features/academics/attendance/model"
	"kampusku_backend/internals/helpers/batch"
	"gorm.io/gorm"
)

/* =========================================================
   STORE
========================================================= */

// AttendanceStore persists a batch of attendance rows atomically.
type AttendanceStore interface {
	UpsertAll(ctx context.Context, rows []attendanceModel.AttendanceModel) error
}

type gormAttendanceStore struct {
	db *gorm.DB
}

func NewAttendanceStore(db *gorm.DB) AttendanceStore {
	return &gormAttendanceStore{db: db}
}

func (s *gormAttendanceStore) UpsertAll(ctx context.Context, rows []attendanceModel.AttendanceModel) error {
	// marked_by stays with whoever recorded the row first.
	return batch.UpsertAll(ctx, s.db, rows,
		[]string{"date", "student_id", "subject_id"},
		[]string{"status", "remarks", "updated_at"},
	)
}

/* =========================================================
   SERVICE
========================================================= */

type AttendanceService struct {
	Store AttendanceStore
}

func NewAttendanceService(store AttendanceStore) *AttendanceService {
	return &AttendanceService{Store: store}
}

// Mark records a whole class sheet in one shot. Either every row lands or
// none does, and re-submitting the same sheet overwrites status and remarks
// without duplicating rows.
func (s *AttendanceService) Mark(ctx context.Context, markedBy uuid.UUID, req attendanceDTO.MarkAttendanceRequest) (int, error) {
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return 0, fiber.NewError(fiber.StatusBadRequest, "Invalid date, expected YYYY-MM-DD")
	}

	rows := make([]attendanceModel.AttendanceModel, 0, len(req.Records))
	seen := make(map[uuid.UUID]struct{}, len(req.Records))
	for _, rec := range req.Records {
		status := attendanceModel.AttendanceStatus(rec.Status)
		if !status.Valid() {
			return 0, fiber.NewError(fiber.StatusBadRequest, "Invalid attendance status: "+rec.Status)
		}
		if _, dup := seen[rec.StudentID]; dup {
			return 0, fiber.NewError(fiber.StatusBadRequest, "Duplicate student in attendance sheet: "+rec.StudentID.String())
		}
		seen[rec.StudentID] = struct{}{}

		rows = append(rows, attendanceModel.AttendanceModel{
			Date:      date,
			StudentID: rec.StudentID,
			SubjectID: req.SubjectID,
			Status:    status,
			Remarks:   rec.Remarks,
			MarkedBy:  markedBy,
		})
	}

	if err := s.Store.UpsertAll(ctx, rows); err != nil {
		return 0, fiber.NewError(fiber.StatusInternalServerError, "Failed to save attendance")
	}
	return len(rows), nil
}
