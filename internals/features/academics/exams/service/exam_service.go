// file: internals/features/academics/exams/service/exam_service.go
package service

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	examDTO "kampusku_backend/internals/features/academics/exams/dto"
	examModel "kampusku_backend/internals/features/academics/exams/model"
	"kampusku_backend/internals/helpers/batch"
)

/* =========================================================
   STORE
========================================================= */

type ExamStore interface {
	FindExam(ctx context.Context, id uuid.UUID) (*examModel.ExamModel, error)
	UpsertResults(ctx context.Context, rows []examModel.ExamResultModel) error
}

type gormExamStore struct {
	db *gorm.DB
}

func NewExamStore(db *gorm.DB) ExamStore {
	return &gormExamStore{db: db}
}

func (s *gormExamStore) FindExam(ctx context.Context, id uuid.UUID) (*examModel.ExamModel, error) {
	var exam examModel.ExamModel
	if err := s.db.WithContext(ctx).First(&exam, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &exam, nil
}

func (s *gormExamStore) UpsertResults(ctx context.Context, rows []examModel.ExamResultModel) error {
	// entered_by stays with whoever keyed the result in first.
	return batch.UpsertAll(ctx, s.db, rows,
		[]string{"exam_id", "student_id"},
		[]string{"marks_obtained", "grade", "is_absent", "remarks", "updated_at"},
	)
}

/* =========================================================
   SERVICE
========================================================= */

type ExamService struct {
	Store ExamStore
}

func NewExamService(store ExamStore) *ExamService {
	return &ExamService{Store: store}
}

// EnterResults saves a full result sheet for one exam. Grades are derived
// from the exam's total marks, never taken from the request. The whole
// sheet lands atomically, and re-submitting overwrites previous scores.
func (s *ExamService) EnterResults(ctx context.Context, examID, enteredBy uuid.UUID, req examDTO.EnterResultsRequest) (int, error) {
	exam, err := s.Store.FindExam(ctx, examID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, fiber.NewError(fiber.StatusNotFound, "Exam not found")
		}
		return 0, fiber.NewError(fiber.StatusInternalServerError, "Failed to load exam")
	}

	rows := make([]examModel.ExamResultModel, 0, len(req.Results))
	seen := make(map[uuid.UUID]struct{}, len(req.Results))
	for _, rec := range req.Results {
		if _, dup := seen[rec.StudentID]; dup {
			return 0, fiber.NewError(fiber.StatusBadRequest, "Duplicate student in result sheet: "+rec.StudentID.String())
		}
		seen[rec.StudentID] = struct{}{}

		marks := rec.MarksObtained
		if rec.IsAbsent {
			marks = 0
		}
		if marks > exam.TotalMarks {
			return 0, fiber.NewError(fiber.StatusBadRequest, "Marks exceed exam total for student "+rec.StudentID.String())
		}

		rows = append(rows, examModel.ExamResultModel{
			ExamID:        examID,
			StudentID:     rec.StudentID,
			MarksObtained: marks,
			Grade:         GradeOf(marks, exam.TotalMarks),
			IsAbsent:      rec.IsAbsent,
			Remarks:       rec.Remarks,
			EnteredBy:     enteredBy,
		})
	}

	if err := s.Store.UpsertResults(ctx, rows); err != nil {
		return 0, fiber.NewError(fiber.StatusInternalServerError, "Failed to save exam results")
	}
	return len(rows), nil
}
