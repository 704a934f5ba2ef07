// file: internals/features/academics/exams/service/exam_service_test.go
package service

import (
	"context"
	"errors"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	examDTO "kampusku_backend/internals/features/academics/exams/dto"
	examModel "kampusku_backend/internals/features/academics/exams/model"
)

type fakeExamStore struct {
	exams   map[uuid.UUID]*examModel.ExamModel
	results map[string]examModel.ExamResultModel
	failUp  error
}

func newFakeExamStore() *fakeExamStore {
	return &fakeExamStore{
		exams:   map[uuid.UUID]*examModel.ExamModel{},
		results: map[string]examModel.ExamResultModel{},
	}
}

func (f *fakeExamStore) FindExam(_ context.Context, id uuid.UUID) (*examModel.ExamModel, error) {
	exam, ok := f.exams[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return exam, nil
}

func (f *fakeExamStore) UpsertResults(_ context.Context, rows []examModel.ExamResultModel) error {
	if f.failUp != nil {
		return f.failUp
	}
	for _, r := range rows {
		f.results[r.ExamID.String()+"/"+r.StudentID.String()] = r
	}
	return nil
}

func seedExam(f *fakeExamStore, totalMarks float64) uuid.UUID {
	id := uuid.New()
	f.exams[id] = &examModel.ExamModel{ID: id, SubjectID: uuid.New(), Name: "Midterm", TotalMarks: totalMarks}
	return id
}

func TestEnterResultsDerivesGrades(t *testing.T) {
	store := newFakeExamStore()
	svc := NewExamService(store)
	examID := seedExam(store, 50)
	entered := uuid.New()

	s1, s2 := uuid.New(), uuid.New()
	count, err := svc.EnterResults(context.Background(), examID, entered, examDTO.EnterResultsRequest{
		Results: []examDTO.ExamResultEntry{
			{StudentID: s1, MarksObtained: 45},
			{StudentID: s2, MarksObtained: 20},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	r1 := store.results[examID.String()+"/"+s1.String()]
	assert.Equal(t, "A+", r1.Grade)
	assert.Equal(t, entered, r1.EnteredBy)
	r2 := store.results[examID.String()+"/"+s2.String()]
	assert.Equal(t, "D", r2.Grade)
}

func TestEnterResultsAbsentForcesZero(t *testing.T) {
	store := newFakeExamStore()
	svc := NewExamService(store)
	examID := seedExam(store, 100)

	s1 := uuid.New()
	_, err := svc.EnterResults(context.Background(), examID, uuid.New(), examDTO.EnterResultsRequest{
		Results: []examDTO.ExamResultEntry{
			{StudentID: s1, MarksObtained: 70, IsAbsent: true},
		},
	})
	require.NoError(t, err)

	row := store.results[examID.String()+"/"+s1.String()]
	assert.True(t, row.IsAbsent)
	assert.Zero(t, row.MarksObtained)
	assert.Equal(t, "F", row.Grade)
}

func TestEnterResultsUnknownExam(t *testing.T) {
	svc := NewExamService(newFakeExamStore())

	_, err := svc.EnterResults(context.Background(), uuid.New(), uuid.New(), examDTO.EnterResultsRequest{
		Results: []examDTO.ExamResultEntry{{StudentID: uuid.New(), MarksObtained: 10}},
	})
	var fe *fiber.Error
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, fiber.StatusNotFound, fe.Code)
}

func TestEnterResultsRejectsMarksAboveTotal(t *testing.T) {
	store := newFakeExamStore()
	svc := NewExamService(store)
	examID := seedExam(store, 50)

	_, err := svc.EnterResults(context.Background(), examID, uuid.New(), examDTO.EnterResultsRequest{
		Results: []examDTO.ExamResultEntry{{StudentID: uuid.New(), MarksObtained: 51}},
	})
	var fe *fiber.Error
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, fiber.StatusBadRequest, fe.Code)
	assert.Empty(t, store.results)
}

func TestEnterResultsRejectsDuplicateStudent(t *testing.T) {
	store := newFakeExamStore()
	svc := NewExamService(store)
	examID := seedExam(store, 100)
	dup := uuid.New()

	_, err := svc.EnterResults(context.Background(), examID, uuid.New(), examDTO.EnterResultsRequest{
		Results: []examDTO.ExamResultEntry{
			{StudentID: dup, MarksObtained: 10},
			{StudentID: dup, MarksObtained: 20},
		},
	})
	var fe *fiber.Error
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, fiber.StatusBadRequest, fe.Code)
	assert.Empty(t, store.results)
}

func TestEnterResultsOverwritesOnResubmit(t *testing.T) {
	store := newFakeExamStore()
	svc := NewExamService(store)
	examID := seedExam(store, 100)
	s1 := uuid.New()

	_, err := svc.EnterResults(context.Background(), examID, uuid.New(), examDTO.EnterResultsRequest{
		Results: []examDTO.ExamResultEntry{{StudentID: s1, MarksObtained: 35}},
	})
	require.NoError(t, err)
	assert.Equal(t, "F", store.results[examID.String()+"/"+s1.String()].Grade)

	_, err = svc.EnterResults(context.Background(), examID, uuid.New(), examDTO.EnterResultsRequest{
		Results: []examDTO.ExamResultEntry{{StudentID: s1, MarksObtained: 85}},
	})
	require.NoError(t, err)
	assert.Len(t, store.results, 1)
	assert.Equal(t, "A", store.results[examID.String()+"/"+s1.String()].Grade)
}

func TestEnterResultsStoreFailureSurfacesAs500(t *testing.T) {
	store := newFakeExamStore()
	store.failUp = errors.New("connection reset")
	svc := NewExamService(store)
	examID := seedExam(store, 100)

	_, err := svc.EnterResults(context.Background(), examID, uuid.New(), examDTO.EnterResultsRequest{
		Results: []examDTO.ExamResultEntry{{StudentID: uuid.New(), MarksObtained: 10}},
	})
	var fe *fiber.Error
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, fiber.StatusInternalServerError, fe.Code)
}
