// file: internals/features/academics/exams/controller/exam_controller.go
package controller

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	examDTO "kampusku_backend/internals/features/academics/exams/dto"
	examModel "kampusku_backend/internals/features/academics/exams/model"
	examService "kampusku_backend/internals/features/academics/exams/service"
	helper "kampusku_backend/internals/helpers"
)

type ExamController struct {
	DB       *gorm.DB
	Service  *examService.ExamService
	validate *validator.Validate
}

func NewExamController(db *gorm.DB, svc *examService.ExamService) *ExamController {
	return &ExamController{DB: db, Service: svc, validate: validator.New()}
}

// POST /api/exams (faculty and above)
func (h *ExamController) Create(c *fiber.Ctx) error {
	var req examDTO.CreateExamRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := h.validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMap(err))
	}

	examDate, err := time.Parse("2006-01-02", req.ExamDate)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid exam_date, expected YYYY-MM-DD")
	}

	exam := examModel.ExamModel{
		SubjectID:  req.SubjectID,
		Name:       strings.TrimSpace(req.Name),
		ExamDate:   examDate,
		TotalMarks: req.TotalMarks,
	}
	if err := h.DB.WithContext(c.UserContext()).Create(&exam).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create exam")
	}
	return helper.JsonCreated(c, "Exam created", exam)
}

// GET /api/exams?subject_id= (authed)
func (h *ExamController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := h.DB.WithContext(c.UserContext()).Model(&examModel.ExamModel{})
	if raw := c.Query("subject_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid subject_id")
		}
		q = q.Where("subject_id = ?", id)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list exams")
	}

	var exams []examModel.ExamModel
	if err := q.Order("exam_date DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&exams).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list exams")
	}
	return helper.JsonList(c, "ok", exams,
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// POST /api/exams/:id/results (faculty and above)
func (h *ExamController) EnterResults(c *fiber.Ctx) error {
	examID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid exam id")
	}

	var req examDTO.EnterResultsRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := h.validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMap(err))
	}

	enteredBy, err := helper.GetUserID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	count, err := h.Service.EnterResults(c.UserContext(), examID, enteredBy, req)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "Results saved", examDTO.EnterResultsResponse{Count: count})
}

// GET /api/exams/:id/results (authed)
func (h *ExamController) ListResults(c *fiber.Ctx) error {
	examID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid exam id")
	}

	var rows []examModel.ExamResultModel
	if err := h.DB.WithContext(c.UserContext()).
		Where("exam_id = ?", examID).
		Order("student_id ASC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list results")
	}
	return helper.JsonOK(c, "ok", rows)
}
