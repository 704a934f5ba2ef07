// file: internals/features/academics/attendance/controller/attendance_controller.go
package controller

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	attendanceDTO "kampusku_backend/internals/features/academics/attendance/dto"
	attendanceModel "kampusku_backend/internals/features/academics/attendance/model"
	attendanceService "kampusku_backend/internals/features/academics/attendance/service"
	helper "kampusku_backend/internals/helpers"
)

type AttendanceController struct {
	DB       *gorm.DB
	Service  *attendanceService.AttendanceService
	validate *validator.Validate
}

func NewAttendanceController(db *gorm.DB, svc *attendanceService.AttendanceService) *AttendanceController {
	return &AttendanceController{DB: db, Service: svc, validate: validator.New()}
}

// POST /api/attendance/mark (faculty and above)
func (h *AttendanceController) Mark(c *fiber.Ctx) error {
	var req attendanceDTO.MarkAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := h.validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMap(err))
	}

	markedBy, err := helper.GetUserID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	count, err := h.Service.Mark(c.UserContext(), markedBy, req)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "Attendance saved", attendanceDTO.MarkAttendanceResponse{Count: count})
}

// GET /api/attendance?subject_id=&date=&student_id= (authed)
func (h *AttendanceController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 50, 200)

	q := h.DB.WithContext(c.UserContext()).Model(&attendanceModel.AttendanceModel{})
	if raw := c.Query("subject_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid subject_id")
		}
		q = q.Where("subject_id = ?", id)
	}
	if raw := c.Query("student_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid student_id")
		}
		q = q.Where("student_id = ?", id)
	}
	if raw := c.Query("date"); raw != "" {
		d, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid date, expected YYYY-MM-DD")
		}
		q = q.Where("date = ?", d)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list attendance")
	}

	var rows []attendanceModel.AttendanceModel
	if err := q.Order("date DESC, student_id ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list attendance")
	}
	return helper.JsonList(c, "ok", rows,
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}
