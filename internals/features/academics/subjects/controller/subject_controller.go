// file: internals/features/academics/subjects/controller/subject_controller.go
package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	subjectDTO "kampusku_backend/internals/features/academics/subjects/dto"
	subjectModel "kampusku_backend/internals/features/academics/subjects/model"
	helper "kampusku_backend/internals/helpers"
)

type SubjectController struct {
	DB       *gorm.DB
	validate *validator.Validate
}

func NewSubjectController(db *gorm.DB) *SubjectController {
	return &SubjectController{DB: db, validate: validator.New()}
}

// POST /api/subjects (admin)
func (h *SubjectController) Create(c *fiber.Ctx) error {
	var req subjectDTO.CreateSubjectRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Code = strings.ToUpper(strings.TrimSpace(req.Code))
	req.Name = strings.TrimSpace(req.Name)
	if err := h.validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMap(err))
	}

	subject := subjectModel.SubjectModel{
		Code:    req.Code,
		Name:    req.Name,
		Credits: req.Credits,
	}
	if err := h.DB.WithContext(c.UserContext()).Create(&subject).Error; err != nil {
		low := strings.ToLower(err.Error())
		if strings.Contains(low, "duplicate key") || strings.Contains(low, "unique") {
			return helper.JsonError(c, fiber.StatusConflict, "Subject code already in use")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create subject")
	}
	return helper.JsonCreated(c, "Subject created", subject)
}

// GET /api/subjects
func (h *SubjectController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := h.DB.WithContext(c.UserContext()).
		Model(&subjectModel.SubjectModel{}).Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list subjects")
	}

	var subjects []subjectModel.SubjectModel
	if err := h.DB.WithContext(c.UserContext()).
		Order("code ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&subjects).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list subjects")
	}
	return helper.JsonList(c, "ok", subjects,
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// DELETE /api/subjects/:id (admin)
func (h *SubjectController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid subject id")
	}

	res := h.DB.WithContext(c.UserContext()).
		Where("id = ?", id).
		Delete(&subjectModel.SubjectModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete subject")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Subject not found")
	}
	return helper.JsonDeleted(c, "Subject deleted", nil)
}
