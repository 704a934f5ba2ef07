// file: internals/features/notices/controller/notice_controller.go
package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	noticeDTO "kampusku_backend/internals/features/notices/dto"
	noticeModel "kampusku_backend/internals/features/notices/model"
	helper "kampusku_backend/internals/helpers"
)

type NoticeController struct {
	DB       *gorm.DB
	validate *validator.Validate
}

func NewNoticeController(db *gorm.DB) *NoticeController {
	return &NoticeController{DB: db, validate: validator.New()}
}

// POST /api/notices (admin)
func (h *NoticeController) Create(c *fiber.Ctx) error {
	var req noticeDTO.CreateNoticeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := h.validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMap(err))
	}

	postedBy, err := helper.GetUserID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	notice := noticeModel.NoticeModel{
		Title:     strings.TrimSpace(req.Title),
		Body:      req.Body,
		Audience:  req.Audience,
		Metadata:  req.Metadata,
		IsPinned:  req.IsPinned,
		PostedBy:  postedBy,
		ExpiresAt: req.ExpiresAt,
	}
	if err := h.DB.WithContext(c.UserContext()).Create(&notice).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create notice")
	}
	return helper.JsonCreated(c, "Notice posted", notice)
}

// GET /api/notices (authed). Only notices addressed to the caller's role
// and not yet expired; pinned ones first.
func (h *NoticeController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)
	role := helper.GetRole(c)

	q := h.DB.WithContext(c.UserContext()).
		Model(&noticeModel.NoticeModel{}).
		Where("? = ANY(audience)", string(role)).
		Where("expires_at IS NULL OR expires_at > ?", time.Now())

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list notices")
	}

	var notices []noticeModel.NoticeModel
	if err := q.Order("is_pinned DESC, created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&notices).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list notices")
	}
	return helper.JsonList(c, "ok", notices,
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// PATCH /api/notices/:id (admin)
func (h *NoticeController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid notice id")
	}

	var req noticeDTO.UpdateNoticeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := h.validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMap(err))
	}

	var notice noticeModel.NoticeModel
	if err := h.DB.WithContext(c.UserContext()).First(&notice, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Notice not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load notice")
	}

	if req.Title != nil {
		notice.Title = strings.TrimSpace(*req.Title)
	}
	if req.Body != nil {
		notice.Body = *req.Body
	}
	if len(req.Audience) > 0 {
		notice.Audience = req.Audience
	}
	if req.IsPinned != nil {
		notice.IsPinned = *req.IsPinned
	}

	if err := h.DB.WithContext(c.UserContext()).Save(&notice).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update notice")
	}
	return helper.JsonUpdated(c, "Notice updated", notice)
}

// DELETE /api/notices/:id (admin)
func (h *NoticeController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid notice id")
	}

	res := h.DB.WithContext(c.UserContext()).Delete(&noticeModel.NoticeModel{}, "id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete notice")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Notice not found")
	}
	return helper.JsonDeleted(c, "Notice deleted", fiber.Map{"id": id})
}
