// file: internals/features/academics/faculty/controller/faculty_controller.go
package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kampusku_backend/internals/constants"
	facultyDTO "kampusku_backend/internals/features/academics/faculty/dto"
	facultyModel "kampusku_backend/internals/features/academics/faculty/model"
	authService "kampusku_backend/internals/features/users/auth/service"
	userModel "kampusku_backend/internals/features/users/user/model"
	helper "kampusku_backend/internals/helpers"
)

type FacultyController struct {
	DB       *gorm.DB
	Hasher   authService.PasswordHasher
	validate *validator.Validate
}

func NewFacultyController(db *gorm.DB, hasher authService.PasswordHasher) *FacultyController {
	return &FacultyController{DB: db, Hasher: hasher, validate: validator.New()}
}

// POST /api/faculty (admin)
func (h *FacultyController) Provision(c *fiber.Ctx) error {
	var req facultyDTO.ProvisionFacultyRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := h.validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMap(err))
	}

	hash, err := h.Hasher.Hash(req.Password, authService.CostBulk())
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	user := userModel.UserModel{
		Email:    strings.ToLower(strings.TrimSpace(req.Email)),
		Password: hash,
		FullName: strings.TrimSpace(req.FullName),
		Role:     constants.RoleFaculty,
		IsActive: true,
	}
	fac := facultyModel.FacultyModel{
		EmployeeNo: strings.TrimSpace(req.EmployeeNo),
		Department: strings.TrimSpace(req.Department),
	}

	if err := h.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		fac.UserID = user.ID
		return tx.Create(&fac).Error
	}); err != nil {
		low := strings.ToLower(err.Error())
		if strings.Contains(low, "duplicate key") || strings.Contains(low, "unique") {
			return helper.JsonError(c, fiber.StatusBadRequest, "Email or employee number already registered")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to provision faculty")
	}

	return helper.JsonCreated(c, "Faculty provisioned", fiber.Map{
		"user_id":    user.ID,
		"faculty_id": fac.ID,
	})
}

// GET /api/faculty (admin)
func (h *FacultyController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := h.DB.WithContext(c.UserContext()).
		Model(&facultyModel.FacultyModel{}).Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list faculty")
	}

	var rows []facultyModel.FacultyModel
	if err := h.DB.WithContext(c.UserContext()).
		Order("employee_no ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list faculty")
	}
	return helper.JsonList(c, "ok", rows,
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}
