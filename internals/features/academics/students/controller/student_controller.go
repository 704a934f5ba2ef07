// file: internals/features/academics/students/controller/student_controller.go
package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kampusku_backend/internals/constants"
	studentDTO "kampusku_backend/internals/features/academics/students/dto"
	studentModel "kampusku_backend/internals/features/academics/students/model"
	authService "kampusku_backend/internals/features/users/auth/service"
	userModel "kampusku_backend/internals/features/users/user/model"
	helper "kampusku_backend/internals/helpers"
)

type StudentController struct {
	DB       *gorm.DB
	Hasher   authService.PasswordHasher
	validate *validator.Validate
}

func NewStudentController(db *gorm.DB, hasher authService.PasswordHasher) *StudentController {
	return &StudentController{DB: db, Hasher: hasher, validate: validator.New()}
}

// POST /api/students (admin). Creates the profile plus its login account
// in one transaction. Bulk-provisioned accounts hash at the lower cost factor.
func (h *StudentController) Provision(c *fiber.Ctx) error {
	var req studentDTO.ProvisionStudentRequest
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
		Role:     constants.RoleStudent,
		IsActive: true,
	}
	student := studentModel.StudentModel{
		StudentNo:    strings.TrimSpace(req.StudentNo),
		Program:      strings.TrimSpace(req.Program),
		YearEnrolled: req.YearEnrolled,
	}

	if err := h.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		student.UserID = user.ID
		return tx.Create(&student).Error
	}); err != nil {
		low := strings.ToLower(err.Error())
		if strings.Contains(low, "duplicate key") || strings.Contains(low, "unique") {
			return helper.JsonError(c, fiber.StatusBadRequest, "Email or student number already registered")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to provision student")
	}

	return helper.JsonCreated(c, "Student provisioned", fiber.Map{
		"user_id":    user.ID,
		"student_id": student.ID,
	})
}

// GET /api/students (admin/faculty)
func (h *StudentController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := h.DB.WithContext(c.UserContext()).
		Model(&studentModel.StudentModel{}).Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list students")
	}

	var students []studentModel.StudentModel
	if err := h.DB.WithContext(c.UserContext()).
		Order("student_no ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&students).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list students")
	}
	return helper.JsonList(c, "ok", students,
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}
