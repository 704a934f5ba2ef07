// file: internals/features/finance/fees/controller/fee_controller.go
package controller

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	feeDTO "kampusku_backend/internals/features/finance/fees/dto"
	feeModel "kampusku_backend/internals/features/finance/fees/model"
	feeService "kampusku_backend/internals/features/finance/fees/service"
	userModel "kampusku_backend/internals/features/users/user/model"
	helper "kampusku_backend/internals/helpers"
)

type FeeController struct {
	DB       *gorm.DB
	validate *validator.Validate
}

func NewFeeController(db *gorm.DB) *FeeController {
	return &FeeController{DB: db, validate: validator.New()}
}

// POST /api/fees (admin)
func (h *FeeController) CreateInvoice(c *fiber.Ctx) error {
	var req feeDTO.CreateInvoiceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := h.validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMap(err))
	}

	inv := feeModel.FeeInvoiceModel{
		StudentID:   req.StudentID,
		OrderID:     fmt.Sprintf("FEE-%s", uuid.NewString()),
		Description: strings.TrimSpace(req.Description),
		Amount:      req.Amount,
		Status:      feeModel.FeePending,
		DueDate:     req.DueDate,
	}
	if err := h.DB.WithContext(c.UserContext()).Create(&inv).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create invoice")
	}
	return helper.JsonCreated(c, "Invoice created", inv)
}

// GET /api/fees?student_id= (authed)
func (h *FeeController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := h.DB.WithContext(c.UserContext()).Model(&feeModel.FeeInvoiceModel{})
	if raw := c.Query("student_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid student_id")
		}
		q = q.Where("student_id = ?", id)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list invoices")
	}

	var rows []feeModel.FeeInvoiceModel
	if err := q.Order("created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list invoices")
	}
	return helper.JsonList(c, "ok", rows,
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// POST /api/fees/:id/pay (authed). Returns a Snap token the client uses
// to complete payment at the gateway.
func (h *FeeController) Pay(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid invoice id")
	}

	var inv feeModel.FeeInvoiceModel
	if err := h.DB.WithContext(c.UserContext()).First(&inv, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Invoice not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load invoice")
	}
	if inv.Status == feeModel.FeePaid {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invoice already paid")
	}

	userID, err := helper.GetUserID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	var payer userModel.UserModel
	if err := h.DB.WithContext(c.UserContext()).
		Select("full_name", "email").
		First(&payer, "id = ?", userID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load payer")
	}

	token, err := feeService.GenerateSnapToken(inv, payer.FullName, payer.Email)
	if err != nil {
		log.Println("[ERROR] midtrans snap token:", err)
		return helper.JsonError(c, fiber.StatusBadGateway, "Payment gateway unavailable")
	}

	return helper.JsonOK(c, "Payment initiated", fiber.Map{
		"order_id":   inv.OrderID,
		"snap_token": token,
	})
}

// POST /api/fees/webhook (public, called by the gateway)
func (h *FeeController) HandleGatewayNotification(c *fiber.Ctx) error {
	var body map[string]interface{}
	if err := c.BodyParser(&body); err != nil {
		return c.SendStatus(fiber.StatusBadRequest)
	}

	orderID, _ := body["order_id"].(string)
	txStatus, _ := body["transaction_status"].(string)
	if orderID == "" || txStatus == "" {
		return c.SendStatus(fiber.StatusBadRequest)
	}

	var inv feeModel.FeeInvoiceModel
	if err := h.DB.WithContext(c.UserContext()).
		First(&inv, "order_id = ?", orderID).Error; err != nil {
		log.Println("[WARN] webhook for unknown order:", orderID)
		return c.SendStatus(fiber.StatusNotFound)
	}

	switch txStatus {
	case "capture", "settlement":
		now := time.Now()
		inv.Status = feeModel.FeePaid
		inv.PaidAt = &now
	case "deny", "failure":
		inv.Status = feeModel.FeeFailed
	case "expire", "cancel":
		inv.Status = feeModel.FeeCancelled
	default:
		inv.Status = feeModel.FeePending
	}

	if err := h.DB.WithContext(c.UserContext()).Save(&inv).Error; err != nil {
		log.Println("[ERROR] webhook update failed:", err)
		return c.SendStatus(fiber.StatusInternalServerError)
	}
	return c.SendStatus(fiber.StatusOK)
}
