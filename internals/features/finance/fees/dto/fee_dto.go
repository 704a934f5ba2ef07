// file: internals/features/finance/fees/dto/fee_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateInvoiceRequest struct {
	StudentID   uuid.UUID  `json:"student_id" validate:"required"`
	Description string     `json:"description" validate:"required,max=150"`
	Amount      int64      `json:"amount" validate:"required,gt=0"`
	DueDate     *time.Time `json:"due_date"`
}
