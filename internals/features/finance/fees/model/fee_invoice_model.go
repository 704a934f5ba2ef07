package model

import (
	"time"

	"github.com/google/uuid"
)

type FeeStatus string

const (
	FeePending   FeeStatus = "pending"
	FeePaid      FeeStatus = "paid"
	FeeFailed    FeeStatus = "failed"
	FeeCancelled FeeStatus = "cancelled"
)

// FeeInvoiceModel is one billed amount for one student (tuition, exam
// fee, hostel, and so on). OrderID is the reference handed to the
// payment gateway.
type FeeInvoiceModel struct {
	ID          uuid.UUID  `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	StudentID   uuid.UUID  `gorm:"column:student_id;type:uuid;not null;index" json:"student_id"`
	OrderID     string     `gorm:"column:order_id;size:64;uniqueIndex;not null" json:"order_id"`
	Description string     `gorm:"column:description;size:150;not null" json:"description"`
	Amount      int64      `gorm:"column:amount;not null" json:"amount"`
	Status      FeeStatus  `gorm:"column:status;size:15;default:'pending'" json:"status"`
	DueDate     *time.Time `gorm:"column:due_date;type:date" json:"due_date,omitempty"`
	PaidAt      *time.Time `gorm:"column:paid_at;type:timestamptz" json:"paid_at,omitempty"`
	CreatedAt   time.Time  `gorm:"column:created_at;type:timestamptz;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time  `gorm:"column:updated_at;type:timestamptz;autoUpdateTime" json:"updated_at"`
}

func (FeeInvoiceModel) TableName() string {
	return "fee_invoices"
}
