package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PurchaseOrder belongs to a branch. When Expires is set, DueDate must not be
// in the past at creation time (validated at the schema layer).
type PurchaseOrder struct {
	Base
	Number   int             `gorm:"not null"`
	Amount   decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Expires  bool            `gorm:"not null;default:false"`
	DueDate  *time.Time      `gorm:"type:date"`
	FilePath string          `gorm:"size:255;not null;default:''"`

	BranchID uuid.UUID `gorm:"type:uuid;not null;index"`

	Branch *Branch `gorm:"foreignKey:BranchID"`
}

func (PurchaseOrder) TableName() string { return "purchase_orders" }
