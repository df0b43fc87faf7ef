package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Budget is a money allocation, optionally tied to a work order, vehicle,
// organization and user. AllocationFile stores the uploaded filename.
type Budget struct {
	Base
	Detail             string          `gorm:"not null"`
	AllocationFile     string          `gorm:"default:''"`
	Amount             decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Status             BudgetStatus    `gorm:"not null"`
	ApprovalDate       *time.Time      `gorm:"type:date"`
	Approved           bool            `gorm:"not null;default:false"`
	EffectiveUntilDate *time.Time      `gorm:"type:date"`

	WorkOrderID    *uuid.UUID `gorm:"type:uuid"`
	VehicleID      *uuid.UUID `gorm:"type:uuid"`
	OrganizationID *uuid.UUID `gorm:"type:uuid"`
	UserID         *uuid.UUID `gorm:"type:uuid"`
}

func (Budget) TableName() string { return "budgets" }
