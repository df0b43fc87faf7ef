package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ─── Request DTOs ────────────────────────────────────────────────────────────

type BudgetRequest struct {
	Detail             string          `json:"detail"          validate:"required,min=1"`
	Amount             decimal.Decimal `json:"amount"          validate:"required"`
	Status             string          `json:"status"`
	Approved           bool            `json:"approved"`
	EffectiveUntilDate *Date           `json:"effective_until_date"`
	WorkOrderID        *string         `json:"work_order_id"   validate:"omitempty,uuid"`
	VehicleID          *string         `json:"vehicle_id"      validate:"omitempty,uuid"`
	OrganizationID     *string         `json:"organization_id" validate:"omitempty,uuid"`
	UserID             *string         `json:"user_id"         validate:"omitempty,uuid"`
}

type UpdateBudgetRequest struct {
	Detail             *string          `json:"detail" validate:"omitempty,min=1"`
	Amount             *decimal.Decimal `json:"amount"`
	Status             *string          `json:"status"`
	Approved           *bool            `json:"approved"`
	ApprovalDate       *Date            `json:"approval_date"`
	EffectiveUntilDate *Date            `json:"effective_until_date"`
	WorkOrderID        *string          `json:"work_order_id" validate:"omitempty,uuid"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type BudgetResponse struct {
	ID                 string          `json:"id"`
	Detail             string          `json:"detail"`
	AllocationFile     string          `json:"allocation_file"`
	Amount             decimal.Decimal `json:"amount"`
	Status             string          `json:"status"`
	Approved           bool            `json:"approved"`
	ApprovalDate       *Date           `json:"approval_date"`
	EffectiveUntilDate *Date           `json:"effective_until_date"`
	WorkOrderID        *string         `json:"work_order_id"`
	VehicleID          *string         `json:"vehicle_id"`
	OrganizationID     *string         `json:"organization_id"`
	UserID             *string         `json:"user_id"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
}
