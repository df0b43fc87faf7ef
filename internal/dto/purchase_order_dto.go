package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ─── Request DTOs ────────────────────────────────────────────────────────────

// PurchaseOrderRequest is used by both the admin endpoints (branch_id in the
// body) and the branch-scoped my-bills endpoints (branch_id from the path, the
// body value ignored).
type PurchaseOrderRequest struct {
	Number   int             `json:"number"    validate:"required,min=1"`
	Amount   decimal.Decimal `json:"amount"    validate:"required"`
	Expires  bool            `json:"expires"`
	DueDate  *Date           `json:"due_date"`
	BranchID string          `json:"branch_id" validate:"omitempty,uuid"`
}

type UpdatePurchaseOrderRequest struct {
	Number  *int             `json:"number" validate:"omitempty,min=1"`
	Amount  *decimal.Decimal `json:"amount"`
	Expires *bool            `json:"expires"`
	DueDate *Date            `json:"due_date"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type PurchaseOrderResponse struct {
	ID        string          `json:"id"`
	Number    int             `json:"number"`
	Amount    decimal.Decimal `json:"amount"`
	Expires   bool            `json:"expires"`
	DueDate   *Date           `json:"due_date"`
	FilePath  string          `json:"file_path"`
	BranchID  string          `json:"branch_id"`
	Branch    *BranchResponse `json:"branch,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}
