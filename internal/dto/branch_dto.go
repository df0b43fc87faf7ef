package dto

import "time"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type BranchRequest struct {
	Name                  string  `json:"name"            validate:"required,min=1"`
	CostCenter            string  `json:"cost_center"`
	Area                  string  `json:"area"`
	PurchaseOrderSentDate *Date   `json:"purchase_order_sent_date"`
	ManagerID             *string `json:"manager_id"      validate:"omitempty,uuid"`
	OrganizationID        string  `json:"organization_id" validate:"required,uuid"`
}

type UpdateBranchRequest struct {
	Name                  *string `json:"name"            validate:"omitempty,min=1"`
	CostCenter            *string `json:"cost_center"`
	Area                  *string `json:"area"`
	PurchaseOrderSentDate *Date   `json:"purchase_order_sent_date"`
	ManagerID             *string `json:"manager_id"      validate:"omitempty,uuid"`
	AgentID               *string `json:"agent_id"        validate:"omitempty,uuid"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type BranchResponse struct {
	ID                    string                `json:"id"`
	Name                  string                `json:"name"`
	CostCenter            string                `json:"cost_center"`
	Area                  string                `json:"area"`
	PurchaseOrderSentDate *Date                 `json:"purchase_order_sent_date"`
	ManagerID             string                `json:"manager_id"`
	AgentID               *string               `json:"agent_id"`
	OrganizationID        string                `json:"organization_id"`
	Organization          *OrganizationResponse `json:"organization,omitempty"`
	CreatedAt             time.Time             `json:"created_at"`
	UpdatedAt             time.Time             `json:"updated_at"`
}
