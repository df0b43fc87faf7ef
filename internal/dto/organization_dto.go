package dto

import "time"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type OrganizationRequest struct {
	Name           string  `json:"name"             validate:"required,min=1"`
	BusinessName   string  `json:"business_name"    validate:"required,min=1"`
	SuperManagerID *string `json:"super_manager_id" validate:"omitempty,uuid"`
	ContactID      *string `json:"contact_id"       validate:"omitempty,uuid"`
}

type UpdateOrganizationRequest struct {
	Name           *string `json:"name"             validate:"omitempty,min=1"`
	BusinessName   *string `json:"business_name"    validate:"omitempty,min=1"`
	SuperManagerID *string `json:"super_manager_id" validate:"omitempty,uuid"`
	ContactID      *string `json:"contact_id"       validate:"omitempty,uuid"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type OrganizationResponse struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	BusinessName   string    `json:"business_name"`
	SuperManagerID string    `json:"super_manager_id"`
	ContactID      string    `json:"contact_id"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
