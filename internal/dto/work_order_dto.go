package dto

import "time"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type WorkOrderRequest struct {
	Name      string `json:"name"       validate:"required,min=1"`
	Status    string `json:"status"`
	VehicleID string `json:"vehicle_id" validate:"required,uuid"`
}

type UpdateWorkOrderRequest struct {
	Name   *string `json:"name"   validate:"omitempty,min=1"`
	Status *string `json:"status"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type WorkOrderResponse struct {
	ID        string           `json:"id"`
	Name      string           `json:"name"`
	Status    string           `json:"status"`
	VehicleID string           `json:"vehicle_id"`
	Vehicle   *VehicleResponse `json:"vehicle,omitempty"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}
