package dto

import "time"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type NotificationRequest struct {
	Title     string `json:"title"      validate:"required,min=1"`
	Message   string `json:"message"`
	Type      string `json:"type"       validate:"required,oneof=suggestion reminder workflow"`
	IsRead    bool   `json:"is_read"`
	VehicleID string `json:"vehicle_id" validate:"required,uuid"`
}

// NotificationFilterRequest narrows the listing; nil fields are not applied.
type NotificationFilterRequest struct {
	Title     *string `json:"title"`
	Message   *string `json:"message"`
	Type      *string `json:"type"    validate:"omitempty,oneof=suggestion reminder workflow"`
	IsRead    *bool   `json:"is_read"`
	VehicleID *string `json:"vehicle_id" validate:"omitempty,uuid"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type NotificationResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Type      string    `json:"type"`
	IsRead    bool      `json:"is_read"`
	VehicleID string    `json:"vehicle_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
