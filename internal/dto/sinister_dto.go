package dto

import "time"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type SinisterRequest struct {
	DetailsDamage string `json:"details_damage"`
	DetailsEvent  string `json:"details_event"`
	Type          string `json:"type"       validate:"required"`
	Status        string `json:"status"`
	Place         string `json:"place"      validate:"required"`
	Zone          string `json:"zone"`
	VehicleID     string `json:"vehicle_id" validate:"required,uuid"`
	UserID        string `json:"user_id"    validate:"required,uuid"`
}

type UpdateSinisterRequest struct {
	DetailsDamage *string `json:"details_damage"`
	DetailsEvent  *string `json:"details_event"`
	Type          *string `json:"type"`
	Status        *string `json:"status"`
	Place         *string `json:"place"`
	Zone          *string `json:"zone"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type SinisterResponse struct {
	ID            string   `json:"id"`
	Status        string   `json:"status"`
	FilesURLs     []string `json:"files_urls"`
	DetailsDamage string   `json:"details_damage"`
	DetailsEvent  string   `json:"details_event"`
	Type          string   `json:"type"`
	Place         string   `json:"place"`
	Zone          string   `json:"zone"`

	ApproverUserID *string          `json:"approver_user_id"`
	VehicleID      string           `json:"vehicle_id"`
	UserID         string           `json:"user_id"`
	Vehicle        *VehicleResponse `json:"vehicle,omitempty"`
	User           *UserResponse    `json:"user,omitempty"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`
}
