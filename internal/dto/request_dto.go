package dto

import "time"

// Service request DTOs. The tire_* fields only matter when type is "Gomeria"
// and verification_type only when type is "Verificaciones"; enum membership is
// checked at the service layer because the wire values contain spaces.

// ─── Request DTOs ────────────────────────────────────────────────────────────

type ServiceRequestCreate struct {
	Type            string  `json:"type"             validate:"required"`
	Status          string  `json:"status"`
	Details         string  `json:"details"`
	Odometer        int     `json:"odometer"         validate:"min=0"`
	AppointmentDate *Date   `json:"appointment_date"`
	AlternativeDate *Date   `json:"alternative_date"`
	Emergency       bool    `json:"emergency"`
	Zone            string  `json:"zone"`
	UserValidation  bool    `json:"user_validation"`

	VerificationType *string `json:"verification_type"`

	TireQuantity         *int    `json:"tire_quantity" validate:"omitempty,min=1"`
	TireBrand            string  `json:"tire_brand"`
	TireAlternativeBrand string  `json:"tire_alternative_brand"`
	TireMeasure          string  `json:"tire_measure"`
	TireReason           *string `json:"tire_reason"`

	VehicleID string `json:"vehicle_id" validate:"required,uuid"`
	UserID    string `json:"user_id"    validate:"required,uuid"`
}

type ServiceRequestUpdate struct {
	Type            *string `json:"type"`
	Status          *string `json:"status"`
	Details         *string `json:"details"`
	Odometer        *int    `json:"odometer" validate:"omitempty,min=0"`
	AppointmentDate *Date   `json:"appointment_date"`
	AlternativeDate *Date   `json:"alternative_date"`
	Emergency       *bool   `json:"emergency"`
	Zone            *string `json:"zone"`
	UserValidation  *bool   `json:"user_validation"`

	VerificationType *string `json:"verification_type"`

	TireQuantity         *int    `json:"tire_quantity" validate:"omitempty,min=1"`
	TireBrand            *string `json:"tire_brand"`
	TireAlternativeBrand *string `json:"tire_alternative_brand"`
	TireMeasure          *string `json:"tire_measure"`
	TireReason           *string `json:"tire_reason"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ServiceRequestResponse struct {
	ID              string `json:"id"`
	Type            string `json:"type"`
	Status          string `json:"status"`
	Details         string `json:"details"`
	Odometer        int    `json:"odometer"`
	AppointmentDate *Date  `json:"appointment_date"`
	AlternativeDate *Date  `json:"alternative_date"`
	Emergency       bool   `json:"emergency"`
	Zone            string `json:"zone"`
	UserValidation  bool   `json:"user_validation"`

	VerificationType *string `json:"verification_type"`

	TireQuantity         *int    `json:"tire_quantity"`
	TireBrand            string  `json:"tire_brand"`
	TireAlternativeBrand string  `json:"tire_alternative_brand"`
	TireMeasure          string  `json:"tire_measure"`
	TireReason           *string `json:"tire_reason"`
	TireImage            string  `json:"tire_image"`

	ApproverUserID *string          `json:"approver_user_id"`
	UserID         string           `json:"user_id"`
	VehicleID      string           `json:"vehicle_id"`
	User           *UserResponse    `json:"user,omitempty"`
	Vehicle        *VehicleResponse `json:"vehicle,omitempty"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`
}
