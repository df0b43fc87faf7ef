package dto

import "time"

// ─── Request DTOs ────────────────────────────────────────────────────────────

// DriverLicenseUploadRequest is bound from the multipart form; the file itself
// travels as the "file" part and the owner comes from the path.
type DriverLicenseUploadRequest struct {
	ExpirationDate Date `form:"expiration_date" validate:"required"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type DriverLicenseResponse struct {
	ID             string    `json:"id"`
	ExpirationDate Date      `json:"expiration_date"`
	FileName       string    `json:"file_name"`
	FileType       string    `json:"file_type"`
	UserID         string    `json:"user_id"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
