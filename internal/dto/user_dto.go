package dto

import "time"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CreateUserRequest struct {
	Username  string  `json:"username"   validate:"required,username"`
	Email     string  `json:"email"      validate:"required,email"`
	Password  string  `json:"password"   validate:"required,min=8,max=32"`
	Role      string  `json:"role"       validate:"required"`
	FirstName string  `json:"first_name" validate:"required,min=1,max=40"`
	LastName  string  `json:"last_name"  validate:"required,min=1,max=40"`
	Phone     string  `json:"phone"`
	Job       string  `json:"job"`
	BranchID  *string `json:"branch_id"  validate:"omitempty,uuid"`
	VehicleID *string `json:"vehicle_id" validate:"omitempty,uuid"`
}

type UpdateUserRequest struct {
	Username  *string `json:"username"   validate:"omitempty,username"`
	Email     *string `json:"email"      validate:"omitempty,email"`
	Password  *string `json:"password"   validate:"omitempty,min=8,max=32"`
	Role      *string `json:"role"`
	FirstName *string `json:"first_name" validate:"omitempty,min=1,max=40"`
	LastName  *string `json:"last_name"  validate:"omitempty,min=1,max=40"`
	Phone     *string `json:"phone"`
	Job       *string `json:"job"`
	IsActive  *bool   `json:"is_active"`
	BranchID  *string `json:"branch_id"  validate:"omitempty,uuid"`
	VehicleID *string `json:"vehicle_id" validate:"omitempty,uuid"`
}

// FirstSuperadminRequest bootstraps the very first superadmin account. The
// endpoint refuses once any superadmin exists.
type FirstSuperadminRequest struct {
	Username string `json:"username" validate:"required,username"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=32"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type UserResponse struct {
	ID            string                  `json:"id"`
	Username      string                  `json:"username"`
	Email         string                  `json:"email"`
	Role          string                  `json:"role"`
	FirstName     string                  `json:"first_name"`
	LastName      string                  `json:"last_name"`
	Phone         string                  `json:"phone"`
	Job           string                  `json:"job"`
	IsActive      bool                    `json:"is_active"`
	BranchID      *string                 `json:"branch_id"`
	VehicleID     *string                 `json:"vehicle_id"`
	Branch        *BranchResponse         `json:"branch,omitempty"`
	Vehicle       *VehicleResponse        `json:"vehicle,omitempty"`
	DriverLicense []DriverLicenseResponse `json:"driver_license"`
	CreatedAt     time.Time               `json:"created_at"`
	UpdatedAt     time.Time               `json:"updated_at"`
}
