package dto

// Branch-scoped fleet DTOs. The vehicle surface is deliberately narrower than
// the admin one: supermanagers maintain operational data only, compliance and
// insurance fields stay admin-owned.

// ─── Vehicle ─────────────────────────────────────────────────────────────────

type MyFleetVehicleRequest struct {
	RegistrationPlate string `json:"registration_plate" validate:"required,min=1,max=25"`
	Brand             string `json:"brand"              validate:"required,min=1"`
	Model             string `json:"model"              validate:"required,min=1"`
	Year              int    `json:"year"               validate:"required,min=1900"`
	Chassis           string `json:"chassis"`

	FireExtinguisherExpirationDate *Date `json:"fire_extinguisher_expiration_date"`
	VTVExpirationDate              *Date `json:"vtv_expiration_date"`
	DocumentsExpirationDate        *Date `json:"documents_expiration_date"`
	NextServiceDate                *Date `json:"next_service_date"`

	PolicyNumber  string `json:"policy_number"`
	EngravedParts bool   `json:"engraved_parts"`
	IsActive      *bool  `json:"is_active"`
}

type MyFleetVehicleUpdate struct {
	RegistrationPlate *string `json:"registration_plate" validate:"omitempty,min=1,max=25"`
	Brand             *string `json:"brand"              validate:"omitempty,min=1"`
	Model             *string `json:"model"              validate:"omitempty,min=1"`
	Year              *int    `json:"year"               validate:"omitempty,min=1900"`
	Chassis           *string `json:"chassis"`

	FireExtinguisherExpirationDate *Date `json:"fire_extinguisher_expiration_date"`
	VTVExpirationDate              *Date `json:"vtv_expiration_date"`
	DocumentsExpirationDate        *Date `json:"documents_expiration_date"`
	NextServiceDate                *Date `json:"next_service_date"`

	PolicyNumber  *string `json:"policy_number"`
	EngravedParts *bool   `json:"engraved_parts"`
	IsActive      *bool   `json:"is_active"`
}

type MyFleetVehicleResponse struct {
	ID                string `json:"id"`
	RegistrationPlate string `json:"registration_plate"`
	Brand             string `json:"brand"`
	Model             string `json:"model"`
	Year              int    `json:"year"`
	Chassis           string `json:"chassis"`

	FireExtinguisherExpirationDate *Date `json:"fire_extinguisher_expiration_date"`
	VTVExpirationDate              *Date `json:"vtv_expiration_date"`
	DocumentsExpirationDate        *Date `json:"documents_expiration_date"`
	NextServiceDate                *Date `json:"next_service_date"`

	PolicyNumber  string `json:"policy_number"`
	EngravedParts bool   `json:"engraved_parts"`
	PolicyFile    string `json:"policy_file"`
	IDCardFile    string `json:"id_card_file"`
	IsActive      bool   `json:"is_active"`

	BranchID *string        `json:"branch_id"`
	Users    []UserResponse `json:"users"`
}

// ─── User ────────────────────────────────────────────────────────────────────

type MyFleetUserRequest struct {
	Username  string  `json:"username"   validate:"required,username"`
	Password  string  `json:"password"   validate:"required,min=8,max=32"`
	Email     string  `json:"email"      validate:"required,email"`
	FirstName string  `json:"first_name" validate:"required,min=1,max=40"`
	LastName  string  `json:"last_name"  validate:"required,min=1,max=40"`
	Phone     string  `json:"phone"`
	Job       string  `json:"job"`
	Role      string  `json:"role"`
	IsActive  *bool   `json:"is_active"`
	VehicleID *string `json:"vehicle_id" validate:"omitempty,uuid"`
}

type MyFleetUserUpdate struct {
	Username  *string `json:"username"   validate:"omitempty,username"`
	Password  *string `json:"password"   validate:"omitempty,min=8,max=32"`
	Email     *string `json:"email"      validate:"omitempty,email"`
	FirstName *string `json:"first_name" validate:"omitempty,min=1,max=40"`
	LastName  *string `json:"last_name"  validate:"omitempty,min=1,max=40"`
	Phone     *string `json:"phone"`
	Job       *string `json:"job"`
	Role      *string `json:"role"`
	IsActive  *bool   `json:"is_active"`
	VehicleID *string `json:"vehicle_id" validate:"omitempty,uuid"`
}
