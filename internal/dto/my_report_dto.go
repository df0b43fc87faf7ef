package dto

// ─── Response DTOs ───────────────────────────────────────────────────────────

type MyReportVehicleResponse struct {
	ID                string         `json:"id"`
	RegistrationPlate string         `json:"registration_plate"`
	IsActive          bool           `json:"is_active"`
	Brand             string         `json:"brand"`
	Model             string         `json:"model"`
	Year              int            `json:"year"`
	Fee               float64        `json:"fee"`
	Users             []UserResponse `json:"users"`
}

type MyReportUserResponse struct {
	UserID    string `json:"user_id"`
	IsActive  bool   `json:"is_active"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}
