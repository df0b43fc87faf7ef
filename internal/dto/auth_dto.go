package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

type LoginRequest struct {
	Username string `json:"username" validate:"required,min=1"`
	Password string `json:"password" validate:"required,min=1"`
}

// RegisterRequest signs up a new super manager together with their first
// organization and branch.
type RegisterRequest struct {
	Username         string `json:"username"          validate:"required,username"`
	Email            string `json:"email"             validate:"required,email"`
	Password         string `json:"password"          validate:"required,min=8,max=32"`
	FirstName        string `json:"first_name"        validate:"required,min=1,max=40"`
	LastName         string `json:"last_name"         validate:"required,min=1,max=40"`
	OrganizationName string `json:"organization_name" validate:"required,min=1"`
	BranchName       string `json:"branch_name"       validate:"required,min=1"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}
