package handler

import (
	"time"

	appidentity "github.com/kyrec/backend/internal/application/identity"
)

// LoginRequest is the login payload
type LoginRequest struct {
	CompanyID string `json:"company_id" binding:"required"`
	Password  string `json:"password" binding:"required"`
}

// LoginResponse carries the issued session token and account info
type LoginResponse struct {
	AccessToken string          `json:"access_token"`
	ExpiresAt   time.Time       `json:"expires_at"`
	TokenType   string          `json:"token_type"`
	Company     CompanyResponse `json:"company"`
}

// CompanyResponse is the public view of a company account
type CompanyResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	IsAdmin   bool      `json:"is_admin"`
	IsEnabled bool      `json:"is_enabled"`
	CreatedAt time.Time `json:"created_at"`
}

// ChangePasswordRequest is the self-service password change payload
type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=8"`
}

// SetEnabledRequest toggles an account
type SetEnabledRequest struct {
	Enabled *bool `json:"enabled" binding:"required"`
}

// ResetPasswordResponse carries the one-time generated password
type ResetPasswordResponse struct {
	CompanyID string `json:"company_id"`
	Password  string `json:"password"`
}

func companyResponse(info appidentity.CompanyInfo) CompanyResponse {
	return CompanyResponse{
		ID:        info.ID,
		Name:      info.Name,
		IsAdmin:   info.IsAdmin,
		IsEnabled: info.IsEnabled,
		CreatedAt: info.CreatedAt,
	}
}
