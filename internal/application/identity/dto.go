package identity

import "time"

// LoginInput contains the input for a company login
type LoginInput struct {
	CompanyID string
	Password  string
}

// LoginResult contains the result of a successful login
type LoginResult struct {
	AccessToken string
	ExpiresAt   time.Time
	TokenType   string
	Company     CompanyInfo
}

// CompanyInfo contains company account information exposed to callers.
// Credential material never leaves the service layer.
type CompanyInfo struct {
	ID        string
	Name      string
	IsAdmin   bool
	IsEnabled bool
	CreatedAt time.Time
}

// ChangePasswordInput contains the input for a self-service password change
type ChangePasswordInput struct {
	CompanyID   string
	OldPassword string
	NewPassword string
}

// SetEnabledInput contains the input for toggling an account
type SetEnabledInput struct {
	CompanyID string
	Enabled   bool
}

// ResetPasswordResult carries the generated plaintext password. It is
// returned exactly once and never stored.
type ResetPasswordResult struct {
	CompanyID string
	Password  string
}
