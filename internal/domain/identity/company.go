package identity

import (
	"crypto/rand"
	"math/big"
	"time"

	"github.com/kyrec/backend/internal/domain/shared"
	"golang.org/x/crypto/bcrypt"
)

// Password cost for bcrypt
const bcryptCost = 12

// Generated passwords must be long enough to hand out as the only credential.
const generatedPasswordLength = 20

const passwordAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// Company represents a company account in the multi-tenant system.
// It is the aggregate root for credential and account-state operations.
// The ID doubles as the login code and as the scoping key for all
// tenant-owned data.
type Company struct {
	ID           string    `gorm:"type:varchar(50);primaryKey"`
	Name         string    `gorm:"type:varchar(200);not null"`
	PasswordHash string    `gorm:"type:varchar(200);not null"`
	IsAdmin      bool      `gorm:"not null;default:false"`
	IsEnabled    bool      `gorm:"not null;default:true"`
	CreatedAt    time.Time `gorm:"not null"`
}

// TableName returns the table name for GORM
func (Company) TableName() string {
	return "companies"
}

// NewCompany creates a new company with a freshly hashed password
func NewCompany(id, name, password string, isAdmin bool) (*Company, error) {
	if err := validateCompanyID(id); err != nil {
		return nil, err
	}
	if err := validateCompanyName(name); err != nil {
		return nil, err
	}
	hash, err := HashPassword(password)
	if err != nil {
		return nil, err
	}

	return &Company{
		ID:           id,
		Name:         name,
		PasswordHash: hash,
		IsAdmin:      isAdmin,
		IsEnabled:    true,
		CreatedAt:    time.Now(),
	}, nil
}

// VerifyPassword verifies if the provided password matches the stored hash
func (c *Company) VerifyPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(c.PasswordHash), []byte(password)) == nil
}

// SetEnabled flips the enabled flag. Admin accounts cannot be disabled;
// the call is a silent no-op for them. Idempotent.
func (c *Company) SetEnabled(enabled bool) {
	if c.IsAdmin {
		return
	}
	c.IsEnabled = enabled
}

// ChangePassword replaces the stored hash after verifying the old password
func (c *Company) ChangePassword(oldPassword, newPassword string) error {
	if !c.VerifyPassword(oldPassword) {
		return shared.NewDomainError("BAD_PASSWORD", "Current password is incorrect")
	}
	if len(newPassword) < 8 {
		return shared.NewDomainError("INVALID_PASSWORD", "Password must be at least 8 characters")
	}
	hash, err := HashPassword(newPassword)
	if err != nil {
		return err
	}
	c.PasswordHash = hash
	return nil
}

// ResetPassword generates a random password, stores only its hash and
// returns the plaintext exactly once. Admin accounts are not resettable;
// callers must guard on IsAdmin before invoking.
func (c *Company) ResetPassword() (string, error) {
	if c.IsAdmin {
		return "", shared.NewDomainError("FORBIDDEN", "Admin passwords cannot be reset")
	}
	password, err := GeneratePassword(generatedPasswordLength)
	if err != nil {
		return "", err
	}
	hash, err := HashPassword(password)
	if err != nil {
		return "", err
	}
	c.PasswordHash = hash
	return password, nil
}

// HashPassword hashes a plaintext password with bcrypt
func HashPassword(password string) (string, error) {
	if password == "" {
		return "", shared.NewDomainError("INVALID_PASSWORD", "Password cannot be empty")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// GeneratePassword returns a cryptographically random alphanumeric password.
// The result always contains at least one lowercase letter, one uppercase
// letter and one digit.
func GeneratePassword(length int) (string, error) {
	if length < 18 {
		length = 18
	}
	for {
		buf := make([]byte, length)
		for i := range buf {
			n, err := rand.Int(rand.Reader, big.NewInt(int64(len(passwordAlphabet))))
			if err != nil {
				return "", err
			}
			buf[i] = passwordAlphabet[n.Int64()]
		}
		candidate := string(buf)
		if hasLower(candidate) && hasUpper(candidate) && hasDigit(candidate) {
			return candidate, nil
		}
	}
}

func hasLower(s string) bool {
	for _, r := range s {
		if r >= 'a' && r <= 'z' {
			return true
		}
	}
	return false
}

func hasUpper(s string) bool {
	for _, r := range s {
		if r >= 'A' && r <= 'Z' {
			return true
		}
	}
	return false
}

func hasDigit(s string) bool {
	for _, r := range s {
		if r >= '0' && r <= '9' {
			return true
		}
	}
	return false
}

// Validation functions

func validateCompanyID(id string) error {
	if id == "" {
		return shared.NewDomainError("INVALID_COMPANY_ID", "Company ID cannot be empty")
	}
	if len(id) > 50 {
		return shared.NewDomainError("INVALID_COMPANY_ID", "Company ID cannot exceed 50 characters")
	}
	return nil
}

func validateCompanyName(name string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Company name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Company name cannot exceed 200 characters")
	}
	return nil
}
