package identity

import (
	"context"
	"time"

	"github.com/kyrec/backend/internal/domain/identity"
	"github.com/kyrec/backend/internal/domain/shared"
	"github.com/kyrec/backend/internal/infrastructure/auth"
	"go.uber.org/zap"
)

// RetentionSweeper purges expired records. The sweep runs at every session
// start so a session never begins with stale data still readable.
type RetentionSweeper interface {
	ApplyRetention(ctx context.Context, now time.Time) (int64, error)
}

// AuthService handles company authentication
type AuthService struct {
	companyRepo identity.CompanyRepository
	jwtService  *auth.JWTService
	sweeper     RetentionSweeper
	logger      *zap.Logger
}

// NewAuthService creates a new authentication service
func NewAuthService(
	companyRepo identity.CompanyRepository,
	jwtService *auth.JWTService,
	sweeper RetentionSweeper,
	logger *zap.Logger,
) *AuthService {
	return &AuthService{
		companyRepo: companyRepo,
		jwtService:  jwtService,
		sweeper:     sweeper,
		logger:      logger,
	}
}

// Login authenticates a company and returns a session token. An unknown
// company ID and a wrong password produce the same error so callers cannot
// probe which login codes exist. A disabled account is reported distinctly,
// and only after the password has been verified.
func (s *AuthService) Login(ctx context.Context, input LoginInput) (*LoginResult, error) {
	s.logger.Info("Login attempt", zap.String("company_id", input.CompanyID))

	company, err := s.companyRepo.FindByID(ctx, input.CompanyID)
	if err != nil {
		s.logger.Warn("Unknown company during login", zap.String("company_id", input.CompanyID))
		return nil, shared.NewDomainError("INVALID_CREDENTIALS", "Invalid company ID or password")
	}

	if !company.VerifyPassword(input.Password) {
		s.logger.Warn("Invalid password attempt", zap.String("company_id", input.CompanyID))
		return nil, shared.NewDomainError("INVALID_CREDENTIALS", "Invalid company ID or password")
	}

	if !company.IsEnabled {
		s.logger.Warn("Login attempt for disabled account", zap.String("company_id", input.CompanyID))
		return nil, shared.NewDomainError("ACCOUNT_DISABLED", "Account has been disabled")
	}

	// The session must not start while expired records are still readable
	if _, err := s.sweeper.ApplyRetention(ctx, time.Now()); err != nil {
		s.logger.Error("Retention sweep failed at session start", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to prepare session")
	}

	token, err := s.jwtService.GenerateToken(auth.GenerateTokenInput{
		CompanyID:   company.ID,
		CompanyName: company.Name,
		IsAdmin:     company.IsAdmin,
	})
	if err != nil {
		s.logger.Error("Failed to generate session token", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to generate session token")
	}

	s.logger.Info("Company logged in",
		zap.String("company_id", company.ID),
		zap.Bool("is_admin", company.IsAdmin))

	return &LoginResult{
		AccessToken: token.AccessToken,
		ExpiresAt:   token.ExpiresAt,
		TokenType:   token.TokenType,
		Company:     companyInfo(company),
	}, nil
}

// ChangePassword replaces a company's password after verifying the old one
func (s *AuthService) ChangePassword(ctx context.Context, input ChangePasswordInput) error {
	company, err := s.companyRepo.FindByID(ctx, input.CompanyID)
	if err != nil {
		return err
	}

	if err := company.ChangePassword(input.OldPassword, input.NewPassword); err != nil {
		return err
	}

	if err := s.companyRepo.Update(ctx, company); err != nil {
		s.logger.Error("Failed to persist password change",
			zap.String("company_id", input.CompanyID), zap.Error(err))
		return err
	}

	s.logger.Info("Password changed", zap.String("company_id", input.CompanyID))
	return nil
}

func companyInfo(c *identity.Company) CompanyInfo {
	return CompanyInfo{
		ID:        c.ID,
		Name:      c.Name,
		IsAdmin:   c.IsAdmin,
		IsEnabled: c.IsEnabled,
		CreatedAt: c.CreatedAt,
	}
}
