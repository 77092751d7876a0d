package identity

import (
	"context"

	"github.com/kyrec/backend/internal/domain/identity"
	"go.uber.org/zap"
)

// AccountService handles administrative account operations and submitter
// name candidate lookups
type AccountService struct {
	companyRepo   identity.CompanyRepository
	candidateRepo identity.NameCandidateRepository
	logger        *zap.Logger
}

// NewAccountService creates a new account service
func NewAccountService(
	companyRepo identity.CompanyRepository,
	candidateRepo identity.NameCandidateRepository,
	logger *zap.Logger,
) *AccountService {
	return &AccountService{
		companyRepo:   companyRepo,
		candidateRepo: candidateRepo,
		logger:        logger,
	}
}

// ListCompanies returns every company account, oldest first
func (s *AccountService) ListCompanies(ctx context.Context) ([]CompanyInfo, error) {
	companies, err := s.companyRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	infos := make([]CompanyInfo, len(companies))
	for i := range companies {
		infos[i] = companyInfo(&companies[i])
	}
	return infos, nil
}

// SetEnabled toggles a company account. Admin accounts are immune; the call
// succeeds but leaves them enabled. Idempotent.
func (s *AccountService) SetEnabled(ctx context.Context, input SetEnabledInput) (*CompanyInfo, error) {
	company, err := s.companyRepo.FindByID(ctx, input.CompanyID)
	if err != nil {
		return nil, err
	}

	company.SetEnabled(input.Enabled)
	if err := s.companyRepo.Update(ctx, company); err != nil {
		return nil, err
	}

	s.logger.Info("Account state changed",
		zap.String("company_id", company.ID),
		zap.Bool("is_enabled", company.IsEnabled))

	info := companyInfo(company)
	return &info, nil
}

// ResetPassword generates a fresh random password for a company and returns
// the plaintext exactly once. Admin accounts cannot be reset.
func (s *AccountService) ResetPassword(ctx context.Context, companyID string) (*ResetPasswordResult, error) {
	company, err := s.companyRepo.FindByID(ctx, companyID)
	if err != nil {
		return nil, err
	}

	password, err := company.ResetPassword()
	if err != nil {
		return nil, err
	}

	if err := s.companyRepo.Update(ctx, company); err != nil {
		return nil, err
	}

	s.logger.Info("Password reset", zap.String("company_id", companyID))
	return &ResetPasswordResult{CompanyID: companyID, Password: password}, nil
}

// ListNameCandidates returns the submitter name candidates registered for a
// company, sorted ascending
func (s *AccountService) ListNameCandidates(ctx context.Context, companyID string) ([]string, error) {
	return s.candidateRepo.ListByCompany(ctx, companyID)
}
