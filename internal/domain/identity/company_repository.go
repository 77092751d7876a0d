package identity

import "context"

// CompanyRepository defines persistence operations for companies
type CompanyRepository interface {
	// FindByID finds a company by its login code
	FindByID(ctx context.Context, id string) (*Company, error)

	// FindAll returns all companies ordered by creation time
	FindAll(ctx context.Context) ([]Company, error)

	// Count returns the total number of companies
	Count(ctx context.Context) (int64, error)

	// Save inserts a new company
	Save(ctx context.Context, company *Company) error

	// Update persists changes to an existing company
	Update(ctx context.Context, company *Company) error
}

// NameCandidateRepository defines persistence operations for submitter
// name candidates
type NameCandidateRepository interface {
	// ListByCompany returns all candidate names for a company, sorted ascending
	ListByCompany(ctx context.Context, companyID string) ([]string, error)

	// Add inserts a (company, name) pair. Inserting an existing pair or an
	// empty name is a no-op.
	Add(ctx context.Context, companyID, name string) error
}
