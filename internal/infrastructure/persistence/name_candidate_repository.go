package persistence

import (
	"context"
	"strings"

	"github.com/kyrec/backend/internal/domain/identity"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormNameCandidateRepository implements identity.NameCandidateRepository
// using GORM
type GormNameCandidateRepository struct {
	db *gorm.DB
}

// NewGormNameCandidateRepository creates a new GormNameCandidateRepository
func NewGormNameCandidateRepository(db *gorm.DB) *GormNameCandidateRepository {
	return &GormNameCandidateRepository{db: db}
}

// ListByCompany returns all candidate names for a company, sorted ascending
func (r *GormNameCandidateRepository) ListByCompany(ctx context.Context, companyID string) ([]string, error) {
	var names []string
	if err := r.db.WithContext(ctx).
		Model(&identity.NameCandidate{}).
		Where("company_id = ?", companyID).
		Order("name asc").
		Pluck("name", &names).Error; err != nil {
		return nil, err
	}
	return names, nil
}

// Add inserts a (company, name) pair. The set is append-only and unique per
// pair, so an existing pair is left untouched; empty names are ignored.
func (r *GormNameCandidateRepository) Add(ctx context.Context, companyID, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil
	}
	candidate := identity.NameCandidate{CompanyID: companyID, Name: name}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&candidate).Error
}
