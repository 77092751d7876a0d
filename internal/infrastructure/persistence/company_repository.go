package persistence

import (
	"context"
	"errors"

	"github.com/kyrec/backend/internal/domain/identity"
	"github.com/kyrec/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormCompanyRepository implements identity.CompanyRepository using GORM
type GormCompanyRepository struct {
	db *gorm.DB
}

// NewGormCompanyRepository creates a new GormCompanyRepository
func NewGormCompanyRepository(db *gorm.DB) *GormCompanyRepository {
	return &GormCompanyRepository{db: db}
}

// FindByID finds a company by its login code
func (r *GormCompanyRepository) FindByID(ctx context.Context, id string) (*identity.Company, error) {
	var company identity.Company
	if err := r.db.WithContext(ctx).First(&company, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &company, nil
}

// FindAll returns all companies ordered by creation time
func (r *GormCompanyRepository) FindAll(ctx context.Context) ([]identity.Company, error) {
	var companies []identity.Company
	if err := r.db.WithContext(ctx).
		Order("created_at asc").
		Find(&companies).Error; err != nil {
		return nil, err
	}
	return companies, nil
}

// Count returns the total number of companies
func (r *GormCompanyRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&identity.Company{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Save inserts a new company
func (r *GormCompanyRepository) Save(ctx context.Context, company *identity.Company) error {
	return r.db.WithContext(ctx).Create(company).Error
}

// Update persists changes to an existing company
func (r *GormCompanyRepository) Update(ctx context.Context, company *identity.Company) error {
	result := r.db.WithContext(ctx).
		Model(&identity.Company{}).
		Where("id = ?", company.ID).
		Select("name", "password_hash", "is_enabled").
		Updates(company)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}
