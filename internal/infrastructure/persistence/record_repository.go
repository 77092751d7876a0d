package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/kyrec/backend/internal/domain/briefing"
	"github.com/kyrec/backend/internal/domain/shared"
	"github.com/kyrec/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// recordMutableColumns are the columns rewritten on every update. Identifier,
// owner and creation time are immutable by contract.
var recordMutableColumns = []string{
	"updated_at", "submitter_name", "work_title", "work_company", "phone",
	"work_date", "start_time", "end_time", "location", "people_count",
	"work_content", "hazards_json", "hazards_other", "avoid_json",
	"avoid_other", "focus_instructions", "finish_json", "finish_other", "notes",
}

// GormRecordRepository implements briefing.RecordRepository using GORM
type GormRecordRepository struct {
	db *gorm.DB
}

// NewGormRecordRepository creates a new GormRecordRepository
func NewGormRecordRepository(db *gorm.DB) *GormRecordRepository {
	return &GormRecordRepository{db: db}
}

// Insert stores a newly created record
func (r *GormRecordRepository) Insert(ctx context.Context, record *briefing.Record) error {
	model, err := models.RecordModelFromDomain(record)
	if err != nil {
		return err
	}
	return r.db.WithContext(ctx).Create(model).Error
}

// Update persists the mutable fields of an existing record. The statement is
// scoped to (id, company_id): an identifier owned by another company matches
// zero rows, which is indistinguishable from a missing record.
func (r *GormRecordRepository) Update(ctx context.Context, record *briefing.Record) (bool, error) {
	model, err := models.RecordModelFromDomain(record)
	if err != nil {
		return false, err
	}
	result := r.db.WithContext(ctx).
		Model(&models.RecordModel{}).
		Where("id = ? AND company_id = ?", record.ID, record.CompanyID).
		Select(recordMutableColumns).
		Updates(model)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// FindByID loads a record owned by the company
func (r *GormRecordRepository) FindByID(ctx context.Context, companyID, id string) (*briefing.Record, error) {
	var model models.RecordModel
	if err := r.db.WithContext(ctx).
		Where("id = ? AND company_id = ?", id, companyID).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain()
}

// FindSummaries returns up to limit summaries for the company,
// most-recently-created first
func (r *GormRecordRepository) FindSummaries(ctx context.Context, companyID string, limit int) ([]briefing.Summary, error) {
	if limit <= 0 {
		limit = 50
	}
	var rows []models.RecordModel
	if err := r.db.WithContext(ctx).
		Select("id", "created_at", "updated_at", "submitter_name", "work_title", "work_date", "location").
		Where("company_id = ?", companyID).
		Order("created_at desc").
		Limit(limit).
		Find(&rows).Error; err != nil {
		return nil, err
	}

	summaries := make([]briefing.Summary, len(rows))
	for i, row := range rows {
		summaries[i] = briefing.Summary{
			ID:            row.ID,
			CreatedAt:     row.CreatedAt,
			UpdatedAt:     row.UpdatedAt,
			SubmitterName: row.SubmitterName,
			WorkTitle:     row.WorkTitle,
			WorkDate:      row.WorkDate,
			Location:      row.Location,
		}
	}
	return summaries, nil
}

// DeleteOlderThan removes every record, across all companies, created before
// the cutoff
func (r *GormRecordRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("created_at < ?", cutoff).
		Delete(&models.RecordModel{})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
