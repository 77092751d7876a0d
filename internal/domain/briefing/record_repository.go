package briefing

import (
	"context"
	"time"
)

// RecordRepository defines persistence operations for KY records. Every
// read and write is parameterized by the owning company; an identifier from
// another tenant must behave exactly like a missing one.
type RecordRepository interface {
	// Insert stores a newly created record
	Insert(ctx context.Context, record *Record) error

	// Update persists the mutable fields of an existing record, scoped to
	// (record.ID, record.CompanyID). Returns false when no row matched.
	Update(ctx context.Context, record *Record) (bool, error)

	// FindByID loads a record owned by the company, or shared.ErrNotFound
	FindByID(ctx context.Context, companyID, id string) (*Record, error)

	// FindSummaries returns up to limit summaries for the company,
	// most-recently-created first
	FindSummaries(ctx context.Context, companyID string, limit int) ([]Summary, error)

	// DeleteOlderThan removes every record, across all companies, created
	// before the cutoff. Returns the number of deleted rows.
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}
