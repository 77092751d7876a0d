package briefing

import (
	"context"
	"time"

	"github.com/kyrec/backend/internal/domain/briefing"
	"github.com/kyrec/backend/internal/domain/identity"
	"github.com/kyrec/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// RecordService handles KY record operations for the owning company
type RecordService struct {
	recordRepo     briefing.RecordRepository
	candidateRepo  identity.NameCandidateRepository
	retentionYears int
	logger         *zap.Logger
}

// NewRecordService creates a new record service
func NewRecordService(
	recordRepo briefing.RecordRepository,
	candidateRepo identity.NameCandidateRepository,
	retentionYears int,
	logger *zap.Logger,
) *RecordService {
	return &RecordService{
		recordRepo:     recordRepo,
		candidateRepo:  candidateRepo,
		retentionYears: retentionYears,
		logger:         logger,
	}
}

// Create stores a new record for the company and registers its submitter as
// a name candidate. Candidate registration is best-effort; a failure there
// never loses the record.
func (s *RecordService) Create(ctx context.Context, companyID string, input RecordInput) (*RecordView, error) {
	record, err := briefing.NewRecord(companyID, input.toForm())
	if err != nil {
		return nil, err
	}

	if err := s.recordRepo.Insert(ctx, record); err != nil {
		s.logger.Error("Failed to insert record",
			zap.String("company_id", companyID), zap.Error(err))
		return nil, err
	}

	s.registerCandidate(ctx, companyID, record.SubmitterName)

	s.logger.Info("Record created",
		zap.String("company_id", companyID),
		zap.String("record_id", record.ID))
	return recordView(record), nil
}

// Update replaces the mutable fields of an existing record. A record owned
// by another company behaves exactly like a missing one.
func (s *RecordService) Update(ctx context.Context, companyID, recordID string, input RecordInput) (*RecordView, error) {
	record, err := s.recordRepo.FindByID(ctx, companyID, recordID)
	if err != nil {
		return nil, err
	}

	if err := record.Update(input.toForm()); err != nil {
		return nil, err
	}

	matched, err := s.recordRepo.Update(ctx, record)
	if err != nil {
		s.logger.Error("Failed to update record",
			zap.String("company_id", companyID),
			zap.String("record_id", recordID), zap.Error(err))
		return nil, err
	}
	if !matched {
		return nil, shared.ErrNotFound
	}

	s.registerCandidate(ctx, companyID, record.SubmitterName)

	s.logger.Info("Record updated",
		zap.String("company_id", companyID),
		zap.String("record_id", recordID))
	return recordView(record), nil
}

// Get loads one record owned by the company
func (s *RecordService) Get(ctx context.Context, companyID, recordID string) (*RecordView, error) {
	record, err := s.recordRepo.FindByID(ctx, companyID, recordID)
	if err != nil {
		return nil, err
	}
	return recordView(record), nil
}

// List returns up to limit record summaries for the company, newest first
func (s *RecordService) List(ctx context.Context, companyID string, limit int) ([]SummaryView, error) {
	summaries, err := s.recordRepo.FindSummaries(ctx, companyID, limit)
	if err != nil {
		return nil, err
	}

	views := make([]SummaryView, len(summaries))
	for i, summary := range summaries {
		views[i] = summaryView(summary)
	}
	return views, nil
}

// ApplyRetention purges every record, across all companies, older than the
// configured retention window. The cutoff is calendar-accurate. Safe to run
// repeatedly; a sweep with nothing to purge is a no-op.
func (s *RecordService) ApplyRetention(ctx context.Context, now time.Time) (int64, error) {
	cutoff := now.AddDate(-s.retentionYears, 0, 0)

	purged, err := s.recordRepo.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		s.logger.Error("Retention sweep failed", zap.Error(err))
		return 0, err
	}

	if purged > 0 {
		s.logger.Info("Retention sweep purged records",
			zap.Int64("purged", purged),
			zap.Time("cutoff", cutoff))
	}
	return purged, nil
}

func (s *RecordService) registerCandidate(ctx context.Context, companyID, name string) {
	if err := s.candidateRepo.Add(ctx, companyID, name); err != nil {
		s.logger.Warn("Failed to register name candidate",
			zap.String("company_id", companyID),
			zap.String("name", name), zap.Error(err))
	}
}
