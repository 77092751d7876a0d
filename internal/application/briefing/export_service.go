package briefing

import (
	"context"
	"fmt"

	"github.com/kyrec/backend/internal/domain/briefing"
	"go.uber.org/zap"
)

// Renderer produces the printable document for a record
type Renderer interface {
	Render(record *briefing.Record) ([]byte, error)
}

// ExportService renders records into downloadable xlsx documents
type ExportService struct {
	recordRepo briefing.RecordRepository
	renderer   Renderer
	logger     *zap.Logger
}

// NewExportService creates a new export service
func NewExportService(recordRepo briefing.RecordRepository, renderer Renderer, logger *zap.Logger) *ExportService {
	return &ExportService{
		recordRepo: recordRepo,
		renderer:   renderer,
		logger:     logger,
	}
}

// Export renders one record owned by the company into the fixed template.
// Exporting never mutates the record or the template asset.
func (s *ExportService) Export(ctx context.Context, companyID, recordID string) (*ExportResult, error) {
	record, err := s.recordRepo.FindByID(ctx, companyID, recordID)
	if err != nil {
		return nil, err
	}

	data, err := s.renderer.Render(record)
	if err != nil {
		s.logger.Error("Failed to render record",
			zap.String("company_id", companyID),
			zap.String("record_id", recordID), zap.Error(err))
		return nil, err
	}

	s.logger.Info("Record exported",
		zap.String("company_id", companyID),
		zap.String("record_id", recordID))

	return &ExportResult{
		Filename: exportFilename(record),
		Data:     data,
	}, nil
}

func exportFilename(record *briefing.Record) string {
	if record.WorkDate != "" {
		return fmt.Sprintf("KY記録_%s.xlsx", record.WorkDate)
	}
	return fmt.Sprintf("KY記録_%s.xlsx", record.ID)
}
