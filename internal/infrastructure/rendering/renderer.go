package rendering

import (
	"fmt"
	"os"
	"strings"

	"github.com/kyrec/backend/internal/domain/briefing"
	"github.com/kyrec/backend/internal/domain/shared"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

// TemplateRenderer projects a KY record onto the fixed xlsx template. The
// template on disk is never modified; every render works on a fresh
// in-memory copy, so re-rendering the same record is idempotent.
type TemplateRenderer struct {
	templatePath string
	logger       *zap.Logger
}

// NewTemplateRenderer creates a renderer bound to the configured template asset
func NewTemplateRenderer(templatePath string, logger *zap.Logger) *TemplateRenderer {
	return &TemplateRenderer{
		templatePath: templatePath,
		logger:       logger,
	}
}

// Render produces the xlsx document bytes for a record
func (r *TemplateRenderer) Render(record *briefing.Record) ([]byte, error) {
	if _, err := os.Stat(r.templatePath); err != nil {
		r.logger.Error("Template asset not found", zap.String("path", r.templatePath))
		return nil, shared.ErrTemplateMissing
	}

	f, err := excelize.OpenFile(r.templatePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open template: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)

	if err := r.writeScalars(f, sheet, record); err != nil {
		return nil, err
	}
	if err := r.writeFocus(f, sheet, record); err != nil {
		return nil, err
	}
	for _, layout := range checklistLayouts {
		if err := r.writeChecklist(f, sheet, layout, record); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to serialize document: %w", err)
	}
	return buf.Bytes(), nil
}

func (r *TemplateRenderer) writeScalars(f *excelize.File, sheet string, record *briefing.Record) error {
	first, rest := splitWorkContent(record.WorkContent)

	values := map[string]string{
		cellWorkTitle:    record.WorkTitle,
		cellWorkCompany:  record.WorkCompany,
		cellPhone:        record.Phone,
		cellWorkDate:     record.WorkDate,
		cellStartTime:    record.StartTime,
		cellEndTime:      record.EndTime,
		cellLocation:     record.Location,
		cellPeopleCount:  record.PeopleCount,
		cellWorkContent1: first,
		cellWorkContent2: rest,
		cellNotes:        record.Notes,
	}
	for cell, value := range values {
		if err := f.SetCellStr(sheet, cell, value); err != nil {
			return fmt.Errorf("failed to write cell %s: %w", cell, err)
		}
	}
	return nil
}

// writeFocus writes the focus instructions with the submitter appended as an
// audit trailer. The trailer is written whenever a submitter name exists,
// even if there are no focus instructions; in that case no leading blank
// line is added.
func (r *TemplateRenderer) writeFocus(f *excelize.File, sheet string, record *briefing.Record) error {
	text := record.FocusInstructions
	if record.SubmitterName != "" {
		trailer := submitterTrailer + record.SubmitterName
		if text == "" {
			text = trailer
		} else {
			text += "\n" + trailer
		}
	}
	return f.SetCellStr(sheet, cellFocus, text)
}

// writeChecklist applies the checkbox convention to every vocabulary cell of
// one group. Regular cells are marked when their label is selected. The
// "other" cell is driven by the free-text elaboration: non-empty elaboration
// is injected into the cell's parenthesized span and the cell marked; empty
// elaboration restores the unmarked literal.
func (r *TemplateRenderer) writeChecklist(f *excelize.File, sheet string, layout checklistLayout, record *briefing.Record) error {
	var list briefing.Checklist
	switch layout.group {
	case briefing.GroupHazards:
		list = record.Hazards
	case briefing.GroupAvoidance:
		list = record.Avoidance
	case briefing.GroupFinish:
		list = record.Finish
	}

	for label, cell := range layout.cells {
		current, err := f.GetCellValue(sheet, cell)
		if err != nil {
			return fmt.Errorf("failed to read cell %s: %w", cell, err)
		}

		var next string
		if label == layout.otherLabel {
			if list.Other != "" {
				next = Mark(InjectParenthetical(Unmark(current), list.Other))
			} else {
				next = Unmark(current)
			}
		} else if list.Contains(label) {
			next = Mark(current)
		} else {
			next = Unmark(current)
		}

		if next == current {
			continue
		}
		if err := f.SetCellStr(sheet, cell, next); err != nil {
			return fmt.Errorf("failed to write cell %s: %w", cell, err)
		}
	}
	return nil
}

// splitWorkContent splits the multi-line work description between the
// primary and secondary content cells: the first line goes to the primary
// position, everything else rejoined with line breaks goes to the secondary.
func splitWorkContent(content string) (first, rest string) {
	if content == "" {
		return "", ""
	}
	lines := strings.Split(content, "\n")
	if len(lines) == 1 {
		return lines[0], ""
	}
	return lines[0], strings.Join(lines[1:], "\n")
}
