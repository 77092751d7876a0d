package briefing

import (
	"time"

	"github.com/kyrec/backend/internal/domain/briefing"
)

// ChecklistInput carries one checklist group's selections
type ChecklistInput struct {
	Selected []string
	Other    string
}

// RecordInput contains the caller-mutable fields of a KY record, used for
// both creation and update
type RecordInput struct {
	SubmitterName     string
	WorkTitle         string
	WorkCompany       string
	Phone             string
	WorkDate          string
	StartTime         string
	EndTime           string
	Location          string
	PeopleCount       string
	WorkContent       string
	Hazards           ChecklistInput
	Avoidance         ChecklistInput
	Finish            ChecklistInput
	FocusInstructions string
	Notes             string
}

// RecordView is the full record as returned to its owning company
type RecordView struct {
	ID                string
	CreatedAt         time.Time
	UpdatedAt         time.Time
	SubmitterName     string
	WorkTitle         string
	WorkCompany       string
	Phone             string
	WorkDate          string
	StartTime         string
	EndTime           string
	Location          string
	PeopleCount       string
	WorkContent       string
	Hazards           ChecklistInput
	Avoidance         ChecklistInput
	Finish            ChecklistInput
	FocusInstructions string
	Notes             string
}

// SummaryView is the reduced listing projection
type SummaryView struct {
	ID            string
	CreatedAt     time.Time
	UpdatedAt     time.Time
	SubmitterName string
	WorkTitle     string
	WorkDate      string
	Location      string
}

// ExportResult carries a rendered document and its suggested filename
type ExportResult struct {
	Filename string
	Data     []byte
}

func (in RecordInput) toForm() briefing.Form {
	return briefing.Form{
		SubmitterName:     in.SubmitterName,
		WorkTitle:         in.WorkTitle,
		WorkCompany:       in.WorkCompany,
		Phone:             in.Phone,
		WorkDate:          in.WorkDate,
		StartTime:         in.StartTime,
		EndTime:           in.EndTime,
		Location:          in.Location,
		PeopleCount:       in.PeopleCount,
		WorkContent:       in.WorkContent,
		Hazards:           briefing.Checklist{Selected: in.Hazards.Selected, Other: in.Hazards.Other},
		Avoidance:         briefing.Checklist{Selected: in.Avoidance.Selected, Other: in.Avoidance.Other},
		Finish:            briefing.Checklist{Selected: in.Finish.Selected, Other: in.Finish.Other},
		FocusInstructions: in.FocusInstructions,
		Notes:             in.Notes,
	}
}

func recordView(r *briefing.Record) *RecordView {
	return &RecordView{
		ID:                r.ID,
		CreatedAt:         r.CreatedAt,
		UpdatedAt:         r.UpdatedAt,
		SubmitterName:     r.SubmitterName,
		WorkTitle:         r.WorkTitle,
		WorkCompany:       r.WorkCompany,
		Phone:             r.Phone,
		WorkDate:          r.WorkDate,
		StartTime:         r.StartTime,
		EndTime:           r.EndTime,
		Location:          r.Location,
		PeopleCount:       r.PeopleCount,
		WorkContent:       r.WorkContent,
		Hazards:           ChecklistInput{Selected: r.Hazards.Selected, Other: r.Hazards.Other},
		Avoidance:         ChecklistInput{Selected: r.Avoidance.Selected, Other: r.Avoidance.Other},
		Finish:            ChecklistInput{Selected: r.Finish.Selected, Other: r.Finish.Other},
		FocusInstructions: r.FocusInstructions,
		Notes:             r.Notes,
	}
}

func summaryView(s briefing.Summary) SummaryView {
	return SummaryView{
		ID:            s.ID,
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
		SubmitterName: s.SubmitterName,
		WorkTitle:     s.WorkTitle,
		WorkDate:      s.WorkDate,
		Location:      s.Location,
	}
}
