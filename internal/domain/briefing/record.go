package briefing

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/kyrec/backend/internal/domain/shared"
)

// Checklist holds the selections of one checklist group: the chosen labels
// from the group's closed vocabulary plus a free-text "other" elaboration.
type Checklist struct {
	Selected []string
	Other    string
}

// Contains reports whether the label is selected
func (c Checklist) Contains(label string) bool {
	for _, s := range c.Selected {
		if s == label {
			return true
		}
	}
	return false
}

// Form carries all caller-mutable fields of a KY record. The UI hands the
// core a validated payload in this shape; validation of the core invariants
// (submitter present, labels within vocabulary) still happens here at the
// domain boundary.
type Form struct {
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
	Hazards           Checklist
	Avoidance         Checklist
	Finish            Checklist
	FocusInstructions string
	Notes             string
}

// Record represents one submitted safety briefing. It is exclusively owned
// by the company that created it; CompanyID is immutable after creation.
type Record struct {
	ID                string
	CompanyID         string
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
	Hazards           Checklist
	Avoidance         Checklist
	Finish            Checklist
	FocusInstructions string
	Notes             string
}

// NewRecord creates a record from a form submission. The identifier and both
// timestamps are assigned here, once.
func NewRecord(companyID string, form Form) (*Record, error) {
	if companyID == "" {
		return nil, shared.NewDomainError("INVALID_COMPANY_ID", "Company ID cannot be empty")
	}
	if err := validateForm(form); err != nil {
		return nil, err
	}

	now := time.Now()
	r := &Record{
		ID:        uuid.New().String(),
		CompanyID: companyID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	r.apply(form)
	return r, nil
}

// Update replaces all mutable fields and bumps the update timestamp.
// Identifier, owner and creation time never change.
func (r *Record) Update(form Form) error {
	if err := validateForm(form); err != nil {
		return err
	}
	r.apply(form)
	r.UpdatedAt = time.Now()
	return nil
}

func (r *Record) apply(form Form) {
	r.SubmitterName = strings.TrimSpace(form.SubmitterName)
	r.WorkTitle = form.WorkTitle
	r.WorkCompany = form.WorkCompany
	r.Phone = form.Phone
	r.WorkDate = form.WorkDate
	r.StartTime = form.StartTime
	r.EndTime = form.EndTime
	r.Location = form.Location
	r.PeopleCount = form.PeopleCount
	r.WorkContent = form.WorkContent
	r.Hazards = form.Hazards
	r.Avoidance = form.Avoidance
	r.Finish = form.Finish
	r.FocusInstructions = form.FocusInstructions
	r.Notes = form.Notes
}

// Summary is the reduced projection used by record pickers: identity,
// timestamps and a few headline fields, never the full payload.
type Summary struct {
	ID            string
	CreatedAt     time.Time
	UpdatedAt     time.Time
	SubmitterName string
	WorkTitle     string
	WorkDate      string
	Location      string
}

// Validation functions

func validateForm(form Form) error {
	if strings.TrimSpace(form.SubmitterName) == "" {
		return shared.NewDomainError("VALIDATION_ERROR", "Submitter name is required")
	}
	if err := validateChecklist(GroupHazards, form.Hazards); err != nil {
		return err
	}
	if err := validateChecklist(GroupAvoidance, form.Avoidance); err != nil {
		return err
	}
	return validateChecklist(GroupFinish, form.Finish)
}

func validateChecklist(group ChecklistGroup, list Checklist) error {
	for _, label := range list.Selected {
		if !IsKnownLabel(group, label) {
			return shared.NewDomainError("VALIDATION_ERROR",
				fmt.Sprintf("Unknown %s item: %s", group, label))
		}
	}
	return nil
}
