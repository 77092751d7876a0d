package models

import (
	"encoding/json"
	"time"

	"github.com/kyrec/backend/internal/domain/briefing"
)

// RecordModel is the persistence model for KY records. The three checklist
// groups are stored as JSON arrays of selected labels, matching the original
// sheet schema.
type RecordModel struct {
	ID                string    `gorm:"type:varchar(36);primaryKey"`
	CompanyID         string    `gorm:"type:varchar(50);not null;index:idx_ky_records_company_created,priority:1"`
	CreatedAt         time.Time `gorm:"not null;index:idx_ky_records_company_created,priority:2"`
	UpdatedAt         time.Time `gorm:"not null"`
	SubmitterName     string    `gorm:"type:varchar(100);not null"`
	WorkTitle         string    `gorm:"type:text"`
	WorkCompany       string    `gorm:"type:text"`
	Phone             string    `gorm:"type:varchar(50)"`
	WorkDate          string    `gorm:"type:varchar(20)"`
	StartTime         string    `gorm:"type:varchar(20)"`
	EndTime           string    `gorm:"type:varchar(20)"`
	Location          string    `gorm:"type:text"`
	PeopleCount       string    `gorm:"type:varchar(20)"`
	WorkContent       string    `gorm:"type:text"`
	HazardsJSON       string    `gorm:"column:hazards_json;type:text"`
	HazardsOther      string    `gorm:"type:text"`
	AvoidJSON         string    `gorm:"column:avoid_json;type:text"`
	AvoidOther        string    `gorm:"type:text"`
	FocusInstructions string    `gorm:"type:text"`
	FinishJSON        string    `gorm:"column:finish_json;type:text"`
	FinishOther       string    `gorm:"type:text"`
	Notes             string    `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (RecordModel) TableName() string {
	return "ky_records"
}

// RecordModelFromDomain converts a domain record to its persistence model
func RecordModelFromDomain(r *briefing.Record) (*RecordModel, error) {
	hazards, err := encodeLabels(r.Hazards.Selected)
	if err != nil {
		return nil, err
	}
	avoid, err := encodeLabels(r.Avoidance.Selected)
	if err != nil {
		return nil, err
	}
	finish, err := encodeLabels(r.Finish.Selected)
	if err != nil {
		return nil, err
	}

	return &RecordModel{
		ID:                r.ID,
		CompanyID:         r.CompanyID,
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
		HazardsJSON:       hazards,
		HazardsOther:      r.Hazards.Other,
		AvoidJSON:         avoid,
		AvoidOther:        r.Avoidance.Other,
		FocusInstructions: r.FocusInstructions,
		FinishJSON:        finish,
		FinishOther:       r.Finish.Other,
		Notes:             r.Notes,
	}, nil
}

// ToDomain converts the persistence model back into a domain record,
// decoding the serialized checklist selections.
func (m *RecordModel) ToDomain() (*briefing.Record, error) {
	hazards, err := decodeLabels(m.HazardsJSON)
	if err != nil {
		return nil, err
	}
	avoid, err := decodeLabels(m.AvoidJSON)
	if err != nil {
		return nil, err
	}
	finish, err := decodeLabels(m.FinishJSON)
	if err != nil {
		return nil, err
	}

	return &briefing.Record{
		ID:                m.ID,
		CompanyID:         m.CompanyID,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
		SubmitterName:     m.SubmitterName,
		WorkTitle:         m.WorkTitle,
		WorkCompany:       m.WorkCompany,
		Phone:             m.Phone,
		WorkDate:          m.WorkDate,
		StartTime:         m.StartTime,
		EndTime:           m.EndTime,
		Location:          m.Location,
		PeopleCount:       m.PeopleCount,
		WorkContent:       m.WorkContent,
		Hazards:           briefing.Checklist{Selected: hazards, Other: m.HazardsOther},
		Avoidance:         briefing.Checklist{Selected: avoid, Other: m.AvoidOther},
		Finish:            briefing.Checklist{Selected: finish, Other: m.FinishOther},
		FocusInstructions: m.FocusInstructions,
		Notes:             m.Notes,
	}, nil
}

func encodeLabels(labels []string) (string, error) {
	if labels == nil {
		labels = []string{}
	}
	data, err := json.Marshal(labels)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func decodeLabels(raw string) ([]string, error) {
	if raw == "" {
		return []string{}, nil
	}
	var labels []string
	if err := json.Unmarshal([]byte(raw), &labels); err != nil {
		return nil, err
	}
	return labels, nil
}
