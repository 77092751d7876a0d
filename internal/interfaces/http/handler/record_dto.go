package handler

import (
	"time"

	appbriefing "github.com/kyrec/backend/internal/application/briefing"
)

// ChecklistPayload carries one checklist group's selections over the wire
type ChecklistPayload struct {
	Selected []string `json:"selected"`
	Other    string   `json:"other"`
}

// RecordRequest is the create/update payload of a KY record
type RecordRequest struct {
	SubmitterName     string           `json:"submitter_name" binding:"required"`
	WorkTitle         string           `json:"work_title"`
	WorkCompany       string           `json:"work_company"`
	Phone             string           `json:"phone"`
	WorkDate          string           `json:"work_date"`
	StartTime         string           `json:"start_time"`
	EndTime           string           `json:"end_time"`
	Location          string           `json:"location"`
	PeopleCount       string           `json:"people_count"`
	WorkContent       string           `json:"work_content"`
	Hazards           ChecklistPayload `json:"hazards"`
	Avoidance         ChecklistPayload `json:"avoidance"`
	Finish            ChecklistPayload `json:"finish"`
	FocusInstructions string           `json:"focus_instructions"`
	Notes             string           `json:"notes"`
}

// RecordResponse is the full record view
type RecordResponse struct {
	ID                string           `json:"id"`
	CreatedAt         time.Time        `json:"created_at"`
	UpdatedAt         time.Time        `json:"updated_at"`
	SubmitterName     string           `json:"submitter_name"`
	WorkTitle         string           `json:"work_title"`
	WorkCompany       string           `json:"work_company"`
	Phone             string           `json:"phone"`
	WorkDate          string           `json:"work_date"`
	StartTime         string           `json:"start_time"`
	EndTime           string           `json:"end_time"`
	Location          string           `json:"location"`
	PeopleCount       string           `json:"people_count"`
	WorkContent       string           `json:"work_content"`
	Hazards           ChecklistPayload `json:"hazards"`
	Avoidance         ChecklistPayload `json:"avoidance"`
	Finish            ChecklistPayload `json:"finish"`
	FocusInstructions string           `json:"focus_instructions"`
	Notes             string           `json:"notes"`
}

// RecordSummaryResponse is the reduced listing view
type RecordSummaryResponse struct {
	ID            string    `json:"id"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
	SubmitterName string    `json:"submitter_name"`
	WorkTitle     string    `json:"work_title"`
	WorkDate      string    `json:"work_date"`
	Location      string    `json:"location"`
}

func (r RecordRequest) toInput() appbriefing.RecordInput {
	return appbriefing.RecordInput{
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
		Hazards:           appbriefing.ChecklistInput{Selected: r.Hazards.Selected, Other: r.Hazards.Other},
		Avoidance:         appbriefing.ChecklistInput{Selected: r.Avoidance.Selected, Other: r.Avoidance.Other},
		Finish:            appbriefing.ChecklistInput{Selected: r.Finish.Selected, Other: r.Finish.Other},
		FocusInstructions: r.FocusInstructions,
		Notes:             r.Notes,
	}
}

func recordResponse(view *appbriefing.RecordView) RecordResponse {
	return RecordResponse{
		ID:                view.ID,
		CreatedAt:         view.CreatedAt,
		UpdatedAt:         view.UpdatedAt,
		SubmitterName:     view.SubmitterName,
		WorkTitle:         view.WorkTitle,
		WorkCompany:       view.WorkCompany,
		Phone:             view.Phone,
		WorkDate:          view.WorkDate,
		StartTime:         view.StartTime,
		EndTime:           view.EndTime,
		Location:          view.Location,
		PeopleCount:       view.PeopleCount,
		WorkContent:       view.WorkContent,
		Hazards:           ChecklistPayload{Selected: view.Hazards.Selected, Other: view.Hazards.Other},
		Avoidance:         ChecklistPayload{Selected: view.Avoidance.Selected, Other: view.Avoidance.Other},
		Finish:            ChecklistPayload{Selected: view.Finish.Selected, Other: view.Finish.Other},
		FocusInstructions: view.FocusInstructions,
		Notes:             view.Notes,
	}
}

func recordSummaryResponse(view appbriefing.SummaryView) RecordSummaryResponse {
	return RecordSummaryResponse{
		ID:            view.ID,
		CreatedAt:     view.CreatedAt,
		UpdatedAt:     view.UpdatedAt,
		SubmitterName: view.SubmitterName,
		WorkTitle:     view.WorkTitle,
		WorkDate:      view.WorkDate,
		Location:      view.Location,
	}
}
