package models

import "time"

// E-FIR report statuses and priorities.
const (
	ReportStatusPending    = "Pending"
	ReportStatusInProgress = "In Progress"
	ReportStatusResolved   = "Resolved"

	ReportPriorityCritical = "Critical"
	ReportPriorityMedium   = "Medium"
	ReportPriorityLow      = "Low"

	ReportTypeSOS = "SOS Emergency"
)

// EFIRReport is an incident record, created by an SOS trigger or filed
// manually. Only status and officer notes are ever updated.
type EFIRReport struct {
	ID           string    `json:"id"`
	TouristID    string    `json:"touristId"`
	TouristName  string    `json:"touristName"`
	Type         string    `json:"type"`
	Time         time.Time `json:"time"`
	Location     Location  `json:"location"`
	Priority     string    `json:"priority"`
	Status       string    `json:"status"`
	Description  string    `json:"description"`
	OfficerNotes string    `json:"officerNotes"`
}

// EFIRReportView is an EFIRReport with its timestamp rendered for display.
type EFIRReportView struct {
	ID           string   `json:"id"`
	TouristID    string   `json:"touristId"`
	TouristName  string   `json:"touristName"`
	Type         string   `json:"type"`
	Time         string   `json:"time"`
	Location     Location `json:"location"`
	Priority     string   `json:"priority"`
	Status       string   `json:"status"`
	Description  string   `json:"description"`
	OfficerNotes string   `json:"officerNotes"`
}

// Display renders the report with its timestamp formatted for display.
func (r EFIRReport) Display() EFIRReportView {
	return EFIRReportView{
		ID:           r.ID,
		TouristID:    r.TouristID,
		TouristName:  r.TouristName,
		Type:         r.Type,
		Time:         FormatDateTime(r.Time),
		Location:     r.Location,
		Priority:     r.Priority,
		Status:       r.Status,
		Description:  r.Description,
		OfficerNotes: r.OfficerNotes,
	}
}
