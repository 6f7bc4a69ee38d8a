package models

import "time"

// Department alert statuses. The field is free-form; these cover the values
// the system itself produces.
const (
	DeptAlertStatusUrgent = "Urgent"
	DeptAlertStatusSent   = "Sent"
)

// DepartmentAlert is a notice in the authority-facing history feed. System
// alerts (SOS triggers) carry tourist/location context; manual broadcasts
// carry priority and a recipient count instead. Alerts are only ever
// prepended, never mutated or removed.
type DepartmentAlert struct {
	ID              string    `json:"id"`
	Time            time.Time `json:"time"`
	Tourist         string    `json:"tourist,omitempty"`
	Location        string    `json:"location,omitempty"`
	Type            string    `json:"type"`
	Status          string    `json:"status"`
	Title           string    `json:"title"`
	Message         string    `json:"message,omitempty"`
	Priority        string    `json:"priority,omitempty"`
	RecipientsCount *int      `json:"recipientsCount,omitempty"`
}

// DepartmentAlertView is a DepartmentAlert with its timestamp rendered for
// display.
type DepartmentAlertView struct {
	ID              string `json:"id"`
	Time            string `json:"time"`
	Tourist         string `json:"tourist,omitempty"`
	Location        string `json:"location,omitempty"`
	Type            string `json:"type"`
	Status          string `json:"status"`
	Title           string `json:"title"`
	Message         string `json:"message,omitempty"`
	Priority        string `json:"priority,omitempty"`
	RecipientsCount *int   `json:"recipientsCount,omitempty"`
}

// Display renders the alert with its timestamp formatted by the given layout.
func (a DepartmentAlert) Display(layout string) DepartmentAlertView {
	return DepartmentAlertView{
		ID:              a.ID,
		Time:            a.Time.Format(layout),
		Tourist:         a.Tourist,
		Location:        a.Location,
		Type:            a.Type,
		Status:          a.Status,
		Title:           a.Title,
		Message:         a.Message,
		Priority:        a.Priority,
		RecipientsCount: a.RecipientsCount,
	}
}
