package models

import "time"

// Tourist statuses as used by the department dashboard filters.
const (
	TouristStatusActive     = "Active"
	TouristStatusRestricted = "Restricted"
	TouristStatusInactive   = "Inactive"
)

// Tourist is the identity and live-state record for a registered tourist.
// Password is compared verbatim at login and never serialized.
type Tourist struct {
	ID                string             `json:"id"`
	DigitalID         string             `json:"digitalID"`
	FullName          string             `json:"fullName"`
	Password          string             `json:"-"`
	IDType            string             `json:"idType"`
	IDNumber          string             `json:"idNumber"`
	DocumentPath      *string            `json:"documentPath"`
	EmergencyContacts []EmergencyContact `json:"emergencyContacts"`
	LocationSharing   bool               `json:"locationSharing"`
	SharedWith        []string           `json:"sharedWith"`
	CurrentLocation   *Location          `json:"currentLocation"`
	Alerts            []PersonalAlert    `json:"alerts"`
	Nationality       string             `json:"nationality"`
	ArrivalDate       string             `json:"arrivalDate"`
	Status            string             `json:"status"`
}

// EmergencyContact is a contact a tourist registers for emergencies
type EmergencyContact struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Number   string `json:"number"`
	Relation string `json:"relation"`
}

// Personal alert types pushed to a tourist's own feed.
const (
	AlertTypeInfo      = "info"
	AlertTypeWarning   = "warning"
	AlertTypeEmergency = "emergency"
)

// PersonalAlert is an entry in a tourist's personal alert feed
type PersonalAlert struct {
	ID      string    `json:"id"`
	Type    string    `json:"type"`
	Title   string    `json:"title"`
	Message string    `json:"message"`
	Time    time.Time `json:"time"`
	Unread  bool      `json:"unread"`
}

// TouristProfile is the field subset returned on successful login
type TouristProfile struct {
	ID              string    `json:"id"`
	FullName        string    `json:"fullName"`
	DigitalID       string    `json:"digitalID"`
	CurrentLocation *Location `json:"currentLocation"`
	LocationSharing bool      `json:"locationSharing"`
}

// LocationStatus is the response payload for a tourist location read
type LocationStatus struct {
	Location        *Location `json:"location"`
	LocationSharing bool      `json:"locationSharing"`
}
