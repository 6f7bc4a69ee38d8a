package models

// SignupRequest carries the multipart signup form fields. DocumentPath is the
// stored relative path of an uploaded document, if any.
type SignupRequest struct {
	IDNumber           string
	FullName           string
	Password           string
	VerificationMethod string
	DocumentPath       *string
}

// SendOTPRequest requests a one-time code during signup verification
type SendOTPRequest struct {
	IDNumber string `json:"idNumber"`
}

// VerifyOTPRequest submits a one-time code for verification
type VerifyOTPRequest struct {
	OTP string `json:"otp"`
}

// LoginRequest authenticates a tourist by digital ID and password
type LoginRequest struct {
	DigitalID string `json:"digitalID"`
	Password  string `json:"password"`
}

// SOSRequest optionally carries the location the SOS was triggered from
type SOSRequest struct {
	Location *Location `json:"location"`
}

// LocationUpdateRequest overwrites a tourist's current location
type LocationUpdateRequest struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// ToggleSharingRequest sets a tourist's location sharing flag
type ToggleSharingRequest struct {
	SharingActive bool `json:"sharingActive"`
}

// ContactRequest adds an emergency contact
type ContactRequest struct {
	Name     string `json:"name"`
	Number   string `json:"number"`
	Relation string `json:"relation"`
}

// Recipient targeting modes for manual department alerts.
const (
	RecipientTypeSingle   = "single"
	RecipientTypeMultiple = "multiple"
	RecipientTypeArea     = "area"
)

// SendAlertRequest is a manual department alert broadcast
type SendAlertRequest struct {
	AlertType         string   `json:"alertType"`
	RecipientType     string   `json:"recipientType"`
	TouristDigitalIDs []string `json:"touristDigitalIDs"`
	Area              string   `json:"area"`
	AlertMessage      string   `json:"alertMessage"`
	Priority          string   `json:"priority"`
}

// UpdateReportRequest partially updates an E-FIR report; empty fields leave
// the stored values unchanged.
type UpdateReportRequest struct {
	Status       string `json:"status"`
	OfficerNotes string `json:"officerNotes"`
}

// TouristListQuery filters and paginates the department tourist listing
type TouristListQuery struct {
	Search      string
	Status      string
	Nationality string
	Page        int
	Limit       int
}

// ReportListQuery filters and paginates the department E-FIR listing
type ReportListQuery struct {
	Status string
	Type   string
	Date   string
	Page   int
	Limit  int
}

// TouristPage is one page of the department tourist listing
type TouristPage struct {
	Total int       `json:"total"`
	Page  int       `json:"page"`
	Limit int       `json:"limit"`
	Data  []Tourist `json:"data"`
}

// ReportPage is one page of the department E-FIR listing
type ReportPage struct {
	Total int              `json:"total"`
	Page  int              `json:"page"`
	Limit int              `json:"limit"`
	Data  []EFIRReportView `json:"data"`
}
