package models

// DashboardStats are the headline counters on the department dashboard
type DashboardStats struct {
	ActiveTourists int `json:"activeTourists"`
	AlertsToday    int `json:"alertsToday"`
	EFIRReports    int `json:"efirReports"`
}

// TouristLocation is a tourist position projected for the department map
type TouristLocation struct {
	ID   string  `json:"id"`
	Name string  `json:"name"`
	Lat  float64 `json:"lat"`
	Lng  float64 `json:"lng"`
	Type string  `json:"type"`
}

// Zone is a descriptive map overlay. Zone membership is never evaluated
// against tourist positions.
type Zone struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Lat    float64 `json:"lat"`
	Lng    float64 `json:"lng"`
	Radius int     `json:"radius,omitempty"`
	Type   string  `json:"type"`
}

// MapData is the department map payload
type MapData struct {
	TouristLocations []TouristLocation `json:"touristLocations"`
	HighRiskZones    []Zone            `json:"highRiskZones"`
	RestrictedAreas  []Zone            `json:"restrictedAreas"`
}

// ChartsData is the fixed 7-day dashboard chart series
type ChartsData struct {
	Labels         []string `json:"labels"`
	TouristCounts  []int    `json:"touristCounts"`
	IncidentCounts []int    `json:"incidentCounts"`
}

// DigitalIDVerification is an entry in the dashboard verification feed
type DigitalIDVerification struct {
	ID               string `json:"id"`
	TouristName      string `json:"touristName"`
	IDType           string `json:"idType"`
	VerificationTime string `json:"verificationTime"`
	Location         string `json:"location"`
	Status           string `json:"status"`
}
