package models

import "fmt"

// Location represents a geographical point with latitude and longitude
type Location struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// DisplayString renders the location for alert feeds, e.g. "25.3456, 82.3452".
func (l Location) DisplayString() string {
	return fmt.Sprintf("%.4f, %.4f", l.Lat, l.Lng)
}
