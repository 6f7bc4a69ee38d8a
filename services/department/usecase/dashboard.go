package usecase

import (
	"context"
	"sort"

	"github.com/traviq/traviq-backend/internal/pkg/models"
)

// recentAlertLimit caps the dashboard's recent-alerts table.
const recentAlertLimit = 5

// highRiskZones and restrictedAreas are descriptive map overlays for the
// demonstration; they are never evaluated against tourist positions.
var highRiskZones = []models.Zone{
	{ID: "HRZ1", Name: "Market Square", Lat: 25.4, Lng: 82.2, Radius: 500, Type: "high-risk"},
	{ID: "HRZ2", Name: "Old Town", Lat: 26.9, Lng: 81.0, Radius: 700, Type: "high-risk"},
}

var restrictedAreas = []models.Zone{
	{ID: "RA1", Name: "Military Base", Lat: 25.1, Lng: 82.5, Type: "restricted"},
}

// weeklyCharts is the fixed 7-day series behind the dashboard charts.
var weeklyCharts = models.ChartsData{
	Labels:         []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"},
	TouristCounts:  []int{150, 200, 180, 220, 190, 250, 210},
	IncidentCounts: []int{5, 8, 4, 7, 6, 9, 3},
}

// digitalIDVerifications is the static verification feed shown on the
// dashboard.
var digitalIDVerifications = []models.DigitalIDVerification{
	{ID: "VER-001", TouristName: "Dr Strange", IDType: "Aadhaar", VerificationTime: "9/12/2025, 10:40:00 AM", Location: "Hotel Grand", Status: "Verified"},
	{ID: "VER-002", TouristName: "Black Widow", IDType: "Passport", VerificationTime: "9/12/2025, 10:22:00 AM", Location: "Airport", Status: "Verified"},
	{ID: "VER-003", TouristName: "Spiderman", IDType: "Aadhaar", VerificationTime: "9/11/2025, 9:55:00 AM", Location: "Railway Station", Status: "Pending"},
	{ID: "VER-004", TouristName: "Ant Man", IDType: "Passport", VerificationTime: "9/11/2025, 9:30:00 AM", Location: "Hotel Plaza", Status: "Verified"},
}

// DashboardStats computes the headline counters: tourists that are Active
// with a known location, and alerts and reports filed today (UTC).
func (uc *DepartmentUC) DashboardStats(ctx context.Context) (*models.DashboardStats, error) {
	tourists, err := uc.departmentRepo.Tourists(ctx)
	if err != nil {
		return nil, err
	}
	alerts, err := uc.departmentRepo.Alerts(ctx)
	if err != nil {
		return nil, err
	}
	reports, err := uc.departmentRepo.Reports(ctx)
	if err != nil {
		return nil, err
	}

	now := models.Now()
	stats := &models.DashboardStats{}
	for _, t := range tourists {
		if t.CurrentLocation != nil && t.Status == models.TouristStatusActive {
			stats.ActiveTourists++
		}
	}
	for _, a := range alerts {
		if models.SameUTCDay(a.Time, now) {
			stats.AlertsToday++
		}
	}
	for _, r := range reports {
		if models.SameUTCDay(r.Time, now) {
			stats.EFIRReports++
		}
	}
	return stats, nil
}

// MapData projects the sharing tourists onto the map alongside the fixed
// zone overlays.
func (uc *DepartmentUC) MapData(ctx context.Context) (*models.MapData, error) {
	tourists, err := uc.departmentRepo.Tourists(ctx)
	if err != nil {
		return nil, err
	}

	locations := make([]models.TouristLocation, 0)
	for _, t := range tourists {
		if t.CurrentLocation == nil || !t.LocationSharing {
			continue
		}
		locations = append(locations, models.TouristLocation{
			ID:   t.ID,
			Name: t.FullName,
			Lat:  t.CurrentLocation.Lat,
			Lng:  t.CurrentLocation.Lng,
			Type: "tourist",
		})
	}

	return &models.MapData{
		TouristLocations: locations,
		HighRiskZones:    highRiskZones,
		RestrictedAreas:  restrictedAreas,
	}, nil
}

// ChartsData returns the fixed weekly chart series.
func (uc *DepartmentUC) ChartsData(ctx context.Context) (*models.ChartsData, error) {
	charts := weeklyCharts
	return &charts, nil
}

// RecentAlerts returns the newest alerts that carry a message, capped at
// five, with clock-only display times.
func (uc *DepartmentUC) RecentAlerts(ctx context.Context) ([]models.DepartmentAlertView, error) {
	alerts, err := uc.departmentRepo.Alerts(ctx)
	if err != nil {
		return nil, err
	}

	relevant := make([]models.DepartmentAlert, 0, len(alerts))
	for _, a := range alerts {
		if a.Message != "" {
			relevant = append(relevant, a)
		}
	}
	sort.SliceStable(relevant, func(i, j int) bool {
		return relevant[i].Time.After(relevant[j].Time)
	})
	if len(relevant) > recentAlertLimit {
		relevant = relevant[:recentAlertLimit]
	}

	views := make([]models.DepartmentAlertView, 0, len(relevant))
	for _, a := range relevant {
		views = append(views, a.Display(models.DisplayClockLayout))
	}
	return views, nil
}

// DigitalIDVerifications returns the static verification feed.
func (uc *DepartmentUC) DigitalIDVerifications(ctx context.Context) ([]models.DigitalIDVerification, error) {
	return digitalIDVerifications, nil
}
