package store

import (
	"fmt"
	"time"

	"github.com/traviq/traviq-backend/internal/pkg/models"
)

func loc(lat, lng float64) *models.Location {
	return &models.Location{Lat: lat, Lng: lng}
}

func at(value string) time.Time {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		panic(err)
	}
	return t
}

// seed loads the demonstration dataset: eight tourists with varying location
// and sharing state, five department alerts and five E-FIR reports. Welcome
// alert timestamps are relative to process start so the personal feeds sort
// sensibly against anything created at runtime.
func (s *Store) seed() {
	now := models.Now()

	welcome := func(n int, typ, title, message string, age time.Duration, unread bool) []models.PersonalAlert {
		return []models.PersonalAlert{{
			ID:      seedAlertID(n),
			Type:    typ,
			Title:   title,
			Message: message,
			Time:    now.Add(-age),
			Unread:  unread,
		}}
	}

	s.Tourists = []*models.Tourist{
		{
			ID: "T001", DigitalID: "TRV-TS1234-5678", FullName: "Tony Stark", Password: "password",
			IDType: "Passport", IDNumber: "C78945612",
			EmergencyContacts: []models.EmergencyContact{{ID: "EC1", Name: "Pepper Potts", Number: "+91 9876543210", Relation: "Spouse"}},
			LocationSharing:   true, SharedWith: []string{}, CurrentLocation: loc(25.3456, 82.3452),
			Alerts:      welcome(1, models.AlertTypeInfo, "Welcome", "Hi Tony!", time.Hour, true),
			Nationality: "United States", ArrivalDate: "12 Oct 2023", Status: models.TouristStatusActive,
		},
		{
			ID: "T002", DigitalID: "TRV-NR5678-9012", FullName: "Natasha Romanoff", Password: "password",
			IDType: "Passport", IDNumber: "R65478932",
			EmergencyContacts: []models.EmergencyContact{{ID: "EC2", Name: "Nick Fury", Number: "+91 9876543213", Relation: "Colleague"}},
			LocationSharing:   false, SharedWith: []string{}, CurrentLocation: loc(26.8456, 80.9467),
			Alerts:      welcome(2, models.AlertTypeInfo, "Welcome", "Hi Natasha!", 2*time.Hour, false),
			Nationality: "Russia", ArrivalDate: "14 Oct 2023", Status: models.TouristStatusActive,
		},
		{
			ID: "T003", DigitalID: "TRV-TO3456-1234", FullName: "Thor Odinson", Password: "password",
			IDType: "Aadhaar", IDNumber: "789456123456",
			EmergencyContacts: []models.EmergencyContact{{ID: "EC3", Name: "Loki", Number: "+91 9876543214", Relation: "Brother"}},
			LocationSharing:   true, SharedWith: []string{}, CurrentLocation: loc(25.7890, 81.2345),
			Alerts:      welcome(3, models.AlertTypeInfo, "Welcome", "Hi Thor!", 3*time.Hour, true),
			Nationality: "Norway", ArrivalDate: "10 Oct 2023", Status: models.TouristStatusRestricted,
		},
		{
			ID: "T004", DigitalID: "TRV-BB7890-5432", FullName: "Bruce Banner", Password: "password",
			IDType: "Passport", IDNumber: "A12345678",
			EmergencyContacts: []models.EmergencyContact{{ID: "EC4", Name: "Betty Ross", Number: "+91 9876543215", Relation: "Friend"}},
			LocationSharing:   true, SharedWith: []string{}, CurrentLocation: loc(26.9234, 81.9876),
			Alerts:      welcome(4, models.AlertTypeInfo, "Welcome", "Hi Bruce!", 4*time.Hour, false),
			Nationality: "United States", ArrivalDate: "11 Oct 2023", Status: models.TouristStatusActive,
		},
		{
			ID: "T005", DigitalID: "TRV-WM9012-8765", FullName: "Wanda Maximoff", Password: "password",
			IDType: "Visa", IDNumber: "V98765432",
			EmergencyContacts: []models.EmergencyContact{{ID: "EC5", Name: "Vision", Number: "+91 9876543216", Relation: "Partner"}},
			LocationSharing:   false, SharedWith: []string{}, CurrentLocation: loc(25.1234, 82.5432),
			Alerts:      welcome(5, models.AlertTypeInfo, "Welcome", "Hi Wanda!", 5*time.Hour, true),
			Nationality: "Sokovia", ArrivalDate: "13 Oct 2023", Status: models.TouristStatusInactive,
		},
		{
			ID: "T006", DigitalID: "TRV-JS4321-9876", FullName: "Jane Smith", Password: "password",
			IDType: "Passport", IDNumber: "P10293847",
			EmergencyContacts: []models.EmergencyContact{{ID: "EC6", Name: "John Doe", Number: "+91 9988776655", Relation: "Friend"}},
			LocationSharing:   true, SharedWith: []string{}, CurrentLocation: loc(27.1751, 78.0421), // Agra
			Alerts:      welcome(6, models.AlertTypeInfo, "Hello", "Welcome to India!", 40*time.Minute, true),
			Nationality: "Canada", ArrivalDate: "01 Nov 2023", Status: models.TouristStatusActive,
		},
		{
			ID: "T007", DigitalID: "TRV-AK9876-5432", FullName: "Alice King", Password: "password",
			IDType: "Aadhaar", IDNumber: "112233445566",
			EmergencyContacts: []models.EmergencyContact{},
			LocationSharing:   false, SharedWith: []string{}, CurrentLocation: nil,
			Alerts:      welcome(7, models.AlertTypeInfo, "Alert", "Check your profile.", 20*time.Minute, false),
			Nationality: "Australia", ArrivalDate: "05 Sep 2023", Status: models.TouristStatusInactive,
		},
		{
			ID: "T008", DigitalID: "TRV-PM8765-4321", FullName: "Peter Miller", Password: "password",
			IDType: "Passport", IDNumber: "F09876543",
			EmergencyContacts: []models.EmergencyContact{{ID: "EC7", Name: "Mary Jane", Number: "+91 7778889990", Relation: "Family"}},
			LocationSharing:   true, SharedWith: []string{}, CurrentLocation: loc(28.6139, 77.2090), // Delhi
			Alerts:      welcome(8, models.AlertTypeWarning, "Advisory", "Heavy rain expected.", 10*time.Minute, true),
			Nationality: "United Kingdom", ArrivalDate: "20 Oct 2023", Status: models.TouristStatusActive,
		},
	}

	s.DepartmentAlerts = []*models.DepartmentAlert{
		{ID: "ALERT-D001", Time: at("2025-09-12T10:23:00Z"), Tourist: "Iron Man", Location: "25.3456, 82.3452", Type: "Geo-fence Breach", Status: "Urgent", Title: "Geo-fence Breach", Message: "Iron Man breached geo-fence near Sector 10."},
		{ID: "ALERT-D002", Time: at("2025-09-12T10:15:00Z"), Tourist: "Hulk", Location: "26.8456, 80.9467", Type: "Panic Button", Status: "Responded", Title: "Panic Button Activated", Message: "Hulk activated panic button in Gomti Nagar."},
		{ID: "ALERT-D003", Time: at("2025-09-12T09:58:00Z"), Tourist: "Wanda", Location: "25.7890, 81.2345", Type: "Red Zone Alert", Status: "Monitoring", Title: "Red Zone Entry", Message: "Wanda entered a restricted red zone."},
		{ID: "ALERT-D004", Time: at("2025-09-11T09:42:00Z"), Tourist: "Thor", Location: "26.9234, 81.9876", Type: "Route Deviation", Status: "Resolved", Title: "Route Deviation Alert", Message: "Thor deviated from planned route."},
		{ID: "ALERT-D005", Time: at("2025-09-11T09:30:00Z"), Tourist: "Thanos", Location: "25.1234, 82.5432", Type: "Automatic E-FIR", Status: "In Progress", Title: "Automatic E-FIR Filed", Message: "Thanos filed an automatic E-FIR due to an incident."},
	}

	s.EFIRReports = []*models.EFIRReport{
		{ID: "#SOS-1245", TouristID: "T001", TouristName: "Tony Stark", Type: models.ReportTypeSOS, Time: at("2025-09-12T10:23:00Z"), Location: models.Location{Lat: 25.3456, Lng: 82.3452}, Priority: models.ReportPriorityCritical, Status: models.ReportStatusPending, Description: "Tourist reported being followed by suspicious individuals near the market area. Feels unsafe and requested immediate assistance.", OfficerNotes: "Patrol unit dispatched to location. Tourist is currently safe at a nearby cafe until officers arrive."},
		{ID: "#EFIR-7890", TouristID: "T002", TouristName: "Natasha Romanoff", Type: "Theft", Time: at("2025-09-12T09:45:00Z"), Location: models.Location{Lat: 26.8456, Lng: 80.9467}, Priority: models.ReportPriorityMedium, Status: models.ReportStatusInProgress, Description: "Wallet stolen from handbag at local market.", OfficerNotes: "Report filed, suspect description taken. CCTV footage being reviewed."},
		{ID: "#SOS-1246", TouristID: "T003", TouristName: "Thor Odinson", Type: models.ReportTypeSOS, Time: at("2025-09-12T09:30:00Z"), Location: models.Location{Lat: 25.7890, Lng: 81.2345}, Priority: models.ReportPriorityCritical, Status: models.ReportStatusInProgress, Description: "Tourist fell and injured leg during hiking. Cannot move.", OfficerNotes: "Rescue team dispatched. Medical assistance en route."},
		{ID: "#EFIR-7891", TouristID: "T004", TouristName: "Bruce Banner", Type: "Harassment", Time: at("2025-09-11T16:15:00Z"), Location: models.Location{Lat: 26.9234, Lng: 81.9876}, Priority: models.ReportPriorityMedium, Status: models.ReportStatusResolved, Description: "Verbal harassment by street vendor.", OfficerNotes: "Vendor identified and warned. Tourist provided counseling."},
		{ID: "#EFIR-7892", TouristID: "T005", TouristName: "Wanda Maximoff", Type: "Lost Item", Time: at("2025-09-11T14:30:00Z"), Location: models.Location{Lat: 25.1234, Lng: 82.5432}, Priority: models.ReportPriorityLow, Status: models.ReportStatusResolved, Description: "Lost backpack with personal belongings at tourist attraction.", OfficerNotes: "Backpack found and returned to tourist."},
	}
}

func seedAlertID(n int) string {
	return fmt.Sprintf("A-SEED-%d", n)
}
