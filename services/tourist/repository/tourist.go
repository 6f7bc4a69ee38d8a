// Package repository implements the tourist service's data access over the
// shared in-memory store.
package repository

import (
	"context"

	"github.com/traviq/traviq-backend/internal/pkg/apperrors"
	"github.com/traviq/traviq-backend/internal/pkg/models"
	"github.com/traviq/traviq-backend/internal/pkg/store"
	"github.com/traviq/traviq-backend/internal/utils"
)

// TouristRepo provides tourist data access over the in-memory store
type TouristRepo struct {
	store *store.Store
}

// NewTouristRepo creates a new tourist repository instance
func NewTouristRepo(s *store.Store) *TouristRepo {
	return &TouristRepo{store: s}
}

// byID returns the live record for a tourist. Callers must hold the store
// lock.
func (r *TouristRepo) byID(id string) *models.Tourist {
	for _, t := range r.store.Tourists {
		if t.ID == id {
			return t
		}
	}
	return nil
}

// CreateTourist inserts a new tourist. The uniqueness check on the
// (idNumber, idType) pair and the insert run under one lock so concurrent
// signups cannot both pass the check.
func (r *TouristRepo) CreateTourist(ctx context.Context, t *models.Tourist) error {
	r.store.Mu.Lock()
	defer r.store.Mu.Unlock()

	for _, existing := range r.store.Tourists {
		if existing.IDNumber == t.IDNumber && existing.IDType == t.IDType {
			return apperrors.ErrDuplicateIdentity
		}
	}

	r.store.Tourists = append(r.store.Tourists, t)
	return nil
}

// GetProfile authenticates by digital ID and verbatim password comparison
// and returns the login field subset.
func (r *TouristRepo) GetProfile(ctx context.Context, digitalID, password string) (*models.TouristProfile, error) {
	r.store.Mu.RLock()
	defer r.store.Mu.RUnlock()

	for _, t := range r.store.Tourists {
		if t.DigitalID == digitalID && t.Password == password {
			profile := &models.TouristProfile{
				ID:              t.ID,
				FullName:        t.FullName,
				DigitalID:       t.DigitalID,
				LocationSharing: t.LocationSharing,
			}
			if t.CurrentLocation != nil {
				loc := *t.CurrentLocation
				profile.CurrentLocation = &loc
			}
			return profile, nil
		}
	}

	return nil, apperrors.ErrInvalidCredentials
}

// ActivateSOS creates the full SOS event under one lock: a Critical/Pending
// E-FIR report, a department alert, and a personal alert on the tourist's
// own feed, each prepended to its collection. The report location falls back
// from the supplied location to the tourist's last known position to a zero
// coordinate.
func (r *TouristRepo) ActivateSOS(ctx context.Context, touristID string, location *models.Location) (*models.EFIRReport, error) {
	r.store.Mu.Lock()
	defer r.store.Mu.Unlock()

	tourist := r.byID(touristID)
	if tourist == nil {
		return nil, apperrors.ErrTouristNotFound
	}

	now := models.Now()

	reportLocation := models.Location{}
	locationDisplay := "Unknown"
	switch {
	case location != nil:
		reportLocation = *location
		locationDisplay = location.DisplayString()
	case tourist.CurrentLocation != nil:
		reportLocation = *tourist.CurrentLocation
		locationDisplay = tourist.CurrentLocation.DisplayString()
	}

	report := &models.EFIRReport{
		ID:           utils.NewSOSReportID(),
		TouristID:    tourist.ID,
		TouristName:  tourist.FullName,
		Type:         models.ReportTypeSOS,
		Time:         now,
		Location:     reportLocation,
		Priority:     models.ReportPriorityCritical,
		Status:       models.ReportStatusPending,
		Description:  "Tourist initiated SOS. Immediate assistance required.",
		OfficerNotes: "Automatic SOS received. Awaiting response.",
	}
	r.store.EFIRReports = append([]*models.EFIRReport{report}, r.store.EFIRReports...)

	deptAlert := &models.DepartmentAlert{
		ID:       utils.NewSOSAlertID(),
		Time:     now,
		Tourist:  tourist.FullName,
		Location: locationDisplay,
		Type:     models.ReportTypeSOS,
		Status:   models.DeptAlertStatusUrgent,
		Title:    "SOS Emergency Activated",
		Message:  "Tourist " + tourist.FullName + " activated SOS at " + locationDisplay + ". Immediate attention needed.",
	}
	r.store.DepartmentAlerts = append([]*models.DepartmentAlert{deptAlert}, r.store.DepartmentAlerts...)

	personal := models.PersonalAlert{
		ID:      utils.NewPersonalAlertID(),
		Type:    models.AlertTypeEmergency,
		Title:   "SOS Activated",
		Message: "Your SOS signal has been sent. Emergency services and your contacts have been notified.",
		Time:    now,
		Unread:  true,
	}
	tourist.Alerts = append([]models.PersonalAlert{personal}, tourist.Alerts...)

	result := *report
	return &result, nil
}

// SetLocation unconditionally overwrites the tourist's current location.
// No bounds validation is applied.
func (r *TouristRepo) SetLocation(ctx context.Context, touristID string, location models.Location) error {
	r.store.Mu.Lock()
	defer r.store.Mu.Unlock()

	tourist := r.byID(touristID)
	if tourist == nil {
		return apperrors.ErrTouristNotFound
	}

	tourist.CurrentLocation = &location
	return nil
}

// GetLocationStatus returns the tourist's current location (possibly nil)
// and sharing flag.
func (r *TouristRepo) GetLocationStatus(ctx context.Context, touristID string) (*models.LocationStatus, error) {
	r.store.Mu.RLock()
	defer r.store.Mu.RUnlock()

	tourist := r.byID(touristID)
	if tourist == nil {
		return nil, apperrors.ErrTouristNotFound
	}

	status := &models.LocationStatus{LocationSharing: tourist.LocationSharing}
	if tourist.CurrentLocation != nil {
		loc := *tourist.CurrentLocation
		status.Location = &loc
	}
	return status, nil
}

// SetLocationSharing sets the tourist's sharing flag
func (r *TouristRepo) SetLocationSharing(ctx context.Context, touristID string, active bool) error {
	r.store.Mu.Lock()
	defer r.store.Mu.Unlock()

	tourist := r.byID(touristID)
	if tourist == nil {
		return apperrors.ErrTouristNotFound
	}

	tourist.LocationSharing = active
	return nil
}

// Contacts returns a snapshot of the tourist's emergency contacts
func (r *TouristRepo) Contacts(ctx context.Context, touristID string) ([]models.EmergencyContact, error) {
	r.store.Mu.RLock()
	defer r.store.Mu.RUnlock()

	tourist := r.byID(touristID)
	if tourist == nil {
		return nil, apperrors.ErrTouristNotFound
	}

	return append([]models.EmergencyContact(nil), tourist.EmergencyContacts...), nil
}

// AddContact appends an emergency contact to the tourist's list
func (r *TouristRepo) AddContact(ctx context.Context, touristID string, contact models.EmergencyContact) error {
	r.store.Mu.Lock()
	defer r.store.Mu.Unlock()

	tourist := r.byID(touristID)
	if tourist == nil {
		return apperrors.ErrTouristNotFound
	}

	tourist.EmergencyContacts = append(tourist.EmergencyContacts, contact)
	return nil
}

// Alerts returns a snapshot of the tourist's personal alert feed in storage
// order. Ordering for display is the usecase's concern.
func (r *TouristRepo) Alerts(ctx context.Context, touristID string) ([]models.PersonalAlert, error) {
	r.store.Mu.RLock()
	defer r.store.Mu.RUnlock()

	tourist := r.byID(touristID)
	if tourist == nil {
		return nil, apperrors.ErrTouristNotFound
	}

	return append([]models.PersonalAlert(nil), tourist.Alerts...), nil
}

// MarkAlertRead clears the unread flag on one personal alert
func (r *TouristRepo) MarkAlertRead(ctx context.Context, touristID, alertID string) error {
	r.store.Mu.Lock()
	defer r.store.Mu.Unlock()

	tourist := r.byID(touristID)
	if tourist == nil {
		return apperrors.ErrTouristNotFound
	}

	for i := range tourist.Alerts {
		if tourist.Alerts[i].ID == alertID {
			tourist.Alerts[i].Unread = false
			return nil
		}
	}

	return apperrors.ErrAlertNotFound
}

// SetOTP stores a new one-time code, unconditionally replacing any
// outstanding one. There is a single process-wide slot.
func (r *TouristRepo) SetOTP(ctx context.Context, code string) error {
	r.store.Mu.Lock()
	defer r.store.Mu.Unlock()

	r.store.LatestOTP = code
	return nil
}

// ConsumeOTP verifies the submitted code against the outstanding one and
// clears the slot on success, so the same code cannot be verified twice.
func (r *TouristRepo) ConsumeOTP(ctx context.Context, code string) error {
	r.store.Mu.Lock()
	defer r.store.Mu.Unlock()

	if code == "" || code != r.store.LatestOTP {
		return apperrors.ErrInvalidOTP
	}

	r.store.LatestOTP = ""
	return nil
}
