package store

import "github.com/traviq/traviq-backend/internal/pkg/models"

// CloneTourist returns a deep copy of a tourist record so snapshots handed
// out by repositories stay valid outside the store lock.
func CloneTourist(t *models.Tourist) models.Tourist {
	clone := *t

	if t.DocumentPath != nil {
		path := *t.DocumentPath
		clone.DocumentPath = &path
	}
	if t.CurrentLocation != nil {
		loc := *t.CurrentLocation
		clone.CurrentLocation = &loc
	}

	clone.EmergencyContacts = append([]models.EmergencyContact(nil), t.EmergencyContacts...)
	clone.SharedWith = append([]string(nil), t.SharedWith...)
	clone.Alerts = append([]models.PersonalAlert(nil), t.Alerts...)

	return clone
}
