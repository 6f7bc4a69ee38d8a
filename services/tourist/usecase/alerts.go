package usecase

import (
	"context"
	"sort"

	"github.com/traviq/traviq-backend/internal/pkg/models"
	"github.com/traviq/traviq-backend/internal/utils"
)

// ListContacts returns the tourist's emergency contacts
func (u *TouristUC) ListContacts(ctx context.Context, touristID string) ([]models.EmergencyContact, error) {
	return u.touristRepo.Contacts(ctx, touristID)
}

// AddContact appends a new emergency contact with a generated id
func (u *TouristUC) AddContact(ctx context.Context, touristID string, req *models.ContactRequest) (*models.EmergencyContact, error) {
	contact := models.EmergencyContact{
		ID:       utils.NewContactID(),
		Name:     req.Name,
		Number:   req.Number,
		Relation: req.Relation,
	}

	if err := u.touristRepo.AddContact(ctx, touristID, contact); err != nil {
		return nil, err
	}

	return &contact, nil
}

// ListAlerts returns the tourist's personal alerts newest-first. The sort is
// stable so same-instant alerts keep their insertion order.
func (u *TouristUC) ListAlerts(ctx context.Context, touristID string) ([]models.PersonalAlert, error) {
	alerts, err := u.touristRepo.Alerts(ctx, touristID)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(alerts, func(i, j int) bool {
		return alerts[i].Time.After(alerts[j].Time)
	})

	return alerts, nil
}

// MarkAlertRead clears the unread flag on one personal alert
func (u *TouristUC) MarkAlertRead(ctx context.Context, touristID, alertID string) error {
	return u.touristRepo.MarkAlertRead(ctx, touristID, alertID)
}
