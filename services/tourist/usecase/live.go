package usecase

import (
	"context"

	"github.com/traviq/traviq-backend/internal/pkg/logger"
	"github.com/traviq/traviq-backend/internal/pkg/models"
)

// TriggerSOS files the SOS event for a tourist: one E-FIR report, one
// department alert, and one personal alert, all created atomically by the
// repository. Succeeds whether or not any location is known.
func (u *TouristUC) TriggerSOS(ctx context.Context, touristID string, location *models.Location) error {
	report, err := u.touristRepo.ActivateSOS(ctx, touristID, location)
	if err != nil {
		return err
	}

	logger.Warn("SOS activated",
		logger.String("tourist_id", touristID),
		logger.String("report_id", report.ID),
		logger.Float64("lat", report.Location.Lat),
		logger.Float64("lng", report.Location.Lng))

	return nil
}

// UpdateLocation overwrites the tourist's current location
func (u *TouristUC) UpdateLocation(ctx context.Context, touristID string, location models.Location) error {
	return u.touristRepo.SetLocation(ctx, touristID, location)
}

// GetLocation returns the tourist's current location and sharing flag
func (u *TouristUC) GetLocation(ctx context.Context, touristID string) (*models.LocationStatus, error) {
	return u.touristRepo.GetLocationStatus(ctx, touristID)
}

// SetLocationSharing sets the sharing flag and returns the new value
func (u *TouristUC) SetLocationSharing(ctx context.Context, touristID string, active bool) (bool, error) {
	if err := u.touristRepo.SetLocationSharing(ctx, touristID, active); err != nil {
		return false, err
	}
	return active, nil
}
