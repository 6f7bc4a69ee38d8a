package tourist

import (
	"context"

	"github.com/traviq/traviq-backend/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/traviq/traviq-backend/services/tourist TouristRepo

// TouristRepo is the data access contract for the tourist service. Every
// check-then-act sequence (uniqueness check, SOS prepend chain, alert-read
// toggle, contact append, OTP consume) is a single atomic operation.
type TouristRepo interface {
	CreateTourist(ctx context.Context, t *models.Tourist) error
	GetProfile(ctx context.Context, digitalID, password string) (*models.TouristProfile, error)

	ActivateSOS(ctx context.Context, touristID string, location *models.Location) (*models.EFIRReport, error)
	SetLocation(ctx context.Context, touristID string, location models.Location) error
	GetLocationStatus(ctx context.Context, touristID string) (*models.LocationStatus, error)
	SetLocationSharing(ctx context.Context, touristID string, active bool) error

	Contacts(ctx context.Context, touristID string) ([]models.EmergencyContact, error)
	AddContact(ctx context.Context, touristID string, contact models.EmergencyContact) error
	Alerts(ctx context.Context, touristID string) ([]models.PersonalAlert, error)
	MarkAlertRead(ctx context.Context, touristID, alertID string) error

	SetOTP(ctx context.Context, code string) error
	ConsumeOTP(ctx context.Context, code string) error
}
