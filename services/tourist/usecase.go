package tourist

import (
	"context"

	"github.com/traviq/traviq-backend/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/traviq/traviq-backend/services/tourist TouristUC

// TouristUC is the tourist-facing usecase contract: registration and
// authentication plus the live-state operations of the tourist app.
type TouristUC interface {
	// registration & authentication
	SignUp(ctx context.Context, req *models.SignupRequest) (*models.Tourist, error)
	SendOTP(ctx context.Context, idNumber string) error
	VerifyOTP(ctx context.Context, code string) error
	Login(ctx context.Context, digitalID, password string) (*models.TouristProfile, error)

	// live state
	TriggerSOS(ctx context.Context, touristID string, location *models.Location) error
	UpdateLocation(ctx context.Context, touristID string, location models.Location) error
	GetLocation(ctx context.Context, touristID string) (*models.LocationStatus, error)
	SetLocationSharing(ctx context.Context, touristID string, active bool) (bool, error)

	// contacts & personal alerts
	ListContacts(ctx context.Context, touristID string) ([]models.EmergencyContact, error)
	AddContact(ctx context.Context, touristID string, req *models.ContactRequest) (*models.EmergencyContact, error)
	ListAlerts(ctx context.Context, touristID string) ([]models.PersonalAlert, error)
	MarkAlertRead(ctx context.Context, touristID, alertID string) error
}
