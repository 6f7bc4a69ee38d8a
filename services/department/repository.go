package department

import (
	"context"

	"github.com/traviq/traviq-backend/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/traviq/traviq-backend/services/department DepartmentRepo

// DepartmentRepo provides the department service's view over the shared
// collections. Read methods return snapshots safe to filter and sort without
// holding the store lock.
type DepartmentRepo interface {
	Tourists(ctx context.Context) ([]models.Tourist, error)
	TouristsByDigitalIDs(ctx context.Context, digitalIDs []string) ([]models.Tourist, error)
	ActiveTourists(ctx context.Context, requireLocation bool) ([]models.Tourist, error)
	PushTouristAlert(ctx context.Context, touristID string, alert models.PersonalAlert) error

	Alerts(ctx context.Context) ([]models.DepartmentAlert, error)
	PrependDepartmentAlert(ctx context.Context, alert *models.DepartmentAlert) error

	Reports(ctx context.Context) ([]models.EFIRReport, error)
	GetReport(ctx context.Context, id string) (*models.EFIRReport, error)
	UpdateReport(ctx context.Context, id, status, officerNotes string) (*models.EFIRReport, error)
}
