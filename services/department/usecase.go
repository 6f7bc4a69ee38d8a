package department

import (
	"context"

	"github.com/traviq/traviq-backend/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/traviq/traviq-backend/services/department DepartmentUC

// DepartmentUC is the authority-facing usecase contract: dashboard reads,
// manual alert broadcasts and E-FIR case management.
type DepartmentUC interface {
	// dashboard
	DashboardStats(ctx context.Context) (*models.DashboardStats, error)
	MapData(ctx context.Context) (*models.MapData, error)
	ChartsData(ctx context.Context) (*models.ChartsData, error)
	RecentAlerts(ctx context.Context) ([]models.DepartmentAlertView, error)
	DigitalIDVerifications(ctx context.Context) ([]models.DigitalIDVerification, error)

	// alerting
	SendAlert(ctx context.Context, req *models.SendAlertRequest) (*models.DepartmentAlert, error)
	AlertHistory(ctx context.Context) ([]models.DepartmentAlertView, error)

	// registry & case management
	ListTourists(ctx context.Context, q models.TouristListQuery) (*models.TouristPage, error)
	ListReports(ctx context.Context, q models.ReportListQuery) (*models.ReportPage, error)
	GetReport(ctx context.Context, id string) (*models.EFIRReportView, error)
	UpdateReport(ctx context.Context, id string, req *models.UpdateReportRequest) (*models.EFIRReportView, error)
}
