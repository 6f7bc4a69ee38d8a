package usecase

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/traviq/traviq-backend/internal/pkg/models"
)

// Date range filter values for the report listing.
const (
	dateFilterToday     = "today"
	dateFilterYesterday = "yesterday"
	dateFilterWeek      = "week"
	dateFilterMonth     = "month"
)

// inDateRange evaluates a report timestamp against the listing's date
// filter. Week and month are rolling windows of 7 and 30 days.
func inDateRange(t time.Time, dateFilter string, now time.Time) bool {
	switch dateFilter {
	case dateFilterToday:
		return models.SameUTCDay(t, now)
	case dateFilterYesterday:
		return models.SameUTCDay(t, now.Add(-24*time.Hour))
	case dateFilterWeek:
		return !t.Before(now.Add(-7 * 24 * time.Hour))
	case dateFilterMonth:
		return !t.Before(now.Add(-30 * 24 * time.Hour))
	default:
		return true
	}
}

// ListReports filters the E-FIR collection by status, type substring and
// date range, sorts newest first and pages the result.
func (uc *DepartmentUC) ListReports(ctx context.Context, q models.ReportListQuery) (*models.ReportPage, error) {
	reports, err := uc.departmentRepo.Reports(ctx)
	if err != nil {
		return nil, err
	}

	now := models.Now()
	typeFilter := strings.ToLower(q.Type)
	filtered := make([]models.EFIRReport, 0, len(reports))
	for _, r := range reports {
		if filterActive(q.Status) && !strings.EqualFold(r.Status, q.Status) {
			continue
		}
		if filterActive(q.Type) && !strings.Contains(strings.ToLower(r.Type), typeFilter) {
			continue
		}
		if filterActive(q.Date) && !inDateRange(r.Time, q.Date, now) {
			continue
		}
		filtered = append(filtered, r)
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].Time.After(filtered[j].Time)
	})

	start, end := paginate(len(filtered), q.Page, q.Limit)
	page := filtered[start:end]
	views := make([]models.EFIRReportView, 0, len(page))
	for _, r := range page {
		views = append(views, r.Display())
	}

	return &models.ReportPage{
		Total: len(filtered),
		Page:  q.Page,
		Limit: q.Limit,
		Data:  views,
	}, nil
}

// GetReport returns one report with its display timestamp.
func (uc *DepartmentUC) GetReport(ctx context.Context, id string) (*models.EFIRReportView, error) {
	report, err := uc.departmentRepo.GetReport(ctx, id)
	if err != nil {
		return nil, err
	}
	view := report.Display()
	return &view, nil
}

// UpdateReport applies a partial status/notes update and returns the
// updated report with its display timestamp.
func (uc *DepartmentUC) UpdateReport(ctx context.Context, id string, req *models.UpdateReportRequest) (*models.EFIRReportView, error) {
	report, err := uc.departmentRepo.UpdateReport(ctx, id, req.Status, req.OfficerNotes)
	if err != nil {
		return nil, err
	}
	view := report.Display()
	return &view, nil
}
