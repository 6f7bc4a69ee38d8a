package usecase

import (
	"context"
	"strings"

	"github.com/traviq/traviq-backend/internal/pkg/models"
)

// filterActive reports whether a listing filter value narrows the result;
// empty and "all" both mean no filtering.
func filterActive(value string) bool {
	return value != "" && value != "all"
}

// paginate returns the slice bounds for a 1-based page over n items.
func paginate(n, page, limit int) (int, int) {
	start := (page - 1) * limit
	if start > n {
		start = n
	}
	end := start + limit
	if end > n {
		end = n
	}
	return start, end
}

// ListTourists filters the registry by search term, status and nationality,
// then pages the result. Total counts the post-filter set.
func (uc *DepartmentUC) ListTourists(ctx context.Context, q models.TouristListQuery) (*models.TouristPage, error) {
	tourists, err := uc.departmentRepo.Tourists(ctx)
	if err != nil {
		return nil, err
	}

	filtered := make([]models.Tourist, 0, len(tourists))
	search := strings.ToLower(q.Search)
	for _, t := range tourists {
		if search != "" &&
			!strings.Contains(strings.ToLower(t.FullName), search) &&
			!strings.Contains(strings.ToLower(t.DigitalID), search) &&
			!strings.Contains(strings.ToLower(t.IDNumber), search) {
			continue
		}
		if filterActive(q.Status) && !strings.EqualFold(t.Status, q.Status) {
			continue
		}
		if filterActive(q.Nationality) && !strings.EqualFold(t.Nationality, q.Nationality) {
			continue
		}
		filtered = append(filtered, t)
	}

	start, end := paginate(len(filtered), q.Page, q.Limit)
	return &models.TouristPage{
		Total: len(filtered),
		Page:  q.Page,
		Limit: q.Limit,
		Data:  filtered[start:end],
	}, nil
}
