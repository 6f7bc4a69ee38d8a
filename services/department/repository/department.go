// Package repository implements the department service's data access over
// the shared in-memory store.
package repository

import (
	"context"

	"github.com/traviq/traviq-backend/internal/pkg/apperrors"
	"github.com/traviq/traviq-backend/internal/pkg/models"
	"github.com/traviq/traviq-backend/internal/pkg/store"
)

// DepartmentRepo provides department data access over the in-memory store
type DepartmentRepo struct {
	store *store.Store
}

// NewDepartmentRepo creates a new department repository instance
func NewDepartmentRepo(s *store.Store) *DepartmentRepo {
	return &DepartmentRepo{store: s}
}

// Tourists returns a deep snapshot of every registered tourist in insertion
// order.
func (r *DepartmentRepo) Tourists(ctx context.Context) ([]models.Tourist, error) {
	r.store.Mu.RLock()
	defer r.store.Mu.RUnlock()

	out := make([]models.Tourist, 0, len(r.store.Tourists))
	for _, t := range r.store.Tourists {
		out = append(out, store.CloneTourist(t))
	}
	return out, nil
}

// TouristsByDigitalIDs returns the tourists whose digital ID appears in the
// given set, in store order.
func (r *DepartmentRepo) TouristsByDigitalIDs(ctx context.Context, digitalIDs []string) ([]models.Tourist, error) {
	wanted := make(map[string]struct{}, len(digitalIDs))
	for _, id := range digitalIDs {
		wanted[id] = struct{}{}
	}

	r.store.Mu.RLock()
	defer r.store.Mu.RUnlock()

	var out []models.Tourist
	for _, t := range r.store.Tourists {
		if _, ok := wanted[t.DigitalID]; ok {
			out = append(out, store.CloneTourist(t))
		}
	}
	return out, nil
}

// ActiveTourists returns tourists with status Active, optionally restricted
// to those with a known location.
func (r *DepartmentRepo) ActiveTourists(ctx context.Context, requireLocation bool) ([]models.Tourist, error) {
	r.store.Mu.RLock()
	defer r.store.Mu.RUnlock()

	var out []models.Tourist
	for _, t := range r.store.Tourists {
		if t.Status != models.TouristStatusActive {
			continue
		}
		if requireLocation && t.CurrentLocation == nil {
			continue
		}
		out = append(out, store.CloneTourist(t))
	}
	return out, nil
}

// PushTouristAlert prepends an alert to one tourist's personal feed.
func (r *DepartmentRepo) PushTouristAlert(ctx context.Context, touristID string, alert models.PersonalAlert) error {
	r.store.Mu.Lock()
	defer r.store.Mu.Unlock()

	for _, t := range r.store.Tourists {
		if t.ID == touristID {
			t.Alerts = append([]models.PersonalAlert{alert}, t.Alerts...)
			return nil
		}
	}
	return apperrors.ErrTouristNotFound
}

// Alerts returns a snapshot of the department alert feed, newest first.
func (r *DepartmentRepo) Alerts(ctx context.Context) ([]models.DepartmentAlert, error) {
	r.store.Mu.RLock()
	defer r.store.Mu.RUnlock()

	out := make([]models.DepartmentAlert, 0, len(r.store.DepartmentAlerts))
	for _, a := range r.store.DepartmentAlerts {
		out = append(out, *a)
	}
	return out, nil
}

// PrependDepartmentAlert pushes a new alert onto the front of the feed.
func (r *DepartmentRepo) PrependDepartmentAlert(ctx context.Context, alert *models.DepartmentAlert) error {
	r.store.Mu.Lock()
	defer r.store.Mu.Unlock()

	r.store.DepartmentAlerts = append([]*models.DepartmentAlert{alert}, r.store.DepartmentAlerts...)
	return nil
}

// Reports returns a snapshot of every E-FIR report, newest first.
func (r *DepartmentRepo) Reports(ctx context.Context) ([]models.EFIRReport, error) {
	r.store.Mu.RLock()
	defer r.store.Mu.RUnlock()

	out := make([]models.EFIRReport, 0, len(r.store.EFIRReports))
	for _, rep := range r.store.EFIRReports {
		out = append(out, *rep)
	}
	return out, nil
}

// GetReport returns one report by ID.
func (r *DepartmentRepo) GetReport(ctx context.Context, id string) (*models.EFIRReport, error) {
	r.store.Mu.RLock()
	defer r.store.Mu.RUnlock()

	for _, rep := range r.store.EFIRReports {
		if rep.ID == id {
			snapshot := *rep
			return &snapshot, nil
		}
	}
	return nil, apperrors.ErrReportNotFound
}

// UpdateReport applies a partial update to one report under a single lock.
// Empty fields leave the stored values unchanged.
func (r *DepartmentRepo) UpdateReport(ctx context.Context, id, status, officerNotes string) (*models.EFIRReport, error) {
	r.store.Mu.Lock()
	defer r.store.Mu.Unlock()

	for _, rep := range r.store.EFIRReports {
		if rep.ID == id {
			if status != "" {
				rep.Status = status
			}
			if officerNotes != "" {
				rep.OfficerNotes = officerNotes
			}
			snapshot := *rep
			return &snapshot, nil
		}
	}
	return nil, apperrors.ErrReportNotFound
}
