package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/traviq/traviq-backend/internal/pkg/apperrors"
	"github.com/traviq/traviq-backend/internal/pkg/models"
	"github.com/traviq/traviq-backend/internal/pkg/store"
)

func newSeededRepo() (*DepartmentRepo, *store.Store) {
	s := store.NewSeeded()
	return NewDepartmentRepo(s), s
}

func TestTourists_SnapshotIsIndependent(t *testing.T) {
	// Arrange
	repo, s := newSeededRepo()

	// Act
	snapshot, err := repo.Tourists(context.Background())

	// Assert
	assert.NoError(t, err)
	assert.Len(t, snapshot, len(s.Tourists))

	// Mutating the snapshot must not leak into the store
	snapshot[0].FullName = "Changed"
	snapshot[0].EmergencyContacts = append(snapshot[0].EmergencyContacts, models.EmergencyContact{ID: "EC-X"})
	assert.Equal(t, "Tony Stark", s.Tourists[0].FullName)
	assert.Len(t, s.Tourists[0].EmergencyContacts, 1)
}

func TestTouristsByDigitalIDs_MatchesOnlyGivenIDs(t *testing.T) {
	// Arrange
	repo, _ := newSeededRepo()

	// Act
	matched, err := repo.TouristsByDigitalIDs(context.Background(), []string{"TRV-TS1234-5678", "TRV-TO3456-1234", "TRV-XX0000-0000"})

	// Assert
	assert.NoError(t, err)
	assert.Len(t, matched, 2)
	assert.Equal(t, "T001", matched[0].ID)
	assert.Equal(t, "T003", matched[1].ID)
}

func TestActiveTourists_RequireLocation(t *testing.T) {
	// Arrange
	repo, s := newSeededRepo()
	var activeTotal, activeLocated int
	for _, tourist := range s.Tourists {
		if tourist.Status == models.TouristStatusActive {
			activeTotal++
			if tourist.CurrentLocation != nil {
				activeLocated++
			}
		}
	}

	// Act
	all, err := repo.ActiveTourists(context.Background(), false)
	assert.NoError(t, err)
	located, err := repo.ActiveTourists(context.Background(), true)

	// Assert
	assert.NoError(t, err)
	assert.Len(t, all, activeTotal)
	assert.Len(t, located, activeLocated)
	for _, tourist := range located {
		assert.NotNil(t, tourist.CurrentLocation)
	}
}

func TestPushTouristAlert_PrependsToFeed(t *testing.T) {
	// Arrange
	repo, s := newSeededRepo()
	alert := models.PersonalAlert{ID: "A-NEW", Title: "Weather Alert", Unread: true}

	// Act
	err := repo.PushTouristAlert(context.Background(), "T001", alert)

	// Assert
	assert.NoError(t, err)
	for _, tourist := range s.Tourists {
		if tourist.ID == "T001" {
			assert.Equal(t, "A-NEW", tourist.Alerts[0].ID)
		}
	}
}

func TestPushTouristAlert_UnknownTourist(t *testing.T) {
	// Arrange
	repo, _ := newSeededRepo()

	// Act
	err := repo.PushTouristAlert(context.Background(), "T999", models.PersonalAlert{ID: "A-NEW"})

	// Assert
	assert.ErrorIs(t, err, apperrors.ErrTouristNotFound)
}

func TestPrependDepartmentAlert_NewestFirst(t *testing.T) {
	// Arrange
	repo, s := newSeededRepo()
	before := len(s.DepartmentAlerts)
	alert := &models.DepartmentAlert{ID: "MANUAL-1-1", Title: "Weather Alert"}

	// Act
	err := repo.PrependDepartmentAlert(context.Background(), alert)

	// Assert
	assert.NoError(t, err)
	assert.Len(t, s.DepartmentAlerts, before+1)
	assert.Equal(t, "MANUAL-1-1", s.DepartmentAlerts[0].ID)
}

func TestGetReport_Seeded(t *testing.T) {
	// Arrange
	repo, _ := newSeededRepo()

	// Act
	report, err := repo.GetReport(context.Background(), "#SOS-1245")

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, "Tony Stark", report.TouristName)
	assert.Equal(t, models.ReportTypeSOS, report.Type)
}

func TestGetReport_NotFound(t *testing.T) {
	// Arrange
	repo, _ := newSeededRepo()

	// Act
	report, err := repo.GetReport(context.Background(), "#MISSING")

	// Assert
	assert.ErrorIs(t, err, apperrors.ErrReportNotFound)
	assert.Nil(t, report)
}

func TestUpdateReport_PartialUpdate(t *testing.T) {
	// Arrange
	repo, s := newSeededRepo()
	var originalNotes string
	for _, report := range s.EFIRReports {
		if report.ID == "#SOS-1245" {
			originalNotes = report.OfficerNotes
		}
	}

	// Act: status only, notes untouched
	updated, err := repo.UpdateReport(context.Background(), "#SOS-1245", "Resolved", "")

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, "Resolved", updated.Status)
	assert.Equal(t, originalNotes, updated.OfficerNotes)

	// Act: notes only, status untouched
	updated, err = repo.UpdateReport(context.Background(), "#SOS-1245", "", "Case closed.")

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, "Resolved", updated.Status)
	assert.Equal(t, "Case closed.", updated.OfficerNotes)
}

func TestUpdateReport_NotFound(t *testing.T) {
	// Arrange
	repo, _ := newSeededRepo()

	// Act
	updated, err := repo.UpdateReport(context.Background(), "#MISSING", "Resolved", "")

	// Assert
	assert.ErrorIs(t, err, apperrors.ErrReportNotFound)
	assert.Nil(t, updated)
}
