package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/traviq/traviq-backend/internal/pkg/apperrors"
	"github.com/traviq/traviq-backend/internal/pkg/models"
	"github.com/traviq/traviq-backend/services/tourist/mocks"
)

func TestListAlerts_SortedNewestFirst(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockTouristRepo(ctrl)
	uc := NewTouristUC(mockRepo)

	now := time.Now().UTC()
	mockRepo.EXPECT().
		Alerts(gomock.Any(), "T001").
		Return([]models.PersonalAlert{
			{ID: "A1", Time: now.Add(-2 * time.Hour)},
			{ID: "A2", Time: now},
			{ID: "A3", Time: now.Add(-time.Hour)},
		}, nil)

	// Act
	alerts, err := uc.ListAlerts(context.Background(), "T001")

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, []string{"A2", "A3", "A1"}, []string{alerts[0].ID, alerts[1].ID, alerts[2].ID})
}

func TestAddContact_GeneratesID(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockTouristRepo(ctrl)
	uc := NewTouristUC(mockRepo)

	var stored models.EmergencyContact
	mockRepo.EXPECT().
		AddContact(gomock.Any(), "T001", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, contact models.EmergencyContact) error {
			stored = contact
			return nil
		})

	// Act
	contact, err := uc.AddContact(context.Background(), "T001", &models.ContactRequest{
		Name: "Happy Hogan", Number: "+91 9000000000", Relation: "Driver",
	})

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, stored, *contact)
	assert.Contains(t, contact.ID, "EC")
	assert.Equal(t, "Happy Hogan", contact.Name)
}

func TestTriggerSOS_UnknownTourist(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockTouristRepo(ctrl)
	uc := NewTouristUC(mockRepo)

	mockRepo.EXPECT().
		ActivateSOS(gomock.Any(), "T999", gomock.Nil()).
		Return(nil, apperrors.ErrTouristNotFound)

	// Act
	err := uc.TriggerSOS(context.Background(), "T999", nil)

	// Assert
	assert.ErrorIs(t, err, apperrors.ErrTouristNotFound)
}

func TestSetLocationSharing_ReturnsNewValue(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockTouristRepo(ctrl)
	uc := NewTouristUC(mockRepo)

	mockRepo.EXPECT().
		SetLocationSharing(gomock.Any(), "T001", true).
		Return(nil)

	// Act
	active, err := uc.SetLocationSharing(context.Background(), "T001", true)

	// Assert
	assert.NoError(t, err)
	assert.True(t, active)
}
