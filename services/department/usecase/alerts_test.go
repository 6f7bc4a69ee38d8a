package usecase

import (
	"context"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/traviq/traviq-backend/internal/pkg/models"
	"github.com/traviq/traviq-backend/services/department/mocks"
)

func TestSendAlert_SingleRecipient(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockDepartmentRepo(ctrl)
	uc := NewDepartmentUC(mockRepo)

	mockRepo.EXPECT().
		TouristsByDigitalIDs(gomock.Any(), []string{"TRV-TS1234-5678"}).
		Return([]models.Tourist{{ID: "T001", DigitalID: "TRV-TS1234-5678", FullName: "Tony Stark"}}, nil)

	var prepended *models.DepartmentAlert
	mockRepo.EXPECT().
		PrependDepartmentAlert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, alert *models.DepartmentAlert) error {
			prepended = alert
			return nil
		})

	var delivered models.PersonalAlert
	mockRepo.EXPECT().
		PushTouristAlert(gomock.Any(), "T001", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, alert models.PersonalAlert) error {
			delivered = alert
			return nil
		})

	req := &models.SendAlertRequest{
		AlertType:         "weather",
		RecipientType:     models.RecipientTypeSingle,
		TouristDigitalIDs: []string{"TRV-TS1234-5678"},
		AlertMessage:      "Heavy rain expected in your area.",
		Priority:          "High",
	}

	// Act
	alert, err := uc.SendAlert(context.Background(), req)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, prepended, alert)
	assert.Equal(t, "Weather Alert", alert.Title)
	assert.Equal(t, models.DeptAlertStatusSent, alert.Status)
	assert.NotNil(t, alert.RecipientsCount)
	assert.Equal(t, 1, *alert.RecipientsCount)
	assert.Contains(t, alert.ID, "MANUAL-")

	// The recipient's personal alert mirrors the broadcast
	assert.Equal(t, "Weather Alert", delivered.Title)
	assert.Equal(t, "Heavy rain expected in your area.", delivered.Message)
	assert.True(t, delivered.Unread)
}

func TestSendAlert_AreaFallsBackToActiveWithLocation(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockDepartmentRepo(ctrl)
	uc := NewDepartmentUC(mockRepo)

	mockRepo.EXPECT().
		ActiveTourists(gomock.Any(), true).
		Return([]models.Tourist{
			{ID: "T001", Status: models.TouristStatusActive},
			{ID: "T004", Status: models.TouristStatusActive},
		}, nil)
	mockRepo.EXPECT().PrependDepartmentAlert(gomock.Any(), gomock.Any()).Return(nil)
	mockRepo.EXPECT().PushTouristAlert(gomock.Any(), "T001", gomock.Any()).Return(nil)
	mockRepo.EXPECT().PushTouristAlert(gomock.Any(), "T004", gomock.Any()).Return(nil)

	req := &models.SendAlertRequest{
		AlertType:     "advisory",
		RecipientType: models.RecipientTypeArea,
		Area:          "Sector 10",
		AlertMessage:  "Avoid the market area.",
	}

	// Act
	alert, err := uc.SendAlert(context.Background(), req)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, 2, *alert.RecipientsCount)
}

func TestSendAlert_NoTargetingReachesAllActive(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockDepartmentRepo(ctrl)
	uc := NewDepartmentUC(mockRepo)

	mockRepo.EXPECT().
		ActiveTourists(gomock.Any(), false).
		Return([]models.Tourist{{ID: "T001"}}, nil)
	mockRepo.EXPECT().PrependDepartmentAlert(gomock.Any(), gomock.Any()).Return(nil)
	mockRepo.EXPECT().PushTouristAlert(gomock.Any(), "T001", gomock.Any()).Return(nil)

	// Act
	alert, err := uc.SendAlert(context.Background(), &models.SendAlertRequest{
		AlertType:    "security",
		AlertMessage: "Stay indoors.",
	})

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, "Security Alert", alert.Title)
	assert.Equal(t, 1, *alert.RecipientsCount)
}

func TestAlertTitle_CapitalizesFirstRune(t *testing.T) {
	assert.Equal(t, "Weather Alert", alertTitle("weather"))
	assert.Equal(t, "Évacuation Alert", alertTitle("évacuation"))
	assert.Equal(t, "Alert", alertTitle(""))
	assert.True(t, utf8.ValidString(alertTitle("über")))
}

func TestAlertHistory_SortedNewestFirstWithDisplayTimes(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockDepartmentRepo(ctrl)
	uc := NewDepartmentUC(mockRepo)

	mockRepo.EXPECT().Alerts(gomock.Any()).Return([]models.DepartmentAlert{
		{ID: "A-OLD", Time: time.Date(2025, 9, 11, 9, 30, 0, 0, time.UTC)},
		{ID: "A-NEW", Time: time.Date(2025, 9, 12, 10, 23, 0, 0, time.UTC)},
	}, nil)

	// Act
	history, err := uc.AlertHistory(context.Background())

	// Assert
	assert.NoError(t, err)
	assert.Len(t, history, 2)
	assert.Equal(t, "A-NEW", history[0].ID)
	assert.Equal(t, "9/12/2025, 10:23:00 AM", history[0].Time)
	assert.Equal(t, "9/11/2025, 9:30:00 AM", history[1].Time)
}
