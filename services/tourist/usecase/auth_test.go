package usecase

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/traviq/traviq-backend/internal/pkg/apperrors"
	"github.com/traviq/traviq-backend/internal/pkg/models"
	"github.com/traviq/traviq-backend/services/tourist/mocks"
)

func TestSignUp_BuildsFullRecord(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockTouristRepo(ctrl)
	uc := NewTouristUC(mockRepo)

	var created *models.Tourist
	mockRepo.EXPECT().
		CreateTourist(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, tourist *models.Tourist) error {
			created = tourist
			return nil
		})

	req := &models.SignupRequest{
		IDNumber:           "123456789012",
		FullName:           "Steve Rogers",
		Password:           "shield",
		VerificationMethod: "Aadhaar",
	}

	// Act
	result, err := uc.SignUp(context.Background(), req)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, created, result)
	assert.NotEmpty(t, result.ID)
	assert.Contains(t, result.DigitalID, "TRV-SR")
	assert.Equal(t, "Aadhaar", result.IDType)
	assert.Equal(t, models.TouristStatusActive, result.Status)
	assert.Equal(t, "Unknown", result.Nationality)
	assert.Nil(t, result.CurrentLocation)
	assert.False(t, result.LocationSharing)

	// The welcome alert is seeded unread
	assert.Len(t, result.Alerts, 1)
	assert.Equal(t, "Welcome to TRAVIQ", result.Alerts[0].Title)
	assert.True(t, result.Alerts[0].Unread)
}

func TestSignUp_DuplicateIdentity(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockTouristRepo(ctrl)
	uc := NewTouristUC(mockRepo)

	mockRepo.EXPECT().
		CreateTourist(gomock.Any(), gomock.Any()).
		Return(apperrors.ErrDuplicateIdentity)

	// Act
	result, err := uc.SignUp(context.Background(), &models.SignupRequest{
		IDNumber:           "123456789012",
		FullName:           "Steve Rogers",
		Password:           "shield",
		VerificationMethod: "Aadhaar",
	})

	// Assert
	assert.ErrorIs(t, err, apperrors.ErrDuplicateIdentity)
	assert.Nil(t, result)
}

func TestSendOTP_StoresGeneratedCode(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockTouristRepo(ctrl)
	uc := NewTouristUC(mockRepo)

	var stored string
	mockRepo.EXPECT().
		SetOTP(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, code string) error {
			stored = code
			return nil
		})

	// Act
	err := uc.SendOTP(context.Background(), "123456789012")

	// Assert
	assert.NoError(t, err)
	assert.Len(t, stored, 6)
}

func TestVerifyOTP_Invalid(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockTouristRepo(ctrl)
	uc := NewTouristUC(mockRepo)

	mockRepo.EXPECT().
		ConsumeOTP(gomock.Any(), "000000").
		Return(apperrors.ErrInvalidOTP)

	// Act
	err := uc.VerifyOTP(context.Background(), "000000")

	// Assert
	assert.ErrorIs(t, err, apperrors.ErrInvalidOTP)
}

func TestLogin_ReturnsProfileSubset(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockTouristRepo(ctrl)
	uc := NewTouristUC(mockRepo)

	profile := &models.TouristProfile{
		ID:              "T001",
		FullName:        "Tony Stark",
		DigitalID:       "TRV-TS1234-5678",
		LocationSharing: true,
	}
	mockRepo.EXPECT().
		GetProfile(gomock.Any(), "TRV-TS1234-5678", "password").
		Return(profile, nil)

	// Act
	result, err := uc.Login(context.Background(), "TRV-TS1234-5678", "password")

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, profile, result)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockTouristRepo(ctrl)
	uc := NewTouristUC(mockRepo)

	mockRepo.EXPECT().
		GetProfile(gomock.Any(), "TRV-TS1234-5678", "wrong").
		Return(nil, apperrors.ErrInvalidCredentials)

	// Act
	result, err := uc.Login(context.Background(), "TRV-TS1234-5678", "wrong")

	// Assert
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	assert.Nil(t, result)
}
