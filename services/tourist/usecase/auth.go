package usecase

import (
	"context"
	"fmt"

	"github.com/traviq/traviq-backend/internal/pkg/logger"
	"github.com/traviq/traviq-backend/internal/pkg/models"
	"github.com/traviq/traviq-backend/internal/utils"
)

// SignUp registers a new tourist. The digital ID is generated from the name
// without a uniqueness check, matching the original platform's scheme.
func (u *TouristUC) SignUp(ctx context.Context, req *models.SignupRequest) (*models.Tourist, error) {
	now := models.Now()

	newTourist := &models.Tourist{
		ID:                utils.NewTouristID(),
		DigitalID:         utils.GenerateDigitalID(req.FullName),
		FullName:          req.FullName,
		Password:          req.Password,
		IDType:            req.VerificationMethod,
		IDNumber:          req.IDNumber,
		DocumentPath:      req.DocumentPath,
		EmergencyContacts: []models.EmergencyContact{},
		LocationSharing:   false,
		SharedWith:        []string{},
		CurrentLocation:   nil,
		Alerts: []models.PersonalAlert{{
			ID:      utils.NewPersonalAlertID(),
			Type:    models.AlertTypeInfo,
			Title:   "Welcome to TRAVIQ",
			Message: "Your TRAVIQ Digital Identity has been successfully verified and activated. Stay safe!",
			Time:    now,
			Unread:  true,
		}},
		Nationality: "Unknown",
		ArrivalDate: now.Format(models.ArrivalDateLayout),
		Status:      models.TouristStatusActive,
	}

	if err := u.touristRepo.CreateTourist(ctx, newTourist); err != nil {
		return nil, err
	}

	logger.Info("Registered new tourist",
		logger.String("tourist_id", newTourist.ID),
		logger.String("digital_id", newTourist.DigitalID))

	return newTourist, nil
}

// SendOTP issues a new one-time code, replacing any outstanding one. There
// is no real delivery channel; the code is written to the server log.
func (u *TouristUC) SendOTP(ctx context.Context, idNumber string) error {
	code := utils.GenerateOTP()

	if err := u.touristRepo.SetOTP(ctx, code); err != nil {
		return fmt.Errorf("failed to store OTP: %w", err)
	}

	// Simulated delivery: a real integration would hand the code to an
	// SMS/email provider here.
	logger.Info("Simulated OTP delivery",
		logger.String("id_number", idNumber),
		logger.String("otp_code", code))

	return nil
}

// VerifyOTP checks the submitted code against the outstanding one and clears
// it on success.
func (u *TouristUC) VerifyOTP(ctx context.Context, code string) error {
	return u.touristRepo.ConsumeOTP(ctx, code)
}

// Login authenticates a tourist by digital ID and password and returns the
// profile subset. The password never appears in the result.
func (u *TouristUC) Login(ctx context.Context, digitalID, password string) (*models.TouristProfile, error) {
	profile, err := u.touristRepo.GetProfile(ctx, digitalID, password)
	if err != nil {
		return nil, err
	}

	logger.Info("Tourist logged in", logger.String("tourist_id", profile.ID))
	return profile, nil
}
