package http

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"

	"github.com/labstack/echo/v4"

	"github.com/traviq/traviq-backend/internal/pkg/apperrors"
	"github.com/traviq/traviq-backend/internal/pkg/logger"
	"github.com/traviq/traviq-backend/internal/pkg/models"
	"github.com/traviq/traviq-backend/internal/utils"
	"github.com/traviq/traviq-backend/services/tourist"
)

// AuthHandler handles tourist registration and authentication requests
type AuthHandler struct {
	touristUC tourist.TouristUC
	uploads   models.UploadsConfig
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(touristUC tourist.TouristUC, uploads models.UploadsConfig) *AuthHandler {
	return &AuthHandler{
		touristUC: touristUC,
		uploads:   uploads,
	}
}

// SignUp handles multipart tourist registration with an optional document
// attachment.
func (h *AuthHandler) SignUp(c echo.Context) error {
	req := &models.SignupRequest{
		IDNumber:           c.FormValue("idNumber"),
		FullName:           c.FormValue("fullName"),
		Password:           c.FormValue("password"),
		VerificationMethod: c.FormValue("verificationMethod"),
	}

	if req.IDNumber == "" || req.FullName == "" || req.Password == "" || req.VerificationMethod == "" {
		return utils.BadRequestResponse(c, "All required fields are missing.")
	}

	if file, err := c.FormFile("document"); err == nil {
		storedPath, err := h.storeDocument(file)
		if err != nil {
			logger.Error("Failed to store uploaded document",
				logger.ErrorField(err),
				logger.String("filename", file.Filename))
			return utils.InternalServerErrorResponse(c, "Failed to store document.")
		}
		req.DocumentPath = &storedPath
	}

	newTourist, err := h.touristUC.SignUp(c.Request().Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicateIdentity) {
			return utils.ConflictResponse(c, "Tourist with this ID and verification method already exists.")
		}
		logger.Error("Failed to register tourist", logger.ErrorField(err))
		return utils.InternalServerErrorResponse(c, "Failed to register tourist.")
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"message":   "Tourist registered successfully!",
		"id":        newTourist.ID,
		"digitalID": newTourist.DigitalID,
	})
}

// storeDocument writes the uploaded file to the uploads directory under a
// generated unique name and returns its public relative path.
func (h *AuthHandler) storeDocument(file *multipart.FileHeader) (string, error) {
	if err := os.MkdirAll(h.uploads.Dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create uploads directory: %w", err)
	}

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	filename := utils.UploadFilename("document", file.Filename)
	dst, err := os.Create(filepath.Join(h.uploads.Dir, filename))
	if err != nil {
		return "", fmt.Errorf("failed to create document file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("failed to write document file: %w", err)
	}

	return h.uploads.PublicPath + "/" + filename, nil
}

// SendOTP issues a new one-time code. Delivery is simulated; the endpoint
// always succeeds.
func (h *AuthHandler) SendOTP(c echo.Context) error {
	var req models.SendOTPRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	if err := h.touristUC.SendOTP(c.Request().Context(), req.IDNumber); err != nil {
		logger.Error("Failed to issue OTP", logger.ErrorField(err))
		return utils.InternalServerErrorResponse(c, "Failed to send OTP.")
	}

	return utils.JSONMessage(c, http.StatusOK, "OTP sent successfully (simulated).")
}

// VerifyOTP verifies and clears the outstanding one-time code
func (h *AuthHandler) VerifyOTP(c echo.Context) error {
	var req models.VerifyOTPRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	if err := h.touristUC.VerifyOTP(c.Request().Context(), req.OTP); err != nil {
		return utils.BadRequestResponse(c, "Invalid OTP.")
	}

	return utils.JSONMessage(c, http.StatusOK, "OTP verified successfully.")
}

// Login authenticates a tourist by digital ID and password
func (h *AuthHandler) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	profile, err := h.touristUC.Login(c.Request().Context(), req.DigitalID, req.Password)
	if err != nil {
		return utils.UnauthorizedResponse(c, "Invalid Digital ID or password.")
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message": "Login successful!",
		"tourist": profile,
	})
}
