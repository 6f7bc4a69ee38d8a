package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/traviq/traviq-backend/internal/pkg/apperrors"
	"github.com/traviq/traviq-backend/internal/pkg/logger"
	"github.com/traviq/traviq-backend/internal/pkg/models"
	"github.com/traviq/traviq-backend/internal/utils"
	"github.com/traviq/traviq-backend/services/tourist"
)

// TouristHandler handles the tourist app's live-state requests
type TouristHandler struct {
	touristUC tourist.TouristUC
}

// NewTouristHandler creates a new tourist handler
func NewTouristHandler(touristUC tourist.TouristUC) *TouristHandler {
	return &TouristHandler{touristUC: touristUC}
}

// TriggerSOS files an SOS for the tourist. The body may carry a location;
// the backend falls back to the last known position when it does not.
func (h *TouristHandler) TriggerSOS(c echo.Context) error {
	touristID := c.Param("id")

	var req models.SOSRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	if err := h.touristUC.TriggerSOS(c.Request().Context(), touristID, req.Location); err != nil {
		if errors.Is(err, apperrors.ErrTouristNotFound) {
			return utils.NotFoundResponse(c, "Tourist not found.")
		}
		logger.Error("Failed to activate SOS",
			logger.ErrorField(err),
			logger.String("tourist_id", touristID))
		return utils.InternalServerErrorResponse(c, "Failed to activate SOS.")
	}

	return utils.JSONMessage(c, http.StatusOK, "SOS activated. Emergency services and contacts notified.")
}

// UpdateLocation overwrites the tourist's current location
func (h *TouristHandler) UpdateLocation(c echo.Context) error {
	touristID := c.Param("id")

	var req models.LocationUpdateRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	err := h.touristUC.UpdateLocation(c.Request().Context(), touristID, models.Location{Lat: req.Lat, Lng: req.Lng})
	if err != nil {
		if errors.Is(err, apperrors.ErrTouristNotFound) {
			return utils.NotFoundResponse(c, "Tourist not found.")
		}
		return utils.InternalServerErrorResponse(c, "Failed to update location.")
	}

	return utils.JSONMessage(c, http.StatusOK, "Location updated.")
}

// GetLocation returns the tourist's current location and sharing flag
func (h *TouristHandler) GetLocation(c echo.Context) error {
	touristID := c.Param("id")

	status, err := h.touristUC.GetLocation(c.Request().Context(), touristID)
	if err != nil {
		if errors.Is(err, apperrors.ErrTouristNotFound) {
			return utils.NotFoundResponse(c, "Tourist not found.")
		}
		return utils.InternalServerErrorResponse(c, "Failed to read location.")
	}

	return c.JSON(http.StatusOK, status)
}

// ToggleLocationSharing sets the tourist's sharing flag
func (h *TouristHandler) ToggleLocationSharing(c echo.Context) error {
	touristID := c.Param("id")

	var req models.ToggleSharingRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	active, err := h.touristUC.SetLocationSharing(c.Request().Context(), touristID, req.SharingActive)
	if err != nil {
		if errors.Is(err, apperrors.ErrTouristNotFound) {
			return utils.NotFoundResponse(c, "Tourist not found.")
		}
		return utils.InternalServerErrorResponse(c, "Failed to update location sharing.")
	}

	message := "Location sharing disabled."
	if active {
		message = "Location sharing enabled."
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message":         message,
		"locationSharing": active,
	})
}

// ListContacts returns the tourist's emergency contacts
func (h *TouristHandler) ListContacts(c echo.Context) error {
	touristID := c.Param("id")

	contacts, err := h.touristUC.ListContacts(c.Request().Context(), touristID)
	if err != nil {
		if errors.Is(err, apperrors.ErrTouristNotFound) {
			return utils.NotFoundResponse(c, "Tourist not found.")
		}
		return utils.InternalServerErrorResponse(c, "Failed to list contacts.")
	}

	return c.JSON(http.StatusOK, contacts)
}

// AddContact appends a new emergency contact
func (h *TouristHandler) AddContact(c echo.Context) error {
	touristID := c.Param("id")

	var req models.ContactRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	if req.Name == "" || req.Number == "" {
		return utils.BadRequestResponse(c, "Name and number are required for a contact.")
	}

	contact, err := h.touristUC.AddContact(c.Request().Context(), touristID, &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrTouristNotFound) {
			return utils.NotFoundResponse(c, "Tourist not found.")
		}
		return utils.InternalServerErrorResponse(c, "Failed to add contact.")
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"message": "Contact added successfully!",
		"contact": contact,
	})
}

// ListAlerts returns the tourist's personal alerts newest-first
func (h *TouristHandler) ListAlerts(c echo.Context) error {
	touristID := c.Param("id")

	alerts, err := h.touristUC.ListAlerts(c.Request().Context(), touristID)
	if err != nil {
		if errors.Is(err, apperrors.ErrTouristNotFound) {
			return utils.NotFoundResponse(c, "Tourist not found.")
		}
		return utils.InternalServerErrorResponse(c, "Failed to list alerts.")
	}

	return c.JSON(http.StatusOK, alerts)
}

// MarkAlertRead clears the unread flag on one personal alert
func (h *TouristHandler) MarkAlertRead(c echo.Context) error {
	touristID := c.Param("touristId")
	alertID := c.Param("alertId")

	err := h.touristUC.MarkAlertRead(c.Request().Context(), touristID, alertID)
	if err != nil {
		if errors.Is(err, apperrors.ErrTouristNotFound) || errors.Is(err, apperrors.ErrAlertNotFound) {
			return utils.NotFoundResponse(c, "Tourist or Alert not found.")
		}
		return utils.InternalServerErrorResponse(c, "Failed to mark alert as read.")
	}

	return utils.JSONMessage(c, http.StatusOK, "Alert marked as read.")
}
