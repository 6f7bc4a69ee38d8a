package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/traviq/traviq-backend/services/tourist/handler/http"
)

// Handler coordinates the tourist service's HTTP handlers
type Handler struct {
	authHandler    *http.AuthHandler
	touristHandler *http.TouristHandler
}

// NewHandler creates and initializes all handlers
func NewHandler(
	authHandler *http.AuthHandler,
	touristHandler *http.TouristHandler,
) *Handler {
	return &Handler{
		authHandler:    authHandler,
		touristHandler: touristHandler,
	}
}

// RegisterRoutes registers the tourist-facing routes under /api
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	// Registration and authentication
	authGroup := e.Group("/api/auth")
	authGroup.POST("/signup", h.authHandler.SignUp)
	authGroup.POST("/send-otp", h.authHandler.SendOTP)
	authGroup.POST("/verify-otp", h.authHandler.VerifyOTP)
	authGroup.POST("/login", h.authHandler.Login)

	// Live tourist state
	touristGroup := e.Group("/api/tourist")
	touristGroup.POST("/:id/sos", h.touristHandler.TriggerSOS)
	touristGroup.POST("/:id/location", h.touristHandler.UpdateLocation)
	touristGroup.GET("/:id/location", h.touristHandler.GetLocation)
	touristGroup.POST("/:id/toggle-location-sharing", h.touristHandler.ToggleLocationSharing)
	touristGroup.GET("/:id/contacts", h.touristHandler.ListContacts)
	touristGroup.POST("/:id/contacts", h.touristHandler.AddContact)
	touristGroup.GET("/:id/alerts", h.touristHandler.ListAlerts)
	touristGroup.PUT("/:touristId/alerts/:alertId/read", h.touristHandler.MarkAlertRead)
}
