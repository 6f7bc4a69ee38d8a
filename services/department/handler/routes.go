package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/traviq/traviq-backend/services/department/handler/http"
)

// Handler coordinates the department service's HTTP handlers
type Handler struct {
	dashboardHandler  *http.DashboardHandler
	departmentHandler *http.DepartmentHandler
}

// NewHandler creates and initializes all handlers
func NewHandler(
	dashboardHandler *http.DashboardHandler,
	departmentHandler *http.DepartmentHandler,
) *Handler {
	return &Handler{
		dashboardHandler:  dashboardHandler,
		departmentHandler: departmentHandler,
	}
}

// RegisterRoutes registers the authority-facing routes under /api/department
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	departmentGroup := e.Group("/api/department")

	dashboardGroup := departmentGroup.Group("/dashboard")
	dashboardGroup.GET("/stats", h.dashboardHandler.Stats)
	dashboardGroup.GET("/map-data", h.dashboardHandler.MapData)
	dashboardGroup.GET("/charts-data", h.dashboardHandler.ChartsData)
	dashboardGroup.GET("/recent-alerts", h.dashboardHandler.RecentAlerts)
	dashboardGroup.GET("/digital-id-verifications", h.dashboardHandler.DigitalIDVerifications)

	departmentGroup.POST("/send-alert", h.departmentHandler.SendAlert)
	departmentGroup.GET("/alert-history", h.departmentHandler.AlertHistory)
	departmentGroup.GET("/tourists", h.departmentHandler.ListTourists)

	departmentGroup.GET("/efir", h.departmentHandler.ListReports)
	departmentGroup.GET("/efir/:id", h.departmentHandler.GetReport)
	departmentGroup.PUT("/efir/:id", h.departmentHandler.UpdateReport)
}
