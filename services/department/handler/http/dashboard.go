// Package http implements the department service's HTTP handlers.
package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/traviq/traviq-backend/internal/pkg/logger"
	"github.com/traviq/traviq-backend/internal/utils"
	"github.com/traviq/traviq-backend/services/department"
)

// DashboardHandler handles the department dashboard reads
type DashboardHandler struct {
	departmentUC department.DepartmentUC
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(departmentUC department.DepartmentUC) *DashboardHandler {
	return &DashboardHandler{departmentUC: departmentUC}
}

// Stats returns the headline dashboard counters
func (h *DashboardHandler) Stats(c echo.Context) error {
	stats, err := h.departmentUC.DashboardStats(c.Request().Context())
	if err != nil {
		logger.Error("Failed to compute dashboard stats", logger.ErrorField(err))
		return utils.InternalServerErrorResponse(c, "Failed to load dashboard stats.")
	}
	return c.JSON(http.StatusOK, stats)
}

// MapData returns tourist positions and zone overlays for the map
func (h *DashboardHandler) MapData(c echo.Context) error {
	data, err := h.departmentUC.MapData(c.Request().Context())
	if err != nil {
		logger.Error("Failed to build map data", logger.ErrorField(err))
		return utils.InternalServerErrorResponse(c, "Failed to load map data.")
	}
	return c.JSON(http.StatusOK, data)
}

// ChartsData returns the weekly chart series
func (h *DashboardHandler) ChartsData(c echo.Context) error {
	data, err := h.departmentUC.ChartsData(c.Request().Context())
	if err != nil {
		return utils.InternalServerErrorResponse(c, "Failed to load charts data.")
	}
	return c.JSON(http.StatusOK, data)
}

// RecentAlerts returns the five newest message-bearing alerts
func (h *DashboardHandler) RecentAlerts(c echo.Context) error {
	alerts, err := h.departmentUC.RecentAlerts(c.Request().Context())
	if err != nil {
		logger.Error("Failed to list recent alerts", logger.ErrorField(err))
		return utils.InternalServerErrorResponse(c, "Failed to load recent alerts.")
	}
	return c.JSON(http.StatusOK, alerts)
}

// DigitalIDVerifications returns the dashboard verification feed
func (h *DashboardHandler) DigitalIDVerifications(c echo.Context) error {
	verifications, err := h.departmentUC.DigitalIDVerifications(c.Request().Context())
	if err != nil {
		return utils.InternalServerErrorResponse(c, "Failed to load verifications.")
	}
	return c.JSON(http.StatusOK, verifications)
}
