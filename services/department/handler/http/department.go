package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/traviq/traviq-backend/internal/pkg/apperrors"
	"github.com/traviq/traviq-backend/internal/pkg/logger"
	"github.com/traviq/traviq-backend/internal/pkg/models"
	"github.com/traviq/traviq-backend/internal/utils"
	"github.com/traviq/traviq-backend/services/department"
)

// Listing pagination defaults.
const (
	defaultPage  = 1
	defaultLimit = 10
)

// DepartmentHandler handles alert broadcasts, the tourist registry and
// E-FIR case management
type DepartmentHandler struct {
	departmentUC department.DepartmentUC
}

// NewDepartmentHandler creates a new department handler
func NewDepartmentHandler(departmentUC department.DepartmentUC) *DepartmentHandler {
	return &DepartmentHandler{departmentUC: departmentUC}
}

// queryInt parses a positive integer query parameter, falling back when
// absent or malformed.
func queryInt(c echo.Context, name string, fallback int) int {
	raw := c.QueryParam(name)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return fallback
	}
	return n
}

// SendAlert broadcasts a manual alert to the targeted tourists
func (h *DepartmentHandler) SendAlert(c echo.Context) error {
	var req models.SendAlertRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	alert, err := h.departmentUC.SendAlert(c.Request().Context(), &req)
	if err != nil {
		logger.Error("Failed to send alert", logger.ErrorField(err))
		return utils.InternalServerErrorResponse(c, "Failed to send alert.")
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message": "Alert sent successfully!",
		"alert":   alert,
	})
}

// AlertHistory returns the full alert feed newest-first
func (h *DepartmentHandler) AlertHistory(c echo.Context) error {
	history, err := h.departmentUC.AlertHistory(c.Request().Context())
	if err != nil {
		logger.Error("Failed to list alert history", logger.ErrorField(err))
		return utils.InternalServerErrorResponse(c, "Failed to load alert history.")
	}
	return c.JSON(http.StatusOK, history)
}

// ListTourists returns a filtered, paginated page of the tourist registry
func (h *DepartmentHandler) ListTourists(c echo.Context) error {
	q := models.TouristListQuery{
		Search:      c.QueryParam("search"),
		Status:      c.QueryParam("status"),
		Nationality: c.QueryParam("nationality"),
		Page:        queryInt(c, "page", defaultPage),
		Limit:       queryInt(c, "limit", defaultLimit),
	}

	page, err := h.departmentUC.ListTourists(c.Request().Context(), q)
	if err != nil {
		logger.Error("Failed to list tourists", logger.ErrorField(err))
		return utils.InternalServerErrorResponse(c, "Failed to list tourists.")
	}
	return c.JSON(http.StatusOK, page)
}

// ListReports returns a filtered, paginated page of E-FIR reports
func (h *DepartmentHandler) ListReports(c echo.Context) error {
	q := models.ReportListQuery{
		Status: c.QueryParam("status"),
		Type:   c.QueryParam("type"),
		Date:   c.QueryParam("date"),
		Page:   queryInt(c, "page", defaultPage),
		Limit:  queryInt(c, "limit", defaultLimit),
	}

	page, err := h.departmentUC.ListReports(c.Request().Context(), q)
	if err != nil {
		logger.Error("Failed to list reports", logger.ErrorField(err))
		return utils.InternalServerErrorResponse(c, "Failed to list reports.")
	}
	return c.JSON(http.StatusOK, page)
}

// GetReport returns one E-FIR report by ID
func (h *DepartmentHandler) GetReport(c echo.Context) error {
	report, err := h.departmentUC.GetReport(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, apperrors.ErrReportNotFound) {
			return utils.NotFoundResponse(c, "Report not found.")
		}
		return utils.InternalServerErrorResponse(c, "Failed to load report.")
	}
	return c.JSON(http.StatusOK, report)
}

// UpdateReport applies a partial status/notes update to one E-FIR report
func (h *DepartmentHandler) UpdateReport(c echo.Context) error {
	var req models.UpdateReportRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	report, err := h.departmentUC.UpdateReport(c.Request().Context(), c.Param("id"), &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrReportNotFound) {
			return utils.NotFoundResponse(c, "Report not found.")
		}
		return utils.InternalServerErrorResponse(c, "Failed to update report.")
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message": "Report updated successfully!",
		"report":  report,
	})
}
