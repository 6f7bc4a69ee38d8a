package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/traviq/traviq-backend/internal/pkg/apperrors"
	"github.com/traviq/traviq-backend/internal/pkg/models"
	"github.com/traviq/traviq-backend/services/department/mocks"
)

func TestSendAlert_Success(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDepartmentUC := mocks.NewMockDepartmentUC(ctrl)
	handler := NewDepartmentHandler(mockDepartmentUC)

	e := echo.New()
	requestBody := `{"alertType": "weather", "recipientType": "single", "touristDigitalIDs": ["TRV-TS1234-5678"], "alertMessage": "Heavy rain expected.", "priority": "High"}`
	req := httptest.NewRequest(http.MethodPost, "/api/department/send-alert", strings.NewReader(requestBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	count := 1
	mockDepartmentUC.EXPECT().
		SendAlert(gomock.Any(), gomock.Any()).
		Return(&models.DepartmentAlert{
			ID:              "MANUAL-123-456",
			Type:            "weather",
			Title:           "Weather Alert",
			Status:          models.DeptAlertStatusSent,
			RecipientsCount: &count,
		}, nil)

	// Act
	err := handler.SendAlert(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var response map[string]interface{}
	err = json.Unmarshal(rec.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, "Alert sent successfully!", response["message"])

	alert, ok := response["alert"].(map[string]interface{})
	assert.True(t, ok)
	assert.Equal(t, "Weather Alert", alert["title"])
	assert.Equal(t, float64(1), alert["recipientsCount"])
}

func TestListTourists_DefaultsPagination(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDepartmentUC := mocks.NewMockDepartmentUC(ctrl)
	handler := NewDepartmentHandler(mockDepartmentUC)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/department/tourists", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mockDepartmentUC.EXPECT().
		ListTourists(gomock.Any(), models.TouristListQuery{Page: 1, Limit: 10}).
		Return(&models.TouristPage{Total: 0, Page: 1, Limit: 10, Data: []models.Tourist{}}, nil)

	// Act
	err := handler.ListTourists(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestListTourists_ParsesQueryParams(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDepartmentUC := mocks.NewMockDepartmentUC(ctrl)
	handler := NewDepartmentHandler(mockDepartmentUC)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/department/tourists?search=tony&status=active&nationality=all&page=2&limit=5", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mockDepartmentUC.EXPECT().
		ListTourists(gomock.Any(), models.TouristListQuery{
			Search: "tony", Status: "active", Nationality: "all", Page: 2, Limit: 5,
		}).
		Return(&models.TouristPage{Total: 1, Page: 2, Limit: 5, Data: []models.Tourist{}}, nil)

	// Act
	err := handler.ListTourists(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestListTourists_MalformedPageFallsBack(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDepartmentUC := mocks.NewMockDepartmentUC(ctrl)
	handler := NewDepartmentHandler(mockDepartmentUC)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/department/tourists?page=abc&limit=-3", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mockDepartmentUC.EXPECT().
		ListTourists(gomock.Any(), models.TouristListQuery{Page: 1, Limit: 10}).
		Return(&models.TouristPage{Total: 0, Page: 1, Limit: 10, Data: []models.Tourist{}}, nil)

	// Act
	err := handler.ListTourists(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestListReports_ParsesFilters(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDepartmentUC := mocks.NewMockDepartmentUC(ctrl)
	handler := NewDepartmentHandler(mockDepartmentUC)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/department/efir?status=pending&type=sos&date=today", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mockDepartmentUC.EXPECT().
		ListReports(gomock.Any(), models.ReportListQuery{
			Status: "pending", Type: "sos", Date: "today", Page: 1, Limit: 10,
		}).
		Return(&models.ReportPage{Total: 0, Page: 1, Limit: 10, Data: []models.EFIRReportView{}}, nil)

	// Act
	err := handler.ListReports(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGetReport_NotFound(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDepartmentUC := mocks.NewMockDepartmentUC(ctrl)
	handler := NewDepartmentHandler(mockDepartmentUC)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/department/efir/%23MISSING", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("#MISSING")

	mockDepartmentUC.EXPECT().
		GetReport(gomock.Any(), "#MISSING").
		Return(nil, apperrors.ErrReportNotFound)

	// Act
	err := handler.GetReport(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	var response map[string]interface{}
	err = json.Unmarshal(rec.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, "Report not found.", response["message"])
}

func TestUpdateReport_Success(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDepartmentUC := mocks.NewMockDepartmentUC(ctrl)
	handler := NewDepartmentHandler(mockDepartmentUC)

	e := echo.New()
	requestBody := `{"status": "Resolved", "officerNotes": "Case closed."}`
	req := httptest.NewRequest(http.MethodPut, "/api/department/efir/%23SOS-1245", strings.NewReader(requestBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("#SOS-1245")

	mockDepartmentUC.EXPECT().
		UpdateReport(gomock.Any(), "#SOS-1245", &models.UpdateReportRequest{Status: "Resolved", OfficerNotes: "Case closed."}).
		Return(&models.EFIRReportView{ID: "#SOS-1245", Status: "Resolved", OfficerNotes: "Case closed."}, nil)

	// Act
	err := handler.UpdateReport(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var response map[string]interface{}
	err = json.Unmarshal(rec.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, "Report updated successfully!", response["message"])

	report, ok := response["report"].(map[string]interface{})
	assert.True(t, ok)
	assert.Equal(t, "Resolved", report["status"])
}

func TestAlertHistory_Success(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDepartmentUC := mocks.NewMockDepartmentUC(ctrl)
	handler := NewDepartmentHandler(mockDepartmentUC)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/department/alert-history", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mockDepartmentUC.EXPECT().
		AlertHistory(gomock.Any()).
		Return([]models.DepartmentAlertView{
			{ID: "ALERT-D001", Time: "9/12/2025, 10:23:00 AM", Title: "Geo-fence Breach"},
		}, nil)

	// Act
	err := handler.AlertHistory(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var response []map[string]interface{}
	err = json.Unmarshal(rec.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Len(t, response, 1)
	assert.Equal(t, "ALERT-D001", response[0]["id"])
}
