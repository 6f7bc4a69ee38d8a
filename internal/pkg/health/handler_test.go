package health

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/traviq/traviq-backend/internal/pkg/store"
)

func TestPingHandler_ReturnsBuildInfo(t *testing.T) {
	// Arrange
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := NewPingHandler("traviq-backend")

	// Act
	err := handler(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var info BuildInfo
	err = json.Unmarshal(rec.Body.Bytes(), &info)
	assert.NoError(t, err)
	assert.Equal(t, "traviq-backend", info.ServiceName)
	assert.NotEmpty(t, info.GoVersion)
}

func TestReadyHandler_ReportsSeededCollections(t *testing.T) {
	// Arrange
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/ready", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := NewReadyHandler(store.NewSeeded())

	// Act
	err := handler(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var ready Readiness
	err = json.Unmarshal(rec.Body.Bytes(), &ready)
	assert.NoError(t, err)
	assert.Equal(t, "ok", ready.Status)
	assert.Equal(t, 8, ready.Tourists)
	assert.Equal(t, 5, ready.DepartmentAlerts)
	assert.Equal(t, 5, ready.EFIRReports)
}

func TestRegisterHealthEndpoints_AllRoutesRespond(t *testing.T) {
	// Arrange
	e := echo.New()
	RegisterHealthEndpoints(e, "traviq-backend", store.New())

	for _, path := range []string{"/ping", "/health", "/healthz", "/ready"} {
		// Act
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		// Assert
		assert.Equal(t, http.StatusOK, rec.Code, "path %s", path)
	}
}
