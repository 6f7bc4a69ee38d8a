package usecase

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/traviq/traviq-backend/internal/pkg/apperrors"
	"github.com/traviq/traviq-backend/internal/pkg/models"
	"github.com/traviq/traviq-backend/services/department/mocks"
)

func TestListReports_FiltersByStatusAndType(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockDepartmentRepo(ctrl)
	uc := NewDepartmentUC(mockRepo)

	now := time.Now().UTC()
	mockRepo.EXPECT().Reports(gomock.Any()).Return([]models.EFIRReport{
		{ID: "R1", Type: models.ReportTypeSOS, Status: models.ReportStatusPending, Time: now},
		{ID: "R2", Type: "Theft", Status: models.ReportStatusPending, Time: now},
		{ID: "R3", Type: models.ReportTypeSOS, Status: models.ReportStatusResolved, Time: now},
	}, nil)

	// Act
	page, err := uc.ListReports(context.Background(), models.ReportListQuery{
		Status: "pending",
		Type:   "sos",
		Page:   1,
		Limit:  10,
	})

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, 1, page.Total)
	assert.Len(t, page.Data, 1)
	assert.Equal(t, "R1", page.Data[0].ID)
}

func TestListReports_DateBuckets(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockDepartmentRepo(ctrl)
	uc := NewDepartmentUC(mockRepo)

	now := time.Now().UTC()
	reports := []models.EFIRReport{
		{ID: "R-TODAY", Time: now},
		{ID: "R-YESTERDAY", Time: now.Add(-24 * time.Hour)},
		{ID: "R-LAST-WEEK", Time: now.Add(-6 * 24 * time.Hour)},
		{ID: "R-OLD", Time: now.Add(-40 * 24 * time.Hour)},
	}
	mockRepo.EXPECT().Reports(gomock.Any()).Return(reports, nil).Times(3)

	// Act & Assert
	today, err := uc.ListReports(context.Background(), models.ReportListQuery{Date: "today", Page: 1, Limit: 10})
	assert.NoError(t, err)
	assert.Equal(t, 1, today.Total)
	assert.Equal(t, "R-TODAY", today.Data[0].ID)

	week, err := uc.ListReports(context.Background(), models.ReportListQuery{Date: "week", Page: 1, Limit: 10})
	assert.NoError(t, err)
	assert.Equal(t, 3, week.Total)

	month, err := uc.ListReports(context.Background(), models.ReportListQuery{Date: "month", Page: 1, Limit: 10})
	assert.NoError(t, err)
	assert.Equal(t, 3, month.Total)
}

func TestListReports_SortedNewestFirstAndPaginated(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockDepartmentRepo(ctrl)
	uc := NewDepartmentUC(mockRepo)

	base := time.Now().UTC().Add(-time.Hour)
	reports := make([]models.EFIRReport, 0, 25)
	for i := 0; i < 25; i++ {
		reports = append(reports, models.EFIRReport{
			ID:   fmt.Sprintf("R%02d", i),
			Time: base.Add(time.Duration(i) * time.Minute),
		})
	}
	mockRepo.EXPECT().Reports(gomock.Any()).Return(reports, nil)

	// Act
	page, err := uc.ListReports(context.Background(), models.ReportListQuery{Page: 2, Limit: 10})

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, 25, page.Total)
	assert.Equal(t, 2, page.Page)
	assert.Len(t, page.Data, 10)
	// Newest first: page 2 starts at the 11th newest (R14) down to R05
	assert.Equal(t, "R14", page.Data[0].ID)
	assert.Equal(t, "R05", page.Data[9].ID)
}

func TestListReports_PageBeyondEnd(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockDepartmentRepo(ctrl)
	uc := NewDepartmentUC(mockRepo)

	mockRepo.EXPECT().Reports(gomock.Any()).Return([]models.EFIRReport{
		{ID: "R1", Time: time.Now().UTC()},
	}, nil)

	// Act
	page, err := uc.ListReports(context.Background(), models.ReportListQuery{Page: 5, Limit: 10})

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, 1, page.Total)
	assert.Empty(t, page.Data)
}

func TestGetReport_FormatsTime(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockDepartmentRepo(ctrl)
	uc := NewDepartmentUC(mockRepo)

	mockRepo.EXPECT().
		GetReport(gomock.Any(), "#SOS-1245").
		Return(&models.EFIRReport{
			ID:   "#SOS-1245",
			Time: time.Date(2025, 9, 12, 10, 23, 0, 0, time.UTC),
		}, nil)

	// Act
	report, err := uc.GetReport(context.Background(), "#SOS-1245")

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, "9/12/2025, 10:23:00 AM", report.Time)
}

func TestGetReport_NotFound(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockDepartmentRepo(ctrl)
	uc := NewDepartmentUC(mockRepo)

	mockRepo.EXPECT().
		GetReport(gomock.Any(), "#MISSING").
		Return(nil, apperrors.ErrReportNotFound)

	// Act
	report, err := uc.GetReport(context.Background(), "#MISSING")

	// Assert
	assert.ErrorIs(t, err, apperrors.ErrReportNotFound)
	assert.Nil(t, report)
}

func TestUpdateReport_PassesPartialFields(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockDepartmentRepo(ctrl)
	uc := NewDepartmentUC(mockRepo)

	mockRepo.EXPECT().
		UpdateReport(gomock.Any(), "#SOS-1245", "Resolved", "").
		Return(&models.EFIRReport{
			ID:     "#SOS-1245",
			Status: "Resolved",
			Time:   time.Date(2025, 9, 12, 10, 23, 0, 0, time.UTC),
		}, nil)

	// Act
	report, err := uc.UpdateReport(context.Background(), "#SOS-1245", &models.UpdateReportRequest{Status: "Resolved"})

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, "Resolved", report.Status)
}
