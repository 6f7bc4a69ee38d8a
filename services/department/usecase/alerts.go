package usecase

import (
	"context"
	"sort"
	"strings"

	"github.com/traviq/traviq-backend/internal/pkg/logger"
	"github.com/traviq/traviq-backend/internal/pkg/models"
	"github.com/traviq/traviq-backend/internal/utils"
)

// alertTitle derives the feed title from the alert type, e.g. "weather"
// becomes "Weather Alert".
func alertTitle(alertType string) string {
	runes := []rune(alertType)
	if len(runes) == 0 {
		return "Alert"
	}
	return strings.ToUpper(string(runes[0])) + string(runes[1:]) + " Alert"
}

// resolveRecipients selects the tourists a manual alert is delivered to.
// Single and multiple targeting match on digital ID; area targeting falls
// back to all active tourists with a known location. Anything else reaches
// every active tourist.
func (uc *DepartmentUC) resolveRecipients(ctx context.Context, req *models.SendAlertRequest) ([]models.Tourist, error) {
	switch {
	case req.RecipientType == models.RecipientTypeSingle && len(req.TouristDigitalIDs) > 0,
		req.RecipientType == models.RecipientTypeMultiple && len(req.TouristDigitalIDs) > 0:
		return uc.departmentRepo.TouristsByDigitalIDs(ctx, req.TouristDigitalIDs)
	case req.RecipientType == models.RecipientTypeArea && req.Area != "":
		return uc.departmentRepo.ActiveTourists(ctx, true)
	default:
		return uc.departmentRepo.ActiveTourists(ctx, false)
	}
}

// SendAlert records a manual department alert and fans it out to the
// resolved recipients' personal feeds.
func (uc *DepartmentUC) SendAlert(ctx context.Context, req *models.SendAlertRequest) (*models.DepartmentAlert, error) {
	recipients, err := uc.resolveRecipients(ctx, req)
	if err != nil {
		return nil, err
	}

	count := len(recipients)
	alert := &models.DepartmentAlert{
		ID:              utils.NewManualAlertID(),
		Time:            models.Now(),
		Type:            req.AlertType,
		Message:         req.AlertMessage,
		Priority:        req.Priority,
		RecipientsCount: &count,
		Status:          models.DeptAlertStatusSent,
		Title:           alertTitle(req.AlertType),
	}
	if err := uc.departmentRepo.PrependDepartmentAlert(ctx, alert); err != nil {
		return nil, err
	}

	for _, t := range recipients {
		personal := models.PersonalAlert{
			ID:      utils.NewPersonalAlertID(),
			Type:    req.AlertType,
			Title:   alert.Title,
			Message: req.AlertMessage,
			Time:    models.Now(),
			Unread:  true,
		}
		if err := uc.departmentRepo.PushTouristAlert(ctx, t.ID, personal); err != nil {
			logger.Warn("Failed to deliver alert to tourist",
				logger.String("tourist_id", t.ID),
				logger.ErrorField(err))
		}
	}

	logger.Info("Manual alert sent",
		logger.String("alert_id", alert.ID),
		logger.String("recipient_type", req.RecipientType),
		logger.Int("recipients", count))

	return alert, nil
}

// AlertHistory returns the full alert feed, newest first, with display
// timestamps.
func (uc *DepartmentUC) AlertHistory(ctx context.Context) ([]models.DepartmentAlertView, error) {
	alerts, err := uc.departmentRepo.Alerts(ctx)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(alerts, func(i, j int) bool {
		return alerts[i].Time.After(alerts[j].Time)
	})

	views := make([]models.DepartmentAlertView, 0, len(alerts))
	for _, a := range alerts {
		views = append(views, a.Display(models.DisplayDateTimeLayout))
	}
	return views, nil
}
