package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/meetsum/meeting-summarizer/internal/infrastructure/http/middleware"
	"github.com/meetsum/meeting-summarizer/internal/usecase/analytics"
)

// Analytics handles the analytics read endpoints
type Analytics struct {
	analyticsService analytics.Service
	logger           *zap.Logger
}

// NewAnalyticsHandler creates a new analytics handler
func NewAnalyticsHandler(analyticsService analytics.Service, logger *zap.Logger) *Analytics {
	return &Analytics{
		analyticsService: analyticsService,
		logger:           logger,
	}
}

// Overview returns the caller's lifetime statistics
func (h *Analytics) Overview(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	overview, err := h.analyticsService.GetOverview(c.Request().Context(), userID)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, http.StatusOK, overview)
}

// Dashboard returns the caller's recent-activity view
func (h *Analytics) Dashboard(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	dashboard, err := h.analyticsService.GetDashboard(c.Request().Context(), userID)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, http.StatusOK, dashboard)
}
