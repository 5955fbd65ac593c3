package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	actiondto "github.com/meetsum/meeting-summarizer/internal/adapter/dto/actionitem"
	"github.com/meetsum/meeting-summarizer/internal/infrastructure/http/middleware"
	"github.com/meetsum/meeting-summarizer/internal/usecase/actionitem"
)

// ActionItem handles the cross-meeting action item endpoints
type ActionItem struct {
	actionService actionitem.Service
	logger        *zap.Logger
}

// NewActionItemHandler creates a new action item handler
func NewActionItemHandler(actionService actionitem.Service, logger *zap.Logger) *ActionItem {
	return &ActionItem{
		actionService: actionService,
		logger:        logger,
	}
}

// List returns the caller's action items across all meetings, ordered by
// ascending deadline. ?status= filters by status.
func (h *ActionItem) List(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	items, err := h.actionService.ListForUser(c.Request().Context(), userID, c.QueryParam("status"))
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	out := make([]actiondto.Response, len(items))
	for i, it := range items {
		out[i] = actiondto.FromEntity(it.Item)
		out[i].MeetingTitle = it.MeetingTitle
	}
	return HandleSuccess(h.logger, c, http.StatusOK, out)
}

// Update applies a partial update to an action item
func (h *ActionItem) Update(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}
	actionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid action item id")
	}

	var req actiondto.UpdateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	item, err := h.actionService.Update(c.Request().Context(), userID, actionID, actionitem.UpdateInput{
		Description: req.Description,
		Owner:       req.Owner,
		Deadline:    req.Deadline,
		Status:      req.Status,
		Priority:    req.Priority,
		Notes:       req.Notes,
	})
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, http.StatusOK, actiondto.FromEntity(item))
}

// Delete removes an action item
func (h *ActionItem) Delete(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}
	actionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid action item id")
	}

	if err := h.actionService.Delete(c.Request().Context(), userID, actionID); err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, http.StatusOK, map[string]string{
		"detail": "Action item deleted successfully",
	})
}
