package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	actiondto "github.com/meetsum/meeting-summarizer/internal/adapter/dto/actionitem"
	meetingdto "github.com/meetsum/meeting-summarizer/internal/adapter/dto/meeting"
	"github.com/meetsum/meeting-summarizer/internal/infrastructure/http/middleware"
	"github.com/meetsum/meeting-summarizer/internal/usecase/actionitem"
	"github.com/meetsum/meeting-summarizer/internal/usecase/meeting"
)

// Meeting handles meeting upload and read endpoints
type Meeting struct {
	meetingService meeting.Service
	actionService  actionitem.Service
	logger         *zap.Logger
}

// NewMeetingHandler creates a new meeting handler
func NewMeetingHandler(meetingService meeting.Service, actionService actionitem.Service, logger *zap.Logger) *Meeting {
	return &Meeting{
		meetingService: meetingService,
		actionService:  actionService,
		logger:         logger,
	}
}

// Upload accepts a multipart transcript upload and schedules processing
func (h *Meeting) Upload(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	var req meetingdto.UploadRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "file is required")
	}
	src, err := fileHeader.Open()
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	defer src.Close()

	created, err := h.meetingService.Upload(c.Request().Context(), userID,
		req.Title, fileHeader.Filename, fileHeader.Header.Get("Content-Type"), src)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, http.StatusCreated, meetingdto.FromEntity(created))
}

// List returns the caller's meetings, newest first
func (h *Meeting) List(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	meetings, err := h.meetingService.List(c.Request().Context(), userID)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, http.StatusOK, meetingdto.FromEntities(meetings))
}

// Get returns a single meeting owned by the caller
func (h *Meeting) Get(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}
	meetingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid meeting id")
	}

	m, err := h.meetingService.Get(c.Request().Context(), userID, meetingID)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, http.StatusOK, meetingdto.FromEntity(m))
}

// GetSummary returns the generated summary for a meeting
func (h *Meeting) GetSummary(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}
	meetingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid meeting id")
	}

	summary, err := h.meetingService.GetSummary(c.Request().Context(), userID, meetingID)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, http.StatusOK, meetingdto.SummaryFromEntity(summary))
}

// ListActionItems returns the action items extracted for a meeting
func (h *Meeting) ListActionItems(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}
	meetingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid meeting id")
	}

	items, err := h.actionService.ListForMeeting(c.Request().Context(), userID, meetingID)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, http.StatusOK, actiondto.FromEntities(items))
}

// CreateActionItem manually adds an action item to a meeting
func (h *Meeting) CreateActionItem(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}
	meetingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid meeting id")
	}

	var req actiondto.CreateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	item, err := h.actionService.Create(c.Request().Context(), userID, meetingID, actionitem.CreateInput{
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
	return HandleSuccess(h.logger, c, http.StatusCreated, actiondto.FromEntity(item))
}
