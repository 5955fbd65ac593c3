package handler

import (
	stdErrors "errors"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/meetsum/meeting-summarizer/errors"
	"github.com/meetsum/meeting-summarizer/internal/domain/entities"
)

// Response shapes
type success struct {
	Code    interface{} `json:"code,omitempty"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

type errs struct {
	Code    interface{} `json:"code,omitempty"`
	Message string      `json:"message,omitempty"`
	Info    string      `json:"info,omitempty"`
}

// getRequestID tries to read X-Request-ID from the request
func getRequestID(c echo.Context) string {
	if c == nil || c.Request() == nil {
		return ""
	}
	return c.Request().Header.Get("X-Request-ID")
}

// HandleSuccess writes a standardized success response
func HandleSuccess(logger *zap.Logger, c echo.Context, status int, data interface{}) error {
	resp := success{
		Code:    status,
		Message: "success",
		Data:    data,
	}

	if logger != nil {
		logger.Info("http.response.success",
			zap.String("request_id", getRequestID(c)),
			zap.String("path", c.Path()),
		)
	}

	return c.JSON(status, resp)
}

// HandleError centralizes error handling and logging. Domain sentinel errors
// are translated to AppErrors first so every handler maps them the same way.
func HandleError(logger *zap.Logger, c echo.Context, err error) error {
	reqID := getRequestID(c)

	appErr, ok := asAppError(err)
	if !ok {
		if logger != nil {
			logger.Error("http.response.error",
				zap.String("request_id", reqID),
				zap.String("path", c.Path()),
				zap.Error(err),
			)
		}
		internal := errors.ErrInternal(err)
		return c.JSON(internal.HTTPCode, errs{
			Code:    internal.Code,
			Message: internal.Message,
			Info:    err.Error(),
		})
	}

	if logger != nil {
		logger.Error("http.response.error",
			zap.String("request_id", reqID),
			zap.String("path", c.Path()),
			zap.Any("app_code", appErr.Code),
			zap.Error(err),
		)
	}

	info := ""
	if appErr.Raw != nil {
		info = appErr.Raw.Error()
	}
	return c.JSON(appErr.HTTPCode, errs{
		Code:    appErr.Code,
		Message: appErr.Message,
		Info:    info,
	})
}

// asAppError resolves err to an AppError, translating the domain sentinels
// along the way. The bool is false for unclassified errors.
func asAppError(err error) (errors.AppError, bool) {
	var appErr errors.AppError
	if stdErrors.As(err, &appErr) {
		return appErr, true
	}

	switch {
	case stdErrors.Is(err, entities.ErrMeetingNotFound):
		return errors.ErrMeetingNotFound(), true
	case stdErrors.Is(err, entities.ErrSummaryNotFound):
		return errors.ErrNotFound("Summary"), true
	case stdErrors.Is(err, entities.ErrActionItemNotFound):
		return errors.ErrActionItemNotFound(), true
	case stdErrors.Is(err, entities.ErrUserNotFound):
		return errors.ErrUserNotFound(), true
	case stdErrors.Is(err, entities.ErrSummaryNotReady):
		return errors.ErrMeetingNotReady(), true
	case stdErrors.Is(err, entities.ErrMeetingFailed):
		return errors.ErrMeetingProcessingFailed(), true
	case stdErrors.Is(err, entities.ErrUnsupportedFileType):
		return errors.ErrUnsupportedFileType(""), true
	case stdErrors.Is(err, entities.ErrEmptyFileContent):
		return errors.ErrEmptyFile(), true
	case stdErrors.Is(err, entities.ErrTranscriptTooShort),
		stdErrors.Is(err, entities.ErrInvalidStatus),
		stdErrors.Is(err, entities.ErrInvalidPriority),
		stdErrors.Is(err, entities.ErrInvalidDeadline),
		stdErrors.Is(err, entities.ErrInvalidInput):
		return errors.ErrInvalidArgument(err.Error()), true
	case stdErrors.Is(err, entities.ErrUnauthorized):
		return errors.ErrUnauthenticated(), true
	}

	return errors.AppError{}, false
}
