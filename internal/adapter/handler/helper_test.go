package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	apperrors "github.com/meetsum/meeting-summarizer/errors"
	"github.com/meetsum/meeting-summarizer/internal/domain/entities"
)

func performError(t *testing.T, err error) (*httptest.ResponseRecorder, errs) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if handleErr := HandleError(nil, c, err); handleErr != nil {
		t.Fatalf("HandleError returned %v", handleErr)
	}

	var body errs
	if decodeErr := json.Unmarshal(rec.Body.Bytes(), &body); decodeErr != nil {
		t.Fatalf("invalid error body: %v", decodeErr)
	}
	return rec, body
}

func TestHandleErrorSentinelMapping(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"meeting not found", entities.ErrMeetingNotFound, http.StatusNotFound},
		{"summary not ready", entities.ErrSummaryNotReady, http.StatusAccepted},
		{"processing failed", entities.ErrMeetingFailed, http.StatusInternalServerError},
		{"unsupported file", entities.ErrUnsupportedFileType, http.StatusBadRequest},
		{"empty file", entities.ErrEmptyFileContent, http.StatusBadRequest},
		{"transcript too short", entities.ErrTranscriptTooShort, http.StatusBadRequest},
		{"unauthorized", entities.ErrUnauthorized, http.StatusUnauthorized},
		{"action item not found", entities.ErrActionItemNotFound, http.StatusNotFound},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec, _ := performError(t, tc.err)
			if rec.Code != tc.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tc.wantStatus)
			}
		})
	}
}

func TestHandleErrorAppCodes(t *testing.T) {
	cases := []struct {
		name     string
		err      error
		wantCode apperrors.ErrorCode
	}{
		{"meeting not found", entities.ErrMeetingNotFound, apperrors.ErrorCode_MEETING_NOT_FOUND},
		{"summary not ready", entities.ErrSummaryNotReady, apperrors.ErrorCode_MEETING_NOT_READY},
		{"processing failed", entities.ErrMeetingFailed, apperrors.ErrorCode_MEETING_PROCESSING_FAILED},
		{"action item not found", entities.ErrActionItemNotFound, apperrors.ErrorCode_ACTION_ITEM_NOT_FOUND},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, body := performError(t, tc.err)
			got, ok := body.Code.(float64)
			if !ok {
				t.Fatalf("code is %T, want a number", body.Code)
			}
			if apperrors.ErrorCode(got) != tc.wantCode {
				t.Fatalf("code = %v, want %v", apperrors.ErrorCode(got), tc.wantCode)
			}
		})
	}
}

func TestHandleErrorWrappedSentinel(t *testing.T) {
	wrapped := fmt.Errorf("upload rejected: %w", entities.ErrInvalidInput)

	rec, body := performError(t, wrapped)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
	if body.Message == "" {
		t.Fatal("expected a message in the error body")
	}
}

func TestHandleErrorUnclassified(t *testing.T) {
	rec, body := performError(t, fmt.Errorf("disk on fire"))
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusInternalServerError)
	}
	if body.Info != "disk on fire" {
		t.Fatalf("info = %q, want raw error text", body.Info)
	}
}

func TestHandleSuccessShape(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := HandleSuccess(nil, c, http.StatusCreated, map[string]string{"id": "abc"}); err != nil {
		t.Fatalf("HandleSuccess returned %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusCreated)
	}

	var body success
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid success body: %v", err)
	}
	if body.Message != "success" {
		t.Fatalf("message = %q, want success", body.Message)
	}
}
