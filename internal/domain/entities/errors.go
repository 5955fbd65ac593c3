package entities

import "errors"

// Common errors
var (
	ErrInvalidInput = errors.New("invalid input")
	ErrUnauthorized = errors.New("unauthorized")
	ErrNotFound     = errors.New("resource not found")
)

// Meeting errors
var (
	ErrMeetingNotFound     = errors.New("meeting not found")
	ErrMeetingNotQueued    = errors.New("meeting is not queued for processing")
	ErrSummaryNotFound     = errors.New("summary not found")
	ErrSummaryNotReady     = errors.New("meeting is still being processed")
	ErrMeetingFailed       = errors.New("meeting processing failed")
	ErrTranscriptTooShort  = errors.New("transcript is too short or empty")
	ErrUnsupportedFileType = errors.New("unsupported file type")
	ErrEmptyFileContent    = errors.New("no text content found in file")
)

// Action item errors
var (
	ErrActionItemNotFound = errors.New("action item not found")
	ErrInvalidStatus      = errors.New("invalid action item status")
	ErrInvalidPriority    = errors.New("invalid action item priority")
	ErrInvalidDeadline    = errors.New("deadline must be a valid YYYY-MM-DD date")
)

// User errors
var (
	ErrUserNotFound = errors.New("user not found")
)
