// Package meeting implements the upload and read paths for meetings.
package meeting

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"
	"go.uber.org/zap"

	apperrors "github.com/meetsum/meeting-summarizer/errors"
	"github.com/meetsum/meeting-summarizer/internal/domain/entities"
	"github.com/meetsum/meeting-summarizer/internal/domain/repositories"
	"github.com/meetsum/meeting-summarizer/pkg/textract"
)

// Enqueuer schedules a meeting for background processing
type Enqueuer interface {
	Enqueue(ctx context.Context, meetingID uuid.UUID) error
}

// Archiver stores the original uploaded file. Optional; a nil Archiver
// disables archival.
type Archiver interface {
	Store(ctx context.Context, objectKey string, data []byte, contentType string) (string, error)
}

// Service defines meeting upload and read operations
type Service interface {
	Upload(ctx context.Context, userID uuid.UUID, title, filename, contentType string, file io.Reader) (*entities.Meeting, error)
	List(ctx context.Context, userID uuid.UUID) ([]*entities.Meeting, error)
	Get(ctx context.Context, userID, meetingID uuid.UUID) (*entities.Meeting, error)
	GetSummary(ctx context.Context, userID, meetingID uuid.UUID) (*entities.MeetingSummary, error)
}

type meetingService struct {
	meetingRepo repositories.MeetingRepository
	queue       Enqueuer
	archiver    Archiver
	maxFileSize int64
	logger      *zap.Logger
}

// NewService constructs a meeting service
func NewService(meetingRepo repositories.MeetingRepository, queue Enqueuer, archiver Archiver, maxFileSize int64, logger *zap.Logger) Service {
	return &meetingService{
		meetingRepo: meetingRepo,
		queue:       queue,
		archiver:    archiver,
		maxFileSize: maxFileSize,
		logger:      logger,
	}
}

// Upload extracts the transcript from the uploaded file, creates the meeting
// in the queued state and hands it to the processing queue. The original
// file is archived best-effort when object storage is configured.
func (s *meetingService) Upload(ctx context.Context, userID uuid.UUID, title, filename, contentType string, file io.Reader) (*entities.Meeting, error) {
	if title == "" {
		return nil, fmt.Errorf("%w: title is required", entities.ErrInvalidInput)
	}

	// Read at most one byte past the limit so oversized uploads are
	// rejected without buffering the whole file.
	data, err := io.ReadAll(io.LimitReader(file, s.maxFileSize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read upload: %w", err)
	}
	if int64(len(data)) > s.maxFileSize {
		return nil, apperrors.ErrFileTooLarge(s.maxFileSize)
	}

	transcript, err := textract.Extract(filename, data)
	if err != nil {
		return nil, err
	}

	meeting := entities.NewMeeting(userID, title, transcript)

	if s.archiver != nil {
		objectKey, err := s.archiver.Store(ctx, fmt.Sprintf("uploads/%s/%s", meeting.ID, filename), data, contentType)
		if err != nil {
			// Archival is not on the critical path.
			s.logger.Warn("failed to archive upload",
				zap.String("meeting_id", meeting.ID.String()),
				zap.Error(err))
		} else {
			meeting.ObjectKey = objectKey
		}
	}

	if err := s.meetingRepo.Create(ctx, meeting); err != nil {
		return nil, fmt.Errorf("failed to create meeting: %w", err)
	}

	if err := s.queue.Enqueue(ctx, meeting.ID); err != nil {
		// The row exists but no worker will pick it up; fail it so the
		// client sees a terminal status instead of a stuck queued meeting.
		s.logger.Error("failed to enqueue meeting",
			zap.String("meeting_id", meeting.ID.String()),
			zap.Error(err))
		if markErr := s.meetingRepo.UpdateStatus(ctx, meeting.ID, entities.MeetingStatusFailed); markErr != nil {
			s.logger.Error("failed to mark unqueued meeting failed",
				zap.String("meeting_id", meeting.ID.String()),
				zap.Error(markErr))
		}
		return nil, apperrors.ErrQueueFailed("enqueue", err)
	}

	s.logger.Info("meeting uploaded",
		zap.String("meeting_id", meeting.ID.String()),
		zap.String("user_id", userID.String()),
		zap.Int("transcript_length", len(transcript)))

	return meeting, nil
}

// List returns the user's meetings, newest first
func (s *meetingService) List(ctx context.Context, userID uuid.UUID) ([]*entities.Meeting, error) {
	return s.meetingRepo.ListByUser(ctx, userID)
}

// Get returns one meeting owned by the user
func (s *meetingService) Get(ctx context.Context, userID, meetingID uuid.UUID) (*entities.Meeting, error) {
	return s.meetingRepo.FindByIDAndUser(ctx, meetingID, userID)
}

// GetSummary returns the summary for a completed meeting. A meeting still in
// flight yields ErrSummaryNotReady and a failed one ErrMeetingFailed, so the
// handler can map each to a distinct status code.
func (s *meetingService) GetSummary(ctx context.Context, userID, meetingID uuid.UUID) (*entities.MeetingSummary, error) {
	meeting, err := s.meetingRepo.FindByIDAndUser(ctx, meetingID, userID)
	if err != nil {
		return nil, err
	}

	summary, err := s.meetingRepo.GetSummary(ctx, meeting.ID)
	if err == nil {
		return summary, nil
	}

	switch meeting.Status {
	case entities.MeetingStatusProcessing, entities.MeetingStatusQueued:
		return nil, entities.ErrSummaryNotReady
	case entities.MeetingStatusFailed:
		return nil, entities.ErrMeetingFailed
	default:
		return nil, err
	}
}
