// Package processing drives a meeting through its lifecycle: claim the
// queued row, run extraction, and persist the result in one transaction.
package processing

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/meetsum/meeting-summarizer/internal/domain/entities"
	"github.com/meetsum/meeting-summarizer/internal/domain/repositories"
)

// deadlineFallbackDays replaces deadlines the provider returned in a shape
// that is not a valid calendar date.
const deadlineFallbackDays = 7

// Extractor is the slice of the LLM gateway the orchestrator needs
type Extractor interface {
	Extract(ctx context.Context, transcript string) (*entities.ExtractionResult, error)
}

// Outcome reports what one processing run did
type Outcome struct {
	MeetingID       uuid.UUID
	Status          entities.MeetingStatus
	Provider        string
	ActionItemCount int
	KeywordCount    int
	Skipped         bool
}

// Service orchestrates the queued -> processing -> completed/failed state
// machine for one meeting at a time
type Service struct {
	meetingRepo repositories.MeetingRepository
	extractor   Extractor
	logger      *zap.Logger
	now         func() time.Time
}

// NewService constructs a processing Service
func NewService(meetingRepo repositories.MeetingRepository, extractor Extractor, logger *zap.Logger) *Service {
	return &Service{
		meetingRepo: meetingRepo,
		extractor:   extractor,
		logger:      logger,
		now:         time.Now,
	}
}

// Process runs the pipeline for a single meeting. Duplicate deliveries are
// absorbed by the claim step: a meeting that is not queued anymore is a
// logged no-op, not an error. Any failure after the claim, including a
// panic or a dead job context, moves the meeting to failed, so no meeting
// is left stuck in processing by this path.
func (s *Service) Process(ctx context.Context, meetingID uuid.UUID) (outcome *Outcome, err error) {
	claimed, err := s.meetingRepo.ClaimForProcessing(ctx, meetingID)
	if err != nil {
		return nil, fmt.Errorf("failed to claim meeting: %w", err)
	}
	if !claimed {
		s.logger.Info("meeting not queued, skipping",
			zap.String("meeting_id", meetingID.String()))
		return &Outcome{MeetingID: meetingID, Skipped: true}, nil
	}

	// The claim succeeded, so from here on the meeting must reach a
	// terminal state even if the pipeline blows up.
	defer func() {
		if p := recover(); p != nil {
			s.markFailed(ctx, meetingID)
			outcome = nil
			err = fmt.Errorf("processing panicked: %v", p)
		}
	}()

	s.logger.Info("processing meeting", zap.String("meeting_id", meetingID.String()))

	meeting, err := s.meetingRepo.FindByID(ctx, meetingID)
	if err != nil {
		s.markFailed(ctx, meetingID)
		return nil, fmt.Errorf("failed to load meeting: %w", err)
	}

	result, err := s.extractor.Extract(ctx, meeting.Transcript)
	if err != nil {
		s.markFailed(ctx, meetingID)
		return nil, fmt.Errorf("extraction failed: %w", err)
	}

	summary := entities.NewMeetingSummary(meetingID, result.Summary, result.Provider)
	items := s.buildActionItems(meetingID, result.ActionItems)
	keywords := s.buildKeywords(meetingID, meeting.Transcript)

	if err := s.meetingRepo.SaveProcessingResult(ctx, meetingID, summary, items, keywords); err != nil {
		s.markFailed(ctx, meetingID)
		return nil, fmt.Errorf("failed to persist result: %w", err)
	}

	s.logger.Info("meeting processed",
		zap.String("meeting_id", meetingID.String()),
		zap.String("provider", result.Provider),
		zap.Int("action_items", len(items)),
		zap.Int("keywords", len(keywords)))

	return &Outcome{
		MeetingID:       meetingID,
		Status:          entities.MeetingStatusCompleted,
		Provider:        result.Provider,
		ActionItemCount: len(items),
		KeywordCount:    len(keywords),
	}, nil
}

// buildActionItems converts extracted items to entities, substituting the
// fallback deadline when the provider's date does not parse and clamping
// unknown priorities to medium.
func (s *Service) buildActionItems(meetingID uuid.UUID, extracted []entities.ExtractedActionItem) []*entities.ActionItem {
	items := make([]*entities.ActionItem, 0, len(extracted))
	for _, e := range extracted {
		deadline, err := time.Parse("2006-01-02", e.Deadline)
		if err != nil {
			deadline = s.now().AddDate(0, 0, deadlineFallbackDays)
		}

		item := entities.NewActionItem(meetingID, e.Description, e.Owner, deadline)
		if entities.ValidActionItemPriority(e.Priority) {
			item.Priority = e.Priority
		}
		items = append(items, item)
	}
	return items
}

func (s *Service) buildKeywords(meetingID uuid.UUID, transcript string) []*entities.MeetingKeyword {
	counts := ExtractKeywords(transcript)
	keywords := make([]*entities.MeetingKeyword, 0, len(counts))
	for _, kc := range counts {
		keywords = append(keywords, entities.NewMeetingKeyword(meetingID, kc.Keyword, kc.Frequency))
	}
	return keywords
}

// failedWriteTimeout bounds the failed-status write once the job context
// is no longer usable.
const failedWriteTimeout = 10 * time.Second

// markFailed moves the meeting to failed. Best effort: a write failure here
// is logged and swallowed so the original processing error is what surfaces.
// The write runs on a detached context because the most common reason to be
// here is that the job context timed out or was cancelled, and the status
// write must still go through or the meeting stays in processing forever.
func (s *Service) markFailed(ctx context.Context, meetingID uuid.UUID) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), failedWriteTimeout)
	defer cancel()

	if err := s.meetingRepo.UpdateStatus(ctx, meetingID, entities.MeetingStatusFailed); err != nil {
		s.logger.Error("failed to mark meeting failed",
			zap.String("meeting_id", meetingID.String()),
			zap.Error(err))
	}
}
