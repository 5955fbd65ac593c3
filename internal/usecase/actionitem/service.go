// Package actionitem implements user-scoped CRUD over action items. Every
// operation authorizes through the parent meeting's owner.
package actionitem

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	"github.com/meetsum/meeting-summarizer/internal/domain/entities"
	"github.com/meetsum/meeting-summarizer/internal/domain/repositories"
)

// CreateInput carries the fields for a manually created action item
type CreateInput struct {
	Description string
	Owner       string
	Deadline    string // YYYY-MM-DD
	Status      string // optional, defaults to pending
	Priority    string // optional, defaults to medium
	Notes       *string
}

// UpdateInput carries optional updates; nil fields are left untouched
type UpdateInput struct {
	Description *string
	Owner       *string
	Deadline    *string // YYYY-MM-DD
	Status      *string
	Priority    *string
	Notes       *string
}

// ItemWithMeeting pairs an action item with its parent meeting's title for
// cross-meeting listings
type ItemWithMeeting struct {
	Item         *entities.ActionItem
	MeetingTitle string
}

// Service defines action item operations
type Service interface {
	Create(ctx context.Context, userID, meetingID uuid.UUID, input CreateInput) (*entities.ActionItem, error)
	ListForMeeting(ctx context.Context, userID, meetingID uuid.UUID) ([]*entities.ActionItem, error)
	ListForUser(ctx context.Context, userID uuid.UUID, status string) ([]ItemWithMeeting, error)
	Update(ctx context.Context, userID, actionID uuid.UUID, input UpdateInput) (*entities.ActionItem, error)
	Delete(ctx context.Context, userID, actionID uuid.UUID) error
}

type actionItemService struct {
	actionRepo  repositories.ActionItemRepository
	meetingRepo repositories.MeetingRepository
	logger      *zap.Logger
	now         func() time.Time
}

// NewService constructs an action item service
func NewService(actionRepo repositories.ActionItemRepository, meetingRepo repositories.MeetingRepository, logger *zap.Logger) Service {
	return &actionItemService{
		actionRepo:  actionRepo,
		meetingRepo: meetingRepo,
		logger:      logger,
		now:         time.Now,
	}
}

// Create adds a manual action item to a meeting the user owns
func (s *actionItemService) Create(ctx context.Context, userID, meetingID uuid.UUID, input CreateInput) (*entities.ActionItem, error) {
	if _, err := s.meetingRepo.FindByIDAndUser(ctx, meetingID, userID); err != nil {
		return nil, err
	}

	if input.Description == "" || input.Owner == "" {
		return nil, fmt.Errorf("%w: description and owner are required", entities.ErrInvalidInput)
	}
	deadline, err := time.Parse("2006-01-02", input.Deadline)
	if err != nil {
		return nil, entities.ErrInvalidDeadline
	}

	item := entities.NewActionItem(meetingID, input.Description, input.Owner, deadline)
	if input.Status != "" {
		if !entities.ValidActionItemStatus(input.Status) {
			return nil, entities.ErrInvalidStatus
		}
		item.Status = input.Status
	}
	if input.Priority != "" {
		if !entities.ValidActionItemPriority(input.Priority) {
			return nil, entities.ErrInvalidPriority
		}
		item.Priority = input.Priority
	}
	item.Notes = input.Notes

	if err := s.actionRepo.Create(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to create action item: %w", err)
	}

	s.logger.Info("action item created",
		zap.String("action_id", item.ID.String()),
		zap.String("meeting_id", meetingID.String()))

	return item, nil
}

// ListForMeeting returns all action items of a meeting the user owns
func (s *actionItemService) ListForMeeting(ctx context.Context, userID, meetingID uuid.UUID) ([]*entities.ActionItem, error) {
	if _, err := s.meetingRepo.FindByIDAndUser(ctx, meetingID, userID); err != nil {
		return nil, err
	}
	return s.actionRepo.FindByMeeting(ctx, meetingID)
}

// ListForUser returns the user's action items across all meetings, ordered
// by ascending deadline, optionally filtered by status
func (s *actionItemService) ListForUser(ctx context.Context, userID uuid.UUID, status string) ([]ItemWithMeeting, error) {
	if status != "" && !entities.ValidActionItemStatus(status) {
		return nil, entities.ErrInvalidStatus
	}

	items, titles, err := s.actionRepo.ListByUser(ctx, userID, status)
	if err != nil {
		return nil, err
	}

	out := make([]ItemWithMeeting, len(items))
	for i, item := range items {
		out[i] = ItemWithMeeting{Item: item, MeetingTitle: titles[i]}
	}
	return out, nil
}

// Update applies the non-nil fields of input to an action item the user
// owns. Moving an item into completed records the elapsed time since
// creation; other transitions leave it untouched.
func (s *actionItemService) Update(ctx context.Context, userID, actionID uuid.UUID, input UpdateInput) (*entities.ActionItem, error) {
	item, _, err := s.actionRepo.FindByIDForUser(ctx, actionID, userID)
	if err != nil {
		return nil, err
	}

	if input.Description != nil {
		item.Description = *input.Description
	}
	if input.Owner != nil {
		item.Owner = *input.Owner
	}
	if input.Deadline != nil {
		deadline, err := time.Parse("2006-01-02", *input.Deadline)
		if err != nil {
			return nil, entities.ErrInvalidDeadline
		}
		item.Deadline = datatypes.Date(deadline)
	}
	if input.Priority != nil {
		if !entities.ValidActionItemPriority(*input.Priority) {
			return nil, entities.ErrInvalidPriority
		}
		item.Priority = *input.Priority
	}
	if input.Notes != nil {
		item.Notes = input.Notes
	}
	if input.Status != nil {
		if !entities.ValidActionItemStatus(*input.Status) {
			return nil, entities.ErrInvalidStatus
		}
		if *input.Status == entities.ActionItemStatusCompleted {
			item.MarkCompleted(s.now())
		} else {
			item.Status = *input.Status
		}
	}

	if err := s.actionRepo.Update(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to update action item: %w", err)
	}
	return item, nil
}

// Delete removes an action item the user owns
func (s *actionItemService) Delete(ctx context.Context, userID, actionID uuid.UUID) error {
	if _, _, err := s.actionRepo.FindByIDForUser(ctx, actionID, userID); err != nil {
		return err
	}
	if err := s.actionRepo.Delete(ctx, actionID); err != nil {
		return fmt.Errorf("failed to delete action item: %w", err)
	}
	s.logger.Info("action item deleted", zap.String("action_id", actionID.String()))
	return nil
}
