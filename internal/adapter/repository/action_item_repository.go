package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/meetsum/meeting-summarizer/internal/domain/entities"
)

// ActionItemRepository handles action item data operations
type ActionItemRepository struct {
	db *gorm.DB
}

// NewActionItemRepository creates a new action item repository
func NewActionItemRepository(db *gorm.DB) *ActionItemRepository {
	return &ActionItemRepository{db: db}
}

// Create creates a new action item
func (r *ActionItemRepository) Create(ctx context.Context, item *entities.ActionItem) error {
	if item == nil {
		return errors.New("action item cannot be nil")
	}
	return r.db.WithContext(ctx).Create(item).Error
}

// FindByMeeting retrieves all action items for a meeting
func (r *ActionItemRepository) FindByMeeting(ctx context.Context, meetingID uuid.UUID) ([]*entities.ActionItem, error) {
	var items []*entities.ActionItem
	if err := r.db.WithContext(ctx).
		Where("meeting_id = ?", meetingID).
		Order("deadline ASC").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// itemWithTitle joins an action item row with its parent meeting's title
type itemWithTitle struct {
	entities.ActionItem
	MeetingTitle string
}

// FindByIDForUser retrieves an action item whose parent meeting belongs to
// the given user, together with the meeting title
func (r *ActionItemRepository) FindByIDForUser(ctx context.Context, actionID, userID uuid.UUID) (*entities.ActionItem, string, error) {
	var row itemWithTitle
	err := r.db.WithContext(ctx).
		Table("action_items").
		Select("action_items.*, meetings.title AS meeting_title").
		Joins("JOIN meetings ON meetings.meeting_id = action_items.meeting_id").
		Where("action_items.action_id = ? AND meetings.user_id = ?", actionID, userID).
		Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", entities.ErrActionItemNotFound
		}
		return nil, "", err
	}
	item := row.ActionItem
	return &item, row.MeetingTitle, nil
}

// ListByUser retrieves all of a user's action items across meetings, ordered
// by ascending deadline, optionally filtered by status
func (r *ActionItemRepository) ListByUser(ctx context.Context, userID uuid.UUID, status string) ([]*entities.ActionItem, []string, error) {
	query := r.db.WithContext(ctx).
		Table("action_items").
		Select("action_items.*, meetings.title AS meeting_title").
		Joins("JOIN meetings ON meetings.meeting_id = action_items.meeting_id").
		Where("meetings.user_id = ?", userID)
	if status != "" {
		query = query.Where("action_items.status = ?", status)
	}

	var rows []itemWithTitle
	if err := query.Order("action_items.deadline ASC").Find(&rows).Error; err != nil {
		return nil, nil, err
	}

	items := make([]*entities.ActionItem, len(rows))
	titles := make([]string, len(rows))
	for i := range rows {
		item := rows[i].ActionItem
		items[i] = &item
		titles[i] = rows[i].MeetingTitle
	}
	return items, titles, nil
}

// Update persists changes to an action item
func (r *ActionItemRepository) Update(ctx context.Context, item *entities.ActionItem) error {
	if item == nil {
		return errors.New("action item cannot be nil")
	}
	return r.db.WithContext(ctx).Save(item).Error
}

// Delete removes an action item
func (r *ActionItemRepository) Delete(ctx context.Context, actionID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("action_id = ?", actionID).
		Delete(&entities.ActionItem{}).Error
}
