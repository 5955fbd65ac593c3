package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/meetsum/meeting-summarizer/internal/domain/entities"
)

// MeetingRepository handles meeting data operations
type MeetingRepository struct {
	db *gorm.DB
}

// NewMeetingRepository creates a new meeting repository
func NewMeetingRepository(db *gorm.DB) *MeetingRepository {
	return &MeetingRepository{db: db}
}

// GetDB exposes the underlying handle for cross-repository transactions
func (r *MeetingRepository) GetDB() *gorm.DB {
	return r.db
}

// Create creates a new meeting
func (r *MeetingRepository) Create(ctx context.Context, meeting *entities.Meeting) error {
	if meeting == nil {
		return errors.New("meeting cannot be nil")
	}
	return r.db.WithContext(ctx).Create(meeting).Error
}

// FindByID retrieves a meeting by ID
func (r *MeetingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.Meeting, error) {
	var meeting entities.Meeting
	if err := r.db.WithContext(ctx).Where("meeting_id = ?", id).First(&meeting).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entities.ErrMeetingNotFound
		}
		return nil, err
	}
	return &meeting, nil
}

// FindByIDAndUser retrieves a meeting owned by the given user
func (r *MeetingRepository) FindByIDAndUser(ctx context.Context, id, userID uuid.UUID) (*entities.Meeting, error) {
	var meeting entities.Meeting
	if err := r.db.WithContext(ctx).
		Where("meeting_id = ? AND user_id = ?", id, userID).
		First(&meeting).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entities.ErrMeetingNotFound
		}
		return nil, err
	}
	return &meeting, nil
}

// ListByUser retrieves a user's meetings, newest first
func (r *MeetingRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entities.Meeting, error) {
	var meetings []*entities.Meeting
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&meetings).Error; err != nil {
		return nil, err
	}
	return meetings, nil
}

// ClaimForProcessing atomically moves a queued meeting to processing.
// The conditional update means only one worker wins when the same meeting
// is delivered twice; everyone else sees zero rows affected.
func (r *MeetingRepository) ClaimForProcessing(ctx context.Context, id uuid.UUID) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&entities.Meeting{}).
		Where("meeting_id = ? AND status = ?", id, entities.MeetingStatusQueued).
		Updates(map[string]interface{}{
			"status":     entities.MeetingStatusProcessing,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// UpdateStatus sets the meeting status unconditionally
func (r *MeetingRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entities.MeetingStatus) error {
	return r.db.WithContext(ctx).
		Model(&entities.Meeting{}).
		Where("meeting_id = ?", id).
		Updates(map[string]interface{}{
			"status":     status,
			"updated_at": time.Now(),
		}).Error
}

// SaveProcessingResult persists the summary, action items and keywords and
// marks the meeting completed in a single transaction, so a failure leaves
// no partial rows behind.
func (r *MeetingRepository) SaveProcessingResult(ctx context.Context, meetingID uuid.UUID, summary *entities.MeetingSummary, items []*entities.ActionItem, keywords []*entities.MeetingKeyword) error {
	if summary == nil {
		return errors.New("summary cannot be nil")
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(summary).Error; err != nil {
			return err
		}
		if len(items) > 0 {
			if err := tx.Create(items).Error; err != nil {
				return err
			}
		}
		if len(keywords) > 0 {
			if err := tx.Create(keywords).Error; err != nil {
				return err
			}
		}
		return tx.Model(&entities.Meeting{}).
			Where("meeting_id = ?", meetingID).
			Updates(map[string]interface{}{
				"status":     entities.MeetingStatusCompleted,
				"updated_at": time.Now(),
			}).Error
	})
}

// GetSummary retrieves the summary for a meeting
func (r *MeetingRepository) GetSummary(ctx context.Context, meetingID uuid.UUID) (*entities.MeetingSummary, error) {
	var summary entities.MeetingSummary
	if err := r.db.WithContext(ctx).
		Where("meeting_id = ?", meetingID).
		First(&summary).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entities.ErrSummaryNotFound
		}
		return nil, err
	}
	return &summary, nil
}
