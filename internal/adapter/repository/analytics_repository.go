package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/meetsum/meeting-summarizer/internal/domain/entities"
	"github.com/meetsum/meeting-summarizer/internal/domain/repositories"
)

// AnalyticsRepository runs the read-side aggregation queries. All queries
// are scoped to one user and join through the meetings table for ownership.
type AnalyticsRepository struct {
	db *gorm.DB
}

// NewAnalyticsRepository creates a new analytics repository
func NewAnalyticsRepository(db *gorm.DB) *AnalyticsRepository {
	return &AnalyticsRepository{db: db}
}

// CountMeetings counts a user's meetings
func (r *AnalyticsRepository) CountMeetings(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entities.Meeting{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	return count, err
}

type statusCount struct {
	Status string
	Count  int64
}

// CountActionItemsByStatus returns status -> count for a user's items
func (r *AnalyticsRepository) CountActionItemsByStatus(ctx context.Context, userID uuid.UUID) (map[string]int64, error) {
	var rows []statusCount
	err := r.db.WithContext(ctx).
		Table("action_items").
		Select("action_items.status AS status, COUNT(action_items.action_id) AS count").
		Joins("JOIN meetings ON meetings.meeting_id = action_items.meeting_id").
		Where("meetings.user_id = ?", userID).
		Group("action_items.status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}

// CountOverdue counts non-completed items whose deadline has passed
func (r *AnalyticsRepository) CountOverdue(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("action_items").
		Joins("JOIN meetings ON meetings.meeting_id = action_items.meeting_id").
		Where("meetings.user_id = ? AND action_items.deadline < ? AND action_items.status <> ?",
			userID, time.Now().Format("2006-01-02"), entities.ActionItemStatusCompleted).
		Count(&count).Error
	return count, err
}

// TopKeywords returns the user's recurring keywords by summed frequency
func (r *AnalyticsRepository) TopKeywords(ctx context.Context, userID uuid.UUID, limit int) ([]repositories.KeywordTotal, error) {
	var totals []repositories.KeywordTotal
	err := r.db.WithContext(ctx).
		Table("meeting_keywords").
		Select("meeting_keywords.keyword AS keyword, SUM(meeting_keywords.frequency) AS frequency").
		Joins("JOIN meetings ON meetings.meeting_id = meeting_keywords.meeting_id").
		Where("meetings.user_id = ?", userID).
		Group("meeting_keywords.keyword").
		Order("frequency DESC").
		Limit(limit).
		Scan(&totals).Error
	if err != nil {
		return nil, err
	}
	return totals, nil
}

// MeetingTrends returns daily meeting counts for the trailing window
func (r *AnalyticsRepository) MeetingTrends(ctx context.Context, userID uuid.UUID, days int) ([]repositories.TrendBucket, error) {
	since := time.Now().AddDate(0, 0, -days)

	var buckets []repositories.TrendBucket
	err := r.db.WithContext(ctx).
		Table("meetings").
		Select("DATE(created_at)::text AS date, COUNT(meeting_id) AS meetings").
		Where("user_id = ? AND created_at >= ?", userID, since).
		Group("DATE(created_at)").
		Order("date ASC").
		Scan(&buckets).Error
	if err != nil {
		return nil, err
	}
	return buckets, nil
}

// CountRecentMeetings counts meetings uploaded in the last N days
func (r *AnalyticsRepository) CountRecentMeetings(ctx context.Context, userID uuid.UUID, days int) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entities.Meeting{}).
		Where("user_id = ? AND created_at >= ?", userID, time.Now().AddDate(0, 0, -days)).
		Count(&count).Error
	return count, err
}

// CountUpcomingDeadlines counts non-completed items due within N days
func (r *AnalyticsRepository) CountUpcomingDeadlines(ctx context.Context, userID uuid.UUID, days int) (int64, error) {
	horizon := time.Now().AddDate(0, 0, days).Format("2006-01-02")

	var count int64
	err := r.db.WithContext(ctx).
		Table("action_items").
		Joins("JOIN meetings ON meetings.meeting_id = action_items.meeting_id").
		Where("meetings.user_id = ? AND action_items.deadline <= ? AND action_items.status <> ?",
			userID, horizon, entities.ActionItemStatusCompleted).
		Count(&count).Error
	return count, err
}

// CountRecentActionItemsByStatus returns status -> count restricted to items
// created in the last N days
func (r *AnalyticsRepository) CountRecentActionItemsByStatus(ctx context.Context, userID uuid.UUID, days int) (map[string]int64, error) {
	var rows []statusCount
	err := r.db.WithContext(ctx).
		Table("action_items").
		Select("action_items.status AS status, COUNT(action_items.action_id) AS count").
		Joins("JOIN meetings ON meetings.meeting_id = action_items.meeting_id").
		Where("meetings.user_id = ? AND action_items.created_at >= ?", userID, time.Now().AddDate(0, 0, -days)).
		Group("action_items.status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}
