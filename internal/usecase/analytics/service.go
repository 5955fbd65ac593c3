// Package analytics aggregates read-side statistics over a user's meetings
// and action items.
package analytics

import (
	"context"
	"math"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/meetsum/meeting-summarizer/internal/domain/entities"
	"github.com/meetsum/meeting-summarizer/internal/domain/repositories"
)

const (
	trendWindowDays    = 30
	recentWindowDays   = 7
	deadlineWindowDays = 7
)

// Overview is the full analytics payload for a user
type Overview struct {
	TotalMeetings      int64                       `json:"total_meetings"`
	CompletedTasks     int64                       `json:"completed_tasks"`
	PendingTasks       int64                       `json:"pending_tasks"`
	InProgressTasks    int64                       `json:"in_progress_tasks"`
	OverdueTasks       int64                       `json:"overdue_tasks"`
	TaskCompletionRate float64                     `json:"task_completion_rate"`
	AvgTasksPerMeeting float64                     `json:"avg_tasks_per_meeting"`
	RecurringKeywords  []repositories.KeywordTotal `json:"recurring_keywords"`
	MeetingTrends      []repositories.TrendBucket  `json:"meeting_trends"`
}

// Dashboard is the condensed recent-activity payload
type Dashboard struct {
	RecentMeetings    int64   `json:"recent_meetings"`
	UpcomingDeadlines int64   `json:"upcoming_deadlines"`
	ProductivityScore float64 `json:"productivity_score"`
	Period            string  `json:"period"`
}

// Service defines the analytics read operations
type Service interface {
	GetOverview(ctx context.Context, userID uuid.UUID) (*Overview, error)
	GetDashboard(ctx context.Context, userID uuid.UUID) (*Dashboard, error)
}

type analyticsService struct {
	repo   repositories.AnalyticsRepository
	logger *zap.Logger
}

// NewService constructs an analytics service
func NewService(repo repositories.AnalyticsRepository, logger *zap.Logger) Service {
	return &analyticsService{repo: repo, logger: logger}
}

// GetOverview assembles the user's lifetime statistics: counts by status,
// overdue items, completion rate, top keywords and the 30-day upload trend.
func (s *analyticsService) GetOverview(ctx context.Context, userID uuid.UUID) (*Overview, error) {
	totalMeetings, err := s.repo.CountMeetings(ctx, userID)
	if err != nil {
		return nil, err
	}

	byStatus, err := s.repo.CountActionItemsByStatus(ctx, userID)
	if err != nil {
		return nil, err
	}
	completed := byStatus[entities.ActionItemStatusCompleted]
	pending := byStatus[entities.ActionItemStatusPending]
	inProgress := byStatus[entities.ActionItemStatusInProgress]

	overdue, err := s.repo.CountOverdue(ctx, userID)
	if err != nil {
		return nil, err
	}

	keywords, err := s.repo.TopKeywords(ctx, userID, 10)
	if err != nil {
		return nil, err
	}

	trends, err := s.repo.MeetingTrends(ctx, userID, trendWindowDays)
	if err != nil {
		return nil, err
	}

	totalTasks := completed + pending + inProgress
	var completionRate, avgTasks float64
	if totalTasks > 0 {
		completionRate = round2(float64(completed) / float64(totalTasks) * 100)
	}
	if totalMeetings > 0 {
		avgTasks = round2(float64(totalTasks) / float64(totalMeetings))
	}

	return &Overview{
		TotalMeetings:      totalMeetings,
		CompletedTasks:     completed,
		PendingTasks:       pending,
		InProgressTasks:    inProgress,
		OverdueTasks:       overdue,
		TaskCompletionRate: completionRate,
		AvgTasksPerMeeting: avgTasks,
		RecurringKeywords:  keywords,
		MeetingTrends:      trends,
	}, nil
}

// GetDashboard assembles the last-7-days view with a 30-day productivity
// score (share of recently created items already completed).
func (s *analyticsService) GetDashboard(ctx context.Context, userID uuid.UUID) (*Dashboard, error) {
	recentMeetings, err := s.repo.CountRecentMeetings(ctx, userID, recentWindowDays)
	if err != nil {
		return nil, err
	}

	upcoming, err := s.repo.CountUpcomingDeadlines(ctx, userID, deadlineWindowDays)
	if err != nil {
		return nil, err
	}

	recentByStatus, err := s.repo.CountRecentActionItemsByStatus(ctx, userID, trendWindowDays)
	if err != nil {
		return nil, err
	}
	var recentTotal, recentCompleted int64
	for status, count := range recentByStatus {
		recentTotal += count
		if status == entities.ActionItemStatusCompleted {
			recentCompleted = count
		}
	}
	var score float64
	if recentTotal > 0 {
		score = round1(float64(recentCompleted) / float64(recentTotal) * 100)
	}

	return &Dashboard{
		RecentMeetings:    recentMeetings,
		UpcomingDeadlines: upcoming,
		ProductivityScore: score,
		Period:            "last_7_days",
	}, nil
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }
func round1(v float64) float64 { return math.Round(v*10) / 10 }
