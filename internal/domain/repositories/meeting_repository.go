package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/meetsum/meeting-summarizer/internal/domain/entities"
)

// MeetingRepository defines the interface for meeting data access
type MeetingRepository interface {
	// Create creates a new meeting in the queued state
	Create(ctx context.Context, meeting *entities.Meeting) error

	// FindByID retrieves a meeting by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*entities.Meeting, error)

	// FindByIDAndUser retrieves a meeting owned by the given user
	FindByIDAndUser(ctx context.Context, id, userID uuid.UUID) (*entities.Meeting, error)

	// ListByUser retrieves a user's meetings, newest first
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entities.Meeting, error)

	// ClaimForProcessing atomically moves a queued meeting to processing.
	// Returns false when the meeting does not exist or is not queued, which
	// is how duplicate job deliveries are rejected.
	ClaimForProcessing(ctx context.Context, id uuid.UUID) (bool, error)

	// UpdateStatus sets the meeting status unconditionally
	UpdateStatus(ctx context.Context, id uuid.UUID, status entities.MeetingStatus) error

	// SaveProcessingResult persists the summary, action items and keywords
	// and marks the meeting completed, all in one transaction. A failure
	// leaves no partial rows behind.
	SaveProcessingResult(ctx context.Context, meetingID uuid.UUID, summary *entities.MeetingSummary, items []*entities.ActionItem, keywords []*entities.MeetingKeyword) error

	// GetSummary retrieves the summary for a meeting
	GetSummary(ctx context.Context, meetingID uuid.UUID) (*entities.MeetingSummary, error)
}

// ActionItemRepository defines the interface for action item data access
type ActionItemRepository interface {
	// Create creates a manually added action item
	Create(ctx context.Context, item *entities.ActionItem) error

	// FindByMeeting retrieves all action items for a meeting
	FindByMeeting(ctx context.Context, meetingID uuid.UUID) ([]*entities.ActionItem, error)

	// FindByIDForUser retrieves an action item whose parent meeting is owned
	// by the given user, together with the meeting title
	FindByIDForUser(ctx context.Context, actionID, userID uuid.UUID) (*entities.ActionItem, string, error)

	// ListByUser retrieves all of a user's action items across meetings,
	// optionally filtered by status, ordered by ascending deadline
	ListByUser(ctx context.Context, userID uuid.UUID, status string) ([]*entities.ActionItem, []string, error)

	// Update persists changes to an action item
	Update(ctx context.Context, item *entities.ActionItem) error

	// Delete removes an action item
	Delete(ctx context.Context, actionID uuid.UUID) error
}

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Upsert creates the user row or refreshes name/avatar on conflict
	Upsert(ctx context.Context, user *entities.User) error

	// FindByID retrieves a user by id
	FindByID(ctx context.Context, id uuid.UUID) (*entities.User, error)
}

// KeywordTotal is a keyword with its frequency summed across meetings
type KeywordTotal struct {
	Keyword   string `json:"keyword"`
	Frequency int    `json:"frequency"`
}

// TrendBucket is a daily count of uploaded meetings
type TrendBucket struct {
	Date     string `json:"date"`
	Meetings int    `json:"meetings"`
}

// AnalyticsRepository defines the read-side aggregation queries
type AnalyticsRepository interface {
	// CountMeetings counts a user's meetings
	CountMeetings(ctx context.Context, userID uuid.UUID) (int64, error)

	// CountActionItemsByStatus returns status -> count for a user's items
	CountActionItemsByStatus(ctx context.Context, userID uuid.UUID) (map[string]int64, error)

	// CountOverdue counts non-completed items whose deadline has passed
	CountOverdue(ctx context.Context, userID uuid.UUID) (int64, error)

	// TopKeywords returns the user's recurring keywords by summed frequency
	TopKeywords(ctx context.Context, userID uuid.UUID, limit int) ([]KeywordTotal, error)

	// MeetingTrends returns daily meeting counts since the given time
	MeetingTrends(ctx context.Context, userID uuid.UUID, days int) ([]TrendBucket, error)

	// CountRecentMeetings counts meetings uploaded in the last N days
	CountRecentMeetings(ctx context.Context, userID uuid.UUID, days int) (int64, error)

	// CountUpcomingDeadlines counts non-completed items due within N days
	CountUpcomingDeadlines(ctx context.Context, userID uuid.UUID, days int) (int64, error)

	// CountRecentActionItemsByStatus returns status -> count restricted to
	// items created in the last N days
	CountRecentActionItemsByStatus(ctx context.Context, userID uuid.UUID, days int) (map[string]int64, error)
}
