package entities

import (
	"time"

	"github.com/google/uuid"
)

// MeetingSummary is the bullet-point summary generated for a meeting.
// At most one summary exists per meeting and it is written exactly once,
// inside the orchestrator's success transaction.
type MeetingSummary struct {
	ID          uuid.UUID `json:"summary_id" gorm:"column:summary_id;type:uuid;primary_key;default:gen_random_uuid()"`
	MeetingID   uuid.UUID `json:"meeting_id" gorm:"type:uuid;not null;uniqueIndex"`
	Summary     string    `json:"summary" gorm:"type:text;not null"`
	Provider    string    `json:"provider,omitempty" gorm:"type:varchar(50)"` // groq, google or mock
	GeneratedAt time.Time `json:"generated_at" gorm:"autoCreateTime"`
}

// TableName specifies the table name for MeetingSummary
func (MeetingSummary) TableName() string {
	return "meeting_summaries"
}

// NewMeetingSummary creates a new MeetingSummary entity
func NewMeetingSummary(meetingID uuid.UUID, summary, provider string) *MeetingSummary {
	return &MeetingSummary{
		ID:          uuid.New(),
		MeetingID:   meetingID,
		Summary:     summary,
		Provider:    provider,
		GeneratedAt: time.Now().UTC(),
	}
}
