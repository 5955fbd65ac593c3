package entities

import (
	"time"

	"github.com/google/uuid"
)

// MeetingStatus represents the processing status of an uploaded meeting
type MeetingStatus string

const (
	MeetingStatusQueued     MeetingStatus = "queued"     // Uploaded, waiting for a worker
	MeetingStatusProcessing MeetingStatus = "processing" // Claimed by the orchestrator
	MeetingStatusCompleted  MeetingStatus = "completed"  // Summary, action items and keywords persisted
	MeetingStatusFailed     MeetingStatus = "failed"     // Processing failed; requires a new upload
)

// Meeting represents an uploaded meeting transcript owned by a user.
// Status is monotonic: queued -> processing -> completed|failed. Only the
// processing orchestrator mutates a meeting after upload.
type Meeting struct {
	ID         uuid.UUID     `json:"meeting_id" gorm:"column:meeting_id;type:uuid;primary_key;default:gen_random_uuid()"`
	UserID     uuid.UUID     `json:"user_id" gorm:"type:uuid;not null;index"`
	Title      string        `json:"title" gorm:"type:varchar(500);not null"`
	Transcript string        `json:"transcript" gorm:"type:text;not null"`
	Status     MeetingStatus `json:"status" gorm:"type:varchar(20);not null;index;default:'queued'"`
	ObjectKey  string        `json:"object_key,omitempty" gorm:"type:varchar(512)"` // archived upload in object storage
	CreatedAt  time.Time     `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt  time.Time     `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for Meeting
func (Meeting) TableName() string {
	return "meetings"
}

// NewMeeting creates a meeting in the queued state
func NewMeeting(userID uuid.UUID, title, transcript string) *Meeting {
	now := time.Now().UTC()
	return &Meeting{
		ID:         uuid.New(),
		UserID:     userID,
		Title:      title,
		Transcript: transcript,
		Status:     MeetingStatusQueued,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// IsTerminal reports whether the meeting reached a terminal processing state
func (m *Meeting) IsTerminal() bool {
	return m.Status == MeetingStatusCompleted || m.Status == MeetingStatusFailed
}
