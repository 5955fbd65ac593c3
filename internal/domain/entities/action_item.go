package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ActionItem represents a task extracted from a meeting transcript
type ActionItem struct {
	ID                uuid.UUID      `json:"action_id" gorm:"column:action_id;type:uuid;primary_key;default:gen_random_uuid()"`
	MeetingID         uuid.UUID      `json:"meeting_id" gorm:"type:uuid;not null;index"`
	Description       string         `json:"description" gorm:"type:text;not null"`
	Owner             string         `json:"owner" gorm:"type:varchar(255);not null"`
	Deadline          datatypes.Date `json:"deadline" gorm:"type:date;not null"`
	Status            string         `json:"status" gorm:"type:varchar(20);default:'pending'"`
	Priority          string         `json:"priority" gorm:"type:varchar(20);default:'medium'"`
	Notes             *string        `json:"notes,omitempty" gorm:"type:text"`
	CompletionSeconds *int64         `json:"completion_seconds,omitempty" gorm:"type:bigint"` // elapsed creation -> completion
	CreatedAt         time.Time      `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt         time.Time      `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for ActionItem
func (ActionItem) TableName() string {
	return "action_items"
}

// NewActionItem creates a pending action item for a meeting
func NewActionItem(meetingID uuid.UUID, description, owner string, deadline time.Time) *ActionItem {
	return &ActionItem{
		ID:          uuid.New(),
		MeetingID:   meetingID,
		Description: description,
		Owner:       owner,
		Deadline:    datatypes.Date(deadline),
		Status:      ActionItemStatusPending,
		Priority:    ActionItemPriorityMedium,
	}
}

// MarkCompleted transitions the item to completed and records the elapsed
// duration since creation. Calling it on an already completed item is a no-op.
func (a *ActionItem) MarkCompleted(now time.Time) {
	if a.Status == ActionItemStatusCompleted {
		return
	}
	a.Status = ActionItemStatusCompleted
	secs := int64(now.Sub(a.CreatedAt).Seconds())
	a.CompletionSeconds = &secs
}

// ActionItemStatus constants
const (
	ActionItemStatusPending    = "pending"
	ActionItemStatusInProgress = "in-progress"
	ActionItemStatusCompleted  = "completed"
)

// ActionItemPriority constants
const (
	ActionItemPriorityLow    = "low"
	ActionItemPriorityMedium = "medium"
	ActionItemPriorityHigh   = "high"
)

// ValidActionItemStatus reports whether s is a known status value
func ValidActionItemStatus(s string) bool {
	switch s {
	case ActionItemStatusPending, ActionItemStatusInProgress, ActionItemStatusCompleted:
		return true
	}
	return false
}

// ValidActionItemPriority reports whether p is a known priority value
func ValidActionItemPriority(p string) bool {
	switch p {
	case ActionItemPriorityLow, ActionItemPriorityMedium, ActionItemPriorityHigh:
		return true
	}
	return false
}
