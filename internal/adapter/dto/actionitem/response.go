package actionitem

import (
	"time"

	"github.com/meetsum/meeting-summarizer/internal/domain/entities"
)

// Response is the action item shape shared by the meeting-scoped and
// user-scoped listings. MeetingTitle is only populated on the latter.
type Response struct {
	ActionID     string    `json:"action_id"`
	MeetingID    string    `json:"meeting_id"`
	MeetingTitle string    `json:"meeting_title,omitempty"`
	Description  string    `json:"description"`
	Owner        string    `json:"owner"`
	Deadline     string    `json:"deadline"`
	Status       string    `json:"status"`
	Priority     string    `json:"priority"`
	Notes        *string   `json:"notes,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// FromEntity converts an action item entity to its response shape
func FromEntity(item *entities.ActionItem) Response {
	return Response{
		ActionID:    item.ID.String(),
		MeetingID:   item.MeetingID.String(),
		Description: item.Description,
		Owner:       item.Owner,
		Deadline:    time.Time(item.Deadline).Format("2006-01-02"),
		Status:      item.Status,
		Priority:    item.Priority,
		Notes:       item.Notes,
		CreatedAt:   item.CreatedAt,
		UpdatedAt:   item.UpdatedAt,
	}
}

// FromEntities converts a slice of action items
func FromEntities(items []*entities.ActionItem) []Response {
	out := make([]Response, len(items))
	for i, item := range items {
		out[i] = FromEntity(item)
	}
	return out
}
