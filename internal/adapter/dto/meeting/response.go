package meeting

import (
	"time"

	"github.com/meetsum/meeting-summarizer/internal/domain/entities"
)

// Response is the meeting list/detail shape; the transcript itself is never
// echoed back.
type Response struct {
	MeetingID string    `json:"meeting_id"`
	Title     string    `json:"title"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// SummaryResponse is the shape for GET /v1/meetings/:id/summary
type SummaryResponse struct {
	SummaryID   string    `json:"summary_id"`
	Summary     string    `json:"summary"`
	Provider    string    `json:"provider,omitempty"`
	GeneratedAt time.Time `json:"generated_at"`
}

// FromEntity converts a meeting entity to its response shape
func FromEntity(m *entities.Meeting) Response {
	return Response{
		MeetingID: m.ID.String(),
		Title:     m.Title,
		Status:    string(m.Status),
		CreatedAt: m.CreatedAt,
	}
}

// FromEntities converts a slice of meetings
func FromEntities(meetings []*entities.Meeting) []Response {
	out := make([]Response, len(meetings))
	for i, m := range meetings {
		out[i] = FromEntity(m)
	}
	return out
}

// SummaryFromEntity converts a summary entity to its response shape
func SummaryFromEntity(s *entities.MeetingSummary) SummaryResponse {
	return SummaryResponse{
		SummaryID:   s.ID.String(),
		Summary:     s.Summary,
		Provider:    s.Provider,
		GeneratedAt: s.GeneratedAt,
	}
}
