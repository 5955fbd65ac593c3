package llm

import (
	"fmt"
	"strings"
	"time"

	"github.com/meetsum/meeting-summarizer/internal/domain/entities"
)

// mockTopics is the vocabulary the fallback sniffs the transcript for, in
// priority order.
var mockTopics = []string{"planning", "development", "testing", "review", "deployment", "meeting", "project"}

// MockFallback synthesizes a deterministic extraction result from transcript
// heuristics. It exists so the pipeline always completes even with no
// provider configured, and it never fails.
type MockFallback struct {
	now func() time.Time
}

// NewMockFallback creates a MockFallback using the wall clock
func NewMockFallback() *MockFallback {
	return &MockFallback{now: time.Now}
}

// NewMockFallbackAt creates a MockFallback with a fixed clock, for tests
func NewMockFallbackAt(now func() time.Time) *MockFallback {
	return &MockFallback{now: now}
}

// Generate builds the mock result for a transcript
func (m *MockFallback) Generate(transcript string) *entities.ExtractionResult {
	topics := m.findTopics(transcript)

	base := m.now()
	deadlines := []string{
		base.AddDate(0, 0, 3).Format("2006-01-02"),
		base.AddDate(0, 0, 7).Format("2006-01-02"),
		base.AddDate(0, 0, 14).Format("2006-01-02"),
	}

	summary := fmt.Sprintf(`• Discussion focused on %s and project coordination
• Team reviewed current progress and identified key blockers
• Resource allocation and timeline adjustments were discussed
• Next steps and deliverables were clearly defined
• Follow-up meetings scheduled to track progress`, topics[0])

	return &entities.ExtractionResult{
		Summary: summary,
		ActionItems: []entities.ExtractedActionItem{
			{
				Description: fmt.Sprintf("Complete %s documentation and review", topics[0]),
				Owner:       "Development Team",
				Deadline:    deadlines[0],
				Priority:    entities.ActionItemPriorityHigh,
			},
			{
				Description: "Schedule follow-up meeting with stakeholders",
				Owner:       "Project Manager",
				Deadline:    deadlines[1],
				Priority:    entities.ActionItemPriorityMedium,
			},
			{
				Description: fmt.Sprintf("Prepare %s status report", topics[len(topics)-1]),
				Owner:       "Team Lead",
				Deadline:    deadlines[2],
				Priority:    entities.ActionItemPriorityMedium,
			},
		},
		Provider: "mock",
	}
}

// findTopics returns the vocabulary topics present as whole words in the
// transcript, defaulting to planning and development when none match.
func (m *MockFallback) findTopics(transcript string) []string {
	words := make(map[string]struct{})
	for _, w := range strings.Fields(strings.ToLower(transcript)) {
		words[w] = struct{}{}
	}

	var found []string
	for _, topic := range mockTopics {
		if _, ok := words[topic]; ok {
			found = append(found, topic)
		}
	}
	if len(found) == 0 {
		found = []string{"planning", "development"}
	}
	return found
}
