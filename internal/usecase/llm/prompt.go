package llm

import (
	"fmt"
	"time"
)

// maxPromptTranscript is the slice of the transcript handed to a provider.
// Full-transcript analysis is deliberately not attempted.
const maxPromptTranscript = 4000

// BuildPrompt renders the extraction prompt for a transcript. Providers are
// asked for a 5-bullet summary and JSON action items with deadlines between
// 1 and 30 days from today.
func BuildPrompt(transcript string, now time.Time) string {
	if len(transcript) > maxPromptTranscript {
		transcript = transcript[:maxPromptTranscript]
	}
	today := now.Format("2006-01-02")

	return fmt.Sprintf(`
You are an AI meeting assistant. Analyze the following meeting transcript and provide:

1. A concise 5-bullet point summary of the key discussion points
2. Extract all action items with clear owners and realistic deadlines

Please format your response as JSON with the following structure:
{
  "summary": "• Point 1\n• Point 2\n• Point 3\n• Point 4\n• Point 5",
  "action_items": [
    {
      "description": "Action item description",
      "owner": "Person or team responsible",
      "deadline": "YYYY-MM-DD",
      "priority": "low|medium|high"
    }
  ]
}

Meeting Transcript:
%s

Important guidelines:
- Make summaries clear and actionable
- Assign realistic deadlines (1-30 days from today: %s)
- If no specific owner is mentioned, use "Team" or infer from context
- Prioritize action items as low, medium, or high based on urgency
- Ensure all dates are in YYYY-MM-DD format

Response:
`, transcript, today)
}
