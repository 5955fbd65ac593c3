package entities

// ExtractionResult is the structured output of the LLM gateway: a bullet
// summary plus zero or more action items. The gateway guarantees a usable
// result or an explicit validation error, never a raw provider failure.
type ExtractionResult struct {
	Summary     string                `json:"summary"`
	ActionItems []ExtractedActionItem `json:"action_items"`
	Provider    string                `json:"-"` // which provider produced the result (groq, google, mock)
}

// ExtractedActionItem is an action item as returned by a provider. Deadline
// is kept as the raw string; the orchestrator parses it and substitutes a
// default when it is not a valid YYYY-MM-DD date.
type ExtractedActionItem struct {
	Description string `json:"description"`
	Owner       string `json:"owner"`
	Deadline    string `json:"deadline"`
	Priority    string `json:"priority"`
}
