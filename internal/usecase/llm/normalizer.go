package llm

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/meetsum/meeting-summarizer/internal/domain/entities"
)

// defaultSummary is returned when a reply contains neither JSON nor any
// recognizable bullet lines.
const defaultSummary = "Summary not available"

// heuristicDeadlineDays is applied to action items recovered from bullet
// lines, which carry no deadline of their own.
const heuristicDeadlineDays = 7

// Normalizer turns raw provider replies into structured extraction results.
// Providers frequently wrap JSON in prose or markdown fences, so the
// normalizer never trusts the reply to be clean JSON.
type Normalizer struct {
	now func() time.Time
}

// NewNormalizer creates a Normalizer using the wall clock
func NewNormalizer() *Normalizer {
	return &Normalizer{now: time.Now}
}

// NewNormalizerAt creates a Normalizer with a fixed clock, for tests
func NewNormalizerAt(now func() time.Time) *Normalizer {
	return &Normalizer{now: now}
}

// Normalize parses a raw provider reply. It first tries the substring
// between the first '{' and the last '}' as JSON; when that fails or the
// required keys are missing, it falls back to a line scan that collects
// bullet points under "summary" and "action" headings.
func (n *Normalizer) Normalize(raw string) *entities.ExtractionResult {
	if result := n.parseJSON(raw); result != nil {
		return result
	}
	return n.scanBullets(raw)
}

func (n *Normalizer) parseJSON(raw string) *entities.ExtractionResult {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start == -1 || end == -1 || end < start {
		return nil
	}

	var payload struct {
		Summary     *string                         `json:"summary"`
		ActionItems *[]entities.ExtractedActionItem `json:"action_items"`
	}
	if err := json.Unmarshal([]byte(raw[start:end+1]), &payload); err != nil {
		return nil
	}
	// Both keys must be present, not merely zero-valued.
	if payload.Summary == nil || payload.ActionItems == nil {
		return nil
	}

	return &entities.ExtractionResult{
		Summary:     *payload.Summary,
		ActionItems: *payload.ActionItems,
	}
}

func (n *Normalizer) scanBullets(raw string) *entities.ExtractionResult {
	var (
		summaryLines []string
		actionItems  []entities.ExtractedActionItem
		section      string
	)
	deadline := n.now().AddDate(0, 0, heuristicDeadlineDays).Format("2006-01-02")

	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		lower := strings.ToLower(line)
		if strings.Contains(lower, "summary") {
			section = "summary"
			continue
		}
		if strings.Contains(lower, "action") {
			section = "action_items"
			continue
		}

		if !strings.HasPrefix(line, "•") {
			continue
		}
		switch section {
		case "summary":
			summaryLines = append(summaryLines, line)
		case "action_items":
			actionItems = append(actionItems, entities.ExtractedActionItem{
				Description: strings.TrimSpace(strings.TrimPrefix(line, "•")),
				Owner:       "Team",
				Deadline:    deadline,
				Priority:    entities.ActionItemPriorityMedium,
			})
		}
	}

	summary := defaultSummary
	if len(summaryLines) > 0 {
		summary = strings.Join(summaryLines, "\n")
	}

	return &entities.ExtractionResult{
		Summary:     summary,
		ActionItems: actionItems,
	}
}
