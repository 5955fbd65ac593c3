package processing

import (
	"sort"
	"strings"
)

// keywordVocabulary is the fixed set of meeting terms counted in transcripts.
// Order matters: frequency ties resolve in vocabulary order.
var keywordVocabulary = []string{
	"planning", "development", "testing", "deployment", "review",
	"budget", "timeline", "deadline", "milestone", "feature",
	"bug", "issue", "requirement", "specification", "design",
}

const (
	// minKeywordFrequency drops words that appear only once
	minKeywordFrequency = 2
	// maxKeywords caps the stored keywords per meeting
	maxKeywords = 10
)

// KeywordCount is one vocabulary term with its transcript frequency
type KeywordCount struct {
	Keyword   string
	Frequency int
}

// ExtractKeywords counts vocabulary terms in a transcript and returns the
// most frequent ones, highest first. Words are lowercased and stripped of
// trailing punctuation before matching; ties keep vocabulary order so the
// cutoff is deterministic.
func ExtractKeywords(transcript string) []KeywordCount {
	counts := make(map[string]int)
	for _, word := range strings.Fields(strings.ToLower(transcript)) {
		clean := strings.Trim(word, ".,!?;:")
		counts[clean]++
	}

	keywords := make([]KeywordCount, 0, len(keywordVocabulary))
	for _, keyword := range keywordVocabulary {
		if frequency := counts[keyword]; frequency >= minKeywordFrequency {
			keywords = append(keywords, KeywordCount{Keyword: keyword, Frequency: frequency})
		}
	}

	sort.SliceStable(keywords, func(i, j int) bool {
		return keywords[i].Frequency > keywords[j].Frequency
	})

	if len(keywords) > maxKeywords {
		keywords = keywords[:maxKeywords]
	}
	return keywords
}
