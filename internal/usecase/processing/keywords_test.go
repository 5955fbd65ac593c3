package processing

import (
	"strings"
	"testing"
)

func TestExtractKeywordsCountsAndThreshold(t *testing.T) {
	transcript := "The deadline is close. Deadline, deadline! We set a milestone, then another milestone; milestone review happens once: testing"

	got := ExtractKeywords(transcript)

	// "deadline" x3, "milestone" x3, "review" and "testing" appear once and
	// stay below the storage threshold.
	if len(got) != 2 {
		t.Fatalf("expected 2 keywords, got %d: %+v", len(got), got)
	}
	for _, kc := range got {
		if kc.Keyword != "deadline" && kc.Keyword != "milestone" {
			t.Fatalf("unexpected keyword %q", kc.Keyword)
		}
		if kc.Frequency != 3 {
			t.Fatalf("keyword %q: expected frequency 3, got %d", kc.Keyword, kc.Frequency)
		}
	}
}

func TestExtractKeywordsIgnoresNonVocabulary(t *testing.T) {
	got := ExtractKeywords("synergy synergy synergy roadmap roadmap")
	if len(got) != 0 {
		t.Fatalf("expected no keywords, got %+v", got)
	}
}

func TestExtractKeywordsPunctuationAndCase(t *testing.T) {
	got := ExtractKeywords("Budget! budget? BUDGET:")
	if len(got) != 1 || got[0].Keyword != "budget" || got[0].Frequency != 3 {
		t.Fatalf("unexpected result: %+v", got)
	}
}

func TestExtractKeywordsOrderAndCap(t *testing.T) {
	// Build a transcript with distinct frequencies for many terms.
	var sb strings.Builder
	terms := []string{
		"planning", "development", "testing", "deployment", "review", "budget",
		"timeline", "deadline", "milestone", "feature", "bug", "issue",
	}
	for i, term := range terms {
		// First term appears 13 times, last appears 2 times.
		for j := 0; j < len(terms)+1-i; j++ {
			sb.WriteString(term)
			sb.WriteString(" ")
		}
	}

	got := ExtractKeywords(sb.String())

	if len(got) != maxKeywords {
		t.Fatalf("expected cap of %d keywords, got %d", maxKeywords, len(got))
	}
	for i := 1; i < len(got); i++ {
		if got[i].Frequency > got[i-1].Frequency {
			t.Fatalf("keywords not sorted by frequency: %+v", got)
		}
	}
	if got[0].Keyword != "planning" {
		t.Fatalf("expected most frequent keyword first, got %q", got[0].Keyword)
	}
}

func TestExtractKeywordsTieBreakVocabularyOrder(t *testing.T) {
	// "review" precedes "budget" in the vocabulary, so on equal frequency it
	// wins the tie even though "budget" sorts first alphabetically.
	got := ExtractKeywords("budget review review budget")
	if len(got) != 2 {
		t.Fatalf("expected 2 keywords, got %+v", got)
	}
	if got[0].Keyword != "review" || got[1].Keyword != "budget" {
		t.Fatalf("expected vocabulary-order tie-break, got %+v", got)
	}
}
