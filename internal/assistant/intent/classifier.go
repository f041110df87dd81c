// internal/assistant/intent/classifier.go
package intent

import (
	"strings"

	"police-assistant/internal/assistant/extract"
	"police-assistant/internal/models"
)

// FallbackConfidence is reported when no rule matches.
const FallbackConfidence = 0.5

// Classify runs text through the ordered rule table and returns the first
// matching intent with its fixed confidence. Unmatched input falls back to
// general_query. Deterministic: same text, same answer.
func Classify(text string) (models.Intent, float64) {
	lower := strings.ToLower(text)
	for _, r := range rules {
		if r.matches(text, lower) {
			return r.intent, r.confidence
		}
	}
	return models.IntentGeneralQuery, FallbackConfidence
}

// Parse is the one-stop classify-and-extract entry point.
func Parse(text string) models.ParsedQuery {
	in, conf := Classify(text)
	return models.ParsedQuery{
		Intent:     in,
		Entities:   extract.Extract(text),
		Confidence: conf,
	}
}

func (r rule) matches(text, lower string) bool {
	if r.keywords.MatchString(text) {
		return true
	}
	for _, fragment := range r.contains {
		if strings.Contains(lower, fragment) {
			return true
		}
	}
	if r.caseNumber && extract.CaseNumber(text) != "" {
		return true
	}
	return false
}
