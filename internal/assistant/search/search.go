// internal/assistant/search/search.go
package search

import (
	"context"
	"strings"

	"police-assistant/internal/models"
)

// Provider supplies supplementary web results for a query. Implementations
// must honor ctx cancellation; callers treat any error as a degradation
// signal, never a hard failure.
type Provider interface {
	Search(ctx context.Context, query string, lang models.Language) ([]models.SearchResult, error)
}

// currentInfoKeywords mark queries that want fresh information the canned
// templates cannot carry.
var currentInfoKeywords = []string{
	"latest", "recent", "new", "current", "update", "today",
	"ఇటీవలి", "కొత్త", "తాజా", "ప్రస్తుత",
}

// complexQueryTokens is the token count above which a query is assumed to
// need augmentation even without a recency keyword.
const complexQueryTokens = 6

// IsSearchable decides whether a query earns search augmentation. Intents
// fully answered by templates or record lookups never search; otherwise a
// recency keyword or a long query triggers it.
func IsSearchable(query string, in models.Intent) bool {
	switch in {
	case models.IntentGreeting, models.IntentHelp, models.IntentEmergency, models.IntentFIRStatus:
		return false
	}

	lower := strings.ToLower(query)
	for _, kw := range currentInfoKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return len(strings.Fields(query)) > complexQueryTokens
}
