// internal/assistant/search/fixture.go
package search

import (
	"context"
	"strings"
	"time"

	"police-assistant/internal/common/metrics"
	"police-assistant/internal/models"
)

// FixtureProvider serves deterministic canned results keyed by topic. It
// is the default provider: useful offline, in development, and in tests.
// The configured latency imitates a real round trip; set it to zero in
// tests.
type FixtureProvider struct {
	latency    time.Duration
	maxResults int
}

func NewFixtureProvider(latency time.Duration, maxResults int) *FixtureProvider {
	if maxResults <= 0 {
		maxResults = 2
	}
	return &FixtureProvider{latency: latency, maxResults: maxResults}
}

func (p *FixtureProvider) Search(ctx context.Context, query string, lang models.Language) ([]models.SearchResult, error) {
	if p.latency > 0 {
		timer := time.NewTimer(p.latency)
		select {
		case <-ctx.Done():
			timer.Stop()
			metrics.SearchRequests.WithLabelValues("fixture", "canceled").Inc()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	fixtures := fixtureResults[topicFor(query)]
	results := make([]models.SearchResult, 0, p.maxResults)
	for _, f := range fixtures {
		if len(results) == p.maxResults {
			break
		}
		results = append(results, models.SearchResult{
			Title:     f.title.Get(lang),
			Snippet:   f.snippet.Get(lang),
			URL:       f.url,
			Relevance: f.relevance,
		})
	}
	metrics.SearchRequests.WithLabelValues("fixture", "success").Inc()
	return results, nil
}

// topicFor picks the canned result set, most specific topic first.
func topicFor(query string) string {
	lower := strings.ToLower(query)
	switch {
	case containsAny(lower, "crime", "statistics", "safety", "నేరాలు", "భద్రత"):
		return "crime"
	case containsAny(lower, "traffic", "challan", "license", "ట్రాఫిక్"):
		return "traffic"
	case containsAny(lower, "law", "legal", "act", "section", "procedure", "చట్టపరమైన"):
		return "legal"
	default:
		return "general"
	}
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

type fixtureResult struct {
	title     models.Localized
	snippet   models.Localized
	url       string
	relevance float64
}

var fixtureResults = map[string][]fixtureResult{
	"crime": {
		{
			title:     models.Localized{EN: "AP Police Crime Statistics 2024", TE: "ఏపీ పోలీస్ నేర గణాంకాలు 2024"},
			snippet:   models.Localized{EN: "Latest crime data for Andhra Pradesh districts shows a decline in property crimes and improved case resolution rates.", TE: "ఆంధ్రప్రదేశ్ జిల్లాల తాజా నేర డేటా ఆస్తి నేరాల తగ్గుదల మరియు మెరుగైన కేసు పరిష్కార రేట్లను చూపిస్తుంది."},
			url:       "https://appolice.gov.in/crime-statistics",
			relevance: 0.95,
		},
		{
			title:     models.Localized{EN: "National Crime Records Bureau Report", TE: "జాతీయ నేర రికార్డుల బ్యూరో నివేదిక"},
			snippet:   models.Localized{EN: "NCRB annual report with district-wise crime trends, charge sheet rates, and safety indicators.", TE: "జిల్లాల వారీ నేర ధోరణులు, ఛార్జ్ షీట్ రేట్లు మరియు భద్రతా సూచికలతో NCRB వార్షిక నివేదిక."},
			url:       "https://ncrb.gov.in/crime-in-india",
			relevance: 0.85,
		},
	},
	"traffic": {
		{
			title:     models.Localized{EN: "AP Traffic Rules and Penalties", TE: "ఏపీ ట్రాఫిక్ నియమాలు మరియు జరిమానాలు"},
			snippet:   models.Localized{EN: "Updated challan amounts under the Motor Vehicles Act: helmet, seatbelt, over-speeding, and signal violations.", TE: "మోటారు వాహనాల చట్టం కింద నవీకరించిన చలాన్ మొత్తాలు: హెల్మెట్, సీట్ బెల్ట్, అతివేగం మరియు సిగ్నల్ ఉల్లంఘనలు."},
			url:       "https://aptransport.org/traffic-rules",
			relevance: 0.9,
		},
		{
			title:     models.Localized{EN: "e-Challan Payment Portal", TE: "ఇ-చలాన్ చెల్లింపు పోర్టల్"},
			snippet:   models.Localized{EN: "Check and pay pending traffic challans online using your vehicle registration number.", TE: "మీ వాహన రిజిస్ట్రేషన్ నంబర్ ఉపయోగించి పెండింగ్ ట్రాఫిక్ చలాన్లను ఆన్‌లైన్‌లో తనిఖీ చేసి చెల్లించండి."},
			url:       "https://echallan.parivahan.gov.in",
			relevance: 0.8,
		},
	},
	"legal": {
		{
			title:     models.Localized{EN: "Citizen's Guide to FIR and Complaints", TE: "ఎఫ్‌ఐఆర్ మరియు ఫిర్యాదులకు పౌరుల మార్గదర్శి"},
			snippet:   models.Localized{EN: "Your rights when filing an FIR: zero FIR, free copy of the report, and escalation when registration is refused.", TE: "ఎఫ్‌ఐఆర్ దాఖలు చేసేటప్పుడు మీ హక్కులు: జీరో ఎఫ్‌ఐఆర్, నివేదిక ఉచిత కాపీ మరియు నమోదు నిరాకరించినప్పుడు ఫిర్యాదు మార్గాలు."},
			url:       "https://legalservices.ap.gov.in/fir-guide",
			relevance: 0.9,
		},
	},
	"general": {
		{
			title:     models.Localized{EN: "Andhra Pradesh Police Official Portal", TE: "ఆంధ్రప్రదేశ్ పోలీస్ అధికారిక పోర్టల్"},
			snippet:   models.Localized{EN: "Citizen services, station locator, online petitions, and the latest advisories from AP Police.", TE: "పౌర సేవలు, స్టేషన్ లొకేటర్, ఆన్‌లైన్ పిటిషన్లు మరియు ఏపీ పోలీస్ తాజా సూచనలు."},
			url:       "https://appolice.gov.in",
			relevance: 0.7,
		},
	},
}
