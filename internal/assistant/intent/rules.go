// internal/assistant/intent/rules.go
package intent

import (
	"regexp"

	"police-assistant/internal/models"
)

// rule is one entry of the ordered classification table. English keywords
// are matched word-bounded and case-insensitive; Telugu fragments are
// matched as plain substrings because Telugu codepoints fall outside \w
// and would defeat \b.
type rule struct {
	intent     models.Intent
	confidence float64
	keywords   *regexp.Regexp
	contains   []string

	// caseNumber marks the rule that also fires on a structural case id
	// with no keyword present ("001/2024 update?").
	caseNumber bool
}

// rules are evaluated top to bottom; the first match wins, so the order
// IS the priority. Greetings outrank everything so "hello, tell me about
// crime" still greets.
var rules = []rule{
	{
		intent:     models.IntentGreeting,
		confidence: 0.95,
		keywords:   regexp.MustCompile(`(?i)\b(hi|hello|hey|good morning|good afternoon|good evening|namaste)\b`),
		contains:   []string{"నమస్కారం", "హలో"},
	},
	{
		intent:     models.IntentHelp,
		confidence: 0.9,
		keywords:   regexp.MustCompile(`(?i)\b(help|assist|support|what can you do|how to use|guide)\b`),
		contains:   []string{"సహాయం", "మద్దతు"},
	},
	{
		intent:     models.IntentFIRStatus,
		confidence: 0.9,
		keywords:   regexp.MustCompile(`(?i)\b(fir status|check fir|track fir|fir update|case status|my case)\b`),
		contains:   []string{"ఎఫ్‌ఐఆర్ స్థితి", "కేసు స్థితి"},
		caseNumber: true,
	},
	{
		intent:     models.IntentCrimeStats,
		confidence: 0.8,
		keywords:   regexp.MustCompile(`(?i)\b(crime|crimes|criminal activity|incidents|safety|security|statistics)\b`),
		contains:   []string{"నేరాలు", "అపరాధాలు", "భద్రత"},
	},
	{
		intent:     models.IntentFileComplaint,
		confidence: 0.85,
		keywords:   regexp.MustCompile(`(?i)\b(file complaint|lodge complaint|register complaint|complain|complaint|report|issue|problem)\b`),
		contains:   []string{"ఫిర్యాదు", "సమస్య"},
	},
	{
		intent:     models.IntentFileFIR,
		confidence: 0.9,
		keywords:   regexp.MustCompile(`(?i)\b(file fir|register fir|how to file|fir process|first information report)\b`),
		contains:   []string{"ఎఫ్‌ఐఆర్ దాఖలు", "ఎఫ్‌ఐఆర్ ఎలా"},
	},
	{
		intent:     models.IntentEmergency,
		confidence: 0.95,
		keywords:   regexp.MustCompile(`(?i)\b(emergency|urgent|help me|immediate|crisis|danger|100|112)\b`),
		contains:   []string{"అత్యవసరం", "ఆపద"},
	},
	{
		intent:     models.IntentTrafficRules,
		confidence: 0.8,
		keywords:   regexp.MustCompile(`(?i)\b(traffic|driving|challan|fine|vehicle|road rules|signal)\b`),
		contains:   []string{"ట్రాఫిక్", "జరిమానా", "వాహనం"},
	},
	{
		intent:     models.IntentLostDocuments,
		confidence: 0.8,
		keywords:   regexp.MustCompile(`(?i)\b(lost|missing|stolen|documents|passport|license|aadhar|aadhaar)\b`),
		contains:   []string{"పోగొట్టుకున్న", "తప్పిపోయిన", "దస్తావేజులు"},
	},
	{
		intent:     models.IntentPoliceContact,
		confidence: 0.8,
		keywords:   regexp.MustCompile(`(?i)\b(police station|contact|phone number|address|nearest station|officer)\b`),
		contains:   []string{"పోలీస్ స్టేషన్", "సంప్రదించండి", "అధికారి"},
	},
}
