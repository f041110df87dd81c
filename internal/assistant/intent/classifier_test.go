// internal/assistant/intent/classifier_test.go
package intent

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"police-assistant/internal/models"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		wantIntent models.Intent
		wantConf   float64
	}{
		{"english greeting", "Hello there", models.IntentGreeting, 0.95},
		{"telugu greeting", "నమస్కారం", models.IntentGreeting, 0.95},
		{"help request", "what can you do for me", models.IntentHelp, 0.9},
		{"fir status keyword", "check FIR status please", models.IntentFIRStatus, 0.9},
		{"fir status telugu", "ఎఫ్‌ఐఆర్ స్థితి చెప్పండి", models.IntentFIRStatus, 0.9},
		{"crime stats", "crime statistics for my area", models.IntentCrimeStats, 0.8},
		{"crime stats telugu", "గుంటూర్ లో నేరాలు", models.IntentCrimeStats, 0.8},
		{"file complaint", "I want to file complaint about noise", models.IntentFileComplaint, 0.85},
		{"file fir", "how to file an FIR", models.IntentFileFIR, 0.9},
		{"emergency", "this is an emergency", models.IntentEmergency, 0.95},
		{"traffic", "how much is the traffic challan", models.IntentTrafficRules, 0.8},
		{"lost documents", "I lost my passport", models.IntentLostDocuments, 0.8},
		{"police contact", "nearest police station address", models.IntentPoliceContact, 0.8},
		{"fallback", "what is the weather like", models.IntentGeneralQuery, 0.5},
		{"empty input", "", models.IntentGeneralQuery, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotIntent, gotConf := Classify(tt.text)
			assert.Equal(t, tt.wantIntent, gotIntent)
			assert.Equal(t, tt.wantConf, gotConf)
		})
	}
}

func TestClassifyRulePriority(t *testing.T) {
	// Greeting sits above crime stats, so a mixed utterance greets.
	in, conf := Classify("Hello, tell me about crime in Guntur")
	assert.Equal(t, models.IntentGreeting, in)
	assert.Equal(t, 0.95, conf)
}

func TestClassifyStructuralCaseNumber(t *testing.T) {
	// A bare case id with no status keyword still routes to fir_status.
	in, _ := Classify("any update on 001/2024?")
	assert.Equal(t, models.IntentFIRStatus, in)
}

func TestClassifyConfidenceBounds(t *testing.T) {
	for _, r := range rules {
		assert.GreaterOrEqual(t, r.confidence, 0.0)
		assert.LessOrEqual(t, r.confidence, 1.0)
	}
}

func TestParse(t *testing.T) {
	parsed := Parse("FIR/001/2024 status please")
	assert.Equal(t, models.IntentFIRStatus, parsed.Intent)
	assert.Equal(t, "001/2024", parsed.Entities.CaseNumber)
	assert.Equal(t, 0.9, parsed.Confidence)
}

func TestParseIsDeterministic(t *testing.T) {
	first := Parse("crime in Vijayawada last week")
	second := Parse("crime in Vijayawada last week")
	assert.Equal(t, first, second)
}
