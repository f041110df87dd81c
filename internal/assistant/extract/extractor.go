// internal/assistant/extract/extractor.go
package extract

import (
	"regexp"
	"strings"

	"police-assistant/internal/models"
)

// Patterns are compiled once at init. Captures are returned verbatim;
// normalization is the lookup side's problem.
var (
	// Slash-delimited ids like 001/2024. Checked before the marker form so
	// "FIR/001/2024" yields the full id instead of its first segment.
	caseSlashPattern = regexp.MustCompile(`\d+/\d+`)

	// Marker word followed by separators and a bare numeric id ("FIR 123").
	caseMarkerPattern = regexp.MustCompile(`(?i)(?:fir|ఎఫ్‌ఐఆర్)[\s/]*(\d+)`)

	digitRunPattern = regexp.MustCompile(`\d+`)

	// Gazetteer of known cities, Latin and Telugu spellings. Leftmost
	// occurrence wins; Telugu script has no case so (?i) only affects the
	// Latin entries.
	locationPattern = regexp.MustCompile(`(?i)guntur|vijayawada|tirupati|hyderabad|visakhapatnam|గుంటూర్|విజయవాడ|తిరుపతి`)

	timeframeWeekPattern = regexp.MustCompile(`(?i)last week|గత వారం`)
)

// Extract pulls the optional structured fields out of free text. It is a
// pure function: same text, same entities, and running it twice never
// changes the result.
func Extract(text string) models.Entities {
	return models.Entities{
		CaseNumber:  CaseNumber(text),
		Location:    Location(text),
		PhoneNumber: PhoneNumber(text),
		Timeframe:   Timeframe(text),
	}
}

// CaseNumber returns the first case id mentioned in text, or "".
func CaseNumber(text string) string {
	if m := caseSlashPattern.FindString(text); m != "" {
		return m
	}
	if m := caseMarkerPattern.FindStringSubmatch(text); m != nil {
		return m[1]
	}
	return ""
}

// Location returns the first gazetteer city mentioned in text, verbatim
// as typed, or "".
func Location(text string) string {
	return locationPattern.FindString(text)
}

// PhoneNumber returns the first run of exactly ten consecutive digits,
// or "". Longer runs are not phone numbers and are skipped.
func PhoneNumber(text string) string {
	for _, run := range digitRunPattern.FindAllString(text, -1) {
		if len(run) == 10 {
			return run
		}
	}
	return ""
}

// Timeframe maps recognized relative-time phrases to a coarse bucket.
// Only "week" is recognized today.
func Timeframe(text string) string {
	if timeframeWeekPattern.MatchString(text) {
		return "week"
	}
	return ""
}

// HasBackwardReference reports whether text leans on an earlier exchange
// ("the same case", "that again"). Substring match, both scripts.
func HasBackwardReference(text string) bool {
	lower := strings.ToLower(text)
	for _, w := range backwardReferenceWords {
		if strings.Contains(lower, w) {
			return true
		}
	}
	return false
}

var backwardReferenceWords = []string{
	"again", "previous", "earlier", "before", "same", "that",
	"మళ్లీ", "మునుపు", "అదే", "ముందు",
}
