// internal/assistant/extract/extractor_test.go
package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"police-assistant/internal/models"
)

func TestCaseNumber(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"slash form with marker", "FIR/001/2024 status", "001/2024"},
		{"slash form bare", "any news on 123/2023", "123/2023"},
		{"marker with space", "my FIR 456 please", "456"},
		{"telugu marker", "ఎఫ్‌ఐఆర్ 789 స్థితి", "789"},
		{"no case number", "hello there", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CaseNumber(tt.text))
		})
	}
}

func TestLocation(t *testing.T) {
	assert.Equal(t, "Guntur", Location("crime in Guntur today"))
	assert.Equal(t, "vijayawada", Location("what about vijayawada"))
	assert.Equal(t, "గుంటూర్", Location("గుంటూర్ లో నేరాలు"))
	assert.Equal(t, "", Location("somewhere else entirely"))
}

func TestLocationLeftmostWins(t *testing.T) {
	assert.Equal(t, "Tirupati", Location("Tirupati or Guntur?"))
}

func TestPhoneNumber(t *testing.T) {
	assert.Equal(t, "9876543210", PhoneNumber("call me at 9876543210"))
	assert.Equal(t, "", PhoneNumber("card 12345678901 is not a phone"))
	assert.Equal(t, "", PhoneNumber("short 12345"))
	assert.Equal(t, "9876543210", PhoneNumber("123 then 9876543210"))
}

func TestTimeframe(t *testing.T) {
	assert.Equal(t, "week", Timeframe("thefts last week"))
	assert.Equal(t, "week", Timeframe("గత వారం నేరాలు"))
	assert.Equal(t, "", Timeframe("thefts last month"))
}

func TestExtract(t *testing.T) {
	got := Extract("FIR/001/2024 for theft in Guntur, call 9876543210, last week")
	assert.Equal(t, models.Entities{
		CaseNumber:  "001/2024",
		Location:    "Guntur",
		PhoneNumber: "9876543210",
		Timeframe:   "week",
	}, got)
}

func TestExtractEmpty(t *testing.T) {
	got := Extract("nothing structured here")
	assert.True(t, got.IsEmpty())
}

func TestExtractIdempotent(t *testing.T) {
	text := "FIR 123 in Guntur"
	assert.Equal(t, Extract(text), Extract(text))
}

func TestHasBackwardReference(t *testing.T) {
	assert.True(t, HasBackwardReference("tell me that again"))
	assert.True(t, HasBackwardReference("the same case"))
	assert.True(t, HasBackwardReference("అదే కేసు"))
	assert.False(t, HasBackwardReference("a brand new question"))
}
