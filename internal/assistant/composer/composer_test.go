// internal/assistant/composer/composer_test.go
package composer

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"police-assistant/internal/assistant/memory"
	"police-assistant/internal/assistant/search"
	"police-assistant/internal/common/logger"
	"police-assistant/internal/models"
	"police-assistant/internal/records"
)

type failingProvider struct{}

func (failingProvider) Search(context.Context, string, models.Language) ([]models.SearchResult, error) {
	return nil, errors.New("provider down")
}

type failingStore struct{}

func (failingStore) FindByNumber(context.Context, string) (*models.CaseRecord, error) {
	return nil, errors.New("store down")
}

func (failingStore) VerifyAccess(context.Context, string, string) (bool, error) {
	return false, errors.New("store down")
}

func (failingStore) StatsByLocation(context.Context, string) ([]models.CrimeStat, error) {
	return nil, errors.New("store down")
}

func newTestComposer(t *testing.T) *Composer {
	t.Helper()
	return New(records.NewMemoryStore(), search.NewFixtureProvider(0, 2), logger.NewTestLogger(t))
}

func newTestSession() *memory.Session {
	return memory.NewStore(memory.DefaultLimits()).Get("test", models.LangEnglish)
}

func parsed(in models.Intent, e models.Entities) models.ParsedQuery {
	return models.ParsedQuery{Intent: in, Entities: e, Confidence: 0.9}
}

func TestComposeCaseFound(t *testing.T) {
	c := newTestComposer(t)

	out := c.Compose(context.Background(), newTestSession(),
		parsed(models.IntentFIRStatus, models.Entities{CaseNumber: "001/2024"}),
		models.LangEnglish, "FIR/001/2024 status")

	assert.Contains(t, out, "FIR/001/2024")
	assert.Contains(t, out, "Under Investigation")
	assert.Contains(t, out, "Guntur City Police Station")
	assert.Contains(t, out, "SI Ramesh Kumar")
}

func TestComposeCaseFoundTelugu(t *testing.T) {
	c := newTestComposer(t)

	out := c.Compose(context.Background(), newTestSession(),
		parsed(models.IntentFIRStatus, models.Entities{CaseNumber: "001/2024"}),
		models.LangTelugu, "FIR/001/2024 స్థితి")

	assert.Contains(t, out, "ఎఫ్‌ఐఆర్ సమాచారం")
	assert.Contains(t, out, "FIR/001/2024")
}

func TestComposeCaseNotFound(t *testing.T) {
	c := newTestComposer(t)

	out := c.Compose(context.Background(), newTestSession(),
		parsed(models.IntentFIRStatus, models.Entities{CaseNumber: "999/1999"}),
		models.LangEnglish, "status of FIR 999/1999")

	assert.Contains(t, out, `"999/1999"`)
	assert.Contains(t, out, "couldn't find")
}

func TestComposeCaseNotFoundMentionsPreviousCase(t *testing.T) {
	c := newTestComposer(t)
	sess := newTestSession()
	sess.AddMessage(models.Message{
		ID: "m1", Text: "status of FIR/001/2024", Sender: models.SenderUser,
		Timestamp: time.Now(), Language: models.LangEnglish,
	})

	out := c.Compose(context.Background(), sess,
		parsed(models.IntentFIRStatus, models.Entities{CaseNumber: "999/1999"}),
		models.LangEnglish, "what about FIR 999/1999")

	assert.Contains(t, out, "previously inquired about FIR 001/2024")
}

func TestComposeCaseFoundVerifiesPhone(t *testing.T) {
	c := newTestComposer(t)

	out := c.Compose(context.Background(), newTestSession(),
		parsed(models.IntentFIRStatus, models.Entities{CaseNumber: "001/2024", PhoneNumber: "9876543210"}),
		models.LangEnglish, "FIR/001/2024 status, my number is 9876543210")

	assert.Contains(t, out, "Under Investigation")
	assert.Contains(t, out, "Phone number verified")
}

func TestComposeCaseFoundPhoneMismatch(t *testing.T) {
	c := newTestComposer(t)

	out := c.Compose(context.Background(), newTestSession(),
		parsed(models.IntentFIRStatus, models.Entities{CaseNumber: "001/2024", PhoneNumber: "9000000000"}),
		models.LangEnglish, "FIR/001/2024 status, my number is 9000000000")

	assert.Contains(t, out, "Under Investigation")
	assert.Contains(t, out, "does not match the complainant")
}

func TestComposeCaseStatusAsksForNumber(t *testing.T) {
	c := newTestComposer(t)

	out := c.Compose(context.Background(), newTestSession(),
		parsed(models.IntentFIRStatus, models.Entities{}),
		models.LangEnglish, "what is my case status")

	assert.Contains(t, out, "FIR/XXX/YYYY")
}

func TestComposeCrimeStats(t *testing.T) {
	c := newTestComposer(t)

	out := c.Compose(context.Background(), newTestSession(),
		parsed(models.IntentCrimeStats, models.Entities{Location: "Guntur"}),
		models.LangEnglish, "crime in Guntur")

	assert.Contains(t, out, "crime statistics for Guntur")
	assert.Contains(t, out, "• Theft: 5 cases")
	assert.Contains(t, out, "• Fraud: 2 cases")
	assert.Contains(t, out, "parking areas")
	assert.Contains(t, out, "1930")
}

func TestComposeCrimeStatsGenericTip(t *testing.T) {
	c := newTestComposer(t)

	out := c.Compose(context.Background(), newTestSession(),
		parsed(models.IntentCrimeStats, models.Entities{Location: "Vijayawada"}),
		models.LangEnglish, "crime in Vijayawada")

	assert.Contains(t, out, "Stay alert in crowded areas")
	assert.NotContains(t, out, "parking areas")
}

func TestComposeCrimeStatsUnknownLocationPrompts(t *testing.T) {
	c := newTestComposer(t)

	out := c.Compose(context.Background(), newTestSession(),
		parsed(models.IntentCrimeStats, models.Entities{}),
		models.LangEnglish, "crime statistics")

	assert.Contains(t, out, "specify a city")
	assert.Contains(t, out, "Guntur")
}

func TestComposeGreetingPersonalization(t *testing.T) {
	c := newTestComposer(t)
	sess := newTestSession()

	first := c.Compose(context.Background(), sess, parsed(models.IntentGreeting, models.Entities{}), models.LangEnglish, "hello")
	assert.NotContains(t, first, "Welcome back")

	sess.AddMessage(models.Message{
		ID: "m1", Text: "hello", Sender: models.SenderUser,
		Timestamp: time.Now(), Language: models.LangEnglish,
	})

	second := c.Compose(context.Background(), sess, parsed(models.IntentGreeting, models.Entities{}), models.LangEnglish, "hi again")
	assert.Contains(t, second, "Welcome back")
	assert.Contains(t, second, "2nd query")
}

func TestComposeDefaultWithSearchResult(t *testing.T) {
	c := newTestComposer(t)

	out := c.Compose(context.Background(), newTestSession(),
		parsed(models.IntentGeneralQuery, models.Entities{}),
		models.LangEnglish, "what are the latest rules for cyber crime complaints")

	assert.Contains(t, out, "I found some relevant information")
	assert.Contains(t, out, "📖")
}

func TestComposeContextPrefix(t *testing.T) {
	c := newTestComposer(t)
	sess := newTestSession()
	sess.AddMessage(models.Message{
		ID:   "b1",
		Text: "Crime statistics for Guntur show theft leading with five cases in the last week period.",
		Sender: models.SenderBot, Timestamp: time.Now(), Language: models.LangEnglish,
	})

	out := c.Compose(context.Background(), sess,
		parsed(models.IntentGeneralQuery, models.Entities{}),
		models.LangEnglish, "tell me about that theft situation")

	assert.Contains(t, out, "Based on our previous discussion:")
	assert.Contains(t, out, "theft leading")
}

func TestComposeSearchFailureDegrades(t *testing.T) {
	c := New(records.NewMemoryStore(), failingProvider{}, logger.NewTestLogger(t))

	out := c.Compose(context.Background(), newTestSession(),
		parsed(models.IntentGeneralQuery, models.Entities{}),
		models.LangEnglish, "what are the latest rules for cyber crime complaints")

	assert.NotContains(t, out, "📖")
	assert.Contains(t, out, "police-related queries")
}

func TestComposeStoreFailureDegrades(t *testing.T) {
	c := New(failingStore{}, search.NewFixtureProvider(0, 2), logger.NewTestLogger(t))

	out := c.Compose(context.Background(), newTestSession(),
		parsed(models.IntentFIRStatus, models.Entities{CaseNumber: "001/2024"}),
		models.LangEnglish, "FIR/001/2024 status")

	assert.Contains(t, out, "couldn't find")
}

func TestComposeStaticTemplates(t *testing.T) {
	c := newTestComposer(t)
	sess := newTestSession()
	ctx := context.Background()

	tests := []struct {
		intent models.Intent
		text   string
		expect string
	}{
		{models.IntentHelp, "help", "FIR Services"},
		{models.IntentFileFIR, "how to file fir", "How to File an FIR"},
		{models.IntentEmergency, "emergency", "Police Emergency: 100"},
		{models.IntentPoliceContact, "police station contact", "0863-2323100"},
	}
	for _, tt := range tests {
		out := c.Compose(ctx, sess, parsed(tt.intent, models.Entities{}), models.LangEnglish, tt.text)
		assert.Contains(t, out, tt.expect)
	}
}

func TestOrdinalSuffix(t *testing.T) {
	tests := map[int]string{
		1: "st", 2: "nd", 3: "rd", 4: "th",
		11: "th", 12: "th", 13: "th",
		21: "st", 22: "nd", 23: "rd", 101: "st",
	}
	for n, want := range tests {
		assert.Equal(t, want, ordinalSuffix(n), "n=%d", n)
	}
}
