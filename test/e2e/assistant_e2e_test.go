// test/e2e/assistant_e2e_test.go
//
// Full-pipeline test: HTTP API over the seeded in-memory record store and
// the fixture search provider at zero latency.
package e2e

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"police-assistant/internal/assistant"
	"police-assistant/internal/assistant/composer"
	"police-assistant/internal/assistant/memory"
	"police-assistant/internal/assistant/search"
	"police-assistant/internal/common/config"
	"police-assistant/internal/common/logger"
	"police-assistant/internal/models"
	"police-assistant/internal/records"
	"police-assistant/internal/server"
)

type chatResponse struct {
	SessionID  string          `json:"sessionId"`
	Reply      string          `json:"reply"`
	Intent     models.Intent   `json:"intent"`
	Confidence float64         `json:"confidence"`
	Entities   models.Entities `json:"entities"`
}

func newPipeline(t *testing.T) *httptest.Server {
	t.Helper()

	log := logger.NewTestLogger(t)
	store := records.NewMemoryStore()
	svc := assistant.NewService(assistant.Options{
		Sessions:   memory.NewStore(memory.DefaultLimits()),
		Composer:   composer.New(store, search.NewFixtureProvider(0, 2), log),
		Complaints: store,
		Logger:     log,
	})
	ts := httptest.NewServer(server.New(svc, store, config.ServerConfig{RequestTimeout: 5000}, log).Handler())
	t.Cleanup(ts.Close)
	return ts
}

func chat(t *testing.T, ts *httptest.Server, sessionID, text, lang string) chatResponse {
	t.Helper()

	body := map[string]string{"sessionId": sessionID, "text": text, "language": lang}
	raw, err := json.Marshal(body)
	require.NoError(t, err)

	resp, err := http.Post(ts.URL+"/api/chat", "application/json", strings.NewReader(string(raw)))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out chatResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func TestConversationFlow(t *testing.T) {
	ts := newPipeline(t)

	greeting := chat(t, ts, "e2e", "hello", "en")
	assert.Equal(t, models.IntentGreeting, greeting.Intent)
	assert.Contains(t, greeting.Reply, "AP Police Buddy")

	status := chat(t, ts, "e2e", "What is the status of FIR/001/2024?", "en")
	assert.Equal(t, models.IntentFIRStatus, status.Intent)
	assert.Equal(t, "001/2024", status.Entities.CaseNumber)
	assert.Contains(t, status.Reply, "Under Investigation")
	assert.Contains(t, status.Reply, "SI Ramesh Kumar")

	stats := chat(t, ts, "e2e", "show me crime in Guntur", "en")
	assert.Equal(t, models.IntentCrimeStats, stats.Intent)
	assert.Equal(t, "Guntur", stats.Entities.Location)
	assert.Contains(t, stats.Reply, "Theft: 5 cases")
	assert.Contains(t, stats.Reply, "parking areas")

	// A later greeting is personalized by the session counter.
	again := chat(t, ts, "e2e", "hello again my friend", "en")
	assert.Contains(t, again.Reply, "Welcome back")
	assert.Contains(t, again.Reply, "4th query")
}

func TestSearchAugmentedQuery(t *testing.T) {
	ts := newPipeline(t)

	resp := chat(t, ts, "e2e", "what are the latest updates on cyber crime in the state", "en")
	assert.Equal(t, models.IntentCrimeStats, resp.Intent)
	assert.Contains(t, resp.Reply, "Latest Information:")
	assert.Contains(t, resp.Reply, "Crime Statistics")
}

func TestTeluguConversation(t *testing.T) {
	ts := newPipeline(t)

	resp := chat(t, ts, "te-session", "నమస్కారం", "te")
	assert.Equal(t, models.IntentGreeting, resp.Intent)
	assert.Contains(t, resp.Reply, "నమస్కారం! AP పోలీస్ బడ్డీకి స్వాగతం")
}

func TestClearSessionResetsMemory(t *testing.T) {
	ts := newPipeline(t)

	chat(t, ts, "wipe", "crime in Guntur", "en")
	chat(t, ts, "wipe", "status of FIR/001/2024", "en")

	resp, err := http.Post(ts.URL+"/api/session/clear", "application/json", strings.NewReader(`{"sessionId":"wipe"}`))
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	greeting := chat(t, ts, "wipe", "hello", "en")
	assert.NotContains(t, greeting.Reply, "Welcome back")
}

func TestComplaintRoundTrip(t *testing.T) {
	ts := newPipeline(t)

	resp, err := http.Post(ts.URL+"/api/complaints", "application/json",
		strings.NewReader(`{"category":"Theft","description":"My scooter was stolen near the bus stand.","location":"Guntur","contact":"9876543210"}`))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var rec models.ComplaintRecord
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&rec))
	assert.True(t, strings.HasPrefix(rec.ID, "COMP/AP/"))
}
