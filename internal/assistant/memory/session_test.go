// internal/assistant/memory/session_test.go
package memory

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"police-assistant/internal/models"
)

func userMsg(text string) models.Message {
	return models.Message{
		ID:        "u-" + text,
		Text:      text,
		Sender:    models.SenderUser,
		Timestamp: time.Now(),
		Language:  models.LangEnglish,
	}
}

func botMsg(text string) models.Message {
	return models.Message{
		ID:        "b-" + text,
		Text:      text,
		Sender:    models.SenderBot,
		Timestamp: time.Now(),
		Language:  models.LangEnglish,
	}
}

func TestAddMessageEvictsOldest(t *testing.T) {
	sess := newSession(DefaultLimits(), models.LangEnglish)

	for i := 1; i <= 25; i++ {
		sess.AddMessage(userMsg(fmt.Sprintf("message number %d", i)))
	}

	cctx := sess.Context()
	require.Len(t, cctx.Messages, 20)
	assert.Equal(t, "message number 6", cctx.Messages[0].Text)
	assert.Equal(t, "message number 25", cctx.Messages[19].Text)
	assert.Equal(t, 25, cctx.SessionData.TotalUserQueries)
}

func TestAddMessageCountsOnlyUserQueries(t *testing.T) {
	sess := newSession(DefaultLimits(), models.LangEnglish)

	sess.AddMessage(userMsg("hello"))
	sess.AddMessage(botMsg("hi, how can I help"))
	sess.AddMessage(userMsg("crime in Guntur"))

	assert.Equal(t, 2, sess.Context().SessionData.TotalUserQueries)
}

func TestProfileLocationIsSticky(t *testing.T) {
	sess := newSession(DefaultLimits(), models.LangEnglish)

	sess.AddMessage(userMsg("crime in Guntur"))
	sess.AddMessage(userMsg("what about Vijayawada"))

	assert.Equal(t, "Guntur", sess.Context().UserProfile.Location)
}

func TestProfileCaseNumbersDeduplicated(t *testing.T) {
	sess := newSession(DefaultLimits(), models.LangEnglish)

	sess.AddMessage(userMsg("status of FIR/001/2024"))
	sess.AddMessage(userMsg("again, FIR/001/2024?"))
	sess.AddMessage(userMsg("also FIR/002/2024"))

	assert.Equal(t, []string{"001/2024", "002/2024"}, sess.Context().UserProfile.PreviousCaseNumbers)
}

func TestProfileTopicTagging(t *testing.T) {
	sess := newSession(DefaultLimits(), models.LangEnglish)

	sess.AddMessage(userMsg("how is safety in my area"))
	sess.AddMessage(userMsg("crime statistics please"))

	assert.Equal(t, []string{"crime_safety"}, sess.Context().UserProfile.CommonQueryTopics)
}

func TestRelevantHistory(t *testing.T) {
	sess := newSession(DefaultLimits(), models.LangEnglish)

	long := "Crime statistics for Guntur show 5 theft cases and 2 fraud cases reported in the last month."
	sess.AddMessage(botMsg(long))
	sess.AddMessage(botMsg("OK."))
	sess.AddMessage(userMsg("crime in Guntur"))

	got := sess.RelevantHistory("tell me about theft again")
	require.Len(t, got, 1)
	assert.Equal(t, long, got[0])
}

func TestRelevantHistoryKeepsLastThree(t *testing.T) {
	sess := newSession(DefaultLimits(), models.LangEnglish)

	for i := 1; i <= 5; i++ {
		sess.AddMessage(botMsg(fmt.Sprintf("Answer %d about theft cases in the city with plenty of detail attached.", i)))
	}

	got := sess.RelevantHistory("theft")
	require.Len(t, got, 3)
	assert.Contains(t, got[0], "Answer 3")
	assert.Contains(t, got[2], "Answer 5")
}

func TestRelevantHistoryTruncatesSnippets(t *testing.T) {
	sess := newSession(DefaultLimits(), models.LangEnglish)

	sess.AddMessage(botMsg("theft " + strings.Repeat("x", 400)))

	got := sess.RelevantHistory("theft report")
	require.Len(t, got, 1)
	assert.True(t, strings.HasSuffix(got[0], "..."))
	assert.Len(t, []rune(got[0]), 203)
}

func TestRelevantHistoryIgnoresShortTokens(t *testing.T) {
	sess := newSession(DefaultLimits(), models.LangEnglish)
	sess.AddMessage(botMsg("A fairly long answer about the city of Guntur and its police stations."))

	// Every query token is under four runes.
	assert.Empty(t, sess.RelevantHistory("is it ok"))
}

func TestShouldReferToPrevious(t *testing.T) {
	sess := newSession(DefaultLimits(), models.LangEnglish)

	assert.True(t, sess.ShouldReferToPrevious("what about that case again"))
	assert.True(t, sess.ShouldReferToPrevious("అదే కేసు గురించి"))
	assert.False(t, sess.ShouldReferToPrevious("a completely new question"))
}

func TestPreferredLanguageFixedAtCreation(t *testing.T) {
	sess := newSession(DefaultLimits(), models.LangTelugu)

	// English-tagged messages never flip a Telugu session.
	sess.AddMessage(userMsg("crime in Guntur"))

	assert.Equal(t, models.LangTelugu, sess.PreferredLanguage())
}

func TestClearPreservesLanguage(t *testing.T) {
	sess := newSession(DefaultLimits(), models.LangTelugu)

	sess.AddMessage(userMsg("FIR/001/2024 in Guntur"))
	sess.Clear()

	cctx := sess.Context()
	assert.Empty(t, cctx.Messages)
	assert.Empty(t, cctx.UserProfile.PreviousCaseNumbers)
	assert.Empty(t, cctx.UserProfile.Location)
	assert.Zero(t, cctx.SessionData.TotalUserQueries)
	assert.Equal(t, models.LangTelugu, cctx.UserProfile.PreferredLanguage)
}

func TestContextIsDefensiveCopy(t *testing.T) {
	sess := newSession(DefaultLimits(), models.LangEnglish)
	sess.AddMessage(userMsg("hello"))

	cctx := sess.Context()
	cctx.Messages[0].Text = "tampered"
	cctx.UserProfile.Location = "Nowhere"

	fresh := sess.Context()
	assert.Equal(t, "hello", fresh.Messages[0].Text)
	assert.Empty(t, fresh.UserProfile.Location)
}

func TestStoreGetCreatesOnce(t *testing.T) {
	store := NewStore(DefaultLimits())

	a := store.Get("s1", models.LangEnglish)
	b := store.Get("s1", models.LangTelugu)

	assert.Same(t, a, b)
	assert.Equal(t, 1, store.Count())
	assert.Equal(t, models.LangEnglish, b.PreferredLanguage())
}

func TestStoreClearUnknownSessionIsNoOp(t *testing.T) {
	store := NewStore(DefaultLimits())
	store.Clear("never-seen")
	assert.Zero(t, store.Count())
}
