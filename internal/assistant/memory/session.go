// internal/assistant/memory/session.go
package memory

import (
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"police-assistant/internal/assistant/extract"
	"police-assistant/internal/models"
)

// minRecallMessageRunes filters out short acknowledgements when recalling
// earlier answers.
const minRecallMessageRunes = 50

// minRecallTokenRunes ignores stopword-sized query tokens during recall.
const minRecallTokenRunes = 4

// Session is one user's conversation memory: the bounded message log, the
// derived profile, and the session counters. All methods are safe for
// concurrent use.
type Session struct {
	mu     sync.Mutex
	limits Limits
	cctx   models.ConversationContext
}

func newSession(limits Limits, lang models.Language) *Session {
	if !lang.Valid() {
		lang = models.LangEnglish
	}
	now := time.Now()
	return &Session{
		limits: limits,
		cctx: models.ConversationContext{
			UserProfile: models.UserProfile{PreferredLanguage: lang},
			SessionData: models.SessionData{StartTime: now, LastActivityTime: now},
		},
	}
}

// AddMessage appends one message to the log, evicting the oldest entries
// beyond the history limit. User messages also bump the query counter and
// feed profile extraction; bot messages touch only the log and the
// activity time. The preferred language is fixed at session creation and
// never derived from messages.
func (s *Session) AddMessage(msg models.Message) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cctx.Messages = append(s.cctx.Messages, msg)
	if excess := len(s.cctx.Messages) - s.limits.History; excess > 0 {
		s.cctx.Messages = append([]models.Message(nil), s.cctx.Messages[excess:]...)
	}
	s.cctx.SessionData.LastActivityTime = msg.Timestamp

	if msg.Sender != models.SenderUser {
		return
	}
	s.cctx.SessionData.TotalUserQueries++
	s.absorb(msg.Text)
}

// absorb updates the derived profile from one user utterance. Location is
// first-seen sticky; case numbers and topics are de-duplicated in
// insertion order.
func (s *Session) absorb(text string) {
	if s.cctx.UserProfile.Location == "" {
		if loc := extract.Location(text); loc != "" {
			s.cctx.UserProfile.Location = loc
		}
	}
	if cn := extract.CaseNumber(text); cn != "" && !containsString(s.cctx.UserProfile.PreviousCaseNumbers, cn) {
		s.cctx.UserProfile.PreviousCaseNumbers = append(s.cctx.UserProfile.PreviousCaseNumbers, cn)
	}

	lower := strings.ToLower(text)
	for _, kw := range []string{"crime", "safety", "నేరాలు"} {
		if strings.Contains(lower, kw) {
			if !containsString(s.cctx.UserProfile.CommonQueryTopics, "crime_safety") {
				s.cctx.UserProfile.CommonQueryTopics = append(s.cctx.UserProfile.CommonQueryTopics, "crime_safety")
			}
			break
		}
	}
}

// Context returns a defensive copy of the full conversation context.
// Mutating the copy never touches the session.
func (s *Session) Context() models.ConversationContext {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := s.cctx
	out.Messages = append([]models.Message(nil), s.cctx.Messages...)
	out.UserProfile.PreviousCaseNumbers = append([]string(nil), s.cctx.UserProfile.PreviousCaseNumbers...)
	out.UserProfile.CommonQueryTopics = append([]string(nil), s.cctx.UserProfile.CommonQueryTopics...)
	out.SessionData.ResolvedIssues = append([]string(nil), s.cctx.SessionData.ResolvedIssues...)
	return out
}

// RelevantHistory recalls earlier substantial bot answers that share a
// meaningful token with query, most recent last, truncated to the snippet
// limit. Returns at most the configured number of snippets.
func (s *Session) RelevantHistory(query string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	var tokens []string
	for _, w := range strings.Fields(strings.ToLower(query)) {
		if utf8.RuneCountInString(w) >= minRecallTokenRunes {
			tokens = append(tokens, w)
		}
	}
	if len(tokens) == 0 {
		return nil
	}

	var snippets []string
	for _, msg := range s.cctx.Messages {
		if msg.Sender != models.SenderBot {
			continue
		}
		if utf8.RuneCountInString(msg.Text) <= minRecallMessageRunes {
			continue
		}
		lower := strings.ToLower(msg.Text)
		for _, tok := range tokens {
			if strings.Contains(lower, tok) {
				snippets = append(snippets, truncateRunes(msg.Text, s.limits.SnippetLength))
				break
			}
		}
	}
	if len(snippets) > s.limits.RelevantHistory {
		snippets = snippets[len(snippets)-s.limits.RelevantHistory:]
	}
	return snippets
}

// ShouldReferToPrevious reports whether query points back at an earlier
// exchange.
func (s *Session) ShouldReferToPrevious(query string) bool {
	return extract.HasBackwardReference(query)
}

// Clear resets the log, profile, and counters. Only the preferred
// language survives.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	lang := s.cctx.UserProfile.PreferredLanguage
	now := time.Now()
	s.cctx = models.ConversationContext{
		UserProfile: models.UserProfile{PreferredLanguage: lang},
		SessionData: models.SessionData{StartTime: now, LastActivityTime: now},
	}
}

// PreferredLanguage returns the session's current response language.
func (s *Session) PreferredLanguage() models.Language {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cctx.UserProfile.PreferredLanguage
}

func truncateRunes(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit]) + "..."
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
