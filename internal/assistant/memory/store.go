// internal/assistant/memory/store.go
package memory

import (
	"sync"

	"police-assistant/internal/common/metrics"
	"police-assistant/internal/models"
)

// Limits bounds the per-session working memory.
type Limits struct {
	History         int // max messages kept in the log
	RelevantHistory int // max snippets returned by relevance recall
	SnippetLength   int // max runes per recalled snippet
}

// DefaultLimits matches the shipped configuration defaults.
func DefaultLimits() Limits {
	return Limits{History: 20, RelevantHistory: 3, SnippetLength: 200}
}

// Store owns all live sessions, keyed by an opaque session id supplied by
// the transport layer. Safe for concurrent use.
type Store struct {
	mu       sync.RWMutex
	limits   Limits
	sessions map[string]*Session
}

func NewStore(limits Limits) *Store {
	def := DefaultLimits()
	if limits.History <= 0 {
		limits.History = def.History
	}
	if limits.RelevantHistory <= 0 {
		limits.RelevantHistory = def.RelevantHistory
	}
	if limits.SnippetLength <= 0 {
		limits.SnippetLength = def.SnippetLength
	}
	return &Store{
		limits:   limits,
		sessions: make(map[string]*Session),
	}
}

// Get returns the session for id, creating it on first sight. A new
// session starts with lang as the preferred response language.
func (s *Store) Get(id string, lang models.Language) *Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	if sess, ok := s.sessions[id]; ok {
		return sess
	}
	sess := newSession(s.limits, lang)
	s.sessions[id] = sess
	metrics.ActiveSessions.Set(float64(len(s.sessions)))
	return sess
}

// Restore seeds (or replaces) a session from a persisted context snapshot.
func (s *Store) Restore(id string, cctx models.ConversationContext) *Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := newSession(s.limits, cctx.UserProfile.PreferredLanguage)
	sess.cctx = cctx
	s.sessions[id] = sess
	metrics.ActiveSessions.Set(float64(len(s.sessions)))
	return sess
}

// Clear wipes the session's memory but keeps the session alive; the
// preferred language survives the wipe. Clearing an unknown id is a no-op.
func (s *Store) Clear(id string) {
	s.mu.RLock()
	sess, ok := s.sessions[id]
	s.mu.RUnlock()
	if ok {
		sess.Clear()
	}
}

// Has reports whether a live session exists for id.
func (s *Store) Has(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.sessions[id]
	return ok
}

// Count returns the number of live sessions.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
