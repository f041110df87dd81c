package models

import "time"

// Sender identifies which side of the conversation produced a message.
type Sender string

const (
	SenderUser Sender = "user"
	SenderBot  Sender = "bot"
)

// Message is one exchange in the conversation log. Immutable once created;
// the log keeps insertion order, oldest first.
type Message struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Sender    Sender    `json:"sender"`
	Timestamp time.Time `json:"timestamp"`
	Language  Language  `json:"language"`
	Intent    Intent    `json:"intent,omitempty"`
	Entities  *Entities `json:"entities,omitempty"`
}

// UserProfile is derived incrementally from user messages over a session.
// Location is first-seen sticky; PreviousCaseNumbers and CommonQueryTopics
// are insertion-ordered and de-duplicated.
type UserProfile struct {
	PreferredLanguage   Language `json:"preferredLanguage"`
	Location            string   `json:"location,omitempty"`
	PreviousCaseNumbers []string `json:"previousCaseNumbers,omitempty"`
	CommonQueryTopics   []string `json:"commonQueryTopics,omitempty"`
}

// SessionData tracks per-session counters.
type SessionData struct {
	StartTime        time.Time `json:"startTime"`
	LastActivityTime time.Time `json:"lastActivityTime"`
	TotalUserQueries int       `json:"totalUserQueries"`
	ResolvedIssues   []string  `json:"resolvedIssues,omitempty"`
}

// ConversationContext is the aggregate owning one session's working memory:
// the bounded message log, the derived user profile, and session counters.
type ConversationContext struct {
	Messages    []Message   `json:"messages"`
	UserProfile UserProfile `json:"userProfile"`
	SessionData SessionData `json:"sessionData"`
}

// SearchResult is one supplementary snippet attached to a response.
// Ephemeral, produced per query, never persisted.
type SearchResult struct {
	Title     string  `json:"title"`
	Snippet   string  `json:"snippet"`
	URL       string  `json:"url"`
	Relevance float64 `json:"relevance"`
}
