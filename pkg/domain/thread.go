package domain

import (
	"strings"
	"time"
)

// ForumAll is the forum selector matching threads from every forum
const ForumAll = "all"

// Thread represents a forum topic, the unit of recommendation.
// ID is globally unique and namespaced by forum, e.g. "linux.do:12345".
type Thread struct {
	ID          string    `json:"id"`
	ForumID     string    `json:"forum_id"`
	URL         string    `json:"url"`
	Title       string    `json:"title"`
	Category    string    `json:"category,omitempty"`
	Tags        []string  `json:"tags,omitempty"`
	PublishedAt time.Time `json:"published_at"`
	IsNew       bool      `json:"is_new"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	LastSeenAt  time.Time `json:"last_seen_at"`
}

// Text returns the thread text used for lexical similarity scoring,
// title + category + tags joined with spaces
func (t *Thread) Text() string {
	parts := make([]string, 0, 2+len(t.Tags))
	parts = append(parts, t.Title, t.Category)
	parts = append(parts, t.Tags...)
	return strings.Join(parts, " ")
}

// ScoredThread is a thread with its recommendation score breakdown
type ScoredThread struct {
	Thread
	Score             float64 `json:"score"`
	ContentSimilarity float64 `json:"content_similarity"`
	Freshness         float64 `json:"freshness"`
	AuthorAffinity    float64 `json:"author_affinity"`
}

// DislikedThread marks a thread the user is not interested in.
// Presence excludes the thread from ranking unless force-refreshed.
type DislikedThread struct {
	ThreadID  string    `json:"thread_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Forum represents a tracked discussion forum
type Forum struct {
	ID        string
	BaseURL   string
	CreatedAt time.Time
}
