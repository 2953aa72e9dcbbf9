package recommend

import (
	"time"

	"github.com/umputun/readscope/pkg/domain"
)

const (
	// recencyWindow narrows the candidate pool to recently published threads
	recencyWindow = 30 * 24 * time.Hour
	// minRecentThreads is the pool size below which the recency narrowing is
	// abandoned - recency is advisory, not a hard filter, so low-volume forums
	// still get results
	minRecentThreads = 10
)

// Exclusions holds the id sets removed from the candidate pool. Read threads
// are always excluded; disliked and clicked suppression is lifted on a
// forced refresh.
type Exclusions struct {
	Read         map[string]struct{}
	Disliked     map[string]struct{}
	Clicked      map[string]struct{}
	ForceRefresh bool
}

// FilterCandidates builds the pool of threads eligible for scoring: narrow to
// the recency window (with fallback to the full set), apply the forum
// selector, then drop excluded ids.
func FilterCandidates(threads []domain.Thread, forum string, now time.Time, excl Exclusions) []domain.Thread {
	return applyExclusions(scoringPool(threads, forum, now), excl)
}

// scoringPool narrows threads to the recency window (advisory) and the forum
// selector, before any behavioral exclusions
func scoringPool(threads []domain.Thread, forum string, now time.Time) []domain.Thread {
	pool := recentPool(threads, now)

	if forum != domain.ForumAll {
		narrowed := make([]domain.Thread, 0, len(pool))
		for _, t := range pool {
			if t.ForumID == forum {
				narrowed = append(narrowed, t)
			}
		}
		pool = narrowed
	}
	return pool
}

// applyExclusions drops read, disliked and clicked threads from the pool
func applyExclusions(pool []domain.Thread, excl Exclusions) []domain.Thread {
	candidates := make([]domain.Thread, 0, len(pool))
	for _, t := range pool {
		if _, ok := excl.Read[t.ID]; ok {
			continue
		}
		if _, ok := excl.Disliked[t.ID]; ok && !excl.ForceRefresh {
			continue
		}
		if _, ok := excl.Clicked[t.ID]; ok && !excl.ForceRefresh {
			continue
		}
		candidates = append(candidates, t)
	}
	return candidates
}

// recentPool narrows threads to the recency window, falling back to the whole
// set when too few remain
func recentPool(threads []domain.Thread, now time.Time) []domain.Thread {
	cutoff := now.Add(-recencyWindow)
	recent := make([]domain.Thread, 0, len(threads))
	for _, t := range threads {
		if publishedOrCreated(&t).After(cutoff) {
			recent = append(recent, t)
		}
	}
	if len(recent) < minRecentThreads {
		return threads
	}
	return recent
}

// publishedOrCreated falls back to the bookkeeping timestamp for threads
// ingested without a publication time
func publishedOrCreated(t *domain.Thread) time.Time {
	if t.PublishedAt.IsZero() {
		return t.CreatedAt
	}
	return t.PublishedAt
}
