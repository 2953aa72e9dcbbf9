package recommend

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"sort"
	"strings"
	"time"

	"github.com/go-pkgz/lgr"
	"golang.org/x/sync/errgroup"

	"github.com/umputun/readscope/pkg/domain"
)

//go:generate moq -out mocks/store.go -pkg mocks -skip-ensure -fmt goimports . Store
//go:generate moq -out mocks/clicks.go -pkg mocks -skip-ensure -fmt goimports . ClickTracker

// Store provides read access to persisted threads, read events and dislikes.
// The engine never mutates any of them.
type Store interface {
	GetAllThreads(ctx context.Context) ([]domain.Thread, error)
	GetAllReadEvents(ctx context.Context) ([]domain.ReadEvent, error)
	GetDislikedThreads(ctx context.Context) ([]domain.DislikedThread, error)
}

// ClickTracker tracks threads already surfaced and clicked from a
// recommendation list
type ClickTracker interface {
	GetClicked(ctx context.Context) (map[string]struct{}, error)
	ClearClicked(ctx context.Context) error
}

// ShuffleFunc permutes n elements through swap, rand.Shuffle compatible
type ShuffleFunc func(n int, swap func(i, j int))

// score weights and thresholds. Author affinity is reserved: no author
// identity is ingested upstream, so the term always contributes zero but
// stays in the formula to keep the weights as observed.
const (
	weightSimilarity = 0.5
	weightFreshness  = 0.3
	weightAffinity   = 0.2

	scoreThreshold   = 0.01
	minScoredResults = 5
	minFinalResults  = 3
	fallbackExtra    = 5

	mixedContentShare = 0.7
	mixedTagShare     = 0.3

	topTagCount = 5
)

// Engine produces personalized thread recommendations from the user's
// reading history. All public methods degrade to an empty result on store
// failures so a broken recommendation path never disturbs engagement
// tracking or ingestion.
type Engine struct {
	store   Store
	clicks  ClickTracker
	now     func() time.Time
	shuffle ShuffleFunc
}

// Option modifies Engine behavior
type Option func(*Engine)

// WithNow overrides the clock, for tests
func WithNow(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// WithShuffle overrides the randomized diversity source, for tests
func WithShuffle(shuffle ShuffleFunc) Option {
	return func(e *Engine) { e.shuffle = shuffle }
}

// NewEngine creates a recommendation engine
func NewEngine(store Store, clicks ClickTracker, opts ...Option) *Engine {
	e := &Engine{
		store:   store,
		clicks:  clicks,
		now:     time.Now,
		shuffle: rand.Shuffle,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// GenerateRecommendations ranks unread threads by content similarity to the
// user's completed reading history, blended with freshness. Returns an empty
// list when the user has no history, no threads are stored, or the store
// fails.
func (e *Engine) GenerateRecommendations(ctx context.Context, limit int, forum string, forceRefresh bool) []domain.ScoredThread {
	recs, err := e.generate(ctx, limit, forum, forceRefresh)
	if err != nil {
		lgr.Printf("[WARN] content recommendations failed: %v", err)
		return []domain.ScoredThread{}
	}
	return recs
}

// GetTagBasedRecommendations ranks unread threads sharing the user's
// most-read tags, newest first. Returns an empty list when no completed
// reads carry tags or the store fails.
func (e *Engine) GetTagBasedRecommendations(ctx context.Context, limit int, forum string, forceRefresh bool) []domain.Thread {
	recs, err := e.tagBased(ctx, limit, forum, forceRefresh)
	if err != nil {
		lgr.Printf("[WARN] tag recommendations failed: %v", err)
		return []domain.Thread{}
	}
	return recs
}

// GetMixedRecommendations is the primary entry point: it blends the content
// ranker (70%) with the tag recommender (30%) into one deduplicated list.
// A forced refresh first clears the clicked-suppression set, making
// previously surfaced threads eligible again.
func (e *Engine) GetMixedRecommendations(ctx context.Context, limit int, forum string, forceRefresh bool) []domain.Thread {
	if forceRefresh {
		if err := e.clicks.ClearClicked(ctx); err != nil {
			lgr.Printf("[WARN] failed to clear clicked recommendations: %v", err)
		}
	}

	var contentRecs []domain.ScoredThread
	var tagRecs []domain.Thread

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		contentRecs = e.GenerateRecommendations(gctx, ceilShare(limit, mixedContentShare), forum, forceRefresh)
		return nil
	})
	g.Go(func() error {
		tagRecs = e.GetTagBasedRecommendations(gctx, ceilShare(limit, mixedTagShare), forum, forceRefresh)
		return nil
	})
	_ = g.Wait() // workers never fail, both paths degrade to empty internally

	combined := make([]domain.Thread, 0, len(contentRecs)+len(tagRecs))
	for _, st := range contentRecs {
		combined = append(combined, st.Thread)
	}
	combined = append(combined, tagRecs...)

	seen := make(map[string]struct{}, len(combined))
	unique := combined[:0]
	for _, t := range combined {
		if _, ok := seen[t.ID]; ok {
			continue
		}
		seen[t.ID] = struct{}{}
		unique = append(unique, t)
	}
	if len(unique) > limit {
		unique = unique[:limit]
	}

	lgr.Printf("[DEBUG] mixed recommendations for %s: %d unique threads (force refresh: %v)", forum, len(unique), forceRefresh)
	return unique
}

func (e *Engine) generate(ctx context.Context, limit int, forum string, forceRefresh bool) ([]domain.ScoredThread, error) {
	events, threads, disliked, err := e.fetchAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(events) == 0 || len(threads) == 0 {
		lgr.Printf("[DEBUG] no reading history or threads, skipping content recommendations")
		return []domain.ScoredThread{}, nil
	}

	clicked, err := e.clicks.GetClicked(ctx)
	if err != nil {
		return nil, fmt.Errorf("get clicked set: %w", err)
	}

	now := e.now()
	history := historyText(events, threads)
	readIDs := readSet(events)
	pool := scoringPool(threads, forum, now)
	if len(pool) == 0 {
		return []domain.ScoredThread{}, nil
	}
	// an empty candidate set after exclusions still reaches the newest-unread
	// fallback below, the exclusions only bind for scored ranking
	candidates := applyExclusions(pool, Exclusions{
		Read:         readIDs,
		Disliked:     dislikedSet(disliked),
		Clicked:      clicked,
		ForceRefresh: forceRefresh,
	})

	scored := make([]domain.ScoredThread, 0, len(candidates))
	for _, t := range candidates {
		similarity := Similarity(history, t.Text())
		freshness := Freshness(publishedOrCreated(&t), now)
		affinity := 0.0 // reserved, no author identity ingested

		scored = append(scored, domain.ScoredThread{
			Thread:            t,
			Score:             weightSimilarity*similarity + weightFreshness*freshness + weightAffinity*affinity,
			ContentSimilarity: similarity,
			Freshness:         freshness,
			AuthorAffinity:    affinity,
		})
	}

	result := aboveThreshold(scored, scoreThreshold)
	if len(result) < minScoredResults {
		// too few high-score threads, keep everything with a positive score
		result = aboveThreshold(scored, 0)
	}
	sort.SliceStable(result, func(i, j int) bool { return result[i].Score > result[j].Score })

	if forceRefresh && len(result) > limit {
		shuffleTail(result, e.shuffle)
	}
	if len(result) > limit {
		result = result[:limit]
	}

	if len(result) < minFinalResults {
		result = e.topUpNewest(result, pool, readIDs, limit)
	}
	return result, nil
}

// topUpNewest pads a thin result with the most recently published unread
// threads, ignoring scores, deduplicated and still capped at limit
func (e *Engine) topUpNewest(result []domain.ScoredThread, pool []domain.Thread, readIDs map[string]struct{}, limit int) []domain.ScoredThread {
	newest := make([]domain.Thread, 0, len(pool))
	for _, t := range pool {
		if _, ok := readIDs[t.ID]; !ok {
			newest = append(newest, t)
		}
	}
	sort.SliceStable(newest, func(i, j int) bool {
		return publishedOrCreated(&newest[i]).After(publishedOrCreated(&newest[j]))
	})
	if len(newest) > fallbackExtra {
		newest = newest[:fallbackExtra]
	}

	seen := make(map[string]struct{}, len(result))
	for _, st := range result {
		seen[st.ID] = struct{}{}
	}
	for _, t := range newest {
		if _, ok := seen[t.ID]; ok {
			continue
		}
		seen[t.ID] = struct{}{}
		result = append(result, domain.ScoredThread{Thread: t})
	}
	if len(result) > limit {
		result = result[:limit]
	}
	return result
}

func (e *Engine) tagBased(ctx context.Context, limit int, forum string, forceRefresh bool) ([]domain.Thread, error) {
	events, threads, disliked, err := e.fetchAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(events) == 0 {
		return []domain.Thread{}, nil
	}

	popular := popularTags(events, threads)
	if len(popular) == 0 {
		return []domain.Thread{}, nil
	}

	clicked, err := e.clicks.GetClicked(ctx)
	if err != nil {
		return nil, fmt.Errorf("get clicked set: %w", err)
	}

	readIDs := readSet(events)
	dislikedIDs := dislikedSet(disliked)

	matching := make([]domain.Thread, 0, len(threads))
	for _, t := range threads {
		if !hasAnyTag(&t, popular) {
			continue
		}
		if _, ok := readIDs[t.ID]; ok {
			continue
		}
		if _, ok := dislikedIDs[t.ID]; ok && !forceRefresh {
			continue
		}
		if _, ok := clicked[t.ID]; ok && !forceRefresh {
			continue
		}
		if forum != domain.ForumAll && t.ForumID != forum {
			continue
		}
		matching = append(matching, t)
	}

	sort.SliceStable(matching, func(i, j int) bool {
		return publishedOrCreated(&matching[i]).After(publishedOrCreated(&matching[j]))
	})

	if forceRefresh && len(matching) > limit {
		shuffleTail(matching, e.shuffle)
	}
	if len(matching) > limit {
		matching = matching[:limit]
	}
	return matching, nil
}

// fetchAll issues the three store reads concurrently and joins before scoring
func (e *Engine) fetchAll(ctx context.Context) (events []domain.ReadEvent, threads []domain.Thread, disliked []domain.DislikedThread, err error) {
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var gerr error
		if events, gerr = e.store.GetAllReadEvents(gctx); gerr != nil {
			return fmt.Errorf("get read events: %w", gerr)
		}
		return nil
	})
	g.Go(func() error {
		var gerr error
		if threads, gerr = e.store.GetAllThreads(gctx); gerr != nil {
			return fmt.Errorf("get threads: %w", gerr)
		}
		return nil
	})
	g.Go(func() error {
		var gerr error
		if disliked, gerr = e.store.GetDislikedThreads(gctx); gerr != nil {
			return fmt.Errorf("get disliked threads: %w", gerr)
		}
		return nil
	})
	if err = g.Wait(); err != nil {
		return nil, nil, nil, err
	}
	return events, threads, disliked, nil
}

// historyText concatenates title+category+tags of every thread the user has
// a completed read event for
func historyText(events []domain.ReadEvent, threads []domain.Thread) string {
	byID := make(map[string]*domain.Thread, len(threads))
	for i := range threads {
		byID[threads[i].ID] = &threads[i]
	}

	var sb strings.Builder
	for _, ev := range events {
		if !ev.Completed {
			continue
		}
		t, ok := byID[ev.ThreadID]
		if !ok {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(t.Text())
	}
	return sb.String()
}

// popularTags counts tag frequency across threads with completed reads and
// returns the top tags by count, ties broken by first-encountered order
func popularTags(events []domain.ReadEvent, threads []domain.Thread) []string {
	byID := make(map[string]*domain.Thread, len(threads))
	for i := range threads {
		byID[threads[i].ID] = &threads[i]
	}

	counts := make(map[string]int)
	order := make([]string, 0)
	for _, ev := range events {
		if !ev.Completed {
			continue
		}
		t, ok := byID[ev.ThreadID]
		if !ok {
			continue
		}
		for _, tag := range t.Tags {
			if _, seen := counts[tag]; !seen {
				order = append(order, tag)
			}
			counts[tag]++
		}
	}

	sort.SliceStable(order, func(i, j int) bool { return counts[order[i]] > counts[order[j]] })
	if len(order) > topTagCount {
		order = order[:topTagCount]
	}
	return order
}

func hasAnyTag(t *domain.Thread, tags []string) bool {
	for _, tag := range t.Tags {
		for _, want := range tags {
			if tag == want {
				return true
			}
		}
	}
	return false
}

func readSet(events []domain.ReadEvent) map[string]struct{} {
	set := make(map[string]struct{}, len(events))
	for _, ev := range events {
		set[ev.ThreadID] = struct{}{}
	}
	return set
}

func dislikedSet(disliked []domain.DislikedThread) map[string]struct{} {
	set := make(map[string]struct{}, len(disliked))
	for _, d := range disliked {
		set[d.ThreadID] = struct{}{}
	}
	return set
}

func aboveThreshold(scored []domain.ScoredThread, threshold float64) []domain.ScoredThread {
	result := make([]domain.ScoredThread, 0, len(scored))
	for _, st := range scored {
		if st.Score > threshold {
			result = append(result, st)
		}
	}
	return result
}

// shuffleTail keeps the top half (ceil) of an ordered slice fixed and
// permutes the rest, trading determinism for discovery variety
func shuffleTail[T any](items []T, shuffle ShuffleFunc) {
	top := (len(items) + 1) / 2
	tail := items[top:]
	shuffle(len(tail), func(i, j int) { tail[i], tail[j] = tail[j], tail[i] })
}

func ceilShare(limit int, share float64) int {
	return int(math.Ceil(float64(limit) * share))
}
