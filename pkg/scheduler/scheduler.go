package scheduler

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-pkgz/lgr"
	"golang.org/x/sync/errgroup"

	"github.com/umputun/readscope/pkg/domain"
	"github.com/umputun/readscope/pkg/source"
)

//go:generate moq -out mocks/scheduler.go -pkg mocks -skip-ensure -fmt goimports . ThreadStore Fetcher Recommender

// ThreadStore persists ingested threads
type ThreadStore interface {
	UpsertThread(ctx context.Context, thread *domain.Thread) error
	ThreadExists(ctx context.Context, id string) (bool, error)
}

// Fetcher pulls the current thread listing of a forum
type Fetcher interface {
	Fetch(ctx context.Context, forum source.Forum) ([]domain.Thread, error)
}

// Recommender is warmed after a refresh cycle that found new threads
type Recommender interface {
	GetMixedRecommendations(ctx context.Context, limit int, forum string, forceRefresh bool) []domain.Thread
}

// Config holds scheduler configuration
type Config struct {
	RefreshInterval time.Duration
	MaxWorkers      int
	WarmLimit       int // recommendation count requested when warming after new threads
}

// Scheduler periodically pulls configured forums and stores their threads.
// First-seen threads are flagged new; a cycle that found any warms the mixed
// recommendation path so the next reader request is served from fresh ranking.
type Scheduler struct {
	store       ThreadStore
	fetcher     Fetcher
	recommender Recommender
	forums      []source.Forum

	refreshInterval time.Duration
	maxWorkers      int
	warmLimit       int

	wg     sync.WaitGroup
	cancel context.CancelFunc
}

// NewScheduler creates a scheduler instance
func NewScheduler(store ThreadStore, fetcher Fetcher, recommender Recommender, forums []source.Forum, cfg Config) *Scheduler {
	if cfg.RefreshInterval == 0 {
		cfg.RefreshInterval = 30 * time.Minute
	}
	if cfg.MaxWorkers == 0 {
		cfg.MaxWorkers = 5
	}
	if cfg.WarmLimit == 0 {
		cfg.WarmLimit = 10
	}

	return &Scheduler{
		store:           store,
		fetcher:         fetcher,
		recommender:     recommender,
		forums:          forums,
		refreshInterval: cfg.RefreshInterval,
		maxWorkers:      cfg.MaxWorkers,
		warmLimit:       cfg.WarmLimit,
	}
}

// Start begins the periodic refresh loop
func (s *Scheduler) Start(ctx context.Context) {
	ctx, s.cancel = context.WithCancel(ctx)

	s.wg.Add(1)
	go s.refreshWorker(ctx)

	lgr.Printf("[INFO] scheduler started with refresh interval %v, %d workers, %d forums",
		s.refreshInterval, s.maxWorkers, len(s.forums))
}

// Stop gracefully stops the scheduler
func (s *Scheduler) Stop() {
	lgr.Printf("[INFO] stopping scheduler...")
	if s.cancel != nil {
		s.cancel()
	}
	s.wg.Wait()
	lgr.Printf("[INFO] scheduler stopped")
}

// refreshWorker runs a refresh cycle immediately and then on every tick
func (s *Scheduler) refreshWorker(ctx context.Context) {
	defer s.wg.Done()

	ticker := time.NewTicker(s.refreshInterval)
	defer ticker.Stop()

	s.Refresh(ctx)

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Refresh(ctx)
		}
	}
}

// Refresh pulls every configured forum once, concurrently up to the worker
// limit. A failing forum is logged and skipped, it never aborts the cycle.
func (s *Scheduler) Refresh(ctx context.Context) {
	if len(s.forums) == 0 {
		lgr.Printf("[WARN] no forums configured, nothing to refresh")
		return
	}

	lgr.Printf("[INFO] refreshing %d forums", len(s.forums))

	var newTotal atomic.Int64
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.maxWorkers)

	for _, f := range s.forums {
		g.Go(func() error {
			n, err := s.refreshForum(gctx, f)
			if err != nil {
				lgr.Printf("[ERROR] failed to refresh forum %s: %v", f.ID, err)
				return nil
			}
			newTotal.Add(int64(n))
			return nil
		})
	}
	_ = g.Wait() // per-forum errors already logged

	lgr.Printf("[INFO] refresh completed, %d new threads", newTotal.Load())
	if newTotal.Load() > 0 && s.recommender != nil {
		recs := s.recommender.GetMixedRecommendations(ctx, s.warmLimit, domain.ForumAll, false)
		lgr.Printf("[INFO] warmed recommendations after refresh, %d threads ranked", len(recs))
	}
}

// refreshForum fetches and stores one forum's listing, returns the number of
// first-seen threads
func (s *Scheduler) refreshForum(ctx context.Context, forum source.Forum) (int, error) {
	lgr.Printf("[DEBUG] refreshing forum %s from %s", forum.ID, forum.FeedURL)

	threads, err := s.fetcher.Fetch(ctx, forum)
	if err != nil {
		return 0, err
	}

	newCount := 0
	for i := range threads {
		exists, err := s.store.ThreadExists(ctx, threads[i].ID)
		if err != nil {
			lgr.Printf("[ERROR] failed to check thread %s: %v", threads[i].ID, err)
			continue
		}

		// the upsert never resurrects the flag on threads a reader opened
		threads[i].IsNew = true
		if err := s.store.UpsertThread(ctx, &threads[i]); err != nil {
			lgr.Printf("[ERROR] failed to store thread %s: %v", threads[i].ID, err)
			continue
		}
		if !exists {
			newCount++
		}
	}

	if newCount > 0 {
		lgr.Printf("[INFO] forum %s: %d new threads out of %d fetched", forum.ID, newCount, len(threads))
	}
	return newCount, nil
}
