package server

import (
	"context"

	"github.com/umputun/readscope/pkg/domain"
	"github.com/umputun/readscope/pkg/repository"
)

// RepositoryStore adapts the repository layer to the Store interface,
// flattening the per-entity repositories into the single API surface
type RepositoryStore struct {
	repos *repository.Repositories
}

// NewRepositoryStore creates a repository-backed store
func NewRepositoryStore(repos *repository.Repositories) *RepositoryStore {
	return &RepositoryStore{repos: repos}
}

// GetThreadsPage returns a page of threads, newest first
func (s *RepositoryStore) GetThreadsPage(ctx context.Context, forum string, limit, offset int) ([]domain.Thread, error) {
	return s.repos.Thread.GetThreadsPage(ctx, forum, limit, offset)
}

// GetEventsPage returns a page of read events, newest first
func (s *RepositoryStore) GetEventsPage(ctx context.Context, limit, offset int, completed *bool) ([]domain.ReadEvent, error) {
	return s.repos.Event.GetEventsPage(ctx, limit, offset, completed)
}

// DeduplicateReadEvents runs the event deduplication pass
func (s *RepositoryStore) DeduplicateReadEvents(ctx context.Context) (domain.DedupResult, error) {
	return s.repos.Event.DeduplicateReadEvents(ctx)
}

// AddDisliked marks a thread as not interesting
func (s *RepositoryStore) AddDisliked(ctx context.Context, threadID string) error {
	return s.repos.Disliked.Add(ctx, threadID)
}

// RemoveDisliked clears the dislike marker
func (s *RepositoryStore) RemoveDisliked(ctx context.Context, threadID string) error {
	return s.repos.Disliked.Remove(ctx, threadID)
}

// AddClicked records a recommendation click
func (s *RepositoryStore) AddClicked(ctx context.Context, threadID string) error {
	return s.repos.Click.AddClicked(ctx, threadID)
}

// GetThresholds returns effective completion thresholds
func (s *RepositoryStore) GetThresholds(ctx context.Context, defaults domain.Thresholds) (domain.Thresholds, error) {
	return s.repos.Setting.GetThresholds(ctx, defaults)
}

// SetThresholds stores completion threshold overrides
func (s *RepositoryStore) SetThresholds(ctx context.Context, th domain.Thresholds) error {
	return s.repos.Setting.SetThresholds(ctx, th)
}

// Stats collects store-wide counters
func (s *RepositoryStore) Stats(ctx context.Context) (domain.Stats, error) {
	return s.repos.Stats(ctx)
}

// GetAllSessions returns every stored session, oldest first
func (s *RepositoryStore) GetAllSessions(ctx context.Context) ([]domain.Session, error) {
	return s.repos.Session.GetAllSessions(ctx)
}

// ClearReadingData wipes read events and sessions, keeping threads and
// preference markers
func (s *RepositoryStore) ClearReadingData(ctx context.Context) error {
	return s.repos.ClearReadingData(ctx)
}
