package main

import (
	"context"

	"github.com/umputun/readscope/pkg/domain"
	"github.com/umputun/readscope/pkg/repository"
)

// RecommendStore adapts the per-entity repositories to the recommendation
// engine's store interface
type RecommendStore struct {
	repos *repository.Repositories
}

// NewRecommendStore creates a repository-backed recommendation store
func NewRecommendStore(repos *repository.Repositories) *RecommendStore {
	return &RecommendStore{repos: repos}
}

// GetAllThreads implements recommend.Store
func (s *RecommendStore) GetAllThreads(ctx context.Context) ([]domain.Thread, error) {
	return s.repos.Thread.GetAllThreads(ctx)
}

// GetAllReadEvents implements recommend.Store
func (s *RecommendStore) GetAllReadEvents(ctx context.Context) ([]domain.ReadEvent, error) {
	return s.repos.Event.GetAllReadEvents(ctx)
}

// GetDislikedThreads implements recommend.Store
func (s *RecommendStore) GetDislikedThreads(ctx context.Context) ([]domain.DislikedThread, error) {
	return s.repos.Disliked.GetAll(ctx)
}
