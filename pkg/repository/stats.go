package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/umputun/readscope/pkg/domain"
)

// Stats collects store-wide counters for the status surface
func (r *Repositories) Stats(ctx context.Context) (domain.Stats, error) {
	var stats domain.Stats

	if err := r.DB.GetContext(ctx, &stats.TotalEvents, "SELECT COUNT(*) FROM read_events"); err != nil {
		return domain.Stats{}, fmt.Errorf("count events: %w", err)
	}
	if err := r.DB.GetContext(ctx, &stats.TotalThreads, "SELECT COUNT(*) FROM threads"); err != nil {
		return domain.Stats{}, fmt.Errorf("count threads: %w", err)
	}
	if err := r.DB.GetContext(ctx, &stats.NewThreads, "SELECT COUNT(*) FROM threads WHERE is_new = 1"); err != nil {
		return domain.Stats{}, fmt.Errorf("count new threads: %w", err)
	}
	if err := r.DB.GetContext(ctx, &stats.Disliked, "SELECT COUNT(*) FROM disliked_threads"); err != nil {
		return domain.Stats{}, fmt.Errorf("count disliked: %w", err)
	}

	now := time.Now()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	if err := r.DB.GetContext(ctx, &stats.TodayEvents,
		"SELECT COUNT(*) FROM read_events WHERE created_at >= ?", startOfDay); err != nil {
		return domain.Stats{}, fmt.Errorf("count today events: %w", err)
	}
	if err := r.DB.GetContext(ctx, &stats.CompletedToday,
		"SELECT COUNT(*) FROM read_events WHERE created_at >= ? AND completed = 1", startOfDay); err != nil {
		return domain.Stats{}, fmt.Errorf("count completed today: %w", err)
	}

	return stats, nil
}

// ClearReadingData removes read events and sessions, keeping ingested threads
// and preference markers intact
func (r *Repositories) ClearReadingData(ctx context.Context) error {
	for _, table := range []string{"read_events", "sessions"} {
		if _, err := r.DB.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}
	return nil
}
