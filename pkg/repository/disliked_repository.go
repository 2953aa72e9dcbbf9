package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/umputun/readscope/pkg/domain"
)

// DislikedRepository handles disliked-thread markers
type DislikedRepository struct {
	db *sqlx.DB
}

// NewDislikedRepository creates a new disliked-thread repository
func NewDislikedRepository(db *sqlx.DB) *DislikedRepository {
	return &DislikedRepository{db: db}
}

type dbDisliked struct {
	ThreadID  string    `db:"thread_id"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// Add marks a thread as not interesting
func (r *DislikedRepository) Add(ctx context.Context, threadID string) error {
	query := `INSERT INTO disliked_threads (thread_id, created_at, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(thread_id) DO UPDATE SET updated_at = excluded.updated_at`
	now := time.Now()
	if _, err := r.db.ExecContext(ctx, query, threadID, now, now); err != nil {
		return fmt.Errorf("add disliked thread: %w", err)
	}
	return nil
}

// Remove clears the disliked marker for a thread
func (r *DislikedRepository) Remove(ctx context.Context, threadID string) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM disliked_threads WHERE thread_id = ?", threadID); err != nil {
		return fmt.Errorf("remove disliked thread: %w", err)
	}
	return nil
}

// GetAll retrieves all disliked-thread markers
func (r *DislikedRepository) GetAll(ctx context.Context) ([]domain.DislikedThread, error) {
	var rows []dbDisliked
	err := r.db.SelectContext(ctx, &rows, "SELECT * FROM disliked_threads ORDER BY created_at")
	if err != nil {
		return nil, fmt.Errorf("get disliked threads: %w", err)
	}

	disliked := make([]domain.DislikedThread, len(rows))
	for i, d := range rows {
		disliked[i] = domain.DislikedThread{ThreadID: d.ThreadID, CreatedAt: d.CreatedAt, UpdatedAt: d.UpdatedAt}
	}
	return disliked, nil
}

// Count returns the number of disliked threads
func (r *DislikedRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM disliked_threads"); err != nil {
		return 0, fmt.Errorf("count disliked threads: %w", err)
	}
	return count, nil
}
