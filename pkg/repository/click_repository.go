package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

// ClickRepository tracks threads already surfaced and clicked from a
// recommendation list. The set suppresses repeats between refreshes and is
// cleared wholesale on a forced refresh.
type ClickRepository struct {
	db *sqlx.DB
}

// NewClickRepository creates a new clicked-recommendation repository
func NewClickRepository(db *sqlx.DB) *ClickRepository {
	return &ClickRepository{db: db}
}

// AddClicked records a thread as clicked from a recommendation list
func (r *ClickRepository) AddClicked(ctx context.Context, threadID string) error {
	query := `INSERT OR IGNORE INTO clicked_recommendations (thread_id, clicked_at) VALUES (?, ?)`
	if _, err := r.db.ExecContext(ctx, query, threadID, time.Now()); err != nil {
		return fmt.Errorf("add clicked recommendation: %w", err)
	}
	return nil
}

// GetClicked returns the set of clicked thread ids
func (r *ClickRepository) GetClicked(ctx context.Context) (map[string]struct{}, error) {
	var ids []string
	if err := r.db.SelectContext(ctx, &ids, "SELECT thread_id FROM clicked_recommendations"); err != nil {
		return nil, fmt.Errorf("get clicked recommendations: %w", err)
	}

	clicked := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		clicked[id] = struct{}{}
	}
	return clicked, nil
}

// ClearClicked empties the clicked set
func (r *ClickRepository) ClearClicked(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM clicked_recommendations"); err != nil {
		return fmt.Errorf("clear clicked recommendations: %w", err)
	}
	return nil
}
