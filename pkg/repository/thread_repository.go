package repository

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-pkgz/repeater/v2"
	"github.com/jmoiron/sqlx"

	"github.com/umputun/readscope/pkg/domain"
)

// ThreadRepository handles thread-related database operations
type ThreadRepository struct {
	db *sqlx.DB
}

// NewThreadRepository creates a new thread repository
func NewThreadRepository(db *sqlx.DB) *ThreadRepository {
	return &ThreadRepository{db: db}
}

// dbThread is the database representation of domain.Thread
type dbThread struct {
	ID          string    `db:"thread_id"`
	ForumID     string    `db:"forum_id"`
	URL         string    `db:"url"`
	Title       string    `db:"title"`
	Category    string    `db:"category"`
	Tags        tagsSQL   `db:"tags"`
	PublishedAt time.Time `db:"published_at"`
	IsNew       bool      `db:"is_new"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
	LastSeenAt  time.Time `db:"last_seen_at"`
}

// tagsSQL is a JSON array of tag strings for SQL operations
type tagsSQL []string

// Value implements driver.Valuer for database storage
func (t tagsSQL) Value() (driver.Value, error) {
	if t == nil {
		return "[]", nil
	}
	data, err := json.Marshal(t)
	if err != nil {
		return nil, fmt.Errorf("marshal tags: %w", err)
	}
	return string(data), nil
}

// Scan implements sql.Scanner for database retrieval
func (t *tagsSQL) Scan(value interface{}) error {
	if value == nil {
		*t = nil
		return nil
	}
	var data []byte
	switch v := value.(type) {
	case string:
		data = []byte(v)
	case []byte:
		data = v
	default:
		return fmt.Errorf("unsupported tags type %T", value)
	}
	if err := json.Unmarshal(data, t); err != nil {
		return fmt.Errorf("unmarshal tags: %w", err)
	}
	return nil
}

// UpsertThread inserts a thread or updates its mutable fields. The original
// created_at is preserved on re-ingestion, and is_new never transitions back
// to true once cleared.
func (r *ThreadRepository) UpsertThread(ctx context.Context, thread *domain.Thread) error {
	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))

	now := time.Now()
	dbt := &dbThread{
		ID:          thread.ID,
		ForumID:     thread.ForumID,
		URL:         thread.URL,
		Title:       thread.Title,
		Category:    thread.Category,
		Tags:        tagsSQL(thread.Tags),
		PublishedAt: thread.PublishedAt,
		IsNew:       thread.IsNew,
		CreatedAt:   now,
		UpdatedAt:   now,
		LastSeenAt:  now,
	}
	if dbt.PublishedAt.IsZero() {
		dbt.PublishedAt = now
	}

	return retrier.Do(ctx, func() error {
		query := `
			INSERT INTO threads (
				thread_id, forum_id, url, title, category, tags,
				published_at, is_new, created_at, updated_at, last_seen_at
			) VALUES (
				:thread_id, :forum_id, :url, :title, :category, :tags,
				:published_at, :is_new, :created_at, :updated_at, :last_seen_at
			)
			ON CONFLICT(thread_id) DO UPDATE SET
				forum_id = excluded.forum_id,
				url = excluded.url,
				title = excluded.title,
				category = excluded.category,
				tags = excluded.tags,
				published_at = excluded.published_at,
				is_new = threads.is_new AND excluded.is_new,
				updated_at = excluded.updated_at,
				last_seen_at = excluded.last_seen_at
		`
		if _, err := r.db.NamedExecContext(ctx, query, dbt); err != nil {
			if isLockError(err) {
				return err // retry
			}
			return &criticalError{err: fmt.Errorf("upsert thread: %w", err)}
		}
		return nil
	})
}

// GetThread retrieves a thread by ID
func (r *ThreadRepository) GetThread(ctx context.Context, id string) (*domain.Thread, error) {
	var dbt dbThread
	err := r.db.GetContext(ctx, &dbt, "SELECT * FROM threads WHERE thread_id = ?", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("thread %s not found", id)
		}
		return nil, fmt.Errorf("get thread: %w", err)
	}
	res := toDomainThread(&dbt)
	return &res, nil
}

// ThreadExists checks whether a thread id is already stored
func (r *ThreadRepository) ThreadExists(ctx context.Context, id string) (bool, error) {
	var exists bool
	err := r.db.GetContext(ctx, &exists, "SELECT EXISTS(SELECT 1 FROM threads WHERE thread_id = ?)", id)
	if err != nil {
		return false, fmt.Errorf("check thread exists: %w", err)
	}
	return exists, nil
}

// GetAllThreads retrieves every stored thread
func (r *ThreadRepository) GetAllThreads(ctx context.Context) ([]domain.Thread, error) {
	var dbThreads []dbThread
	err := r.db.SelectContext(ctx, &dbThreads, "SELECT * FROM threads ORDER BY published_at DESC")
	if err != nil {
		return nil, fmt.Errorf("get all threads: %w", err)
	}
	return toDomainThreads(dbThreads), nil
}

// GetThreadsPage retrieves threads with pagination, optionally narrowed to a forum
func (r *ThreadRepository) GetThreadsPage(ctx context.Context, forum string, limit, offset int) ([]domain.Thread, error) {
	query := `SELECT * FROM threads ORDER BY published_at DESC LIMIT ? OFFSET ?`
	args := []interface{}{limit, offset}
	if forum != domain.ForumAll {
		query = `SELECT * FROM threads WHERE forum_id = ? ORDER BY published_at DESC LIMIT ? OFFSET ?`
		args = []interface{}{forum, limit, offset}
	}

	var dbThreads []dbThread
	err := r.db.SelectContext(ctx, &dbThreads, query, args...)
	if err != nil {
		return nil, fmt.Errorf("get threads page: %w", err)
	}
	return toDomainThreads(dbThreads), nil
}

// CountThreads returns the total number of stored threads
func (r *ThreadRepository) CountThreads(ctx context.Context) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM threads"); err != nil {
		return 0, fmt.Errorf("count threads: %w", err)
	}
	return count, nil
}

// CountNewThreads returns the number of threads no reader has opened yet
func (r *ThreadRepository) CountNewThreads(ctx context.Context) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM threads WHERE is_new = 1"); err != nil {
		return 0, fmt.Errorf("count new threads: %w", err)
	}
	return count, nil
}

func toDomainThread(dbt *dbThread) domain.Thread {
	return domain.Thread{
		ID:          dbt.ID,
		ForumID:     dbt.ForumID,
		URL:         dbt.URL,
		Title:       dbt.Title,
		Category:    dbt.Category,
		Tags:        dbt.Tags,
		PublishedAt: dbt.PublishedAt,
		IsNew:       dbt.IsNew,
		CreatedAt:   dbt.CreatedAt,
		UpdatedAt:   dbt.UpdatedAt,
		LastSeenAt:  dbt.LastSeenAt,
	}
}

func toDomainThreads(dbThreads []dbThread) []domain.Thread {
	threads := make([]domain.Thread, len(dbThreads))
	for i := range dbThreads {
		threads[i] = toDomainThread(&dbThreads[i])
	}
	return threads
}
