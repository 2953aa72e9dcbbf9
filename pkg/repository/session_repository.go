package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/umputun/readscope/pkg/domain"
)

// SessionRepository handles session database operations
type SessionRepository struct {
	db *sqlx.DB
}

// NewSessionRepository creates a new session repository
func NewSessionRepository(db *sqlx.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

type dbSession struct {
	ID        string     `db:"session_id"`
	StartedAt time.Time  `db:"started_at"`
	EndedAt   *time.Time `db:"ended_at"`
}

// SaveSession stores a session, replacing a row with the same id
func (r *SessionRepository) SaveSession(ctx context.Context, session domain.Session) error {
	query := `INSERT OR REPLACE INTO sessions (session_id, started_at, ended_at) VALUES (?, ?, ?)`
	if _, err := r.db.ExecContext(ctx, query, session.ID, session.StartedAt, session.EndedAt); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// GetAllSessions retrieves every stored session, oldest first
func (r *SessionRepository) GetAllSessions(ctx context.Context) ([]domain.Session, error) {
	var dbSessions []dbSession
	err := r.db.SelectContext(ctx, &dbSessions, "SELECT * FROM sessions ORDER BY started_at")
	if err != nil {
		return nil, fmt.Errorf("get all sessions: %w", err)
	}

	sessions := make([]domain.Session, len(dbSessions))
	for i, s := range dbSessions {
		sessions[i] = domain.Session{ID: s.ID, StartedAt: s.StartedAt, EndedAt: s.EndedAt}
	}
	return sessions, nil
}
