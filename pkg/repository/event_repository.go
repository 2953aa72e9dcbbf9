package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/repeater/v2"
	"github.com/jmoiron/sqlx"

	"github.com/umputun/readscope/pkg/domain"
)

// mergeWindow absorbs duplicate/rapid telemetry deliveries: updates landing
// on an event within this window merge into it instead of being treated as
// a fresh interval. Heuristic, not a transactional guarantee.
const mergeWindow = 5 * time.Second

// EventRepository handles read-event database operations
type EventRepository struct {
	db *sqlx.DB
}

// NewEventRepository creates a new read-event repository
func NewEventRepository(db *sqlx.DB) *EventRepository {
	return &EventRepository{db: db}
}

// dbEvent is the database representation of domain.ReadEvent
type dbEvent struct {
	ID           string    `db:"event_id"`
	SessionID    string    `db:"session_id"`
	ThreadID     string    `db:"thread_id"`
	URL          string    `db:"url"`
	EnterAt      time.Time `db:"enter_at"`
	LeaveAt      time.Time `db:"leave_at"`
	DwellMs      int64     `db:"dwell_ms"`
	MaxScrollPct float64   `db:"max_scroll_pct"`
	Completed    bool      `db:"completed"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

// EventID builds the deterministic composite key for a (session, thread) pair
func EventID(sessionID, threadID string) string {
	return sessionID + ":" + threadID
}

// UpdateReadEvent applies a heartbeat sample to the event record for the
// sample's (session, thread) pair, creating the record on first delivery.
// Dwell time accumulates, scroll depth keeps its high-water mark and the
// completed flag transitions one-way once both thresholds are crossed.
func (r *EventRepository) UpdateReadEvent(ctx context.Context, sample domain.ReadSample, th domain.Thresholds) error {
	now := sample.At
	if now.IsZero() {
		now = time.Now()
	}
	eventID := EventID(sample.SessionID, sample.ThreadID)

	existing, err := r.getByID(ctx, eventID)
	if err != nil {
		return err
	}

	if existing != nil && now.Sub(existing.UpdatedAt) < mergeWindow {
		lgr.Printf("[DEBUG] coalescing rapid update for %s, delivered %v after previous", sample.ThreadID, now.Sub(existing.UpdatedAt))
	}

	event := dbEvent{
		ID:           eventID,
		SessionID:    sample.SessionID,
		ThreadID:     sample.ThreadID,
		URL:          sample.URL,
		EnterAt:      now,
		LeaveAt:      now,
		DwellMs:      sample.ActiveMsDelta,
		MaxScrollPct: sample.MaxScrollPct,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if existing != nil {
		event.EnterAt = existing.EnterAt
		event.CreatedAt = existing.CreatedAt
		event.DwellMs = existing.DwellMs + sample.ActiveMsDelta
		event.MaxScrollPct = max(existing.MaxScrollPct, sample.MaxScrollPct)
		event.Completed = existing.Completed
	}
	if th.Met(event.DwellMs, event.MaxScrollPct) {
		event.Completed = true
	}

	return r.put(ctx, &event)
}

// FinalizeReadEvent settles the event at reader close. Update semantics match
// UpdateReadEvent, but a record is guaranteed to exist afterwards so the last
// partial interval is not lost when no heartbeat ever fired.
func (r *EventRepository) FinalizeReadEvent(ctx context.Context, sample domain.ReadSample, th domain.Thresholds) error {
	now := sample.At
	if now.IsZero() {
		now = time.Now()
	}
	eventID := EventID(sample.SessionID, sample.ThreadID)

	existing, err := r.getByID(ctx, eventID)
	if err != nil {
		return err
	}

	event := dbEvent{
		ID:           eventID,
		SessionID:    sample.SessionID,
		ThreadID:     sample.ThreadID,
		URL:          sample.URL,
		EnterAt:      now,
		LeaveAt:      now,
		DwellMs:      sample.ActiveMsDelta,
		MaxScrollPct: sample.MaxScrollPct,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if existing != nil {
		event.EnterAt = existing.EnterAt
		event.CreatedAt = existing.CreatedAt
		event.DwellMs = existing.DwellMs + sample.ActiveMsDelta
		event.MaxScrollPct = max(existing.MaxScrollPct, sample.MaxScrollPct)
		event.Completed = existing.Completed
	}
	if th.Met(event.DwellMs, event.MaxScrollPct) {
		event.Completed = true
	}

	return r.put(ctx, &event)
}

// GetReadEvent retrieves an event by its composite id, nil when missing
func (r *EventRepository) GetReadEvent(ctx context.Context, eventID string) (*domain.ReadEvent, error) {
	dbe, err := r.getByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if dbe == nil {
		return nil, nil
	}
	res := toDomainEvent(dbe)
	return &res, nil
}

// GetAllReadEvents retrieves every stored read event
func (r *EventRepository) GetAllReadEvents(ctx context.Context) ([]domain.ReadEvent, error) {
	var dbEvents []dbEvent
	err := r.db.SelectContext(ctx, &dbEvents, "SELECT * FROM read_events ORDER BY created_at")
	if err != nil {
		return nil, fmt.Errorf("get all read events: %w", err)
	}
	return toDomainEvents(dbEvents), nil
}

// GetEventsPage retrieves read events newest-first with pagination.
// completed narrows to completed (true) or incomplete (false) events when set.
func (r *EventRepository) GetEventsPage(ctx context.Context, limit, offset int, completed *bool) ([]domain.ReadEvent, error) {
	query := `SELECT * FROM read_events ORDER BY created_at DESC LIMIT ? OFFSET ?`
	args := []interface{}{limit, offset}
	if completed != nil {
		query = `SELECT * FROM read_events WHERE completed = ? ORDER BY created_at DESC LIMIT ? OFFSET ?`
		args = []interface{}{*completed, limit, offset}
	}

	var dbEvents []dbEvent
	err := r.db.SelectContext(ctx, &dbEvents, query, args...)
	if err != nil {
		return nil, fmt.Errorf("get events page: %w", err)
	}
	return toDomainEvents(dbEvents), nil
}

// DeduplicateReadEvents collapses multiple events for the same thread into a
// single merged record: earliest enter, latest leave, summed dwell, max scroll,
// completed if any member completed. This is a lossy repair pass - session
// granularity is intentionally discarded for affected threads.
func (r *EventRepository) DeduplicateReadEvents(ctx context.Context) (domain.DedupResult, error) {
	var result domain.DedupResult

	err := inTransaction(ctx, r.db, func(tx *sqlx.Tx) error {
		var events []dbEvent
		if err := tx.SelectContext(ctx, &events, "SELECT * FROM read_events ORDER BY created_at"); err != nil {
			return fmt.Errorf("select read events: %w", err)
		}

		groups := make(map[string][]dbEvent)
		order := make([]string, 0, len(events))
		for _, e := range events {
			if _, ok := groups[e.ThreadID]; !ok {
				order = append(order, e.ThreadID)
			}
			groups[e.ThreadID] = append(groups[e.ThreadID], e)
		}

		for _, threadID := range order {
			group := groups[threadID]
			if len(group) < 2 {
				continue
			}
			sort.SliceStable(group, func(i, j int) bool { return group[i].CreatedAt.Before(group[j].CreatedAt) })

			merged := group[0]
			merged.ID = fmt.Sprintf("merged_%s_%d", threadID, time.Now().UnixMilli())
			merged.LeaveAt = group[len(group)-1].LeaveAt
			merged.UpdatedAt = time.Now()
			merged.DwellMs = 0
			for _, e := range group {
				merged.DwellMs += e.DwellMs
				merged.MaxScrollPct = max(merged.MaxScrollPct, e.MaxScrollPct)
				if e.Completed {
					merged.Completed = true
				}
			}

			ids := make([]string, len(group))
			for i, e := range group {
				ids[i] = e.ID
			}
			delQuery, delArgs, err := sqlx.In("DELETE FROM read_events WHERE event_id IN (?)", ids)
			if err != nil {
				return fmt.Errorf("build delete query: %w", err)
			}
			if _, err := tx.ExecContext(ctx, tx.Rebind(delQuery), delArgs...); err != nil {
				return fmt.Errorf("delete duplicate events: %w", err)
			}
			if err := putTx(ctx, tx, &merged); err != nil {
				return err
			}

			result.Removed += len(group) - 1
			result.Threads++
			lgr.Printf("[INFO] merged %d events for thread %s", len(group), threadID)
		}
		return nil
	})
	if err != nil {
		return domain.DedupResult{}, err
	}

	lgr.Printf("[INFO] deduplication removed %d duplicate events across %d threads", result.Removed, result.Threads)
	return result, nil
}

// getByID loads an event record, nil when absent
func (r *EventRepository) getByID(ctx context.Context, eventID string) (*dbEvent, error) {
	var dbe dbEvent
	err := r.db.GetContext(ctx, &dbe, "SELECT * FROM read_events WHERE event_id = ?", eventID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get read event: %w", err)
	}
	return &dbe, nil
}

// put writes an event record with retry on lock errors
func (r *EventRepository) put(ctx context.Context, event *dbEvent) error {
	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))

	return retrier.Do(ctx, func() error {
		if _, err := r.db.NamedExecContext(ctx, putEventQuery, event); err != nil {
			if isLockError(err) {
				return err // retry
			}
			return &criticalError{err: fmt.Errorf("put read event: %w", err)}
		}
		return nil
	})
}

func putTx(ctx context.Context, tx *sqlx.Tx, event *dbEvent) error {
	if _, err := tx.NamedExecContext(ctx, putEventQuery, event); err != nil {
		return fmt.Errorf("put read event: %w", err)
	}
	return nil
}

const putEventQuery = `
	INSERT INTO read_events (
		event_id, session_id, thread_id, url, enter_at, leave_at,
		dwell_ms, max_scroll_pct, completed, created_at, updated_at
	) VALUES (
		:event_id, :session_id, :thread_id, :url, :enter_at, :leave_at,
		:dwell_ms, :max_scroll_pct, :completed, :created_at, :updated_at
	)
	ON CONFLICT(event_id) DO UPDATE SET
		url = excluded.url,
		leave_at = excluded.leave_at,
		dwell_ms = excluded.dwell_ms,
		max_scroll_pct = excluded.max_scroll_pct,
		completed = excluded.completed,
		updated_at = excluded.updated_at
`

func toDomainEvent(dbe *dbEvent) domain.ReadEvent {
	return domain.ReadEvent{
		ID:           dbe.ID,
		SessionID:    dbe.SessionID,
		ThreadID:     dbe.ThreadID,
		URL:          dbe.URL,
		EnterAt:      dbe.EnterAt,
		LeaveAt:      dbe.LeaveAt,
		DwellMs:      dbe.DwellMs,
		MaxScrollPct: dbe.MaxScrollPct,
		Completed:    dbe.Completed,
		CreatedAt:    dbe.CreatedAt,
		UpdatedAt:    dbe.UpdatedAt,
	}
}

func toDomainEvents(dbEvents []dbEvent) []domain.ReadEvent {
	events := make([]domain.ReadEvent, len(dbEvents))
	for i := range dbEvents {
		events[i] = toDomainEvent(&dbEvents[i])
	}
	return events
}
