package engagement

import (
	"context"
	"fmt"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/readscope/pkg/domain"
)

//go:generate moq -out mocks/engagement.go -pkg mocks -skip-ensure -fmt goimports . ThreadStore EventStore ThresholdSource Sessions SessionStore

// Kind identifies a reader telemetry command
type Kind string

// reader telemetry command kinds
const (
	KindOpen      Kind = "open"      // a thread was opened in the reader
	KindHeartbeat Kind = "heartbeat" // periodic activity sample while reading
	KindClose     Kind = "close"     // the reader left the thread
)

// ParseKind maps a reader event name to a command kind
func ParseKind(s string) (Kind, error) {
	switch k := Kind(s); k {
	case KindOpen, KindHeartbeat, KindClose:
		return k, nil
	}
	return "", fmt.Errorf("unknown reader event %q", s)
}

// Command is a tagged reader telemetry message. Open carries full thread
// metadata in Thread; heartbeat and close carry the activity sample fields.
type Command struct {
	Kind          Kind
	Thread        domain.Thread // open only
	ThreadID      string
	URL           string
	ActiveMsDelta int64
	MaxScrollPct  float64
}

// ThreadStore persists thread metadata delivered with open commands
type ThreadStore interface {
	UpsertThread(ctx context.Context, thread *domain.Thread) error
}

// EventStore applies activity samples to read-event records
type EventStore interface {
	UpdateReadEvent(ctx context.Context, sample domain.ReadSample, th domain.Thresholds) error
	FinalizeReadEvent(ctx context.Context, sample domain.ReadSample, th domain.Thresholds) error
}

// ThresholdSource resolves the effective completion thresholds, honoring
// user overrides stored in settings
type ThresholdSource interface {
	GetThresholds(ctx context.Context, defaults domain.Thresholds) (domain.Thresholds, error)
}

// Sessions provides the active reading session id
type Sessions interface {
	GetOrCreate(ctx context.Context) (string, error)
}

// Tracker dispatches reader telemetry commands to the store. Unlike the
// recommendation side, errors here always propagate to the caller - silently
// dropped telemetry would corrupt engagement history.
type Tracker struct {
	threads    ThreadStore
	events     EventStore
	thresholds ThresholdSource
	sessions   Sessions
	defaults   domain.Thresholds
}

// NewTracker creates an engagement tracker
func NewTracker(threads ThreadStore, events EventStore, thresholds ThresholdSource, sessions Sessions, defaults domain.Thresholds) *Tracker {
	return &Tracker{threads: threads, events: events, thresholds: thresholds, sessions: sessions, defaults: defaults}
}

// Handle routes a telemetry command by its kind
func (t *Tracker) Handle(ctx context.Context, cmd Command) error {
	switch cmd.Kind {
	case KindOpen:
		return t.handleOpen(ctx, cmd)
	case KindHeartbeat:
		return t.handleSample(ctx, cmd, t.events.UpdateReadEvent)
	case KindClose:
		return t.handleSample(ctx, cmd, t.events.FinalizeReadEvent)
	}
	return fmt.Errorf("unknown command kind %q", cmd.Kind)
}

// handleOpen registers the opened thread's metadata and clears its new flag,
// the user has seen it now
func (t *Tracker) handleOpen(ctx context.Context, cmd Command) error {
	if cmd.Thread.ID == "" {
		return fmt.Errorf("open command without thread id")
	}

	thread := cmd.Thread
	thread.IsNew = false
	if err := t.threads.UpsertThread(ctx, &thread); err != nil {
		return fmt.Errorf("register opened thread %s: %w", thread.ID, err)
	}
	lgr.Printf("[DEBUG] thread %s opened in reader", thread.ID)
	return nil
}

// handleSample resolves the session and thresholds, then applies the activity
// sample. Thresholds are read per sample so a settings change takes effect on
// the next delivery, not the next restart.
func (t *Tracker) handleSample(ctx context.Context, cmd Command,
	apply func(context.Context, domain.ReadSample, domain.Thresholds) error) error {

	if cmd.ThreadID == "" {
		return fmt.Errorf("%s command without thread id", cmd.Kind)
	}

	th, err := t.thresholds.GetThresholds(ctx, t.defaults)
	if err != nil {
		return fmt.Errorf("resolve thresholds: %w", err)
	}
	sessionID, err := t.sessions.GetOrCreate(ctx)
	if err != nil {
		return fmt.Errorf("resolve session: %w", err)
	}

	sample := domain.ReadSample{
		SessionID:     sessionID,
		ThreadID:      cmd.ThreadID,
		URL:           cmd.URL,
		ActiveMsDelta: cmd.ActiveMsDelta,
		MaxScrollPct:  cmd.MaxScrollPct,
	}
	if err := apply(ctx, sample, th); err != nil {
		return fmt.Errorf("apply %s sample for %s: %w", cmd.Kind, cmd.ThreadID, err)
	}
	return nil
}
