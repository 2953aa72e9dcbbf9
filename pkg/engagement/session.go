package engagement

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/readscope/pkg/domain"
)

// DefaultSessionTimeout is the inactivity window after which the next
// telemetry sample starts a fresh reading session
const DefaultSessionTimeout = 30 * time.Minute

// SessionStore persists reading sessions
type SessionStore interface {
	SaveSession(ctx context.Context, session domain.Session) error
}

// SessionManager owns the single active reading session. Sessions are never
// closed explicitly, only replaced when the inactivity window elapses.
type SessionManager struct {
	store   SessionStore
	timeout time.Duration
	now     func() time.Time

	mu           sync.Mutex
	currentID    string
	lastActivity time.Time
}

// NewSessionManager creates a session manager, zero timeout picks the default
func NewSessionManager(store SessionStore, timeout time.Duration) *SessionManager {
	if timeout <= 0 {
		timeout = DefaultSessionTimeout
	}
	return &SessionManager{store: store, timeout: timeout, now: time.Now}
}

// GetOrCreate returns the current session id, starting and persisting a new
// session when none exists yet or the previous one went idle past the timeout.
// Every call counts as activity.
func (m *SessionManager) GetOrCreate(ctx context.Context) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	if m.currentID != "" && now.Sub(m.lastActivity) <= m.timeout {
		m.lastActivity = now
		return m.currentID, nil
	}

	id := newSessionID(now)
	if err := m.store.SaveSession(ctx, domain.Session{ID: id, StartedAt: now}); err != nil {
		return "", fmt.Errorf("persist session %s: %w", id, err)
	}
	m.currentID = id
	m.lastActivity = now
	lgr.Printf("[INFO] started reading session %s", id)
	return id, nil
}

// newSessionID builds a unique session id from the start timestamp and a
// short random suffix
func newSessionID(now time.Time) string {
	buf := make([]byte, 4)
	if _, err := rand.Read(buf); err != nil {
		return fmt.Sprintf("session_%d_%08x", now.UnixMilli(), now.UnixNano()&0xffffffff)
	}
	return fmt.Sprintf("session_%d_%s", now.UnixMilli(), hex.EncodeToString(buf))
}
