package domain

import "time"

// ReadEvent is the engagement record for one (session, thread) pair.
// DwellMs accumulates active milliseconds only, MaxScrollPct is a monotonic
// high-water mark and Completed is a one-way flag.
type ReadEvent struct {
	ID           string    `json:"id"`
	SessionID    string    `json:"session_id"`
	ThreadID     string    `json:"thread_id"`
	URL          string    `json:"url"`
	EnterAt      time.Time `json:"enter_at"`
	LeaveAt      time.Time `json:"leave_at"`
	DwellMs      int64     `json:"dwell_ms"`
	MaxScrollPct float64   `json:"max_scroll_pct"`
	Completed    bool      `json:"completed"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ReadSample is a single telemetry sample for a (session, thread) pair,
// delivered by the reader on open, heartbeat and close
type ReadSample struct {
	SessionID     string
	ThreadID      string
	URL           string
	ActiveMsDelta int64
	MaxScrollPct  float64
	At            time.Time
}

// Thresholds define when an engagement counts as a completed read:
// both dwell time and scroll depth must cross their threshold
type Thresholds struct {
	Seconds   int     `json:"seconds"`
	ScrollPct float64 `json:"scroll_pct"`
}

// Met reports whether the given dwell and scroll values cross both thresholds
func (t Thresholds) Met(dwellMs int64, maxScrollPct float64) bool {
	return dwellMs >= int64(t.Seconds)*1000 && maxScrollPct >= t.ScrollPct
}

// DedupResult reports the outcome of a read-event deduplication pass
type DedupResult struct {
	Removed int `json:"removed"`
	Threads int `json:"threads"`
}

// Stats holds store-wide counters for the status surface
type Stats struct {
	TotalEvents    int `json:"total_events"`
	TotalThreads   int `json:"total_threads"`
	NewThreads     int `json:"new_threads"`
	TodayEvents    int `json:"today_events"`
	CompletedToday int `json:"completed_today"`
	Disliked       int `json:"disliked"`
}
