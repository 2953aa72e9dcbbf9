package domain

import "time"

// Session groups read events produced within one browsing period.
// Sessions are never closed explicitly, only replaced after the
// inactivity window elapses.
type Session struct {
	ID        string     `json:"id"`
	StartedAt time.Time  `json:"started_at"`
	EndedAt   *time.Time `json:"ended_at"`
}
