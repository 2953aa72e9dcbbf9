package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/readscope/pkg/domain"
)

func TestSessionRepository_SaveSession(t *testing.T) {
	repos, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	base := time.Date(2026, 8, 28, 9, 0, 0, 0, time.UTC)

	require.NoError(t, repos.Session.SaveSession(ctx, domain.Session{ID: "session_1_aaaa", StartedAt: base}))
	require.NoError(t, repos.Session.SaveSession(ctx, domain.Session{ID: "session_2_bbbb", StartedAt: base.Add(time.Hour)}))

	sessions, err := repos.Session.GetAllSessions(ctx)
	require.NoError(t, err)
	require.Len(t, sessions, 2)
	assert.Equal(t, "session_1_aaaa", sessions[0].ID, "oldest first")
	assert.Equal(t, "session_2_bbbb", sessions[1].ID)
	assert.Nil(t, sessions[0].EndedAt, "sessions are never closed, only replaced")

	// saving the same id replaces the row
	require.NoError(t, repos.Session.SaveSession(ctx, domain.Session{ID: "session_1_aaaa", StartedAt: base.Add(2 * time.Hour)}))
	sessions, err = repos.Session.GetAllSessions(ctx)
	require.NoError(t, err)
	require.Len(t, sessions, 2)
}
