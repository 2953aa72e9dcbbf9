package repository

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/readscope/pkg/domain"
)

var testThresholds = domain.Thresholds{Seconds: 20, ScrollPct: 50}

func TestEventID(t *testing.T) {
	assert.Equal(t, "session_1_abcd:golang:42", EventID("session_1_abcd", "golang:42"))
}

func TestEventRepository_UpdateReadEvent(t *testing.T) {
	repos, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	base := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)

	t.Run("first heartbeat creates record", func(t *testing.T) {
		sample := domain.ReadSample{
			SessionID:     "s1",
			ThreadID:      "golang:1",
			URL:           "https://example.com/1",
			ActiveMsDelta: 3000,
			MaxScrollPct:  25,
			At:            base,
		}
		require.NoError(t, repos.Event.UpdateReadEvent(ctx, sample, testThresholds))

		event, err := repos.Event.GetReadEvent(ctx, EventID("s1", "golang:1"))
		require.NoError(t, err)
		require.NotNil(t, event)
		assert.Equal(t, int64(3000), event.DwellMs)
		assert.InDelta(t, 25.0, event.MaxScrollPct, 0.001)
		assert.False(t, event.Completed)
		assert.Equal(t, base.Unix(), event.EnterAt.Unix())
	})

	t.Run("dwell accumulates and scroll keeps high-water mark", func(t *testing.T) {
		sample := domain.ReadSample{
			SessionID:     "s1",
			ThreadID:      "golang:1",
			ActiveMsDelta: 5000,
			MaxScrollPct:  60,
			At:            base.Add(10 * time.Second),
		}
		require.NoError(t, repos.Event.UpdateReadEvent(ctx, sample, testThresholds))

		// scroll regresses in the reader, the stored mark must not
		sample.ActiveMsDelta = 2000
		sample.MaxScrollPct = 10
		sample.At = base.Add(20 * time.Second)
		require.NoError(t, repos.Event.UpdateReadEvent(ctx, sample, testThresholds))

		event, err := repos.Event.GetReadEvent(ctx, EventID("s1", "golang:1"))
		require.NoError(t, err)
		require.NotNil(t, event)
		assert.Equal(t, int64(10000), event.DwellMs)
		assert.InDelta(t, 60.0, event.MaxScrollPct, 0.001)
		assert.Equal(t, base.Unix(), event.EnterAt.Unix(), "enter time pinned to first delivery")
	})

	t.Run("completes when both thresholds crossed", func(t *testing.T) {
		sample := domain.ReadSample{
			SessionID:     "s1",
			ThreadID:      "golang:1",
			ActiveMsDelta: 15000, // total now 25000 >= 20s
			MaxScrollPct:  55,
			At:            base.Add(30 * time.Second),
		}
		require.NoError(t, repos.Event.UpdateReadEvent(ctx, sample, testThresholds))

		event, err := repos.Event.GetReadEvent(ctx, EventID("s1", "golang:1"))
		require.NoError(t, err)
		assert.True(t, event.Completed)
	})

	t.Run("completed is one-way", func(t *testing.T) {
		// stricter thresholds no longer met by the stored values
		strict := domain.Thresholds{Seconds: 3600, ScrollPct: 99}
		sample := domain.ReadSample{
			SessionID:     "s1",
			ThreadID:      "golang:1",
			ActiveMsDelta: 100,
			MaxScrollPct:  5,
			At:            base.Add(40 * time.Second),
		}
		require.NoError(t, repos.Event.UpdateReadEvent(ctx, sample, strict))

		event, err := repos.Event.GetReadEvent(ctx, EventID("s1", "golang:1"))
		require.NoError(t, err)
		assert.True(t, event.Completed)
	})

	t.Run("separate sessions get separate events", func(t *testing.T) {
		sample := domain.ReadSample{
			SessionID:     "s2",
			ThreadID:      "golang:1",
			ActiveMsDelta: 1000,
			At:            base.Add(time.Hour),
		}
		require.NoError(t, repos.Event.UpdateReadEvent(ctx, sample, testThresholds))

		event, err := repos.Event.GetReadEvent(ctx, EventID("s2", "golang:1"))
		require.NoError(t, err)
		require.NotNil(t, event)
		assert.Equal(t, int64(1000), event.DwellMs)
	})
}

func TestEventRepository_FinalizeReadEvent(t *testing.T) {
	repos, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	base := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)

	t.Run("close without prior heartbeat creates record", func(t *testing.T) {
		sample := domain.ReadSample{
			SessionID:     "s1",
			ThreadID:      "golang:2",
			ActiveMsDelta: 4000,
			MaxScrollPct:  30,
			At:            base,
		}
		require.NoError(t, repos.Event.FinalizeReadEvent(ctx, sample, testThresholds))

		event, err := repos.Event.GetReadEvent(ctx, EventID("s1", "golang:2"))
		require.NoError(t, err)
		require.NotNil(t, event)
		assert.Equal(t, int64(4000), event.DwellMs)
		assert.False(t, event.Completed)
	})

	t.Run("close merges final interval into existing record", func(t *testing.T) {
		heartbeat := domain.ReadSample{
			SessionID:     "s1",
			ThreadID:      "golang:3",
			ActiveMsDelta: 18000,
			MaxScrollPct:  45,
			At:            base,
		}
		require.NoError(t, repos.Event.UpdateReadEvent(ctx, heartbeat, testThresholds))

		closeSample := domain.ReadSample{
			SessionID:     "s1",
			ThreadID:      "golang:3",
			ActiveMsDelta: 3000,
			MaxScrollPct:  70,
			At:            base.Add(10 * time.Second),
		}
		require.NoError(t, repos.Event.FinalizeReadEvent(ctx, closeSample, testThresholds))

		event, err := repos.Event.GetReadEvent(ctx, EventID("s1", "golang:3"))
		require.NoError(t, err)
		assert.Equal(t, int64(21000), event.DwellMs)
		assert.InDelta(t, 70.0, event.MaxScrollPct, 0.001)
		assert.True(t, event.Completed, "final interval pushed it over both thresholds")
	})
}

func TestEventRepository_GetEventsPage(t *testing.T) {
	repos, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	base := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)

	// two completed, one incomplete, staggered creation times
	samples := []struct {
		thread string
		dwell  int64
		scroll float64
	}{
		{"golang:1", 30000, 90},
		{"golang:2", 1000, 10},
		{"golang:3", 25000, 60},
	}
	for i, s := range samples {
		require.NoError(t, repos.Event.UpdateReadEvent(ctx, domain.ReadSample{
			SessionID:     "s1",
			ThreadID:      s.thread,
			ActiveMsDelta: s.dwell,
			MaxScrollPct:  s.scroll,
			At:            base.Add(time.Duration(i) * time.Minute),
		}, testThresholds))
	}

	t.Run("newest first", func(t *testing.T) {
		events, err := repos.Event.GetEventsPage(ctx, 10, 0, nil)
		require.NoError(t, err)
		require.Len(t, events, 3)
		assert.Equal(t, "golang:3", events[0].ThreadID)
		assert.Equal(t, "golang:1", events[2].ThreadID)
	})

	t.Run("completed only", func(t *testing.T) {
		completed := true
		events, err := repos.Event.GetEventsPage(ctx, 10, 0, &completed)
		require.NoError(t, err)
		assert.Len(t, events, 2)
	})

	t.Run("incomplete only", func(t *testing.T) {
		completed := false
		events, err := repos.Event.GetEventsPage(ctx, 10, 0, &completed)
		require.NoError(t, err)
		require.Len(t, events, 1)
		assert.Equal(t, "golang:2", events[0].ThreadID)
	})

	t.Run("pagination", func(t *testing.T) {
		events, err := repos.Event.GetEventsPage(ctx, 1, 1, nil)
		require.NoError(t, err)
		require.Len(t, events, 1)
		assert.Equal(t, "golang:2", events[0].ThreadID)
	})
}

func TestEventRepository_DeduplicateReadEvents(t *testing.T) {
	repos, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	base := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)

	// three events for golang:1 across sessions, one lone event for golang:2
	duplicates := []struct {
		session string
		dwell   int64
		scroll  float64
	}{
		{"s1", 100, 20},
		{"s2", 200, 40},
		{"s3", 300, 15},
	}
	for i, d := range duplicates {
		require.NoError(t, repos.Event.UpdateReadEvent(ctx, domain.ReadSample{
			SessionID:     d.session,
			ThreadID:      "golang:1",
			ActiveMsDelta: d.dwell,
			MaxScrollPct:  d.scroll,
			At:            base.Add(time.Duration(i) * time.Minute),
		}, testThresholds))
	}
	require.NoError(t, repos.Event.UpdateReadEvent(ctx, domain.ReadSample{
		SessionID:     "s1",
		ThreadID:      "golang:2",
		ActiveMsDelta: 5000,
		MaxScrollPct:  50,
		At:            base,
	}, testThresholds))

	result, err := repos.Event.DeduplicateReadEvents(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Removed)
	assert.Equal(t, 1, result.Threads)

	events, err := repos.Event.GetAllReadEvents(ctx)
	require.NoError(t, err)
	require.Len(t, events, 2)

	var merged *domain.ReadEvent
	for i := range events {
		if events[i].ThreadID == "golang:1" {
			merged = &events[i]
		}
	}
	require.NotNil(t, merged)
	assert.True(t, strings.HasPrefix(merged.ID, "merged_golang:1_"))
	assert.Equal(t, int64(600), merged.DwellMs)
	assert.InDelta(t, 40.0, merged.MaxScrollPct, 0.001)
	assert.False(t, merged.Completed)
	assert.Equal(t, base.Unix(), merged.EnterAt.Unix(), "earliest enter kept")
	assert.Equal(t, base.Add(2*time.Minute).Unix(), merged.LeaveAt.Unix(), "latest leave kept")

	// a second pass finds nothing to merge
	result, err = repos.Event.DeduplicateReadEvents(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, result.Removed)
	assert.Equal(t, 0, result.Threads)
}

func TestEventRepository_GetReadEvent_Missing(t *testing.T) {
	repos, cleanup := setupTestDB(t)
	defer cleanup()

	event, err := repos.Event.GetReadEvent(context.Background(), "nope:nothing")
	require.NoError(t, err)
	assert.Nil(t, event)
}
