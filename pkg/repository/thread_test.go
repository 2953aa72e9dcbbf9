package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/readscope/pkg/domain"
)

func TestThreadRepository_UpsertThread(t *testing.T) {
	repos, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	t.Run("insert and retrieve", func(t *testing.T) {
		thread := &domain.Thread{
			ID:          "golang:42",
			ForumID:     "golang",
			URL:         "https://example.com/t/42",
			Title:       "Generics in practice",
			Category:    "language",
			Tags:        []string{"go", "generics"},
			PublishedAt: time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC),
			IsNew:       true,
		}
		require.NoError(t, repos.Thread.UpsertThread(ctx, thread))

		got, err := repos.Thread.GetThread(ctx, "golang:42")
		require.NoError(t, err)
		assert.Equal(t, "Generics in practice", got.Title)
		assert.Equal(t, "golang", got.ForumID)
		assert.Equal(t, []string{"go", "generics"}, got.Tags)
		assert.True(t, got.IsNew)
		assert.False(t, got.CreatedAt.IsZero())
	})

	t.Run("update preserves created_at", func(t *testing.T) {
		thread := makeThread("golang:43", "golang", "original title", time.Now())
		require.NoError(t, repos.Thread.UpsertThread(ctx, thread))

		first, err := repos.Thread.GetThread(ctx, "golang:43")
		require.NoError(t, err)

		time.Sleep(10 * time.Millisecond)
		thread.Title = "updated title"
		require.NoError(t, repos.Thread.UpsertThread(ctx, thread))

		second, err := repos.Thread.GetThread(ctx, "golang:43")
		require.NoError(t, err)
		assert.Equal(t, "updated title", second.Title)
		assert.Equal(t, first.CreatedAt.UnixMilli(), second.CreatedAt.UnixMilli())
		assert.GreaterOrEqual(t, second.UpdatedAt.UnixMilli(), first.UpdatedAt.UnixMilli())
	})

	t.Run("is_new never resurrected", func(t *testing.T) {
		thread := makeThread("golang:44", "golang", "some thread", time.Now())
		require.NoError(t, repos.Thread.UpsertThread(ctx, thread))

		// reader opened it, the flag is cleared
		thread.IsNew = false
		require.NoError(t, repos.Thread.UpsertThread(ctx, thread))

		// a later refresh ingests it as new again, flag must stay cleared
		thread.IsNew = true
		require.NoError(t, repos.Thread.UpsertThread(ctx, thread))

		got, err := repos.Thread.GetThread(ctx, "golang:44")
		require.NoError(t, err)
		assert.False(t, got.IsNew)
	})

	t.Run("zero published_at defaults to now", func(t *testing.T) {
		thread := &domain.Thread{ID: "golang:45", ForumID: "golang", Title: "no date"}
		require.NoError(t, repos.Thread.UpsertThread(ctx, thread))

		got, err := repos.Thread.GetThread(ctx, "golang:45")
		require.NoError(t, err)
		assert.False(t, got.PublishedAt.IsZero())
	})
}

func TestThreadRepository_GetThread_NotFound(t *testing.T) {
	repos, cleanup := setupTestDB(t)
	defer cleanup()

	_, err := repos.Thread.GetThread(context.Background(), "missing:1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestThreadRepository_ThreadExists(t *testing.T) {
	repos, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	require.NoError(t, repos.Thread.UpsertThread(ctx, makeThread("golang:1", "golang", "thread", time.Now())))

	exists, err := repos.Thread.ThreadExists(ctx, "golang:1")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repos.Thread.ThreadExists(ctx, "golang:999")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestThreadRepository_GetThreadsPage(t *testing.T) {
	repos, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	// 5 golang threads and 2 rust threads, staggered publish times
	for i := 0; i < 5; i++ {
		thread := makeThread(fmt.Sprintf("golang:%d", i+1), "golang",
			fmt.Sprintf("go thread %d", i+1), base.Add(time.Duration(i)*time.Hour))
		require.NoError(t, repos.Thread.UpsertThread(ctx, thread))
	}
	for i := 0; i < 2; i++ {
		thread := makeThread(fmt.Sprintf("rust:%d", i+1), "rust",
			fmt.Sprintf("rust thread %d", i+1), base.Add(time.Duration(10+i)*time.Hour))
		require.NoError(t, repos.Thread.UpsertThread(ctx, thread))
	}

	t.Run("all forums newest first", func(t *testing.T) {
		threads, err := repos.Thread.GetThreadsPage(ctx, domain.ForumAll, 3, 0)
		require.NoError(t, err)
		require.Len(t, threads, 3)
		assert.Equal(t, "rust:2", threads[0].ID)
		assert.Equal(t, "rust:1", threads[1].ID)
		assert.Equal(t, "golang:5", threads[2].ID)
	})

	t.Run("forum filter", func(t *testing.T) {
		threads, err := repos.Thread.GetThreadsPage(ctx, "rust", 10, 0)
		require.NoError(t, err)
		require.Len(t, threads, 2)
		for _, th := range threads {
			assert.Equal(t, "rust", th.ForumID)
		}
	})

	t.Run("offset", func(t *testing.T) {
		threads, err := repos.Thread.GetThreadsPage(ctx, "golang", 2, 2)
		require.NoError(t, err)
		require.Len(t, threads, 2)
		assert.Equal(t, "golang:3", threads[0].ID)
		assert.Equal(t, "golang:2", threads[1].ID)
	})

	t.Run("counts", func(t *testing.T) {
		total, err := repos.Thread.CountThreads(ctx)
		require.NoError(t, err)
		assert.Equal(t, 7, total)

		newCount, err := repos.Thread.CountNewThreads(ctx)
		require.NoError(t, err)
		assert.Equal(t, 7, newCount)
	})

	t.Run("get all threads", func(t *testing.T) {
		threads, err := repos.Thread.GetAllThreads(ctx)
		require.NoError(t, err)
		assert.Len(t, threads, 7)
	})
}
