package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/readscope/pkg/domain"
	"github.com/umputun/readscope/pkg/engagement"
	"github.com/umputun/readscope/server/mocks"
)

func TestServer_readerEventHandler(t *testing.T) {
	t.Run("open with thread payload", func(t *testing.T) {
		telemetry := &mocks.TelemetryMock{
			HandleFunc: func(ctx context.Context, cmd engagement.Command) error { return nil },
		}
		srv := testServer(&mocks.StoreMock{}, &mocks.RecommenderMock{}, telemetry)

		body := `{"thread": {"id": "golang:42", "forum_id": "golang", "url": "https://example.com/42",
			"title": "Generics in practice", "tags": ["go", "generics"]}, "url": "https://example.com/42"}`
		req := httptest.NewRequest("POST", "/api/v1/reader/open", strings.NewReader(body))
		w := httptest.NewRecorder()
		srv.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		require.Len(t, telemetry.HandleCalls(), 1)
		cmd := telemetry.HandleCalls()[0].Cmd
		assert.Equal(t, engagement.KindOpen, cmd.Kind)
		assert.Equal(t, "golang:42", cmd.ThreadID, "thread id filled from payload")
		assert.Equal(t, "golang:42", cmd.Thread.ID)
		assert.Equal(t, "golang", cmd.Thread.ForumID)
		assert.Equal(t, []string{"go", "generics"}, cmd.Thread.Tags)
	})

	t.Run("heartbeat with metrics", func(t *testing.T) {
		telemetry := &mocks.TelemetryMock{
			HandleFunc: func(ctx context.Context, cmd engagement.Command) error { return nil },
		}
		srv := testServer(&mocks.StoreMock{}, &mocks.RecommenderMock{}, telemetry)

		body := `{"thread_id": "golang:42", "url": "https://example.com/42", "active_ms_delta": 5000, "max_scroll_pct": 65}`
		req := httptest.NewRequest("POST", "/api/v1/reader/heartbeat", strings.NewReader(body))
		w := httptest.NewRecorder()
		srv.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		require.Len(t, telemetry.HandleCalls(), 1)
		cmd := telemetry.HandleCalls()[0].Cmd
		assert.Equal(t, engagement.KindHeartbeat, cmd.Kind)
		assert.Equal(t, "golang:42", cmd.ThreadID)
		assert.Equal(t, int64(5000), cmd.ActiveMsDelta)
		assert.InDelta(t, 65.0, cmd.MaxScrollPct, 0.001)
	})

	t.Run("close", func(t *testing.T) {
		telemetry := &mocks.TelemetryMock{
			HandleFunc: func(ctx context.Context, cmd engagement.Command) error { return nil },
		}
		srv := testServer(&mocks.StoreMock{}, &mocks.RecommenderMock{}, telemetry)

		body := `{"thread_id": "golang:42", "active_ms_delta": 1200, "max_scroll_pct": 90}`
		req := httptest.NewRequest("POST", "/api/v1/reader/close", strings.NewReader(body))
		w := httptest.NewRecorder()
		srv.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		require.Len(t, telemetry.HandleCalls(), 1)
		assert.Equal(t, engagement.KindClose, telemetry.HandleCalls()[0].Cmd.Kind)
	})

	t.Run("unknown event kind", func(t *testing.T) {
		telemetry := &mocks.TelemetryMock{
			HandleFunc: func(ctx context.Context, cmd engagement.Command) error { return nil },
		}
		srv := testServer(&mocks.StoreMock{}, &mocks.RecommenderMock{}, telemetry)

		req := httptest.NewRequest("POST", "/api/v1/reader/bogus", strings.NewReader(`{}`))
		w := httptest.NewRecorder()
		srv.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Empty(t, telemetry.HandleCalls())
	})

	t.Run("invalid body", func(t *testing.T) {
		telemetry := &mocks.TelemetryMock{
			HandleFunc: func(ctx context.Context, cmd engagement.Command) error { return nil },
		}
		srv := testServer(&mocks.StoreMock{}, &mocks.RecommenderMock{}, telemetry)

		req := httptest.NewRequest("POST", "/api/v1/reader/open", strings.NewReader("not json"))
		w := httptest.NewRecorder()
		srv.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Empty(t, telemetry.HandleCalls())
	})

	t.Run("handler failure", func(t *testing.T) {
		telemetry := &mocks.TelemetryMock{
			HandleFunc: func(ctx context.Context, cmd engagement.Command) error {
				return fmt.Errorf("store unavailable")
			},
		}
		srv := testServer(&mocks.StoreMock{}, &mocks.RecommenderMock{}, telemetry)

		body := `{"thread_id": "golang:42", "active_ms_delta": 100}`
		req := httptest.NewRequest("POST", "/api/v1/reader/heartbeat", strings.NewReader(body))
		w := httptest.NewRecorder()
		srv.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestServer_mixedRecommendationsHandler(t *testing.T) {
	recommender := &mocks.RecommenderMock{
		GetMixedRecommendationsFunc: func(ctx context.Context, limit int, forum string, forceRefresh bool) []domain.Thread {
			return []domain.Thread{{ID: "golang:1", Title: "Go 1.25 released"}}
		},
	}
	srv := testServer(&mocks.StoreMock{}, recommender, &mocks.TelemetryMock{})

	t.Run("defaults", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/v1/recommendations", http.NoBody)
		w := httptest.NewRecorder()
		srv.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		calls := recommender.GetMixedRecommendationsCalls()
		require.Len(t, calls, 1)
		assert.Equal(t, 10, calls[0].Limit)
		assert.Equal(t, domain.ForumAll, calls[0].Forum)
		assert.False(t, calls[0].ForceRefresh)

		var resp struct {
			Threads []domain.Thread `json:"threads"`
			Count   int             `json:"count"`
		}
		err := json.Unmarshal(w.Body.Bytes(), &resp)
		require.NoError(t, err)
		assert.Equal(t, 1, resp.Count)
		assert.Equal(t, "golang:1", resp.Threads[0].ID)
	})

	t.Run("query params", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/v1/recommendations?limit=5&forum=golang&refresh=true", http.NoBody)
		w := httptest.NewRecorder()
		srv.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		calls := recommender.GetMixedRecommendationsCalls()
		last := calls[len(calls)-1]
		assert.Equal(t, 5, last.Limit)
		assert.Equal(t, "golang", last.Forum)
		assert.True(t, last.ForceRefresh)
	})

	t.Run("bad limit falls back to default", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/v1/recommendations?limit=banana", http.NoBody)
		w := httptest.NewRecorder()
		srv.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		calls := recommender.GetMixedRecommendationsCalls()
		assert.Equal(t, 10, calls[len(calls)-1].Limit)
	})
}

func TestServer_contentRecommendationsHandler(t *testing.T) {
	recommender := &mocks.RecommenderMock{
		GenerateRecommendationsFunc: func(ctx context.Context, limit int, forum string, forceRefresh bool) []domain.ScoredThread {
			return []domain.ScoredThread{
				{Thread: domain.Thread{ID: "golang:1"}, Score: 0.42, ContentSimilarity: 0.6, Freshness: 0.3},
			}
		},
	}
	srv := testServer(&mocks.StoreMock{}, recommender, &mocks.TelemetryMock{})

	req := httptest.NewRequest("GET", "/api/v1/recommendations/content?limit=3", http.NoBody)
	w := httptest.NewRecorder()
	srv.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	require.Len(t, recommender.GenerateRecommendationsCalls(), 1)
	assert.Equal(t, 3, recommender.GenerateRecommendationsCalls()[0].Limit)

	var resp struct {
		Threads []domain.ScoredThread `json:"threads"`
		Count   int                   `json:"count"`
	}
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	require.Equal(t, 1, resp.Count)
	assert.InDelta(t, 0.42, resp.Threads[0].Score, 0.001)
	assert.InDelta(t, 0.6, resp.Threads[0].ContentSimilarity, 0.001)
}

func TestServer_tagRecommendationsHandler(t *testing.T) {
	recommender := &mocks.RecommenderMock{
		GetTagBasedRecommendationsFunc: func(ctx context.Context, limit int, forum string, forceRefresh bool) []domain.Thread {
			return []domain.Thread{{ID: "rust:7"}, {ID: "rust:9"}}
		},
	}
	srv := testServer(&mocks.StoreMock{}, recommender, &mocks.TelemetryMock{})

	req := httptest.NewRequest("GET", "/api/v1/recommendations/tags?forum=rust", http.NoBody)
	w := httptest.NewRecorder()
	srv.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	require.Len(t, recommender.GetTagBasedRecommendationsCalls(), 1)
	assert.Equal(t, "rust", recommender.GetTagBasedRecommendationsCalls()[0].Forum)

	var resp struct {
		Count int `json:"count"`
	}
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Count)
}

func TestServer_clickedHandler(t *testing.T) {
	t.Run("records click", func(t *testing.T) {
		store := &mocks.StoreMock{
			AddClickedFunc: func(ctx context.Context, threadID string) error { return nil },
		}
		srv := testServer(store, &mocks.RecommenderMock{}, &mocks.TelemetryMock{})

		req := httptest.NewRequest("POST", "/api/v1/recommendations/golang:42/clicked", http.NoBody)
		w := httptest.NewRecorder()
		srv.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		require.Len(t, store.AddClickedCalls(), 1)
		assert.Equal(t, "golang:42", store.AddClickedCalls()[0].ThreadID)
	})

	t.Run("store failure", func(t *testing.T) {
		store := &mocks.StoreMock{
			AddClickedFunc: func(ctx context.Context, threadID string) error {
				return fmt.Errorf("db locked")
			},
		}
		srv := testServer(store, &mocks.RecommenderMock{}, &mocks.TelemetryMock{})

		req := httptest.NewRequest("POST", "/api/v1/recommendations/golang:42/clicked", http.NoBody)
		w := httptest.NewRecorder()
		srv.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestServer_dislikeHandlers(t *testing.T) {
	t.Run("dislike", func(t *testing.T) {
		store := &mocks.StoreMock{
			AddDislikedFunc: func(ctx context.Context, threadID string) error { return nil },
		}
		srv := testServer(store, &mocks.RecommenderMock{}, &mocks.TelemetryMock{})

		req := httptest.NewRequest("POST", "/api/v1/threads/golang:42/dislike", http.NoBody)
		w := httptest.NewRecorder()
		srv.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		require.Len(t, store.AddDislikedCalls(), 1)
		assert.Equal(t, "golang:42", store.AddDislikedCalls()[0].ThreadID)
	})

	t.Run("undislike", func(t *testing.T) {
		store := &mocks.StoreMock{
			RemoveDislikedFunc: func(ctx context.Context, threadID string) error { return nil },
		}
		srv := testServer(store, &mocks.RecommenderMock{}, &mocks.TelemetryMock{})

		req := httptest.NewRequest("DELETE", "/api/v1/threads/golang:42/dislike", http.NoBody)
		w := httptest.NewRecorder()
		srv.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		require.Len(t, store.RemoveDislikedCalls(), 1)
		assert.Equal(t, "golang:42", store.RemoveDislikedCalls()[0].ThreadID)
	})

	t.Run("dislike store failure", func(t *testing.T) {
		store := &mocks.StoreMock{
			AddDislikedFunc: func(ctx context.Context, threadID string) error {
				return fmt.Errorf("db locked")
			},
		}
		srv := testServer(store, &mocks.RecommenderMock{}, &mocks.TelemetryMock{})

		req := httptest.NewRequest("POST", "/api/v1/threads/golang:42/dislike", http.NoBody)
		w := httptest.NewRecorder()
		srv.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestServer_threadsHandler(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		store := &mocks.StoreMock{
			GetThreadsPageFunc: func(ctx context.Context, forum string, limit, offset int) ([]domain.Thread, error) {
				return []domain.Thread{{ID: "golang:1"}, {ID: "golang:2"}}, nil
			},
		}
		srv := testServer(store, &mocks.RecommenderMock{}, &mocks.TelemetryMock{})

		req := httptest.NewRequest("GET", "/api/v1/threads", http.NoBody)
		w := httptest.NewRecorder()
		srv.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		require.Len(t, store.GetThreadsPageCalls(), 1)
		call := store.GetThreadsPageCalls()[0]
		assert.Equal(t, domain.ForumAll, call.Forum)
		assert.Equal(t, 50, call.Limit)
		assert.Equal(t, 0, call.Offset)
	})

	t.Run("forum and pagination", func(t *testing.T) {
		store := &mocks.StoreMock{
			GetThreadsPageFunc: func(ctx context.Context, forum string, limit, offset int) ([]domain.Thread, error) {
				return []domain.Thread{}, nil
			},
		}
		srv := testServer(store, &mocks.RecommenderMock{}, &mocks.TelemetryMock{})

		req := httptest.NewRequest("GET", "/api/v1/threads?forum=golang&limit=10&offset=20", http.NoBody)
		w := httptest.NewRecorder()
		srv.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		call := store.GetThreadsPageCalls()[0]
		assert.Equal(t, "golang", call.Forum)
		assert.Equal(t, 10, call.Limit)
		assert.Equal(t, 20, call.Offset)
	})

	t.Run("store failure", func(t *testing.T) {
		store := &mocks.StoreMock{
			GetThreadsPageFunc: func(ctx context.Context, forum string, limit, offset int) ([]domain.Thread, error) {
				return nil, fmt.Errorf("db locked")
			},
		}
		srv := testServer(store, &mocks.RecommenderMock{}, &mocks.TelemetryMock{})

		req := httptest.NewRequest("GET", "/api/v1/threads", http.NoBody)
		w := httptest.NewRecorder()
		srv.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestServer_eventsHandler(t *testing.T) {
	t.Run("completed filter", func(t *testing.T) {
		store := &mocks.StoreMock{
			GetEventsPageFunc: func(ctx context.Context, limit, offset int, completed *bool) ([]domain.ReadEvent, error) {
				return []domain.ReadEvent{{ID: "session_1:golang:42"}}, nil
			},
		}
		srv := testServer(store, &mocks.RecommenderMock{}, &mocks.TelemetryMock{})

		req := httptest.NewRequest("GET", "/api/v1/events?completed=true", http.NoBody)
		w := httptest.NewRecorder()
		srv.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		require.Len(t, store.GetEventsPageCalls(), 1)
		call := store.GetEventsPageCalls()[0]
		require.NotNil(t, call.Completed)
		assert.True(t, *call.Completed)
	})

	t.Run("no filter", func(t *testing.T) {
		store := &mocks.StoreMock{
			GetEventsPageFunc: func(ctx context.Context, limit, offset int, completed *bool) ([]domain.ReadEvent, error) {
				return []domain.ReadEvent{}, nil
			},
		}
		srv := testServer(store, &mocks.RecommenderMock{}, &mocks.TelemetryMock{})

		req := httptest.NewRequest("GET", "/api/v1/events", http.NoBody)
		w := httptest.NewRecorder()
		srv.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Nil(t, store.GetEventsPageCalls()[0].Completed)
	})

	t.Run("invalid filter", func(t *testing.T) {
		store := &mocks.StoreMock{
			GetEventsPageFunc: func(ctx context.Context, limit, offset int, completed *bool) ([]domain.ReadEvent, error) {
				return []domain.ReadEvent{}, nil
			},
		}
		srv := testServer(store, &mocks.RecommenderMock{}, &mocks.TelemetryMock{})

		req := httptest.NewRequest("GET", "/api/v1/events?completed=maybe", http.NoBody)
		w := httptest.NewRecorder()
		srv.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Empty(t, store.GetEventsPageCalls())
	})
}

func TestServer_dedupHandler(t *testing.T) {
	store := &mocks.StoreMock{
		DeduplicateReadEventsFunc: func(ctx context.Context) (domain.DedupResult, error) {
			return domain.DedupResult{Removed: 3, Threads: 2}, nil
		},
	}
	srv := testServer(store, &mocks.RecommenderMock{}, &mocks.TelemetryMock{})

	req := httptest.NewRequest("POST", "/api/v1/maintenance/dedup", http.NoBody)
	w := httptest.NewRecorder()
	srv.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp domain.DedupResult
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, 3, resp.Removed)
	assert.Equal(t, 2, resp.Threads)
}

func TestServer_statsHandler(t *testing.T) {
	store := &mocks.StoreMock{
		StatsFunc: func(ctx context.Context) (domain.Stats, error) {
			return domain.Stats{TotalEvents: 12, TotalThreads: 40, Disliked: 2}, nil
		},
	}
	srv := testServer(store, &mocks.RecommenderMock{}, &mocks.TelemetryMock{})

	req := httptest.NewRequest("GET", "/api/v1/stats", http.NoBody)
	w := httptest.NewRecorder()
	srv.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp domain.Stats
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, 12, resp.TotalEvents)
	assert.Equal(t, 40, resp.TotalThreads)
	assert.Equal(t, 2, resp.Disliked)
}

func TestServer_sessionsHandler(t *testing.T) {
	t.Run("lists sessions oldest first", func(t *testing.T) {
		started := time.Date(2026, 8, 28, 9, 0, 0, 0, time.UTC)
		store := &mocks.StoreMock{
			GetAllSessionsFunc: func(ctx context.Context) ([]domain.Session, error) {
				return []domain.Session{
					{ID: "session_1", StartedAt: started},
					{ID: "session_2", StartedAt: started.Add(time.Hour)},
				}, nil
			},
		}
		srv := testServer(store, &mocks.RecommenderMock{}, &mocks.TelemetryMock{})

		req := httptest.NewRequest("GET", "/api/v1/sessions", http.NoBody)
		w := httptest.NewRecorder()
		srv.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var resp struct {
			Sessions []domain.Session `json:"sessions"`
			Count    int              `json:"count"`
		}
		err := json.Unmarshal(w.Body.Bytes(), &resp)
		require.NoError(t, err)
		assert.Equal(t, 2, resp.Count)
		require.Len(t, resp.Sessions, 2)
		assert.Equal(t, "session_1", resp.Sessions[0].ID)
		assert.Nil(t, resp.Sessions[0].EndedAt, "sessions are never closed, only replaced")
	})

	t.Run("store failure", func(t *testing.T) {
		store := &mocks.StoreMock{
			GetAllSessionsFunc: func(ctx context.Context) ([]domain.Session, error) {
				return nil, fmt.Errorf("db locked")
			},
		}
		srv := testServer(store, &mocks.RecommenderMock{}, &mocks.TelemetryMock{})

		req := httptest.NewRequest("GET", "/api/v1/sessions", http.NoBody)
		w := httptest.NewRecorder()
		srv.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestServer_clearReadingDataHandler(t *testing.T) {
	t.Run("clears reading data", func(t *testing.T) {
		store := &mocks.StoreMock{
			ClearReadingDataFunc: func(ctx context.Context) error { return nil },
		}
		srv := testServer(store, &mocks.RecommenderMock{}, &mocks.TelemetryMock{})

		req := httptest.NewRequest("DELETE", "/api/v1/maintenance/reading-data", http.NoBody)
		w := httptest.NewRecorder()
		srv.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Len(t, store.ClearReadingDataCalls(), 1)
	})

	t.Run("store failure", func(t *testing.T) {
		store := &mocks.StoreMock{
			ClearReadingDataFunc: func(ctx context.Context) error { return fmt.Errorf("db locked") },
		}
		srv := testServer(store, &mocks.RecommenderMock{}, &mocks.TelemetryMock{})

		req := httptest.NewRequest("DELETE", "/api/v1/maintenance/reading-data", http.NoBody)
		w := httptest.NewRecorder()
		srv.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestServer_thresholdsHandlers(t *testing.T) {
	t.Run("get passes server defaults", func(t *testing.T) {
		store := &mocks.StoreMock{
			GetThresholdsFunc: func(ctx context.Context, defaults domain.Thresholds) (domain.Thresholds, error) {
				return domain.Thresholds{Seconds: 15, ScrollPct: 60}, nil
			},
		}
		srv := testServer(store, &mocks.RecommenderMock{}, &mocks.TelemetryMock{})

		req := httptest.NewRequest("GET", "/api/v1/settings/thresholds", http.NoBody)
		w := httptest.NewRecorder()
		srv.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		require.Len(t, store.GetThresholdsCalls(), 1)
		assert.Equal(t, domain.Thresholds{Seconds: 20, ScrollPct: 50}, store.GetThresholdsCalls()[0].Defaults)

		var resp domain.Thresholds
		err := json.Unmarshal(w.Body.Bytes(), &resp)
		require.NoError(t, err)
		assert.Equal(t, 15, resp.Seconds)
		assert.Equal(t, 60.0, resp.ScrollPct)
	})

	t.Run("put stores and echoes", func(t *testing.T) {
		store := &mocks.StoreMock{
			SetThresholdsFunc: func(ctx context.Context, th domain.Thresholds) error { return nil },
		}
		srv := testServer(store, &mocks.RecommenderMock{}, &mocks.TelemetryMock{})

		body := `{"seconds": 30, "scroll_pct": 75}`
		req := httptest.NewRequest("PUT", "/api/v1/settings/thresholds", strings.NewReader(body))
		w := httptest.NewRecorder()
		srv.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		require.Len(t, store.SetThresholdsCalls(), 1)
		assert.Equal(t, domain.Thresholds{Seconds: 30, ScrollPct: 75}, store.SetThresholdsCalls()[0].Th)
	})

	t.Run("put rejects invalid values", func(t *testing.T) {
		store := &mocks.StoreMock{
			SetThresholdsFunc: func(ctx context.Context, th domain.Thresholds) error {
				return fmt.Errorf("scroll_pct must be between 0 and 100")
			},
		}
		srv := testServer(store, &mocks.RecommenderMock{}, &mocks.TelemetryMock{})

		body := `{"seconds": 30, "scroll_pct": 150}`
		req := httptest.NewRequest("PUT", "/api/v1/settings/thresholds", strings.NewReader(body))
		w := httptest.NewRecorder()
		srv.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("put rejects bad body", func(t *testing.T) {
		store := &mocks.StoreMock{
			SetThresholdsFunc: func(ctx context.Context, th domain.Thresholds) error { return nil },
		}
		srv := testServer(store, &mocks.RecommenderMock{}, &mocks.TelemetryMock{})

		req := httptest.NewRequest("PUT", "/api/v1/settings/thresholds", strings.NewReader("not json"))
		w := httptest.NewRecorder()
		srv.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Empty(t, store.SetThresholdsCalls())
	})
}

func TestServer_pagination(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		wantLimit  int
		wantOffset int
	}{
		{"defaults", "", 50, 0},
		{"custom", "limit=10&offset=30", 10, 30},
		{"invalid limit ignored", "limit=-5", 50, 0},
		{"invalid offset ignored", "offset=abc", 50, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/?"+tt.query, http.NoBody)
			limit, offset := pagination(req, 50)
			assert.Equal(t, tt.wantLimit, limit)
			assert.Equal(t, tt.wantOffset, offset)
		})
	}
}
