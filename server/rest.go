package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/readscope/pkg/domain"
	"github.com/umputun/readscope/pkg/engagement"
)

// readerEventRequest is the telemetry payload delivered by the reader client.
// Open events carry the thread block, heartbeat and close carry the metrics.
type readerEventRequest struct {
	Thread        *threadPayload `json:"thread,omitempty"`
	ThreadID      string         `json:"thread_id"`
	URL           string         `json:"url"`
	ActiveMsDelta int64          `json:"active_ms_delta"`
	MaxScrollPct  float64        `json:"max_scroll_pct"`
}

type threadPayload struct {
	ID          string    `json:"id"`
	ForumID     string    `json:"forum_id"`
	URL         string    `json:"url"`
	Title       string    `json:"title"`
	Category    string    `json:"category"`
	Tags        []string  `json:"tags"`
	PublishedAt time.Time `json:"published_at"`
}

// readerEventHandler ingests reader telemetry: POST /api/v1/reader/{event}
func (s *Server) readerEventHandler(w http.ResponseWriter, r *http.Request) {
	kind, err := engagement.ParseKind(r.PathValue("event"))
	if err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}

	var req readerEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, r, fmt.Errorf("invalid request body"), http.StatusBadRequest)
		return
	}

	cmd := engagement.Command{
		Kind:          kind,
		ThreadID:      req.ThreadID,
		URL:           req.URL,
		ActiveMsDelta: req.ActiveMsDelta,
		MaxScrollPct:  req.MaxScrollPct,
	}
	if req.Thread != nil {
		cmd.Thread = domain.Thread{
			ID:          req.Thread.ID,
			ForumID:     req.Thread.ForumID,
			URL:         req.Thread.URL,
			Title:       req.Thread.Title,
			Category:    req.Thread.Category,
			Tags:        req.Thread.Tags,
			PublishedAt: req.Thread.PublishedAt,
		}
		if cmd.ThreadID == "" {
			cmd.ThreadID = req.Thread.ID
		}
	}

	if err := s.telemetry.Handle(r.Context(), cmd); err != nil {
		lgr.Printf("[ERROR] failed to handle %s event: %v", kind, err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}

// recQuery extracts the shared recommendation query parameters
func (s *Server) recQuery(r *http.Request) (limit int, forum string, refresh bool) {
	limit = s.recLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}

	forum = r.URL.Query().Get("forum")
	if forum == "" {
		forum = domain.ForumAll
	}

	if v := r.URL.Query().Get("refresh"); v != "" {
		refresh, _ = strconv.ParseBool(v)
	}
	return limit, forum, refresh
}

// mixedRecommendationsHandler serves the primary blended recommendation list
func (s *Server) mixedRecommendationsHandler(w http.ResponseWriter, r *http.Request) {
	limit, forum, refresh := s.recQuery(r)
	threads := s.recommender.GetMixedRecommendations(r.Context(), limit, forum, refresh)
	renderJSON(w, r, http.StatusOK, map[string]interface{}{"threads": threads, "count": len(threads)})
}

// contentRecommendationsHandler serves the content-similarity ranking with
// score breakdowns
func (s *Server) contentRecommendationsHandler(w http.ResponseWriter, r *http.Request) {
	limit, forum, refresh := s.recQuery(r)
	threads := s.recommender.GenerateRecommendations(r.Context(), limit, forum, refresh)
	renderJSON(w, r, http.StatusOK, map[string]interface{}{"threads": threads, "count": len(threads)})
}

// tagRecommendationsHandler serves the tag-affinity ranking
func (s *Server) tagRecommendationsHandler(w http.ResponseWriter, r *http.Request) {
	limit, forum, refresh := s.recQuery(r)
	threads := s.recommender.GetTagBasedRecommendations(r.Context(), limit, forum, refresh)
	renderJSON(w, r, http.StatusOK, map[string]interface{}{"threads": threads, "count": len(threads)})
}

// clickedHandler records a recommendation click so the thread stops repeating
func (s *Server) clickedHandler(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		renderError(w, r, fmt.Errorf("thread id is required"), http.StatusBadRequest)
		return
	}

	if err := s.store.AddClicked(r.Context(), id); err != nil {
		lgr.Printf("[ERROR] failed to record click for %s: %v", id, err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}

// dislikeHandler marks a thread as not interesting
func (s *Server) dislikeHandler(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		renderError(w, r, fmt.Errorf("thread id is required"), http.StatusBadRequest)
		return
	}

	if err := s.store.AddDisliked(r.Context(), id); err != nil {
		lgr.Printf("[ERROR] failed to dislike thread %s: %v", id, err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}

// undislikeHandler clears the dislike marker
func (s *Server) undislikeHandler(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		renderError(w, r, fmt.Errorf("thread id is required"), http.StatusBadRequest)
		return
	}

	if err := s.store.RemoveDisliked(r.Context(), id); err != nil {
		lgr.Printf("[ERROR] failed to remove dislike for %s: %v", id, err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}

// threadsHandler serves the paginated thread scan
func (s *Server) threadsHandler(w http.ResponseWriter, r *http.Request) {
	forum := r.URL.Query().Get("forum")
	if forum == "" {
		forum = domain.ForumAll
	}
	limit, offset := pagination(r, 50)

	threads, err := s.store.GetThreadsPage(r.Context(), forum, limit, offset)
	if err != nil {
		lgr.Printf("[ERROR] failed to get threads: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, map[string]interface{}{"threads": threads, "count": len(threads)})
}

// eventsHandler serves the paginated read-event scan, optionally narrowed by
// completion status
func (s *Server) eventsHandler(w http.ResponseWriter, r *http.Request) {
	limit, offset := pagination(r, 50)

	var completed *bool
	if v := r.URL.Query().Get("completed"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			renderError(w, r, fmt.Errorf("invalid completed filter"), http.StatusBadRequest)
			return
		}
		completed = &b
	}

	events, err := s.store.GetEventsPage(r.Context(), limit, offset, completed)
	if err != nil {
		lgr.Printf("[ERROR] failed to get events: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, map[string]interface{}{"events": events, "count": len(events)})
}

// sessionsHandler lists every recorded browsing session, oldest first
func (s *Server) sessionsHandler(w http.ResponseWriter, r *http.Request) {
	sessions, err := s.store.GetAllSessions(r.Context())
	if err != nil {
		lgr.Printf("[ERROR] failed to get sessions: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, map[string]interface{}{"sessions": sessions, "count": len(sessions)})
}

// clearReadingDataHandler wipes read events and sessions, keeping ingested
// threads and preference markers
func (s *Server) clearReadingDataHandler(w http.ResponseWriter, r *http.Request) {
	if err := s.store.ClearReadingData(r.Context()); err != nil {
		lgr.Printf("[ERROR] failed to clear reading data: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	lgr.Printf("[INFO] reading data cleared")
	renderJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}

// dedupHandler runs the read-event deduplication pass
func (s *Server) dedupHandler(w http.ResponseWriter, r *http.Request) {
	result, err := s.store.DeduplicateReadEvents(r.Context())
	if err != nil {
		lgr.Printf("[ERROR] deduplication failed: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, result)
}

// statsHandler serves store-wide counters
func (s *Server) statsHandler(w http.ResponseWriter, r *http.Request) {
	stats, err := s.store.Stats(r.Context())
	if err != nil {
		lgr.Printf("[ERROR] failed to collect stats: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, stats)
}

// getThresholdsHandler returns the effective completion thresholds
func (s *Server) getThresholdsHandler(w http.ResponseWriter, r *http.Request) {
	th, err := s.store.GetThresholds(r.Context(), s.defaults)
	if err != nil {
		lgr.Printf("[ERROR] failed to get thresholds: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, th)
}

// setThresholdsHandler stores user-adjusted completion thresholds
func (s *Server) setThresholdsHandler(w http.ResponseWriter, r *http.Request) {
	var th domain.Thresholds
	if err := json.NewDecoder(r.Body).Decode(&th); err != nil {
		renderError(w, r, fmt.Errorf("invalid request body"), http.StatusBadRequest)
		return
	}

	if err := s.store.SetThresholds(r.Context(), th); err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}
	renderJSON(w, r, http.StatusOK, th)
}

// pagination extracts limit/offset query parameters with a default page size
func pagination(r *http.Request, defaultLimit int) (limit, offset int) {
	limit = defaultLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}
	if v := r.URL.Query().Get("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			offset = n
		}
	}
	return limit, offset
}
