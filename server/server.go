package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/rest/logger"
	"github.com/go-pkgz/routegroup"

	"github.com/umputun/readscope/pkg/domain"
	"github.com/umputun/readscope/pkg/engagement"
)

//go:generate moq -out mocks/config.go -pkg mocks -skip-ensure -fmt goimports . ConfigProvider
//go:generate moq -out mocks/store.go -pkg mocks -skip-ensure -fmt goimports . Store
//go:generate moq -out mocks/recommender.go -pkg mocks -skip-ensure -fmt goimports . Recommender
//go:generate moq -out mocks/telemetry.go -pkg mocks -skip-ensure -fmt goimports . Telemetry

// Server represents HTTP server instance
type Server struct {
	config      ConfigProvider
	store       Store
	recommender Recommender
	telemetry   Telemetry
	defaults    domain.Thresholds
	recLimit    int
	version     string
	debug       bool

	lock       sync.Mutex
	httpServer *http.Server
	router     *routegroup.Bundle
}

// Store aggregates the repository operations exposed over the API
type Store interface {
	GetThreadsPage(ctx context.Context, forum string, limit, offset int) ([]domain.Thread, error)
	GetEventsPage(ctx context.Context, limit, offset int, completed *bool) ([]domain.ReadEvent, error)
	DeduplicateReadEvents(ctx context.Context) (domain.DedupResult, error)
	AddDisliked(ctx context.Context, threadID string) error
	RemoveDisliked(ctx context.Context, threadID string) error
	AddClicked(ctx context.Context, threadID string) error
	GetThresholds(ctx context.Context, defaults domain.Thresholds) (domain.Thresholds, error)
	SetThresholds(ctx context.Context, th domain.Thresholds) error
	Stats(ctx context.Context) (domain.Stats, error)
	GetAllSessions(ctx context.Context) ([]domain.Session, error)
	ClearReadingData(ctx context.Context) error
}

// Recommender produces thread recommendations
type Recommender interface {
	GetMixedRecommendations(ctx context.Context, limit int, forum string, forceRefresh bool) []domain.Thread
	GenerateRecommendations(ctx context.Context, limit int, forum string, forceRefresh bool) []domain.ScoredThread
	GetTagBasedRecommendations(ctx context.Context, limit int, forum string, forceRefresh bool) []domain.Thread
}

// Telemetry dispatches reader telemetry commands
type Telemetry interface {
	Handle(ctx context.Context, cmd engagement.Command) error
}

// ConfigProvider provides server configuration
type ConfigProvider interface {
	GetServerConfig() (listen string, timeout time.Duration)
}

// Params holds server construction parameters
type Params struct {
	Config      ConfigProvider
	Store       Store
	Recommender Recommender
	Telemetry   Telemetry
	Thresholds  domain.Thresholds // defaults, overridable at runtime via settings
	RecLimit    int               // default recommendation count
	Version     string
	Debug       bool
}

// New initializes a new server instance
func New(p Params) *Server {
	if p.RecLimit == 0 {
		p.RecLimit = 10
	}

	s := &Server{
		config:      p.Config,
		store:       p.Store,
		recommender: p.Recommender,
		telemetry:   p.Telemetry,
		defaults:    p.Thresholds,
		recLimit:    p.RecLimit,
		version:     p.Version,
		debug:       p.Debug,
		router:      routegroup.New(http.NewServeMux()),
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// Run starts the HTTP server and handles graceful shutdown
func (s *Server) Run(ctx context.Context) error {
	listen, timeout := s.config.GetServerConfig()
	lgr.Printf("[INFO] starting server on %s", listen)

	s.lock.Lock()
	s.httpServer = &http.Server{
		Addr:         listen,
		Handler:      s.router,
		ReadTimeout:  timeout,
		WriteTimeout: timeout,
	}
	s.lock.Unlock()

	go func() {
		<-ctx.Done()
		lgr.Printf("[INFO] shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			lgr.Printf("[WARN] server shutdown error: %v", err)
		}
	}()

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server error: %w", err)
	}

	return nil
}

// setupMiddleware configures standard middleware for the server
func (s *Server) setupMiddleware() {
	s.router.Use(rest.AppInfo("readscope", "umputun", s.version))
	s.router.Use(rest.Ping)

	if s.debug {
		s.router.Use(logger.New(logger.Log(lgr.Default()), logger.Prefix("[DEBUG]")).Handler)
	}

	s.router.Use(rest.Recoverer(lgr.Default()))
	s.router.Use(rest.Throttle(100))
	s.router.Use(rest.SizeLimit(1024 * 1024)) // 1MB
}

// setupRoutes configures application routes
func (s *Server) setupRoutes() {
	s.router.HandleFunc("GET /status", s.statusHandler)

	s.router.Mount("/api/v1").Route(func(r *routegroup.Bundle) {
		r.HandleFunc("POST /reader/{event}", s.readerEventHandler)

		r.HandleFunc("GET /recommendations", s.mixedRecommendationsHandler)
		r.HandleFunc("GET /recommendations/content", s.contentRecommendationsHandler)
		r.HandleFunc("GET /recommendations/tags", s.tagRecommendationsHandler)
		r.HandleFunc("POST /recommendations/{id}/clicked", s.clickedHandler)

		r.HandleFunc("POST /threads/{id}/dislike", s.dislikeHandler)
		r.HandleFunc("DELETE /threads/{id}/dislike", s.undislikeHandler)
		r.HandleFunc("GET /threads", s.threadsHandler)
		r.HandleFunc("GET /events", s.eventsHandler)
		r.HandleFunc("GET /sessions", s.sessionsHandler)

		r.HandleFunc("POST /maintenance/dedup", s.dedupHandler)
		r.HandleFunc("DELETE /maintenance/reading-data", s.clearReadingDataHandler)
		r.HandleFunc("GET /stats", s.statsHandler)

		r.HandleFunc("GET /settings/thresholds", s.getThresholdsHandler)
		r.HandleFunc("PUT /settings/thresholds", s.setThresholdsHandler)
	})
}

// statusHandler returns server status
func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	status := map[string]interface{}{
		"status":  "ok",
		"version": s.version,
		"time":    time.Now().UTC(),
	}
	renderJSON(w, r, http.StatusOK, status)
}

// renderJSON sends JSON response
func renderJSON(w http.ResponseWriter, _ *http.Request, code int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			lgr.Printf("[ERROR] can't encode response to JSON: %v", err)
		}
	}
}

// renderError sends error response as JSON
func renderError(w http.ResponseWriter, r *http.Request, err error, code int) {
	errMsg := "unknown error"
	if err != nil {
		errMsg = err.Error()
	}
	renderJSON(w, r, code, map[string]string{"error": errMsg})
}
