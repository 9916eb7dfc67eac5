// Package server exposes the episode backend over HTTP: donation updates
// from the monitor, sync against the hosting API and episode listings for
// downstream consumers such as the community bot.
package server

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/rest/logger"
	"github.com/go-pkgz/routegroup"

	"github.com/nodesignal/boostwatch/pkg/domain"
)

//go:generate moq -out mocks/config.go -pkg mocks -skip-ensure -fmt goimports . ConfigProvider
//go:generate moq -out mocks/database.go -pkg mocks -skip-ensure -fmt goimports . Database
//go:generate moq -out mocks/episode_source.go -pkg mocks -skip-ensure -fmt goimports . EpisodeSource

// Server represents HTTP server instance
type Server struct {
	config  ConfigProvider
	db      Database
	source  EpisodeSource
	version string
	debug   bool

	lock       sync.Mutex
	httpServer *http.Server
	router     *routegroup.Bundle
}

// Database interface for server operations
type Database interface {
	ListEpisodes(ctx context.Context) ([]domain.Episode, error)
	GetNextScheduled(ctx context.Context) (*domain.Episode, error)
	UpsertEpisode(ctx context.Context, ep *domain.Episode) error
	UpdateDonations(ctx context.Context, episodeID string, amount int64) error
}

// EpisodeSource lists episodes from the hosting API for sync
type EpisodeSource interface {
	Episodes(ctx context.Context) ([]domain.Episode, error)
}

// ConfigProvider provides server configuration
type ConfigProvider interface {
	GetServerConfig() (listen string, timeout time.Duration)
	GetAPIToken() string
}

// New initializes a new server instance
func New(cfg ConfigProvider, db Database, source EpisodeSource, version string, debug bool) *Server {
	s := &Server{
		config:  cfg,
		db:      db,
		source:  source,
		version: version,
		debug:   debug,
		router:  routegroup.New(http.NewServeMux()),
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
	s.router.Use(rest.AppInfo("boostwatch", "nodesignal", s.version))
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
	s.router.HandleFunc("GET /health", s.healthHandler)

	// API routes, authenticated with the shared key
	s.router.Mount("/api/v1").Route(func(r *routegroup.Bundle) {
		r.Use(s.authMiddleware)
		r.HandleFunc("POST /donations", s.updateDonationsHandler)
		r.HandleFunc("GET /sync", s.syncHandler)
		r.HandleFunc("POST /sync", s.syncHandler)
		r.HandleFunc("GET /episodes", s.listEpisodesHandler)
		r.HandleFunc("GET /episodes/next", s.nextEpisodeHandler)
	})
}

// authMiddleware rejects requests without the shared API key
func (s *Server) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := s.config.GetAPIToken()
		key := r.Header.Get("X-API-KEY")
		if token == "" || subtle.ConstantTimeCompare([]byte(key), []byte(token)) != 1 {
			renderError(w, r, fmt.Errorf("invalid or missing API key"), http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}
