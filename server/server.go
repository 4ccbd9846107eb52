package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"menu-explainer/config"
	"menu-explainer/logging"
	"menu-explainer/services"

	"golang.org/x/time/rate"
)

const (
	defaultName    = "menu-explainer"
	defaultVersion = "dev"
)

// DefaultConfig mirrors the env defaults of config.ServerConfig.
func DefaultConfig() config.ServerConfig {
	return config.ServerConfig{
		Host:            "0.0.0.0",
		Port:            8000,
		RateLimit:       100,
		RateLimitBurst:  200,
		ReadTimeout:     10 * time.Second,
		WriteTimeout:    30 * time.Second,
		IdleTimeout:     120 * time.Second,
		ShutdownSeconds: 30,
	}
}

// Server represents the HTTP server.
type Server struct {
	name    string
	version string
	config  config.ServerConfig
	service *services.Service

	httpServer  *http.Server
	rateLimiter *rate.Limiter
	readiness   func(context.Context) error

	mu    sync.RWMutex
	ready bool
}

// Option configures a Server.
type Option func(*Server)

func WithName(name string) Option {
	return func(s *Server) { s.name = name }
}

func WithVersion(version string) Option {
	return func(s *Server) { s.version = version }
}

func WithConfig(cfg config.ServerConfig) Option {
	return func(s *Server) { s.config = cfg }
}

// WithReadinessCheck adds a dependency probe to /ready, typically a database
// ping.
func WithReadinessCheck(check func(context.Context) error) Option {
	return func(s *Server) { s.readiness = check }
}

// New creates a server answering queries through svc.
func New(svc *services.Service, opts ...Option) *Server {
	s := &Server{
		name:    defaultName,
		version: defaultVersion,
		config:  DefaultConfig(),
		service: svc,
	}
	for _, opt := range opts {
		opt(s)
	}

	limit := rate.Limit(s.config.RateLimit)
	if s.config.RateLimit <= 0 {
		limit = rate.Inf
	}
	s.rateLimiter = rate.NewLimiter(limit, s.config.RateLimitBurst)

	s.httpServer = &http.Server{
		Addr:         s.config.Addr(),
		Handler:      s.setupRoutes(),
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
		IdleTimeout:  s.config.IdleTimeout,
		ErrorLog:     logging.NewLogLogger(slog.LevelError),
	}
	return s
}

// Handler returns the routed handler with all middleware applied.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// SetReady marks the server as ready to serve traffic.
func (s *Server) SetReady(ready bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ready = ready
}

func (s *Server) isReady() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ready
}

// Start serves until ctx is canceled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	s.SetReady(true)
	slog.Info("starting server",
		"address", s.httpServer.Addr,
		"rateLimit", s.config.RateLimit,
		"rateLimitBurst", s.config.RateLimitBurst,
		"shutdownTimeout", s.config.ShutdownTimeout().String(),
	)

	errChan := make(chan error, 1)
	go func() {
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()

	select {
	case <-ctx.Done():
		return s.Shutdown(context.Background())
	case err := <-errChan:
		s.SetReady(false)
		return err
	}
}

// Shutdown stops accepting requests and waits for in-flight ones.
func (s *Server) Shutdown(ctx context.Context) error {
	s.SetReady(false)

	shutdownCtx, cancel := context.WithTimeout(ctx, s.config.ShutdownTimeout())
	defer cancel()

	slog.Info("shutting down server")
	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return err
	}
	slog.Info("server stopped gracefully")
	return nil
}
