package server

import (
	"log/slog"
	"net/http"
	"time"

	apperrors "menu-explainer/errors"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// routes lists the API for the root document.
var routes = []string{
	"GET /restaurants",
	"GET /restaurants/{name}",
	"GET /restaurants/{name}/sections",
	"GET /restaurants/{name}/sections/{section}",
	"GET /restaurants/{name}/items",
	"GET /search/items",
	"GET /search/by-price-range",
	"GET /search/restaurants-with-item",
	"GET /stats/restaurant/{name}",
	"GET /privacy",
	"GET /health",
	"GET /ready",
	"GET /metrics",
}

// setupRoutes registers patterns without a method so non-GET requests reach
// methodMiddleware and get a structured 405.
func (s *Server) setupRoutes() http.Handler {
	mux := http.NewServeMux()

	// System endpoints (no rate limiting)
	mux.HandleFunc("/health", s.metricsMiddleware(s.methodMiddleware(s.handleHealth)))
	mux.HandleFunc("/ready", s.metricsMiddleware(s.methodMiddleware(s.handleReady)))
	mux.Handle("/metrics", promhttp.Handler())

	mux.HandleFunc("/{$}", s.withMiddleware(s.handleDefault))
	mux.HandleFunc("/privacy", s.withMiddleware(s.handlePrivacy))

	mux.HandleFunc("/restaurants", s.withMiddleware(s.handleListRestaurants))
	mux.HandleFunc("/restaurants/{name}", s.withMiddleware(s.handleGetMenu))
	mux.HandleFunc("/restaurants/{name}/sections", s.withMiddleware(s.handleListSections))
	mux.HandleFunc("/restaurants/{name}/sections/{section}", s.withMiddleware(s.handleSectionItems))
	mux.HandleFunc("/restaurants/{name}/items", s.withMiddleware(s.handleRestaurantItems))

	mux.HandleFunc("/search/items", s.withMiddleware(s.handleSearchItems))
	mux.HandleFunc("/search/by-price-range", s.withMiddleware(s.handlePriceRange))
	mux.HandleFunc("/search/restaurants-with-item", s.withMiddleware(s.handleRestaurantsWithItem))

	mux.HandleFunc("/stats/restaurant/{name}", s.withMiddleware(s.handleStats))

	mux.HandleFunc("/", s.withMiddleware(s.handleNotFound))

	return mux
}

func (s *Server) handleDefault(w http.ResponseWriter, r *http.Request) {
	slog.Debug("handling default route",
		"path", r.URL.Path,
		"remote_addr", r.RemoteAddr,
		"user_agent", r.UserAgent(),
	)

	resp := struct {
		Message   string   `json:"message" yaml:"message"`
		Name      string   `json:"name" yaml:"name"`
		Version   string   `json:"version" yaml:"version"`
		Ready     bool     `json:"ready" yaml:"ready"`
		Timestamp string   `json:"timestamp" yaml:"timestamp"`
		Routes    []string `json:"routes" yaml:"routes"`
	}{
		Message:   "Welcome to the Menu Explainer API",
		Name:      s.name,
		Version:   s.version,
		Ready:     s.isReady(),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Routes:    routes,
	}
	respond(w, r, http.StatusOK, resp)
}

func (s *Server) handleNotFound(w http.ResponseWriter, r *http.Request) {
	WriteError(w, r, http.StatusNotFound, apperrors.ErrCodeNotFound,
		"Route not found", false, map[string]any{"path": r.URL.Path})
}
