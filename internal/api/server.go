// Package api provides the HTTP boundary: the webhook intake endpoint and
// the events feed endpoint.
package api

import (
	"context"
	"net/http"
	"time"

	"github.com/hookfeed/hookfeed/internal/app"
	"github.com/hookfeed/hookfeed/internal/ingest"
)

// NotificationProcessor handles one inbound webhook notification.
type NotificationProcessor interface {
	Process(ctx context.Context, deliveryID, eventType string, payload []byte) (ingest.Outcome, error)
}

// Server represents the HTTP API server.
type Server struct {
	httpServer *http.Server
	mux        *http.ServeMux

	// Use case dependencies
	health    app.HealthUsecase
	feed      app.FeedUsecase
	processor NotificationProcessor

	// Rate limiting
	limiter *RateLimiter

	// Auth configuration for the feed endpoint
	authEnabled  bool
	authUsername string
	authPassword string
}

// ServerOption configures a Server.
type ServerOption func(*Server)

// WithFeedUsecase sets the feed query use case.
func WithFeedUsecase(feed app.FeedUsecase) ServerOption {
	return func(s *Server) { s.feed = feed }
}

// WithProcessor sets the notification processor.
func WithProcessor(p NotificationProcessor) ServerOption {
	return func(s *Server) { s.processor = p }
}

// WithRateLimiter sets the IP rate limiter applied to public routes.
func WithRateLimiter(rl *RateLimiter) ServerOption {
	return func(s *Server) { s.limiter = rl }
}

// WithBasicAuth enables HTTP Basic Auth on the feed endpoint.
func WithBasicAuth(username, password string) ServerOption {
	return func(s *Server) {
		if username != "" && password != "" {
			s.authEnabled = true
			s.authUsername = username
			s.authPassword = password
		}
	}
}

// NewServer creates a new API server with the given dependencies.
func NewServer(addr string, health app.HealthUsecase, opts ...ServerOption) *Server {
	mux := http.NewServeMux()
	s := &Server{
		httpServer: &http.Server{
			Addr:         addr,
			Handler:      mux,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		mux:    mux,
		health: health,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.registerRoutes()
	return s
}

// wrapAuth wraps a handler with auth middleware if auth is enabled.
func (s *Server) wrapAuth(h http.Handler) http.Handler {
	if !s.authEnabled {
		return h
	}
	return basicAuthMiddleware(s.authUsername, s.authPassword)(h)
}

// wrapLimit wraps a handler with the rate limiter if one is configured.
func (s *Server) wrapLimit(h http.Handler) http.Handler {
	if s.limiter == nil {
		return h
	}
	return s.limiter.Middleware(h)
}

// registerRoutes sets up the API routes.
func (s *Server) registerRoutes() {
	// Health endpoint (no auth, no limit)
	s.mux.HandleFunc("GET /api/v1/health", s.handleHealth)

	// Webhook intake (rate limited; the source platform retries on failure)
	if s.processor != nil {
		s.mux.Handle("POST /webhook", s.wrapLimit(http.HandlerFunc(s.handleWebhook)))
	}

	// Events feed (rate limited, auth required if configured)
	if s.feed != nil {
		s.mux.Handle("GET /events", s.wrapLimit(s.wrapAuth(http.HandlerFunc(s.handleEvents))))
	}
}

// handleHealth handles the health check endpoint.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	result, err := s.health.Handle(r.Context())
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// Start starts the HTTP server.
func (s *Server) Start() error {
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// Addr returns the server address.
func (s *Server) Addr() string {
	return s.httpServer.Addr
}
