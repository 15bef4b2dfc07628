// Package server provides the HTTP REST API for the format analyzer.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	charmlog "github.com/charmbracelet/log"
	"github.com/go-playground/validator/v10"

	"github.com/jonathan/format-analyzer/internal/analyzer"
	"github.com/jonathan/format-analyzer/internal/server/middleware"
	"github.com/jonathan/format-analyzer/internal/server/ratelimit"
)

// MaxBodyBytes limits request bodies to 1 MiB.
const MaxBodyBytes int64 = 1 << 20

// Server represents the HTTP server
type Server struct {
	httpServer  *http.Server
	analyzer    *analyzer.Analyzer
	logger      *charmlog.Logger
	validator   *validator.Validate
	rateLimiter *ratelimit.Limiter
	corsOrigin  string
	workers     int
	handler     http.Handler
}

// Config holds server configuration
type Config struct {
	Port       int
	Analyzer   *analyzer.Analyzer
	Logger     *charmlog.Logger
	CORSOrigin string
	Workers    int               // batch concurrency
	RateLimit  *ratelimit.Config // nil reads the environment
}

// New creates a new server instance
func New(cfg Config) (*Server, error) {
	if cfg.Analyzer == nil {
		return nil, fmt.Errorf("server: analyzer is required")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = charmlog.New(io.Discard)
	}
	rl := cfg.RateLimit
	if rl == nil {
		rl = ratelimit.LoadConfig()
	}
	origin := cfg.CORSOrigin
	if origin == "" {
		origin = "*"
	}

	s := &Server{
		analyzer:    cfg.Analyzer,
		logger:      logger,
		validator:   validator.New(),
		rateLimiter: ratelimit.NewLimiter(rl),
		corsOrigin:  origin,
		workers:     cfg.Workers,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /suggest", s.handleSuggest)
	mux.HandleFunc("POST /analyze", s.handleAnalyze)
	mux.HandleFunc("POST /analyze/batch", s.handleBatch)
	mux.HandleFunc("POST /validate", s.handleValidate)
	mux.HandleFunc("GET /weights", s.handleWeights)
	mux.HandleFunc("GET /weights/{format}", s.handleFormatWeights)
	mux.HandleFunc("GET /formats", s.handleFormats)
	mux.HandleFunc("GET /health", s.handleHealth)

	s.handler = middleware.RequestID(middleware.Logging(logger)(s.withCORS(s.withRateLimit(mux))))

	s.httpServer = &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           s.handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	return s, nil
}

// Handler returns the fully wrapped HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Run listens until ctx is done, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	defer s.rateLimiter.Stop()

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server starting", "addr", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	s.logger.Info("server stopped")
	return nil
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", s.corsOrigin)
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, "+middleware.RequestIDHeader)
		w.Header().Set("Access-Control-Expose-Headers", strings.Join([]string{
			middleware.RequestIDHeader,
			"Retry-After",
			"X-RateLimit-Limit",
			"X-RateLimit-Remaining",
			"X-RateLimit-Reset",
		}, ", "))

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withRateLimit adds rate limiting middleware
func (s *Server) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowed, info := s.rateLimiter.Allow(clientID(r), r.URL.Path, r.Method)
		setRateLimitHeaders(w, info)
		if !allowed {
			s.rateLimitResponse(w, r, info)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// clientID identifies the caller by remote IP.
func clientID(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

func setRateLimitHeaders(w http.ResponseWriter, info ratelimit.Info) {
	if info.Limit <= 0 {
		return
	}
	w.Header().Set("X-RateLimit-Limit", strconv.Itoa(info.Limit))
	w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(info.Remaining))
	w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(info.ResetTime.Unix(), 10))
}

// rateLimitResponse writes a 429 Too Many Requests response.
func (s *Server) rateLimitResponse(w http.ResponseWriter, r *http.Request, info ratelimit.Info) {
	retry := int((info.RetryAfter + time.Second - 1) / time.Second)
	if retry > 0 {
		w.Header().Set("Retry-After", strconv.Itoa(retry))
	}

	s.logger.Warn("rate limit exceeded",
		"client", clientID(r),
		"path", r.URL.Path,
		"limit", info.Limit,
		"retry_after", info.RetryAfter,
		"request_id", middleware.GetRequestID(r),
	)

	s.jsonResponse(w, http.StatusTooManyRequests, map[string]any{
		"error":       "rate limit exceeded",
		"limit":       info.Limit,
		"retry_after": retry,
	})
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Error("encoding JSON response", "err", err)
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}

// writeError maps err to a status with HTTPStatus.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", "err", err)
	}
	s.errorResponse(w, status, err.Error())
}
