// Package httpserver is a thin Subsystem adapter around chi: the external
// collaborator spec.md §1 calls out as out of scope for the core, wired in
// only so the registry and lifecycle controller have a real subsystem to
// drive through their state machine.
package httpserver

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/hydrogen-project/hydrogen/internal/config"
	"github.com/hydrogen-project/hydrogen/internal/registry"
)

// requestIDHeader is the header a request's generated trace id is echoed
// back on, the same role the teacher's executor.traceID plays in its
// per-invocation logs.
const requestIDHeader = "X-Request-Id"

// withRequestID stamps every request with a fresh trace id (mirroring the
// teacher's executor traceID := uuid.New().String() pattern) so downstream
// log lines can be correlated to a single request.
func withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.New().String()
		w.Header().Set(requestIDHeader, id)
		log.Debug().Str("request_id", id).Str("path", r.URL.Path).Msg("http request")
		next.ServeHTTP(w, r)
	})
}

// Subsystem serves Hydrogen's HTTP surface on WebServerConfig's port, with
// CORS configured from WebServer.CORSOrigin.
type Subsystem struct {
	cfg config.WebServerConfig

	mu     sync.Mutex
	server *http.Server
}

var _ registry.Subsystem = (*Subsystem)(nil)

// New returns an httpserver Subsystem bound to cfg.
func New(cfg config.WebServerConfig) *Subsystem {
	return &Subsystem{cfg: cfg}
}

// Readiness reports ready unless IPv4 and IPv6 are both disabled, which
// leaves the server with no interface to bind.
func (s *Subsystem) Readiness() (bool, []string) {
	if !s.cfg.EnableIPv4 && !s.cfg.EnableIPv6 {
		return false, []string{"WebServer: neither EnableIPv4 nor EnableIPv6 is set"}
	}
	return true, []string{fmt.Sprintf("WebServer: ready to bind port %d", s.cfg.Port)}
}

// Init starts the HTTP listener in the background and returns nil at once.
// A bind failure is only logged by the listener goroutine; it does not
// change the subsystem's registry state.
func (s *Subsystem) Init() error {
	r := chi.NewRouter()
	r.Use(withRequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{s.cfg.CORSOrigin},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
	}))
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", s.cfg.Port),
		Handler:      r,
		ReadTimeout:  s.cfg.ConnectionTimeout,
		WriteTimeout: s.cfg.ConnectionTimeout,
	}

	s.mu.Lock()
	s.server = srv
	s.mu.Unlock()

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error().Err(err).Int64("port", s.cfg.Port).Msg("httpserver listener exited")
		}
	}()
	return nil
}

// Shutdown gracefully drains the listener within a bounded context.
func (s *Subsystem) Shutdown() error {
	s.mu.Lock()
	srv := s.server
	s.mu.Unlock()
	if srv == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(ctx)
}
