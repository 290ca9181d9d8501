// Package websocket is a thin Subsystem adapter for Hydrogen's WebSocket
// gateway. Framing and protocol handling are external collaborators
// (spec.md §1); this adapter owns only the listener lifecycle the registry
// drives.
package websocket

import (
	"fmt"
	"net"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/hydrogen-project/hydrogen/internal/config"
	"github.com/hydrogen-project/hydrogen/internal/registry"
)

// Subsystem accepts raw TCP connections on WebSocketConfig's port. Upgrading
// them to the websocket protocol and framing is out of scope for the core
// and left to the external collaborator this adapter stands in for.
type Subsystem struct {
	cfg config.WebSocketConfig

	mu       sync.Mutex
	listener net.Listener
	stopped  chan struct{}
}

var _ registry.Subsystem = (*Subsystem)(nil)

// New returns a websocket Subsystem bound to cfg.
func New(cfg config.WebSocketConfig) *Subsystem {
	return &Subsystem{cfg: cfg}
}

// Readiness reports ready unless both IP families are disabled.
func (s *Subsystem) Readiness() (bool, []string) {
	if !s.cfg.EnableIPv4 && !s.cfg.EnableIPv6 {
		return false, []string{"WebSocket: neither EnableIPv4 nor EnableIPv6 is set"}
	}
	return true, []string{fmt.Sprintf("WebSocket: ready to bind port %d", s.cfg.Port)}
}

// Init opens the listener and starts the accept loop.
func (s *Subsystem) Init() error {
	ln, err := net.Listen("tcp", fmt.Sprintf(":%d", s.cfg.Port))
	if err != nil {
		return fmt.Errorf("websocket listen: %w", err)
	}

	s.mu.Lock()
	s.listener = ln
	s.stopped = make(chan struct{})
	s.mu.Unlock()

	go s.acceptLoop(ln)
	return nil
}

func (s *Subsystem) acceptLoop(ln net.Listener) {
	for {
		conn, err := ln.Accept()
		if err != nil {
			select {
			case <-s.stopped:
				return
			default:
			}
			log.Error().Err(err).Msg("websocket accept failed")
			return
		}
		go s.handle(conn)
	}
}

func (s *Subsystem) handle(conn net.Conn) {
	defer conn.Close()
	_ = conn.SetDeadline(time.Now().Add(s.cleanupTimeout()))
}

func (s *Subsystem) cleanupTimeout() time.Duration {
	ms := s.cfg.ConnectionTimeouts.ConnectionCleanupMs
	if ms <= 0 {
		ms = 500
	}
	return time.Duration(ms) * time.Millisecond
}

// Shutdown closes the listener and returns at once; it does not wait for
// open connections, and ExitWaitSeconds is not used.
func (s *Subsystem) Shutdown() error {
	s.mu.Lock()
	ln := s.listener
	stopped := s.stopped
	s.mu.Unlock()
	if ln == nil {
		return nil
	}
	close(stopped)
	return ln.Close()
}
