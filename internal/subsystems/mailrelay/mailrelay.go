// Package mailrelay is a thin Subsystem adapter for Hydrogen's SMTP relay.
// It opens a local TCP listener on ListenPort; it does not speak SMTP and
// delivers nothing to the configured outbound Servers.
package mailrelay

import (
	"fmt"
	"net"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/hydrogen-project/hydrogen/internal/config"
	"github.com/hydrogen-project/hydrogen/internal/registry"
)

// Subsystem owns the relay's listener. Accepted connections are closed
// without being read; nothing is queued or forwarded to Servers.
type Subsystem struct {
	cfg config.MailRelayConfig

	mu       sync.Mutex
	listener net.Listener
}

var _ registry.Subsystem = (*Subsystem)(nil)

// New returns a mailrelay Subsystem bound to cfg.
func New(cfg config.MailRelayConfig) *Subsystem {
	return &Subsystem{cfg: cfg}
}

// Readiness reports ready only when MailRelay is enabled and has at least
// one outbound server configured.
func (s *Subsystem) Readiness() (bool, []string) {
	if !s.cfg.Enabled {
		return false, []string{"MailRelay: disabled"}
	}
	if len(s.cfg.Servers) == 0 {
		return false, []string{"MailRelay: no outbound servers configured"}
	}
	return true, []string{fmt.Sprintf("MailRelay: ready with %d outbound server(s)", len(s.cfg.Servers))}
}

// Init opens the local listen port for inbound relay requests.
func (s *Subsystem) Init() error {
	ln, err := net.Listen("tcp", fmt.Sprintf(":%d", s.cfg.ListenPort))
	if err != nil {
		return fmt.Errorf("mailrelay listen: %w", err)
	}
	s.mu.Lock()
	s.listener = ln
	s.mu.Unlock()

	go s.acceptLoop(ln)
	return nil
}

func (s *Subsystem) acceptLoop(ln net.Listener) {
	for {
		conn, err := ln.Accept()
		if err != nil {
			return
		}
		go func(c net.Conn) {
			defer c.Close()
			// Queueing and outbound relay via the Servers list is the
			// external collaborator's responsibility (spec.md §1).
		}(conn)
	}
}

// Shutdown closes the listener.
func (s *Subsystem) Shutdown() error {
	s.mu.Lock()
	ln := s.listener
	s.mu.Unlock()
	if ln == nil {
		return nil
	}
	if err := ln.Close(); err != nil {
		log.Error().Err(err).Msg("mailrelay listener close failed")
		return err
	}
	return nil
}
