// Package mdnsclient is a thin Subsystem adapter standing in for an mDNS
// service scanner. As with mdnsserver, no mDNS library is present in the
// retrieved example pack; rather than fabricating a dependency, this
// adapter runs a ticker that only logs each scan tick and sends no network
// traffic (see DESIGN.md).
package mdnsclient

import (
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/hydrogen-project/hydrogen/internal/config"
	"github.com/hydrogen-project/hydrogen/internal/registry"
)

// Subsystem ticks every ScanInterval for the configured ServiceTypes; each
// tick is only logged.
type Subsystem struct {
	cfg config.MDNSClientConfig

	mu     sync.Mutex
	stopCh chan struct{}
	wg     sync.WaitGroup
}

var _ registry.Subsystem = (*Subsystem)(nil)

// New returns an mdnsclient Subsystem bound to cfg.
func New(cfg config.MDNSClientConfig) *Subsystem {
	return &Subsystem{cfg: cfg}
}

// Readiness reports ready unless both IP families are disabled.
func (s *Subsystem) Readiness() (bool, []string) {
	if !s.cfg.EnableIPv4 && !s.cfg.EnableIPv6 {
		return false, []string{"mDNSClient: neither EnableIPv4 nor EnableIPv6 is set"}
	}
	return true, []string{fmt.Sprintf("mDNSClient: scanning %d service type(s) every %s", len(s.cfg.ServiceTypes), s.cfg.ScanInterval)}
}

// Init starts the background scan ticker.
func (s *Subsystem) Init() error {
	s.mu.Lock()
	s.stopCh = make(chan struct{})
	s.mu.Unlock()

	s.wg.Add(1)
	go s.scanLoop()
	return nil
}

func (s *Subsystem) scanLoop() {
	defer s.wg.Done()
	interval := s.cfg.ScanInterval
	if interval <= 0 {
		interval = 30 * time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			log.Debug().Strs("service_types", s.cfg.ServiceTypes).Msg("mdnsclient scan tick")
		case <-s.stopCh:
			return
		}
	}
}

// Shutdown stops the scan loop and waits for it to exit.
func (s *Subsystem) Shutdown() error {
	s.mu.Lock()
	stopCh := s.stopCh
	s.mu.Unlock()
	if stopCh == nil {
		return nil
	}
	close(stopCh)
	s.wg.Wait()
	return nil
}
