// Package terminal is a thin Subsystem adapter exposing a web-attached
// shell gateway. Session multiplexing and PTY framing are external
// collaborators (spec.md §1); this adapter owns only the readiness check
// and the lifecycle the registry drives. It opens no sessions itself.
package terminal

import (
	"fmt"
	"os/exec"
	"sync"

	"github.com/hydrogen-project/hydrogen/internal/config"
	"github.com/hydrogen-project/hydrogen/internal/registry"
)

// Subsystem holds the terminal configuration and a session counter.
// Nothing in this package opens a session or changes the counter, so it
// stays at zero.
type Subsystem struct {
	cfg config.TerminalConfig

	mu       sync.Mutex
	sessions int64
}

var _ registry.Subsystem = (*Subsystem)(nil)

// New returns a terminal Subsystem bound to cfg.
func New(cfg config.TerminalConfig) *Subsystem {
	return &Subsystem{cfg: cfg}
}

// Readiness reports ready only when Terminal is enabled and ShellCommand
// resolves to an executable on PATH.
func (s *Subsystem) Readiness() (bool, []string) {
	if !s.cfg.Enabled {
		return false, []string{"Terminal: disabled"}
	}
	if _, err := exec.LookPath(s.cfg.ShellCommand); err != nil {
		return false, []string{fmt.Sprintf("Terminal: shell command %q not found on PATH", s.cfg.ShellCommand)}
	}
	return true, []string{fmt.Sprintf("Terminal: ready, max %d session(s)", s.cfg.MaxSessions)}
}

// Init has nothing to allocate eagerly; sessions are created on demand by
// the external gateway up to MaxSessions.
func (s *Subsystem) Init() error {
	return nil
}

// ActiveSessions returns the current session count.
func (s *Subsystem) ActiveSessions() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sessions
}

// Shutdown is a no-op: session teardown belongs to the external gateway,
// which observes the registry transitioning away from Running.
func (s *Subsystem) Shutdown() error {
	return nil
}
