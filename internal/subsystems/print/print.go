// Package print is a thin Subsystem adapter for Hydrogen's print job queue.
// Job execution and motion control are external collaborators (spec.md
// §1); this adapter owns only the queue lifecycle the registry drives.
package print

import (
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/hydrogen-project/hydrogen/internal/config"
	"github.com/hydrogen-project/hydrogen/internal/registry"
)

// job is a placeholder queue entry; real job payloads are the external
// print-job executor's concern.
type job struct {
	priority int64
}

// Subsystem holds Hydrogen's in-memory print job queue, bounded by
// MaxQueuedJobs and drained by up to MaxConcurrentJobs workers.
type Subsystem struct {
	cfg config.PrintConfig

	mu      sync.Mutex
	queue   chan job
	stopCh  chan struct{}
	workers sync.WaitGroup
}

var _ registry.Subsystem = (*Subsystem)(nil)

// New returns a print Subsystem bound to cfg.
func New(cfg config.PrintConfig) *Subsystem {
	return &Subsystem{cfg: cfg}
}

// Readiness reports ready only when Print is enabled.
func (s *Subsystem) Readiness() (bool, []string) {
	if !s.cfg.Enabled {
		return false, []string{"Print: disabled"}
	}
	return true, []string{fmt.Sprintf("Print: ready with %d worker(s), queue capacity %d", s.cfg.MaxConcurrentJobs, s.cfg.MaxQueuedJobs)}
}

// Init starts the worker pool draining the job queue.
func (s *Subsystem) Init() error {
	s.mu.Lock()
	s.queue = make(chan job, s.cfg.MaxQueuedJobs)
	s.stopCh = make(chan struct{})
	s.mu.Unlock()

	for i := int64(0); i < s.cfg.MaxConcurrentJobs; i++ {
		s.workers.Add(1)
		go s.worker()
	}
	return nil
}

func (s *Subsystem) worker() {
	defer s.workers.Done()
	timeout := time.Duration(s.cfg.Timeouts.JobProcessingTimeoutMs) * time.Millisecond
	for {
		select {
		case j := <-s.queue:
			s.process(j, timeout)
		case <-s.stopCh:
			return
		}
	}
}

func (s *Subsystem) process(j job, timeout time.Duration) {
	log.Debug().Int64("priority", j.priority).Dur("timeout", timeout).Msg("print job dequeued")
	// Motion control and job execution are the external executor's
	// responsibility (spec.md §1).
}

// Shutdown stops accepting new work and waits for in-flight jobs to drain,
// bounded by ShutdownWaitMs.
func (s *Subsystem) Shutdown() error {
	s.mu.Lock()
	stopCh := s.stopCh
	s.mu.Unlock()
	if stopCh == nil {
		return nil
	}
	close(stopCh)

	done := make(chan struct{})
	go func() {
		s.workers.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-time.After(time.Duration(s.cfg.Timeouts.ShutdownWaitMs) * time.Millisecond):
		return fmt.Errorf("print: workers did not drain within shutdown wait")
	}
}
