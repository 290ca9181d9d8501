package print

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hydrogen-project/hydrogen/internal/config"
)

func TestReadinessRequiresEnabled(t *testing.T) {
	s := New(config.PrintConfig{Enabled: false})
	ready, msgs := s.Readiness()
	assert.False(t, ready)
	assert.NotEmpty(t, msgs)
}

func TestInitShutdownDrainsWorkers(t *testing.T) {
	s := New(config.PrintConfig{
		Enabled:           true,
		MaxQueuedJobs:     10,
		MaxConcurrentJobs: 2,
		Timeouts:          config.PrintTimeouts{ShutdownWaitMs: 1000, JobProcessingTimeoutMs: 1000},
	})
	require.NoError(t, s.Init())
	time.Sleep(10 * time.Millisecond)
	require.NoError(t, s.Shutdown())
}
