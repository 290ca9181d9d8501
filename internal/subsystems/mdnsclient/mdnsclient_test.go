package mdnsclient

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hydrogen-project/hydrogen/internal/config"
)

func TestReadinessRejectsNoIPFamily(t *testing.T) {
	s := New(config.MDNSClientConfig{EnableIPv4: false, EnableIPv6: false})
	ready, msgs := s.Readiness()
	assert.False(t, ready)
	assert.NotEmpty(t, msgs)
}

func TestInitShutdownLifecycle(t *testing.T) {
	s := New(config.MDNSClientConfig{EnableIPv4: true, ScanInterval: 5 * time.Millisecond})
	require.NoError(t, s.Init())
	time.Sleep(12 * time.Millisecond)
	require.NoError(t, s.Shutdown())
}

func TestShutdownWithoutInitIsNoop(t *testing.T) {
	s := New(config.MDNSClientConfig{EnableIPv4: true})
	assert.NoError(t, s.Shutdown())
}
