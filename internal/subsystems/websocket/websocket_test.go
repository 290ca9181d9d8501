package websocket

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hydrogen-project/hydrogen/internal/config"
)

func TestReadinessRejectsNoIPFamily(t *testing.T) {
	s := New(config.WebSocketConfig{EnableIPv4: false, EnableIPv6: false, Port: 5001})
	ready, msgs := s.Readiness()
	assert.False(t, ready)
	assert.NotEmpty(t, msgs)
}

func TestReadinessAcceptsIPv6(t *testing.T) {
	s := New(config.WebSocketConfig{EnableIPv6: true, Port: 5001})
	ready, _ := s.Readiness()
	assert.True(t, ready)
}

func TestInitShutdownLifecycle(t *testing.T) {
	s := New(config.WebSocketConfig{EnableIPv4: true, Port: 0})
	require.NoError(t, s.Init())
	require.NoError(t, s.Shutdown())
}
