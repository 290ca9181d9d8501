package mailrelay

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hydrogen-project/hydrogen/internal/config"
)

func TestReadinessRequiresEnabledAndServers(t *testing.T) {
	s := New(config.MailRelayConfig{Enabled: false})
	ready, msgs := s.Readiness()
	assert.False(t, ready)
	assert.NotEmpty(t, msgs)

	s = New(config.MailRelayConfig{Enabled: true})
	ready, msgs = s.Readiness()
	assert.False(t, ready)
	assert.NotEmpty(t, msgs)

	s = New(config.MailRelayConfig{Enabled: true, Servers: []config.MailServer{{Host: "smtp.example.com"}}})
	ready, _ = s.Readiness()
	assert.True(t, ready)
}

func TestInitShutdownLifecycle(t *testing.T) {
	s := New(config.MailRelayConfig{
		Enabled:    true,
		ListenPort: 0,
		Servers:    []config.MailServer{{Host: "smtp.example.com"}},
	})
	require.NoError(t, s.Init())
	require.NoError(t, s.Shutdown())
}
