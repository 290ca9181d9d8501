package terminal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hydrogen-project/hydrogen/internal/config"
)

func TestReadinessRequiresEnabled(t *testing.T) {
	s := New(config.TerminalConfig{Enabled: false})
	ready, msgs := s.Readiness()
	assert.False(t, ready)
	assert.NotEmpty(t, msgs)
}

func TestReadinessRejectsMissingShell(t *testing.T) {
	s := New(config.TerminalConfig{Enabled: true, ShellCommand: "this-shell-does-not-exist-anywhere"})
	ready, msgs := s.Readiness()
	assert.False(t, ready)
	assert.NotEmpty(t, msgs)
}

func TestReadinessAcceptsResolvableShell(t *testing.T) {
	s := New(config.TerminalConfig{Enabled: true, ShellCommand: "sh", MaxSessions: 4})
	ready, _ := s.Readiness()
	assert.True(t, ready)
}

func TestInitShutdownAndSessionCount(t *testing.T) {
	s := New(config.TerminalConfig{Enabled: true, ShellCommand: "sh"})
	require.NoError(t, s.Init())
	assert.Equal(t, int64(0), s.ActiveSessions())
	require.NoError(t, s.Shutdown())
}
