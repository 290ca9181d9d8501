package mdnsserver

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hydrogen-project/hydrogen/internal/config"
)

func TestReadinessRejectsNoIPFamily(t *testing.T) {
	s := New(config.MDNSServerConfig{EnableIPv4: false, EnableIPv6: false})
	ready, msgs := s.Readiness()
	assert.False(t, ready)
	assert.NotEmpty(t, msgs)
}

func TestReadinessReportsServiceCount(t *testing.T) {
	s := New(config.MDNSServerConfig{
		EnableIPv4:   true,
		FriendlyName: "hydrogen-device",
		Services:     []config.MDNSService{{Name: "svc-a"}, {Name: "svc-b"}},
	})
	ready, msgs := s.Readiness()
	assert.True(t, ready)
	assert.Contains(t, msgs[0], "2 service(s)")
	assert.Contains(t, msgs[0], "hydrogen-device")
}

func TestShutdownWithoutInitIsNoop(t *testing.T) {
	s := New(config.MDNSServerConfig{EnableIPv4: true})
	assert.NoError(t, s.Shutdown())
}
