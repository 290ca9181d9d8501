package httpserver

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hydrogen-project/hydrogen/internal/config"
)

func TestReadinessRejectsNoIPFamily(t *testing.T) {
	s := New(config.WebServerConfig{EnableIPv4: false, EnableIPv6: false, Port: 5000})
	ready, msgs := s.Readiness()
	assert.False(t, ready)
	assert.NotEmpty(t, msgs)
}

func TestReadinessAcceptsIPv4(t *testing.T) {
	s := New(config.WebServerConfig{EnableIPv4: true, Port: 5000, CORSOrigin: "*"})
	ready, _ := s.Readiness()
	assert.True(t, ready)
}

func TestWithRequestIDStampsUniqueHeader(t *testing.T) {
	var seen []string
	handler := withRequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = append(seen, w.Header().Get(requestIDHeader))
	}))

	for i := 0; i < 2; i++ {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
		assert.NotEmpty(t, rec.Header().Get(requestIDHeader))
	}
	assert.NotEqual(t, seen[0], seen[1])
}

func TestInitShutdownLifecycle(t *testing.T) {
	s := New(config.WebServerConfig{EnableIPv4: true, Port: 0, CORSOrigin: "*"})
	require := assert.New(t)
	require.NoError(s.Init())
	require.NoError(s.Shutdown())
}
