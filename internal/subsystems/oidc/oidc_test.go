package oidc

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hydrogen-project/hydrogen/internal/config"
)

func TestReadinessRequiresEnabledIssuerAndJWKS(t *testing.T) {
	s := New(config.OIDCConfig{Enabled: false})
	ready, msgs := s.Readiness()
	assert.False(t, ready)
	assert.NotEmpty(t, msgs)

	s = New(config.OIDCConfig{Enabled: true})
	ready, msgs = s.Readiness()
	assert.False(t, ready)
	assert.NotEmpty(t, msgs)

	s = New(config.OIDCConfig{Enabled: true, Issuer: "https://issuer.example.com"})
	ready, msgs = s.Readiness()
	assert.False(t, ready)
	assert.NotEmpty(t, msgs)

	s = New(config.OIDCConfig{
		Enabled: true,
		Issuer:  "https://issuer.example.com",
		Endpoints: config.OIDCEndpoints{
			JWKS: "https://issuer.example.com/.well-known/jwks.json",
		},
	})
	ready, _ = s.Readiness()
	assert.True(t, ready)
}

func TestValidateIDTokenFailsWithoutInit(t *testing.T) {
	s := New(config.OIDCConfig{Enabled: true})
	_, err := s.ValidateIDToken("not-a-real-token")
	assert.Error(t, err)
}
