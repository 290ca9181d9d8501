// Package oidc is a thin Subsystem adapter exposing Hydrogen as an OIDC
// relying party: the JWKS signing-key cache and ID-token validation are
// owned here. Endpoint URLs are taken from configuration; no discovery
// document is fetched. The token endpoints themselves are external
// collaborators (spec.md §1).
package oidc

import (
	"fmt"

	"github.com/hydrogen-project/hydrogen/internal/config"
	"github.com/hydrogen-project/hydrogen/internal/registry"
)

// Subsystem holds OIDC client configuration and the JWKS cache used to
// verify ID-token signatures.
type Subsystem struct {
	cfg  config.OIDCConfig
	jwks *jwksCache
}

var _ registry.Subsystem = (*Subsystem)(nil)

// New returns an oidc Subsystem bound to cfg.
func New(cfg config.OIDCConfig) *Subsystem {
	return &Subsystem{cfg: cfg}
}

// Readiness reports ready only when OIDC is enabled and both an Issuer and
// a JWKS endpoint are configured.
func (s *Subsystem) Readiness() (bool, []string) {
	if !s.cfg.Enabled {
		return false, []string{"OIDC: disabled"}
	}
	if s.cfg.Issuer == "" {
		return false, []string{"OIDC: Issuer not configured"}
	}
	if s.cfg.Endpoints.JWKS == "" {
		return false, []string{"OIDC: Endpoints.JWKS not configured"}
	}
	return true, []string{fmt.Sprintf("OIDC: ready for issuer %q", s.cfg.Issuer)}
}

// Init fetches the JWKS document once and starts its background refresh.
func (s *Subsystem) Init() error {
	s.jwks = newJWKSCache(s.cfg.Endpoints.JWKS)
	return s.jwks.Start()
}

// Shutdown stops the JWKS refresh loop.
func (s *Subsystem) Shutdown() error {
	if s.jwks != nil {
		s.jwks.Stop()
	}
	return nil
}
