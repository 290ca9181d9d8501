package oidc

import (
	"crypto/rsa"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"math/big"
	"net/http"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

// jwksRefreshInterval mirrors the teacher's Catalog cache refresh period
// (internal/catalog.Catalog, a periodic-refresh in-memory cache with its
// own background goroutine) — here driving the JWKS key cache instead of
// model price data.
const jwksRefreshInterval = 24 * time.Hour

type jwk struct {
	Kty string `json:"kty"`
	Kid string `json:"kid"`
	N   string `json:"n"`
	E   string `json:"e"`
}

type jwksDocument struct {
	Keys []jwk `json:"keys"`
}

// jwksCache fetches and periodically refreshes the signing keys published
// at an OIDC provider's JWKS endpoint, keyed by kid.
type jwksCache struct {
	uri    string
	client *http.Client

	mu   sync.RWMutex
	keys map[string]*rsa.PublicKey

	stopCh chan struct{}
	wg     sync.WaitGroup
}

func newJWKSCache(uri string) *jwksCache {
	return &jwksCache{
		uri:    uri,
		client: &http.Client{Timeout: 10 * time.Second},
		keys:   map[string]*rsa.PublicKey{},
	}
}

// Start fetches the JWKS document once synchronously, then refreshes it on
// jwksRefreshInterval in the background until Stop is called.
func (c *jwksCache) Start() error {
	if err := c.refresh(); err != nil {
		return fmt.Errorf("jwks initial fetch: %w", err)
	}
	c.stopCh = make(chan struct{})
	c.wg.Add(1)
	go c.refreshLoop()
	return nil
}

func (c *jwksCache) refreshLoop() {
	defer c.wg.Done()
	ticker := time.NewTicker(jwksRefreshInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			if err := c.refresh(); err != nil {
				log.Error().Err(err).Str("uri", c.uri).Msg("jwks refresh failed, keeping stale keys")
			}
		case <-c.stopCh:
			return
		}
	}
}

func (c *jwksCache) refresh() error {
	resp, err := c.client.Get(c.uri)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	var doc jwksDocument
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return fmt.Errorf("jwks decode: %w", err)
	}

	keys := make(map[string]*rsa.PublicKey, len(doc.Keys))
	for _, k := range doc.Keys {
		if k.Kty != "RSA" {
			continue
		}
		pub, err := rsaPublicKeyFromJWK(k)
		if err != nil {
			log.Warn().Str("kid", k.Kid).Err(err).Msg("skipping unparseable jwks key")
			continue
		}
		keys[k.Kid] = pub
	}

	c.mu.Lock()
	c.keys = keys
	c.mu.Unlock()
	log.Info().Str("uri", c.uri).Int("keys", len(keys)).Msg("jwks cache refreshed")
	return nil
}

func (c *jwksCache) key(kid string) (*rsa.PublicKey, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	pub, ok := c.keys[kid]
	return pub, ok
}

func (c *jwksCache) Stop() {
	if c.stopCh == nil {
		return
	}
	close(c.stopCh)
	c.wg.Wait()
}

func rsaPublicKeyFromJWK(k jwk) (*rsa.PublicKey, error) {
	nBytes, err := base64.RawURLEncoding.DecodeString(k.N)
	if err != nil {
		return nil, fmt.Errorf("decode n: %w", err)
	}
	eBytes, err := base64.RawURLEncoding.DecodeString(k.E)
	if err != nil {
		return nil, fmt.Errorf("decode e: %w", err)
	}
	return &rsa.PublicKey{
		N: new(big.Int).SetBytes(nBytes),
		E: int(new(big.Int).SetBytes(eBytes).Int64()),
	}, nil
}
