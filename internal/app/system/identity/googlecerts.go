// internal/app/system/identity/googlecerts.go
package identity

import (
	"context"
	"crypto/rsa"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// securetoken signing certs, keyed by kid. Google rotates these and
// publishes the refresh interval in the Cache-Control header.
const certsURL = "https://www.googleapis.com/robot/v1/metadata/x509/securetoken@system.gserviceaccount.com"

const defaultCertTTL = time.Hour

// GoogleCerts is a KeySource backed by the public securetoken cert
// endpoint. Certs are fetched lazily and cached until the TTL the
// endpoint advertises expires.
type GoogleCerts struct {
	client *http.Client
	url    string

	mu      sync.RWMutex
	keys    map[string]*rsa.PublicKey
	expires time.Time
}

// NewGoogleCerts returns a cert source using the given HTTP client,
// or http.DefaultClient when nil.
func NewGoogleCerts(client *http.Client) *GoogleCerts {
	if client == nil {
		client = http.DefaultClient
	}
	return &GoogleCerts{client: client, url: certsURL}
}

// Key returns the RSA public key for kid, refreshing the cache when it
// is stale or the kid is unknown (rotation).
func (g *GoogleCerts) Key(ctx context.Context, kid string) (*rsa.PublicKey, error) {
	g.mu.RLock()
	key, ok := g.keys[kid]
	fresh := time.Now().Before(g.expires)
	g.mu.RUnlock()
	if ok && fresh {
		return key, nil
	}

	if err := g.refresh(ctx); err != nil {
		return nil, err
	}

	g.mu.RLock()
	defer g.mu.RUnlock()
	key, ok = g.keys[kid]
	if !ok {
		return nil, fmt.Errorf("no signing cert for kid %q", kid)
	}
	return key, nil
}

func (g *GoogleCerts) refresh(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.url, nil)
	if err != nil {
		return err
	}
	resp, err := g.client.Do(req)
	if err != nil {
		return fmt.Errorf("fetch signing certs: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("fetch signing certs: unexpected status %d", resp.StatusCode)
	}

	var pems map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&pems); err != nil {
		return fmt.Errorf("decode signing certs: %w", err)
	}

	keys := make(map[string]*rsa.PublicKey, len(pems))
	for kid, pemCert := range pems {
		key, err := jwt.ParseRSAPublicKeyFromPEM([]byte(pemCert))
		if err != nil {
			return fmt.Errorf("parse signing cert %q: %w", kid, err)
		}
		keys[kid] = key
	}

	ttl := maxAge(resp.Header.Get("Cache-Control"))

	g.mu.Lock()
	g.keys = keys
	g.expires = time.Now().Add(ttl)
	g.mu.Unlock()
	return nil
}

// maxAge extracts max-age from a Cache-Control header, falling back to
// defaultCertTTL when absent or unparsable.
func maxAge(header string) time.Duration {
	for _, part := range strings.Split(header, ",") {
		part = strings.TrimSpace(part)
		if v, ok := strings.CutPrefix(part, "max-age="); ok {
			if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
				return time.Duration(secs) * time.Second
			}
		}
	}
	return defaultCertTTL
}
