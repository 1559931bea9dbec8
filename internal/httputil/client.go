// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package httputil

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"golang.org/x/time/rate"

	"github.com/caplane/citeflex/pkg/types"
)

// ErrNotFound marks an HTTP 404 from a metadata API. Providers treat it
// as "no record", distinct from a transport failure.
var ErrNotFound = errors.New("not found")

// Client is a polite JSON API client: it sends a shared User-Agent,
// caps the outbound request rate, and retries 429 responses.
type Client struct {
	http      *http.Client
	userAgent string
	limiter   *rate.Limiter
}

// NewClient builds a Client from HTTP settings. Zero values in cfg
// should already have been defaulted by the caller.
func NewClient(cfg types.HTTPConfig) *Client {
	return &Client{
		http:      &http.Client{Timeout: cfg.Timeout},
		userAgent: cfg.UserAgent,
		limiter:   rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), 1),
	}
}

// GetJSON issues a rate-limited GET and decodes the JSON response body
// into v. header may be nil. A 404 returns ErrNotFound; any other
// non-200 status is an error carrying the host name.
func (c *Client) GetJSON(ctx context.Context, rawURL string, header http.Header, v any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")
	for k, vals := range header {
		for _, val := range vals {
			req.Header.Add(k, val)
		}
	}

	resp, err := DoWithRetry(ctx, c.http, req, 0)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("HTTP %d from %s", resp.StatusCode, req.URL.Host)
	}
	return json.NewDecoder(resp.Body).Decode(v)
}
