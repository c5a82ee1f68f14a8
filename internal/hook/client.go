package hook

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/probelab/webhook-site-mcp-server/internal/base"
	"github.com/probelab/webhook-site-mcp-server/metrics"
)

const (
	// DefaultCacheTTL for token metadata. Tokens change rarely; captured
	// traffic is served by the capture package and never cached here.
	DefaultCacheTTL = 2 * time.Minute

	// EmailDomain receives mail addressed to {token}@email.webhook.site.
	EmailDomain = "email.webhook.site"

	// DNSDomain captures lookups of {token}.dnshook.site and subdomains.
	DNSDomain = "dnshook.site"
)

// Client provides access to the webhook.site token API.
type Client struct {
	*base.Client
}

// NewClient creates a new token client on top of the shared base client.
func NewClient(bc *base.Client) *Client {
	return &Client{Client: bc}
}

// Create creates a new token with default settings.
func (c *Client) Create(ctx context.Context) (*Token, error) {
	var token Token
	if err := c.PostJSON(ctx, "/token", nil, &token); err != nil {
		return nil, fmt.Errorf("failed to create token: %w", err)
	}
	return &token, nil
}

// CreateWithConfig creates a new token with custom settings.
func (c *Client) CreateWithConfig(ctx context.Context, config TokenConfig) (*Token, error) {
	if err := ValidateConfig(config); err != nil {
		return nil, err
	}
	var token Token
	if err := c.PostJSON(ctx, "/token", config, &token); err != nil {
		return nil, fmt.Errorf("failed to create token: %w", err)
	}
	return &token, nil
}

// Get retrieves token metadata. Results are cached briefly.
func (c *Client) Get(ctx context.Context, token string) (*Token, error) {
	if err := ValidateToken(token); err != nil {
		return nil, err
	}

	cacheKey := "token:" + token
	if cached, ok := c.Cache.Get(cacheKey); ok {
		metrics.RecordCacheAccess(true)
		return cached.(*Token), nil
	}
	metrics.RecordCacheAccess(false)

	result, _, err := c.Dedup.Do(ctx, cacheKey, func() (interface{}, error) {
		var t Token
		if err := c.GetJSON(ctx, "/token/"+url.PathEscape(token), nil, &t); err != nil {
			return nil, err
		}
		return &t, nil
	})
	if err != nil {
		return nil, err
	}

	t := result.(*Token)
	c.Cache.Set(cacheKey, t, DefaultCacheTTL)
	return t, nil
}

// Update changes token settings and invalidates the cached metadata.
func (c *Client) Update(ctx context.Context, token string, config TokenConfig) (*Token, error) {
	if err := ValidateToken(token); err != nil {
		return nil, err
	}
	if err := ValidateConfig(config); err != nil {
		return nil, err
	}

	var t Token
	if err := c.PutJSON(ctx, "/token/"+url.PathEscape(token), config, &t); err != nil {
		return nil, fmt.Errorf("failed to update token: %w", err)
	}
	c.Cache.Delete("token:" + token)
	return &t, nil
}

// Delete removes a token and all its captured data. Returns true when the
// API confirmed the deletion.
func (c *Client) Delete(ctx context.Context, token string) (bool, int, error) {
	if err := ValidateToken(token); err != nil {
		return false, 0, err
	}

	status, err := c.Client.Delete(ctx, "/token/"+url.PathEscape(token), nil)
	if err != nil {
		return false, status, err
	}
	c.Cache.Delete("token:" + token)
	ok := status == http.StatusOK || status == http.StatusNoContent
	return ok, status, nil
}

// Send posts arbitrary JSON data to the endpoint so it shows up as a
// captured request.
func (c *Client) Send(ctx context.Context, token string, data map[string]interface{}) (string, error) {
	if err := ValidateToken(token); err != nil {
		return "", err
	}

	target := "/" + url.PathEscape(token)
	if err := c.PostJSON(ctx, target, data, nil); err != nil {
		return "", fmt.Errorf("failed to send data to endpoint: %w", err)
	}
	return c.BaseURL + target, nil
}

// DeriveAddresses builds every address variant for a token. The alias,
// when set, replaces the UUID in the path-style URL only.
func (c *Client) DeriveAddresses(token, alias string) Addresses {
	identifier := token
	if alias != "" {
		identifier = alias
	}
	// Subdomain, email, and DNS addresses always use the UUID; the public
	// host is fixed even when the API endpoint is overridden for tests.
	publicBase := c.BaseURL
	if !strings.Contains(publicBase, "webhook.site") {
		publicBase = base.DefaultBaseURL
	}
	host := strings.TrimPrefix(strings.TrimPrefix(publicBase, "https://"), "http://")
	return Addresses{
		URL:          publicBase + "/" + identifier,
		SubdomainURL: "https://" + token + "." + host,
		APIURL:       publicBase + "/token/" + token,
		Email:        token + "@" + EmailDomain,
		DNS:          token + "." + DNSDomain,
	}
}

// Exists verifies a token is still valid on the remote service.
func (c *Client) Exists(ctx context.Context, token string) error {
	_, err := c.Get(ctx, token)
	return err
}
