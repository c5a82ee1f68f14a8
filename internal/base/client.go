// Package base provides shared HTTP client infrastructure for the
// webhook.site API: retries with backoff, rate limiting, circuit breaking,
// caching, and request deduplication.
package base

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	apierrors "github.com/probelab/webhook-site-mcp-server/internal/errors"
	"github.com/probelab/webhook-site-mcp-server/internal/infra"
	"github.com/probelab/webhook-site-mcp-server/metrics"
)

const (
	// DefaultTimeout for API requests.
	DefaultTimeout = 30 * time.Second

	// DefaultCacheTTL for cached responses.
	DefaultCacheTTL = 5 * time.Minute

	// MaxConcurrentRequests limits parallel API calls.
	MaxConcurrentRequests = 5
)

// Client provides common HTTP infrastructure for the webhook.site API.
type Client struct {
	HTTPClient     *http.Client
	Logger         *slog.Logger
	Cache          *infra.Cache
	Dedup          *infra.RequestDeduplicator
	CircuitBreaker *infra.CircuitBreaker
	Semaphore      chan struct{}

	BaseURL    string
	APIKey     string
	UserAgent  string
	MaxRetries int
}

// ClientOption configures the Client.
type ClientOption func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(c *http.Client) ClientOption {
	return func(client *Client) {
		client.HTTPClient = c
	}
}

// WithLogger sets a custom logger.
func WithLogger(l *slog.Logger) ClientOption {
	return func(client *Client) {
		client.Logger = l
	}
}

// WithCache sets a custom cache.
func WithCache(c *infra.Cache) ClientOption {
	return func(client *Client) {
		client.Cache = c
	}
}

// WithBaseURL points the client at a different API endpoint
// (a self-hosted webhook.site instance, or a test server).
func WithBaseURL(u string) ClientOption {
	return func(client *Client) {
		client.BaseURL = strings.TrimRight(u, "/")
	}
}

// WithMaxRetries bounds attempts per request, including the first.
func WithMaxRetries(n int) ClientOption {
	return func(client *Client) {
		if n > 0 {
			client.MaxRetries = n
		}
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) ClientOption {
	return func(client *Client) {
		if ua != "" {
			client.UserAgent = ua
		}
	}
}

// WithAPIKey sets the Api-Key header for authenticated requests.
func WithAPIKey(key string) ClientOption {
	return func(client *Client) {
		client.APIKey = key
	}
}

// NewClient creates a new base client with default settings.
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		HTTPClient:     newHTTPClient(DefaultTimeout),
		Logger:         slog.Default(),
		Cache:          infra.NewCache(1000),
		Dedup:          infra.NewRequestDeduplicator(),
		CircuitBreaker: infra.NewCircuitBreaker(),
		Semaphore:      make(chan struct{}, MaxConcurrentRequests),
		BaseURL:        DefaultBaseURL,
		UserAgent:      "webhook-site-mcp-server/1.0",
		MaxRetries:     3,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// NewClientFromConfig creates a base client from environment configuration.
func NewClientFromConfig(cfg *Config, logger *slog.Logger) *Client {
	return NewClient(
		WithBaseURL(cfg.BaseURL),
		WithAPIKey(cfg.APIKey),
		WithLogger(logger),
		WithHTTPClient(newHTTPClient(cfg.Timeout)),
		WithMaxRetries(cfg.MaxRetries),
		WithUserAgent(cfg.UserAgent),
	)
}

// Close releases resources held by the client.
func (c *Client) Close() {
	if c.Cache != nil {
		c.Cache.Close()
	}
}

// CircuitBreakerStats returns the current circuit breaker state.
func (c *Client) CircuitBreakerStats() infra.CircuitBreakerStats {
	return c.CircuitBreaker.Stats()
}

// AcquireSlot blocks until a request slot is available or ctx is canceled.
func (c *Client) AcquireSlot(ctx context.Context) error {
	select {
	case c.Semaphore <- struct{}{}:
		return nil
	default:
	}
	metrics.RateLimitWaits.Inc()
	select {
	case c.Semaphore <- struct{}{}:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("context canceled while waiting for rate limiter: %w", ctx.Err())
	}
}

// ReleaseSlot releases a request slot.
func (c *Client) ReleaseSlot() {
	<-c.Semaphore
}

// GetJSON performs a GET request and decodes the JSON response into out.
func (c *Client) GetJSON(ctx context.Context, path string, query url.Values, out interface{}) error {
	body, status, err := c.do(ctx, http.MethodGet, path, query, nil)
	if err != nil {
		return err
	}
	return c.decode(http.MethodGet, path, status, body, out)
}

// PostJSON performs a POST request with a JSON body and decodes the response.
// A nil payload sends an empty body.
func (c *Client) PostJSON(ctx context.Context, path string, payload, out interface{}) error {
	body, status, err := c.do(ctx, http.MethodPost, path, nil, payload)
	if err != nil {
		return err
	}
	return c.decode(http.MethodPost, path, status, body, out)
}

// PutJSON performs a PUT request with a JSON body and decodes the response.
func (c *Client) PutJSON(ctx context.Context, path string, payload, out interface{}) error {
	body, status, err := c.do(ctx, http.MethodPut, path, nil, payload)
	if err != nil {
		return err
	}
	return c.decode(http.MethodPut, path, status, body, out)
}

// Delete performs a DELETE request and returns the HTTP status code.
func (c *Client) Delete(ctx context.Context, path string, query url.Values) (int, error) {
	_, status, err := c.do(ctx, http.MethodDelete, path, query, nil)
	return status, err
}

// decode maps the status code to an error or unmarshals the body into out.
func (c *Client) decode(method, path string, status int, body []byte, out interface{}) error {
	if status == http.StatusNotFound {
		return tokenOrRequestNotFound(path)
	}
	if status >= 400 {
		return &apierrors.APIError{
			Method:     method,
			Path:       path,
			StatusCode: status,
			Body:       truncate(string(body), 200),
		}
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to parse %s %s response: %w", method, path, err)
	}
	return nil
}

// do executes an HTTP request with circuit breaking, rate limiting, and
// retries. Network errors, 5xx responses, and 429s are retried; other
// status codes are returned to the caller.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, payload interface{}) ([]byte, int, error) {
	if !c.CircuitBreaker.Allow() {
		stats := c.CircuitBreaker.Stats()
		return nil, 0, &infra.ErrCircuitOpen{
			State:    stats.State,
			RetryAt:  stats.LastFailure.Add(30 * time.Second),
			Failures: stats.ConsecutiveFails,
		}
	}

	if err := c.AcquireSlot(ctx); err != nil {
		return nil, 0, err
	}
	defer c.ReleaseSlot()

	reqURL := c.BaseURL + path
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	var encoded []byte
	if payload != nil {
		var err error
		encoded, err = json.Marshal(payload)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to encode request body: %w", err)
		}
	}

	maxRetries := c.MaxRetries
	if maxRetries <= 0 {
		maxRetries = 1
	}

	action := actionLabel(method, path)
	start := time.Now()

	var lastErr error
	for attempt := 0; attempt < maxRetries; attempt++ {
		if attempt > 0 {
			metrics.APIRetries.WithLabelValues(action).Inc()
			backoff := time.Duration(attempt*attempt) * 100 * time.Millisecond
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return nil, 0, fmt.Errorf("context canceled during backoff: %w", ctx.Err())
			}
		}

		// Fresh request per attempt; the body reader is consumed on send.
		var bodyReader io.Reader
		if encoded != nil {
			bodyReader = bytes.NewReader(encoded)
		}
		req, err := http.NewRequestWithContext(ctx, method, reqURL, bodyReader)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to create request: %w", err)
		}

		req.Header.Set("Accept", "application/json")
		req.Header.Set("User-Agent", c.UserAgent)
		if encoded != nil {
			req.Header.Set("Content-Type", "application/json")
		}
		if c.APIKey != "" {
			req.Header.Set("Api-Key", c.APIKey)
		}

		resp, err := c.HTTPClient.Do(req)
		if err != nil {
			lastErr = fmt.Errorf("request failed: %w", err)
			c.Logger.Warn("API request failed, retrying",
				"attempt", attempt+1,
				"method", method,
				"path", path,
				"error", err)
			continue
		}

		body, err := readAndClose(resp)
		if err != nil {
			lastErr = fmt.Errorf("failed to read response: %w", err)
			continue
		}

		if resp.StatusCode == http.StatusTooManyRequests {
			if retryAfter := resp.Header.Get("Retry-After"); retryAfter != "" {
				if seconds, parseErr := strconv.Atoi(retryAfter); parseErr == nil {
					c.Logger.Warn("Rate limited, waiting",
						"retry_after", seconds,
						"attempt", attempt+1)
					select {
					case <-time.After(time.Duration(seconds) * time.Second):
					case <-ctx.Done():
						return nil, 0, ctx.Err()
					}
					continue
				}
			}
			lastErr = fmt.Errorf("rate limited (429)")
			continue
		}

		if resp.StatusCode >= 500 {
			lastErr = fmt.Errorf("server error %d: %s", resp.StatusCode, truncate(string(body), 200))
			continue
		}

		c.CircuitBreaker.RecordSuccess()
		metrics.RecordAPICall(action, time.Since(start).Seconds(), resp.StatusCode < 400, "")
		return body, resp.StatusCode, nil
	}

	c.CircuitBreaker.RecordFailure()
	metrics.RecordAPICall(action, time.Since(start).Seconds(), false, "retries_exhausted")
	return nil, 0, lastErr
}

// actionLabel classifies a request path into a low-cardinality metric
// label; token ids never end up in label values.
func actionLabel(method, path string) string {
	parts := strings.Split(strings.Trim(path, "/"), "/")
	switch {
	case len(parts) >= 3 && parts[0] == "token" && parts[2] == "requests":
		return method + " requests"
	case len(parts) >= 3 && parts[0] == "token" && parts[2] == "request":
		return method + " request"
	case parts[0] == "token":
		return method + " token"
	default:
		return method + " endpoint"
	}
}

// tokenOrRequestNotFound picks the right not-found error from the path shape.
func tokenOrRequestNotFound(path string) error {
	parts := strings.Split(strings.Trim(path, "/"), "/")
	// "/token/<uuid>/request/<id>" addresses a single captured request.
	if len(parts) >= 4 && parts[0] == "token" && parts[2] == "request" {
		return apierrors.NewRequestNotFoundError(parts[3])
	}
	if len(parts) >= 2 && parts[0] == "token" {
		return apierrors.NewTokenNotFoundError(parts[1])
	}
	return apierrors.NewTokenNotFoundError(path)
}

// readAndClose reads the response body and closes it.
func readAndClose(resp *http.Response) ([]byte, error) {
	body, err := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	return body, err
}

// truncate shortens a string to maxLen, adding "..." if truncated.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}

// newHTTPClient creates an HTTP client with tuned transport settings.
func newHTTPClient(timeout time.Duration) *http.Client {
	transport := &http.Transport{
		MaxIdleConns:          100,
		MaxIdleConnsPerHost:   20,
		MaxConnsPerHost:       50,
		IdleConnTimeout:       120 * time.Second,
		TLSHandshakeTimeout:   10 * time.Second,
		ResponseHeaderTimeout: 30 * time.Second,
		DisableCompression:    false,
		ForceAttemptHTTP2:     true,
	}

	return &http.Client{
		Timeout:   timeout,
		Transport: transport,
	}
}
