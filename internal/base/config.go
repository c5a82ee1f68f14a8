package base

import (
	"os"
	"strconv"
	"time"
)

// Config holds webhook.site connection settings.
type Config struct {
	// BaseURL is the webhook.site API endpoint.
	BaseURL string

	// APIKey authenticates premium API features (optional).
	APIKey string

	// Timeout for API requests.
	Timeout time.Duration

	// UserAgent identifies the client to webhook.site.
	UserAgent string

	// MaxRetries for failed HTTP requests within a single API call.
	MaxRetries int

	// PollInterval between poll cycles in the wait tools.
	PollInterval time.Duration

	// WaitMaxRetries is how many consecutive transient poll failures are
	// tolerated before a wait gives up.
	WaitMaxRetries int

	// MetricsAddr, when set, exposes Prometheus metrics on this address.
	MetricsAddr string
}

// DefaultBaseURL is the public webhook.site endpoint.
const DefaultBaseURL = "https://webhook.site"

// LoadConfig loads configuration from environment variables.
func LoadConfig() *Config {
	baseURL := os.Getenv("WEBHOOK_SITE_URL")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	timeout := DefaultTimeout
	if t := os.Getenv("WEBHOOK_SITE_TIMEOUT"); t != "" {
		if d, err := time.ParseDuration(t); err == nil && d > 0 {
			timeout = d
		}
	}

	maxRetries := 3
	if r := os.Getenv("WEBHOOK_SITE_MAX_RETRIES"); r != "" {
		if n, err := strconv.Atoi(r); err == nil && n >= 0 {
			maxRetries = n
		}
	}

	pollInterval := 2 * time.Second
	if p := os.Getenv("WEBHOOK_WAIT_POLL_INTERVAL"); p != "" {
		if d, err := time.ParseDuration(p); err == nil && d > 0 {
			pollInterval = d
		}
	}

	waitMaxRetries := 3
	if r := os.Getenv("WEBHOOK_WAIT_MAX_RETRIES"); r != "" {
		if n, err := strconv.Atoi(r); err == nil && n > 0 {
			waitMaxRetries = n
		}
	}

	userAgent := os.Getenv("WEBHOOK_SITE_USER_AGENT")
	if userAgent == "" {
		userAgent = "webhook-site-mcp-server/1.0 (github.com/probelab/webhook-site-mcp-server)"
	}

	return &Config{
		BaseURL:        baseURL,
		APIKey:         os.Getenv("WEBHOOK_SITE_API_KEY"),
		Timeout:        timeout,
		UserAgent:      userAgent,
		MaxRetries:     maxRetries,
		PollInterval:   pollInterval,
		WaitMaxRetries: waitMaxRetries,
		MetricsAddr:    os.Getenv("METRICS_ADDR"),
	}
}

// HasAPIKey returns true if an API key is configured.
func (c *Config) HasAPIKey() bool {
	return c.APIKey != ""
}
