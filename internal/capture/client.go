package capture

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/probelab/webhook-site-mcp-server/internal/base"
	apperrors "github.com/probelab/webhook-site-mcp-server/internal/errors"
	"github.com/probelab/webhook-site-mcp-server/internal/hook"
)

// Sort orders accepted by the capture service.
const (
	SortNewest = "newest"
	SortOldest = "oldest"
)

// DefaultPageSize bounds list responses when the caller gives no limit.
const DefaultPageSize = 10

// Client reads captured records from the webhook.site API.
type Client struct {
	*base.Client

	clock          Clock
	pollInterval   time.Duration
	maxPollRetries int
}

// ClientOption configures a capture client.
type ClientOption func(*Client)

// WithClock sets the clock used by the wait engine. Tests inject a fake
// clock to run poll loops without real sleeps.
func WithClock(clock Clock) ClientOption {
	return func(c *Client) {
		c.clock = clock
	}
}

// WithPollInterval sets the delay between poll cycles.
func WithPollInterval(d time.Duration) ClientOption {
	return func(c *Client) {
		if d > 0 {
			c.pollInterval = d
		}
	}
}

// WithMaxPollRetries sets the consecutive transient-failure ceiling for a
// single wait invocation.
func WithMaxPollRetries(n int) ClientOption {
	return func(c *Client) {
		if n > 0 {
			c.maxPollRetries = n
		}
	}
}

// NewClient creates a capture client on top of the shared base client.
func NewClient(bc *base.Client, opts ...ClientOption) *Client {
	c := &Client{
		Client:         bc,
		clock:          systemClock{},
		pollInterval:   DefaultPollInterval,
		maxPollRetries: DefaultMaxPollRetries,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// NewClientFromConfig creates a capture client with the wait tunables
// taken from configuration.
func NewClientFromConfig(bc *base.Client, cfg *base.Config) *Client {
	return NewClient(bc,
		WithPollInterval(cfg.PollInterval),
		WithMaxPollRetries(cfg.WaitMaxRetries),
	)
}

func errValidation(field, value, message string) error {
	return apperrors.NewValidationError(field, value, message)
}

// ListOptions filters a capture listing. Zero values are omitted from the
// request.
type ListOptions struct {
	// PerPage bounds the page size.
	PerPage int
	// Page selects a result page, 1-based.
	Page int
	// Sorting is "newest" or "oldest".
	Sorting string
	// Type restricts results to web, email, or dns records.
	Type string
	// Query is a raw search expression, e.g. "method:POST content:hello".
	// A Type filter is folded into it as "type:<t>".
	Query string
	// DateFrom/DateTo bound the capture time, "yyyy-MM-dd HH:mm:ss" or
	// relative forms like "now-7d".
	DateFrom string
	DateTo   string
}

func (o ListOptions) values() url.Values {
	params := url.Values{}
	if o.PerPage > 0 {
		params.Set("per_page", strconv.Itoa(o.PerPage))
	}
	if o.Page > 0 {
		params.Set("page", strconv.Itoa(o.Page))
	}
	if o.Sorting != "" {
		params.Set("sorting", o.Sorting)
	}
	var query []string
	if o.Type != "" {
		query = append(query, "type:"+o.Type)
	}
	if o.Query != "" {
		query = append(query, o.Query)
	}
	if len(query) > 0 {
		params.Set("query", strings.Join(query, " "))
	}
	if o.DateFrom != "" {
		params.Set("date_from", o.DateFrom)
	}
	if o.DateTo != "" {
		params.Set("date_to", o.DateTo)
	}
	return params
}

// List returns a page of captured records for a token.
func (c *Client) List(ctx context.Context, token string, opts ListOptions) (*Page, error) {
	if err := hook.ValidateToken(token); err != nil {
		return nil, err
	}

	var page Page
	path := "/token/" + url.PathEscape(token) + "/requests"
	if err := c.GetJSON(ctx, path, opts.values(), &page); err != nil {
		return nil, fmt.Errorf("failed to list captured requests: %w", err)
	}
	return &page, nil
}

// Latest returns the most recent captured record, or nil when the
// endpoint has seen no traffic.
func (c *Client) Latest(ctx context.Context, token string) (*Request, error) {
	page, err := c.List(ctx, token, ListOptions{PerPage: 1, Sorting: SortNewest})
	if err != nil {
		return nil, err
	}
	if len(page.Data) == 0 {
		return nil, nil
	}
	return &page.Data[0], nil
}

// GetRequest fetches a single captured record by id.
func (c *Client) GetRequest(ctx context.Context, token, requestID string) (*Request, error) {
	if err := hook.ValidateToken(token); err != nil {
		return nil, err
	}
	if requestID == "" {
		return nil, errValidation("request_id", requestID, "must not be empty")
	}

	var req Request
	path := "/token/" + url.PathEscape(token) + "/request/" + url.PathEscape(requestID)
	if err := c.GetJSON(ctx, path, nil, &req); err != nil {
		return nil, err
	}
	return &req, nil
}

// DeleteRequest removes one captured record. Returns true when the API
// confirmed the deletion.
func (c *Client) DeleteRequest(ctx context.Context, token, requestID string) (bool, int, error) {
	if err := hook.ValidateToken(token); err != nil {
		return false, 0, err
	}
	if requestID == "" {
		return false, 0, errValidation("request_id", requestID, "must not be empty")
	}

	path := "/token/" + url.PathEscape(token) + "/request/" + url.PathEscape(requestID)
	status, err := c.Delete(ctx, path, nil)
	if err != nil {
		return false, status, err
	}
	return status == http.StatusOK || status == http.StatusNoContent, status, nil
}

// DeleteFilters restricts a bulk deletion. A zero value deletes all
// captured records.
type DeleteFilters struct {
	DateFrom string
	DateTo   string
	Query    string
}

func (f DeleteFilters) values() url.Values {
	params := url.Values{}
	if f.DateFrom != "" {
		params.Set("date_from", f.DateFrom)
	}
	if f.DateTo != "" {
		params.Set("date_to", f.DateTo)
	}
	if f.Query != "" {
		params.Set("query", f.Query)
	}
	return params
}

// DeleteAll removes captured records matching the filters, or everything
// when the filters are empty.
func (c *Client) DeleteAll(ctx context.Context, token string, filters DeleteFilters) (bool, int, error) {
	if err := hook.ValidateToken(token); err != nil {
		return false, 0, err
	}

	path := "/token/" + url.PathEscape(token) + "/request"
	status, err := c.Delete(ctx, path, filters.values())
	if err != nil {
		return false, status, err
	}
	return status == http.StatusOK || status == http.StatusNoContent, status, nil
}
