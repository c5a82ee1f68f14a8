package bounty

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/probelab/webhook-site-mcp-server/internal/capture"
	apperrors "github.com/probelab/webhook-site-mcp-server/internal/errors"
	"github.com/probelab/webhook-site-mcp-server/internal/hook"
)

const (
	// DefaultCallbackWindow is how far back CheckCallbacks looks.
	DefaultCallbackWindow = 60 * time.Minute

	// callbackPageSize bounds one callback sweep.
	callbackPageSize = 50

	// maxReportedCallbacks caps the per-callback detail in a report.
	maxReportedCallbacks = 10
)

// Client inspects captured traffic for out-of-band callbacks.
type Client struct {
	capture *capture.Client
	now     func() time.Time
}

// ClientOption configures a bounty client.
type ClientOption func(*Client)

// WithNowFunc overrides the time source used for callback windows.
func WithNowFunc(now func() time.Time) ClientOption {
	return func(c *Client) {
		c.now = now
	}
}

// NewClient creates a bounty client reading through the capture client.
func NewClient(cc *capture.Client, opts ...ClientOption) *Client {
	c := &Client{
		capture: cc,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Callback summarizes one captured out-of-band hit.
type Callback struct {
	Type              string `json:"type"`
	Method            string `json:"method,omitempty"`
	IP                string `json:"ip,omitempty"`
	UserAgent         string `json:"user_agent"`
	Timestamp         string `json:"timestamp,omitempty"`
	URL               string `json:"url,omitempty"`
	MatchedIdentifier bool   `json:"matched_identifier,omitempty"`
}

// CallbackReport is the outcome of one callback sweep.
type CallbackReport struct {
	Detected         bool           `json:"detected"`
	TotalCallbacks   int            `json:"total_callbacks"`
	ByType           map[string]int `json:"by_type"`
	SinceMinutes     int            `json:"since_minutes"`
	IdentifierFilter string         `json:"identifier_filter,omitempty"`
	Callbacks        []Callback     `json:"callbacks"`
	Message          string         `json:"message"`
}

// CheckCallbacks sweeps the endpoint for traffic captured within the
// window, categorizes it by type, and reports the most recent hits.
func (c *Client) CheckCallbacks(ctx context.Context, token string, window time.Duration, identifier string) (*CallbackReport, error) {
	if window <= 0 {
		window = DefaultCallbackWindow
	}
	since := c.now().UTC().Add(-window)

	page, err := c.capture.List(ctx, token, capture.ListOptions{
		PerPage:  callbackPageSize,
		Sorting:  capture.SortNewest,
		DateFrom: since.Format("2006-01-02 15:04:05"),
		Query:    identifier,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to check for callbacks: %w", err)
	}

	report := &CallbackReport{
		TotalCallbacks:   len(page.Data),
		ByType:           map[string]int{"web": 0, "dns": 0, "email": 0},
		SinceMinutes:     int(window.Minutes()),
		IdentifierFilter: identifier,
		Callbacks:        []Callback{},
	}
	for _, rec := range page.Data {
		if _, known := report.ByType[rec.Type]; known {
			report.ByType[rec.Type]++
		}
		if len(report.Callbacks) >= maxReportedCallbacks {
			continue
		}
		cb := Callback{
			Type:      rec.Type,
			Method:    rec.Method,
			IP:        rec.IP,
			UserAgent: userAgent(rec),
			Timestamp: rec.CreatedAt,
			URL:       rec.URL,
		}
		if identifier != "" && recordMatches(&rec, identifier) {
			cb.MatchedIdentifier = true
		}
		report.Callbacks = append(report.Callbacks, cb)
	}

	report.Detected = report.TotalCallbacks > 0
	verdict := "No callbacks"
	if report.Detected {
		verdict = "CALLBACKS DETECTED!"
	}
	report.Message = fmt.Sprintf("%s (%d requests in last %d min)", verdict, report.TotalCallbacks, report.SinceMinutes)
	return report, nil
}

func userAgent(rec capture.Request) string {
	if ua := rec.Headers.Get("user-agent"); ua != "Unknown" {
		return ua
	}
	return "N/A"
}

// recordMatches reports whether the identifier shows up anywhere in the
// record's visible fields.
func recordMatches(rec *capture.Request, identifier string) bool {
	if strings.Contains(rec.URL, identifier) || strings.Contains(rec.Content, identifier) {
		return true
	}
	for _, values := range rec.Headers {
		for _, v := range values {
			if strings.Contains(v, identifier) {
				return true
			}
		}
	}
	return false
}

// looseURLPattern also matches scheme-less www. links; trailing
// punctuation is stripped afterwards.
var looseURLPattern = regexp.MustCompile(`(?i)https?://[^\s<>"')\]]+|www\.[^\s<>"')\]]+`)

// authLinkKeywords and apiLinkKeywords categorize extracted links.
var (
	authLinkKeywords = []string{"token", "auth", "verify", "reset", "confirm", "magic", "login"}
	apiLinkKeywords  = []string{"api", "webhook", "callback"}
)

// ExtractedLinks categorizes the URLs found in one captured record.
type ExtractedLinks struct {
	RequestID    string   `json:"request_id"`
	RequestType  string   `json:"request_type"`
	TotalLinks   int      `json:"total_links"`
	FilterDomain string   `json:"filter_domain,omitempty"`
	AuthLinks    []string `json:"auth_links"`
	APILinks     []string `json:"api_links"`
	AllLinks     []string `json:"all_links"`
}

// ExtractRequestLinks pulls URLs out of a specific captured record, or
// the latest one when requestID is empty. filterDomain keeps only links
// containing that substring.
func (c *Client) ExtractRequestLinks(ctx context.Context, token, requestID, filterDomain string) (*ExtractedLinks, error) {
	if err := hook.ValidateToken(token); err != nil {
		return nil, err
	}

	var rec *capture.Request
	var err error
	if requestID != "" {
		rec, err = c.capture.GetRequest(ctx, token, requestID)
	} else {
		rec, err = c.capture.Latest(ctx, token)
	}
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, apperrors.NewRequestNotFoundError("latest")
	}

	content := rec.Content
	if content == "" {
		content = rec.TextContent
	}

	links := CleanLinks(looseURLPattern.FindAllString(content, -1))
	if filterDomain != "" {
		filtered := links[:0]
		for _, link := range links {
			if strings.Contains(link, filterDomain) {
				filtered = append(filtered, link)
			}
		}
		links = filtered
	}

	result := &ExtractedLinks{
		RequestID:    rec.UUID,
		RequestType:  rec.Type,
		TotalLinks:   len(links),
		FilterDomain: filterDomain,
		AuthLinks:    []string{},
		APILinks:     []string{},
		AllLinks:     links,
	}
	for _, link := range links {
		lower := strings.ToLower(link)
		if containsAny(lower, authLinkKeywords) {
			result.AuthLinks = append(result.AuthLinks, link)
		}
		if containsAny(lower, apiLinkKeywords) {
			result.APILinks = append(result.APILinks, link)
		}
	}
	return result, nil
}

// CleanLinks strips trailing punctuation, prefixes scheme-less matches
// with https://, and deduplicates preserving first-seen order.
func CleanLinks(raw []string) []string {
	seen := make(map[string]struct{}, len(raw))
	links := []string{}
	for _, link := range raw {
		link = strings.TrimRight(link, ".,;:!?")
		if !strings.HasPrefix(link, "http") {
			link = "https://" + link
		}
		if _, dup := seen[link]; dup {
			continue
		}
		seen[link] = struct{}{}
		links = append(links, link)
	}
	return links
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
