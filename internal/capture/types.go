// Package capture reads the traffic recorded at a webhook.site endpoint:
// listing, searching, and deleting captured requests, plus the wait/poll
// engine that blocks until a new request or email arrives.
package capture

import "encoding/json"

// Record types reported by the capture service.
const (
	TypeWeb   = "web"
	TypeEmail = "email"
	TypeDNS   = "dns"
)

// Request is one captured event at an endpoint: an HTTP request, an
// inbound email, or a DNS lookup. Records are immutable once captured.
type Request struct {
	UUID        string     `json:"uuid"`
	TokenID     string     `json:"token_id,omitempty"`
	Type        string     `json:"type"`
	Method      string     `json:"method,omitempty"`
	IP          string     `json:"ip,omitempty"`
	URL         string     `json:"url,omitempty"`
	UserAgent   string     `json:"user_agent,omitempty"`
	Headers     HeaderMap  `json:"headers,omitempty"`
	Query       QueryMap   `json:"query,omitempty"`
	Content     string     `json:"content,omitempty"`
	TextContent string     `json:"text_content,omitempty"`
	HTMLContent string     `json:"html_content,omitempty"`
	CreatedAt   string     `json:"created_at,omitempty"`
	UpdatedAt   string     `json:"updated_at,omitempty"`
}

// HeaderMap holds captured headers. The API returns each header as a list
// of values.
type HeaderMap map[string][]string

// Get returns the first value for a header, trying the exact name and its
// title-cased form. Missing headers yield "Unknown" so email summaries
// never carry empty from/subject fields.
func (h HeaderMap) Get(name string) string {
	if len(h) == 0 {
		return "Unknown"
	}
	values, ok := h[name]
	if !ok {
		values, ok = h[titleCase(name)]
	}
	if !ok || len(values) == 0 || values[0] == "" {
		return "Unknown"
	}
	return values[0]
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	b := []byte(s)
	if b[0] >= 'a' && b[0] <= 'z' {
		b[0] -= 'a' - 'A'
	}
	return string(b)
}

// QueryMap holds captured query-string parameters. The API usually sends
// string values but is not strict about it, so values are kept raw.
type QueryMap map[string]json.RawMessage

// Page is one page of captured records, newest-first unless the caller
// asked otherwise.
type Page struct {
	Data        []Request `json:"data"`
	Total       int       `json:"total"`
	PerPage     int       `json:"per_page"`
	CurrentPage int       `json:"current_page"`
}

// View is the caller-facing shape of a captured record, with safe defaults
// for fields the capture service may omit.
type View struct {
	UUID        string    `json:"uuid"`
	Type        string    `json:"type"`
	Method      string    `json:"method"`
	Content     string    `json:"content"`
	TextContent string    `json:"text_content,omitempty"`
	HTMLContent string    `json:"html_content,omitempty"`
	Headers     HeaderMap `json:"headers"`
	Query       QueryMap  `json:"query"`
	URL         string    `json:"url"`
	IP          string    `json:"ip"`
	CreatedAt   string    `json:"created_at"`

	raw *Request
}

// NewView formats a raw record into a View, filling missing fields with
// safe defaults.
func NewView(r *Request) *View {
	v := &View{
		raw:         r,
		UUID:        r.UUID,
		Type:        r.Type,
		Method:      r.Method,
		Content:     r.Content,
		TextContent: r.TextContent,
		HTMLContent: r.HTMLContent,
		Headers:     r.Headers,
		Query:       r.Query,
		URL:         r.URL,
		IP:          r.IP,
		CreatedAt:   r.CreatedAt,
	}
	if v.UUID == "" {
		v.UUID = "unknown"
	}
	if v.Type == "" {
		v.Type = "unknown"
	}
	if v.Method == "" {
		v.Method = "UNKNOWN"
	}
	if v.Headers == nil {
		v.Headers = HeaderMap{}
	}
	if v.Query == nil {
		v.Query = QueryMap{}
	}
	if v.IP == "" {
		v.IP = "unknown"
	}
	if v.CreatedAt == "" {
		v.CreatedAt = "unknown"
	}
	return v
}

// EmailView is the caller-facing shape of a captured email, with sender
// and subject pulled out of the headers.
type EmailView struct {
	UUID        string   `json:"uuid"`
	From        string   `json:"from"`
	Subject     string   `json:"subject"`
	TextContent string   `json:"text_content,omitempty"`
	HTMLContent string   `json:"html_content,omitempty"`
	CreatedAt   string   `json:"created_at"`
	AllLinks    []string `json:"all_links"`
	AuthLinks   []string `json:"auth_links,omitempty"`
}

// NewEmailView formats a captured email record. Links are attached by the
// wait engine when extraction is enabled.
func NewEmailView(r *Request) *EmailView {
	return &EmailView{
		UUID:        r.UUID,
		From:        r.Headers.Get("from"),
		Subject:     r.Headers.Get("subject"),
		TextContent: r.TextContent,
		HTMLContent: r.HTMLContent,
		CreatedAt:   r.CreatedAt,
	}
}

// Body returns the email text used for link extraction, preferring the
// text part over HTML.
func (r *Request) Body() string {
	if r.TextContent != "" {
		return r.TextContent
	}
	return r.HTMLContent
}
