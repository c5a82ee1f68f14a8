// Package hook manages webhook.site tokens: the capture endpoints that
// receive HTTP requests, emails, and DNS lookups. It covers creation,
// configuration, deletion, and derivation of the endpoint's addresses.
package hook

// Token represents a webhook.site endpoint.
type Token struct {
	UUID               string `json:"uuid"`
	Alias              string `json:"alias,omitempty"`
	DefaultStatus      int    `json:"default_status"`
	DefaultContent     string `json:"default_content"`
	DefaultContentType string `json:"default_content_type"`
	Timeout            int    `json:"timeout"`
	CORS               bool   `json:"cors"`
	Premium            bool   `json:"premium"`
	Actions            bool   `json:"actions"`
	CreatedAt          string `json:"created_at"`
	UpdatedAt          string `json:"updated_at"`
	ExpiresAt          string `json:"expires_at,omitempty"`
	PremiumExpiresAt   string `json:"premium_expires_at,omitempty"`
	LatestRequestAt    string `json:"latest_request_at,omitempty"`
	RequestCount       int    `json:"requests"`
}

// TokenConfig holds optional settings for creating or updating a token.
// Nil fields are omitted from the API payload.
type TokenConfig struct {
	DefaultStatus      *int    `json:"default_status,omitempty"`
	DefaultContent     *string `json:"default_content,omitempty"`
	DefaultContentType *string `json:"default_content_type,omitempty"`
	Timeout            *int    `json:"timeout,omitempty"`
	CORS               *bool   `json:"cors,omitempty"`
	Alias              *string `json:"alias,omitempty"`
	Expiry             *int    `json:"expiry,omitempty"`
}

// IsZero reports whether no setting is present.
func (c TokenConfig) IsZero() bool {
	return c.DefaultStatus == nil &&
		c.DefaultContent == nil &&
		c.DefaultContentType == nil &&
		c.Timeout == nil &&
		c.CORS == nil &&
		c.Alias == nil &&
		c.Expiry == nil
}

// Addresses holds every address variant derived from a token. Traffic to
// any of them is captured at the same endpoint.
type Addresses struct {
	URL          string `json:"url"`
	SubdomainURL string `json:"subdomain_url"`
	APIURL       string `json:"api_url"`
	Email        string `json:"email"`
	DNS          string `json:"dns"`
}
