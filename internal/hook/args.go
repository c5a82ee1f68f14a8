package hook

// CreateSimpleArgs is the (empty) parameter set for default token creation
type CreateSimpleArgs struct{}

// CreateTokenArgs contains parameters for creating a token
type CreateTokenArgs struct {
	DefaultStatus      *int    `json:"default_status,omitempty" jsonschema_description:"HTTP status code the endpoint responds with (200-599, default 200)"`
	DefaultContent     *string `json:"default_content,omitempty" jsonschema_description:"Response body the endpoint returns"`
	DefaultContentType *string `json:"default_content_type,omitempty" jsonschema_description:"Content-Type of the endpoint response (default text/html)"`
	Timeout            *int    `json:"timeout,omitempty" jsonschema_description:"Seconds to delay the response (0-30)"`
	CORS               *bool   `json:"cors,omitempty" jsonschema_description:"Send CORS headers on responses"`
	Alias              *string `json:"alias,omitempty" jsonschema_description:"Custom alias for the endpoint URL (3-32 chars)"`
	Expiry             *int    `json:"expiry,omitempty" jsonschema_description:"Seconds until the token expires (max 604800 = 7 days)"`
}

// CreateTokenResult is the result of creating a token
type CreateTokenResult struct {
	TokenID   string    `json:"token_id"`
	Addresses Addresses `json:"addresses"`
	ExpiresAt string    `json:"expires_at,omitempty"`
	Message   string    `json:"message"`
}

// GetTokenArgs contains parameters for token lookup
type GetTokenArgs struct {
	TokenID string `json:"token_id" jsonschema:"required" jsonschema_description:"Webhook token UUID or alias"`
}

// GetTokenResult is the result of a token lookup
type GetTokenResult struct {
	Token     *Token    `json:"token"`
	Addresses Addresses `json:"addresses"`
}

// UpdateTokenArgs contains parameters for updating token settings
type UpdateTokenArgs struct {
	TokenID            string  `json:"token_id" jsonschema:"required" jsonschema_description:"Webhook token UUID or alias"`
	DefaultStatus      *int    `json:"default_status,omitempty" jsonschema_description:"HTTP status code the endpoint responds with (200-599)"`
	DefaultContent     *string `json:"default_content,omitempty" jsonschema_description:"Response body the endpoint returns"`
	DefaultContentType *string `json:"default_content_type,omitempty" jsonschema_description:"Content-Type of the endpoint response"`
	Timeout            *int    `json:"timeout,omitempty" jsonschema_description:"Seconds to delay the response (0-30)"`
	CORS               *bool   `json:"cors,omitempty" jsonschema_description:"Send CORS headers on responses"`
}

// UpdateTokenResult is the result of updating a token
type UpdateTokenResult struct {
	Token   *Token `json:"token"`
	Message string `json:"message"`
}

// DeleteTokenArgs contains parameters for deleting a token
type DeleteTokenArgs struct {
	TokenID string `json:"token_id" jsonschema:"required" jsonschema_description:"Webhook token UUID or alias to delete"`
}

// DeleteTokenResult is the result of deleting a token
type DeleteTokenResult struct {
	Deleted bool   `json:"deleted"`
	Message string `json:"message"`
}

// SendArgs contains parameters for posting test data to an endpoint
type SendArgs struct {
	TokenID string                 `json:"token_id" jsonschema:"required" jsonschema_description:"Webhook token UUID or alias"`
	Data    map[string]interface{} `json:"data,omitempty" jsonschema_description:"JSON payload to deliver to the endpoint"`
}

// SendResult is the result of posting test data
type SendResult struct {
	Sent    bool   `json:"sent"`
	URL     string `json:"url"`
	Message string `json:"message"`
}

// AddressArgs contains parameters for address derivation tools
type AddressArgs struct {
	TokenID  string `json:"token_id" jsonschema:"required" jsonschema_description:"Webhook token UUID"`
	Validate bool   `json:"validate,omitempty" jsonschema_description:"Verify the token still exists before returning (default: false)"`
}

// URLResult is the result of get_webhook_url
type URLResult struct {
	URL          string `json:"url"`
	SubdomainURL string `json:"subdomain_url"`
	Message      string `json:"message"`
}

// EmailResult is the result of get_webhook_email
type EmailResult struct {
	Email   string `json:"email"`
	Message string `json:"message"`
}

// DNSResult is the result of get_webhook_dns
type DNSResult struct {
	DNS     string `json:"dns"`
	Message string `json:"message"`
}
