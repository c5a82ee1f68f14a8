package bounty

// SSRFPayloadArgs contains parameters for SSRF payload generation
type SSRFPayloadArgs struct {
	TokenID    string `json:"token_id" jsonschema:"required" jsonschema_description:"Webhook token UUID receiving the callbacks"`
	Identifier string `json:"identifier,omitempty" jsonschema_description:"Tag for tracking which injection point triggered"`
	IncludeDNS *bool  `json:"include_dns,omitempty" jsonschema_description:"Include DNS-based payloads (default true)"`
	IncludeIP  *bool  `json:"include_ip,omitempty" jsonschema_description:"Include IP-literal bypass payloads (default true)"`
}

// PayloadResult is the result of generating a payload set
type PayloadResult struct {
	TokenID    string     `json:"token_id"`
	Identifier string     `json:"identifier,omitempty"`
	Payloads   PayloadSet `json:"payloads"`
	UsageTips  []string   `json:"usage_tips"`
	Message    string     `json:"message"`
}

// XSSPayloadArgs contains parameters for XSS payload generation
type XSSPayloadArgs struct {
	TokenID        string `json:"token_id" jsonschema:"required" jsonschema_description:"Webhook token UUID receiving the callbacks"`
	Identifier     string `json:"identifier,omitempty" jsonschema_description:"Tag for tracking which injection point triggered"`
	IncludeCookies *bool  `json:"include_cookies,omitempty" jsonschema_description:"Include cookie exfiltration payloads (default true)"`
	IncludeDOM     *bool  `json:"include_dom,omitempty" jsonschema_description:"Include DOM capture payloads (default true)"`
}

// CanaryTokenArgs contains parameters for canary token generation
type CanaryTokenArgs struct {
	TokenID    string `json:"token_id" jsonschema:"required" jsonschema_description:"Webhook token UUID receiving the alerts"`
	TokenType  string `json:"token_type,omitempty" jsonschema_description:"Canary type: url (default), dns, or email"`
	Identifier string `json:"identifier,omitempty" jsonschema_description:"Tag embedded in the canary value"`
}

// CanaryTokenResult is the result of canary token generation
type CanaryTokenResult struct {
	Canary       *Canary `json:"canary"`
	Identifier   string  `json:"identifier,omitempty"`
	CheckCommand string  `json:"check_command"`
	Message      string  `json:"message"`
}

// CheckCallbacksArgs contains parameters for the callback sweep
type CheckCallbacksArgs struct {
	TokenID      string `json:"token_id" jsonschema:"required" jsonschema_description:"Webhook token UUID to inspect"`
	SinceMinutes int    `json:"since_minutes,omitempty" jsonschema_description:"Window to inspect, in minutes (default 60)"`
	Identifier   string `json:"identifier,omitempty" jsonschema_description:"Only report callbacks mentioning this tag"`
}

// ExtractLinksArgs contains parameters for link extraction from a request
type ExtractLinksArgs struct {
	TokenID      string `json:"token_id" jsonschema:"required" jsonschema_description:"Webhook token UUID"`
	RequestID    string `json:"request_id,omitempty" jsonschema_description:"Captured request to analyze (defaults to the latest)"`
	FilterDomain string `json:"filter_domain,omitempty" jsonschema_description:"Only return links containing this domain"`
}
