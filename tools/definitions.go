package tools

// AllTools contains all tool specifications for the webhook.site MCP server.
// Tools are organized by category for easier maintenance.
// Tool descriptions follow a structured format for optimal LLM tool selection:
// - USE WHEN: Natural language triggers
// - NOT FOR: Disambiguation from similar tools
// - PARAMETERS: Key arguments with defaults
// - RETURNS: What the tool returns
var AllTools = []ToolSpec{
	// ==========================================================================
	// WEBHOOK ENDPOINT TOOLS
	// ==========================================================================
	{
		Name:     "create_webhook",
		Method:   "CreateToken",
		Title:    "Create Webhook",
		Category: "webhook",
		Description: `Create a new webhook.site endpoint with default settings.

USE WHEN: User asks "create a webhook", "give me a URL to receive requests", "set up an endpoint for testing callbacks".

NOT FOR: Customizing the endpoint's response (use create_webhook_with_config instead).

PARAMETERS: none.

RETURNS: The new token id plus every address it captures traffic on: webhook URL, subdomain URL, email address, and DNS hostname.`,
		OpenWorld: true,
	},
	{
		Name:     "create_webhook_with_config",
		Method:   "CreateTokenWithConfig",
		Title:    "Create Webhook with Config",
		Category: "webhook",
		Description: `Create a webhook.site endpoint with a custom response, alias, or expiry.

USE WHEN: User wants the endpoint to answer with a specific status/body/content-type, delay responses, enable CORS, use a memorable alias, or expire automatically.

NOT FOR: Plain default endpoints (use create_webhook instead).

PARAMETERS:
- default_status: HTTP status the endpoint responds with (200-599)
- default_content / default_content_type: response body and type
- timeout: seconds to delay the response (0-30)
- cors: send CORS headers
- alias: custom URL alias (3-32 chars)
- expiry: seconds until the token expires (max 7 days)

RETURNS: The new token id and its capture addresses.`,
		OpenWorld: true,
	},
	{
		Name:     "get_webhook_info",
		Method:   "GetToken",
		Title:    "Get Webhook Info",
		Category: "webhook",
		Description: `Fetch a webhook endpoint's settings and metadata.

USE WHEN: User asks "what are the settings of my webhook", "when does the token expire", "how many requests has it seen".

NOT FOR: Reading captured traffic (use get_webhook_requests instead).

PARAMETERS:
- token_id: webhook token UUID or alias (required)

RETURNS: Token settings, timestamps, request count, and the derived addresses.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "update_webhook",
		Method:   "UpdateToken",
		Title:    "Update Webhook",
		Category: "webhook",
		Description: `Change how an existing webhook endpoint responds.

USE WHEN: User says "make the webhook return 404", "change the response body", "add a delay to the endpoint".

PARAMETERS:
- token_id: webhook token UUID or alias (required)
- default_status, default_content, default_content_type, timeout, cors: settings to change

RETURNS: The updated token settings.`,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "delete_webhook",
		Method:   "DeleteToken",
		Title:    "Delete Webhook",
		Category: "webhook",
		Description: `Delete a webhook endpoint and everything it captured.

USE WHEN: User says "delete the webhook", "clean up the endpoint", "remove the token".

NOT FOR: Deleting individual captured requests (use delete_request or delete_all_requests).

PARAMETERS:
- token_id: webhook token UUID or alias (required)

RETURNS: Deletion confirmation. This cannot be undone.`,
		Destructive: true,
		Idempotent:  true,
		OpenWorld:   true,
	},
	{
		Name:     "send_to_webhook",
		Method:   "Send",
		Title:    "Send Test Request",
		Category: "webhook",
		Description: `Send a test JSON payload to a webhook endpoint so it appears as a captured request.

USE WHEN: User says "send a test request to the webhook", "verify the endpoint works", "post sample data to it".

PARAMETERS:
- token_id: webhook token UUID or alias (required)
- data: JSON object to deliver (defaults to {"test": true})

RETURNS: Confirmation and the URL the payload was delivered to.`,
		OpenWorld: true,
	},
	{
		Name:     "get_webhook_url",
		Method:   "GetURL",
		Title:    "Get Webhook URL",
		Category: "webhook",
		Description: `Derive the HTTP capture URLs for a token.

USE WHEN: User asks "what's the URL of my webhook", "give me the endpoint address".

NOT FOR: Email or DNS capture addresses (use get_webhook_email / get_webhook_dns).

PARAMETERS:
- token_id: webhook token UUID (required)
- validate: verify the token still exists first (default false)

RETURNS: Path-style and subdomain-style capture URLs.`,
		ReadOnly:   true,
		Idempotent: true,
	},
	{
		Name:     "get_webhook_email",
		Method:   "GetEmail",
		Title:    "Get Webhook Email Address",
		Category: "webhook",
		Description: `Derive the email capture address for a token.

USE WHEN: User asks "what email address does my webhook have", "where do I send test emails", or before wait_for_email.

PARAMETERS:
- token_id: webhook token UUID (required)
- validate: verify the token still exists first (default false)

RETURNS: The {token}@email.webhook.site address; mail sent there is captured as an email-type request.`,
		ReadOnly:   true,
		Idempotent: true,
	},
	{
		Name:     "get_webhook_dns",
		Method:   "GetDNS",
		Title:    "Get Webhook DNS Hostname",
		Category: "webhook",
		Description: `Derive the DNS capture hostname for a token.

USE WHEN: User wants to detect DNS lookups, test out-of-band DNS interaction, or asks "what's the dnshook address".

PARAMETERS:
- token_id: webhook token UUID (required)
- validate: verify the token still exists first (default false)

RETURNS: The {token}.dnshook.site hostname; lookups of it or any subdomain are captured as dns-type requests.`,
		ReadOnly:   true,
		Idempotent: true,
	},

	// ==========================================================================
	// CAPTURED REQUEST TOOLS
	// ==========================================================================
	{
		Name:     "get_webhook_requests",
		Method:   "ListRequests",
		Title:    "List Captured Requests",
		Category: "requests",
		Description: `List the traffic captured at a webhook endpoint.

USE WHEN: User asks "what requests did my webhook receive", "show captured traffic", "list the emails it got".

NOT FOR: Filtering by content or date (use search_requests), or blocking until something arrives (use wait_for_request).

PARAMETERS:
- token_id: webhook token UUID or alias (required)
- limit: max requests to return (default 10)
- request_type: filter by web, email, or dns

RETURNS: Captured requests, newest first, with method, headers, body, and origin IP.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "search_requests",
		Method:   "SearchRequests",
		Title:    "Search Captured Requests",
		Category: "requests",
		Description: `Search captured traffic with query and date filters.

USE WHEN: User asks "find POST requests", "requests containing X", "traffic from yesterday".

NOT FOR: Simple newest-first listing (use get_webhook_requests).

PARAMETERS:
- token_id: webhook token UUID or alias (required)
- query: search expression, e.g. 'method:POST content:hello'
- request_type: web, email, or dns
- date_from / date_to: capture-time range (yyyy-MM-dd HH:mm:ss or now-7d)
- sorting: newest (default) or oldest
- limit: max results (default 20)

RETURNS: Matching captured requests.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "get_latest_request",
		Method:   "LatestRequest",
		Title:    "Get Latest Request",
		Category: "requests",
		Description: `Fetch the single most recent captured request.

USE WHEN: User asks "what was the last request", "did anything arrive yet" (one-shot check).

NOT FOR: Blocking until a new request arrives (use wait_for_request).

PARAMETERS:
- token_id: webhook token UUID or alias (required)

RETURNS: The newest captured request, or a message when the endpoint has seen no traffic.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "delete_request",
		Method:   "DeleteRequest",
		Title:    "Delete Captured Request",
		Category: "requests",
		Description: `Delete one captured request from an endpoint.

USE WHEN: User says "remove that request", "delete the captured email with id X".

NOT FOR: Clearing all traffic (use delete_all_requests) or removing the endpoint (use delete_webhook).

PARAMETERS:
- token_id: webhook token UUID or alias (required)
- request_id: captured request UUID (required)

RETURNS: Deletion confirmation.`,
		Destructive: true,
		Idempotent:  true,
		OpenWorld:   true,
	},
	{
		Name:     "delete_all_requests",
		Method:   "DeleteAllRequests",
		Title:    "Delete All Captured Requests",
		Category: "requests",
		Description: `Delete captured requests in bulk, optionally filtered.

USE WHEN: User says "clear the webhook", "delete everything older than a week", "wipe captured traffic".

PARAMETERS:
- token_id: webhook token UUID or alias (required)
- date_from / date_to: only delete within this capture-time range
- query: only delete matching requests

RETURNS: Deletion confirmation. Without filters this removes every captured request.`,
		Destructive: true,
		OpenWorld:   true,
	},

	// ==========================================================================
	// WAIT TOOLS
	// ==========================================================================
	{
		Name:     "wait_for_request",
		Method:   "WaitForRequest",
		Title:    "Wait for Request",
		Category: "wait",
		Description: `Block until a NEW request arrives at the endpoint, then return it.

USE WHEN: User says "wait for the callback", "tell me when a request comes in", "block until the webhook fires". Ideal after injecting a payload or triggering a flow that calls back.

NOT FOR: Checking already-captured traffic (use get_latest_request or get_webhook_requests) or waiting for email specifically (use wait_for_email).

PARAMETERS:
- token_id: webhook token UUID or alias (required)
- timeout_seconds: max wait (default 60)
- request_type: only match web, email, or dns

RETURNS: outcome "found" with the new request, "timeout" when nothing arrived in the budget, or "error" when polling failed. Only requests newer than the call itself count.`,
		ReadOnly:  true,
		OpenWorld: true,
	},
	{
		Name:     "wait_for_email",
		Method:   "WaitForEmail",
		Title:    "Wait for Email",
		Category: "wait",
		Description: `Block until a NEW email arrives at {token}@email.webhook.site, then return it with extracted links.

USE WHEN: User says "wait for the confirmation email", "catch the magic link", "block until the password-reset mail arrives".

NOT FOR: Waiting for HTTP requests (use wait_for_request).

PARAMETERS:
- token_id: webhook token UUID or alias (required)
- timeout_seconds: max wait (default 60)
- extract_links: pull URLs and auth links out of the body (default true)

RETURNS: outcome "found" with sender, subject, body, all_links and auth_links (magic/verify/confirm URLs), "timeout", or "error". Pre-existing emails are never returned.`,
		ReadOnly:  true,
		OpenWorld: true,
	},

	// ==========================================================================
	// SECURITY TESTING TOOLS
	// ==========================================================================
	{
		Name:     "generate_ssrf_payload",
		Method:   "SSRFPayload",
		Title:    "Generate SSRF Payloads",
		Category: "bounty",
		Description: `Generate SSRF test payloads that call back to the webhook endpoint.

USE WHEN: User is testing for server-side request forgery and asks "give me SSRF payloads", "URLs to detect SSRF out-of-band".

PARAMETERS:
- token_id: webhook token UUID (required)
- identifier: tag to tell injection points apart
- include_dns / include_ip: payload families (default true)

RETURNS: URL, DNS, IP-literal, and encoding-bypass payloads plus usage tips. Pair with check_for_callbacks.`,
		ReadOnly:   true,
		Idempotent: true,
	},
	{
		Name:     "generate_xss_callback",
		Method:   "XSSPayload",
		Title:    "Generate XSS Callbacks",
		Category: "bounty",
		Description: `Generate XSS payloads that phone home to the webhook endpoint when executed.

USE WHEN: User is testing for cross-site scripting and asks "give me blind XSS payloads", "scripts that call back when triggered".

PARAMETERS:
- token_id: webhook token UUID (required)
- identifier: tag to tell injection points apart
- include_cookies / include_dom: payload families (default true)

RETURNS: img/script/svg triggers, cookie exfiltration, DOM capture, and encoded variants plus usage tips. Pair with check_for_callbacks.`,
		ReadOnly:   true,
		Idempotent: true,
	},
	{
		Name:     "generate_canary_token",
		Method:   "CanaryToken",
		Title:    "Generate Canary Token",
		Category: "bounty",
		Description: `Generate a canary value whose access trips the webhook endpoint.

USE WHEN: User wants a tripwire in documents, configs, or source code: "make a canary URL", "a DNS canary", "a trap email address".

PARAMETERS:
- token_id: webhook token UUID (required)
- token_type: url (default), dns, or email
- identifier: tag embedded in the canary

RETURNS: The canary value with deployment instructions. Pair with check_for_callbacks.`,
		ReadOnly:   true,
		Idempotent: true,
	},
	{
		Name:     "check_for_callbacks",
		Method:   "CheckCallbacks",
		Title:    "Check for Callbacks",
		Category: "bounty",
		Description: `Check whether any out-of-band callbacks hit the endpoint recently.

USE WHEN: After planting SSRF/XSS/canary payloads, user asks "did anything trigger", "were there callbacks", "did the canary fire".

NOT FOR: Blocking until a callback arrives (use wait_for_request).

PARAMETERS:
- token_id: webhook token UUID or alias (required)
- since_minutes: window to inspect (default 60)
- identifier: only flag callbacks mentioning this tag

RETURNS: Detection verdict, counts by type (web/dns/email), and details of the most recent 10 hits.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "extract_links_from_request",
		Method:   "ExtractLinks",
		Title:    "Extract Links from Request",
		Category: "bounty",
		Description: `Extract and categorize every URL inside a captured request's body.

USE WHEN: User asks "what links are in that request", "pull the URLs out of the captured email", "find auth links in the callback".

PARAMETERS:
- token_id: webhook token UUID or alias (required)
- request_id: specific request (defaults to the latest)
- filter_domain: only return links containing this domain

RETURNS: Deduplicated links categorized as auth (token/verify/reset/magic/login), api (api/webhook/callback), and all.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
}
