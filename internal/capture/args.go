package capture

// ListRequestsArgs contains parameters for listing captured requests
type ListRequestsArgs struct {
	TokenID     string `json:"token_id" jsonschema:"required" jsonschema_description:"Webhook token UUID or alias"`
	Limit       int    `json:"limit,omitempty" jsonschema_description:"Maximum number of requests to return (default 10)"`
	RequestType string `json:"request_type,omitempty" jsonschema_description:"Filter by type: web, email, or dns"`
}

// ListRequestsResult is the result of listing captured requests
type ListRequestsResult struct {
	TotalRequests int     `json:"total_requests"`
	Requests      []*View `json:"requests"`
	Message       string  `json:"message"`
}

// SearchRequestsArgs contains parameters for searching captured requests
type SearchRequestsArgs struct {
	TokenID     string `json:"token_id" jsonschema:"required" jsonschema_description:"Webhook token UUID or alias"`
	Query       string `json:"query,omitempty" jsonschema_description:"Search expression, e.g. 'method:POST content:hello'"`
	RequestType string `json:"request_type,omitempty" jsonschema_description:"Filter by type: web, email, or dns"`
	DateFrom    string `json:"date_from,omitempty" jsonschema_description:"Start of capture-time range (yyyy-MM-dd HH:mm:ss or now-7d)"`
	DateTo      string `json:"date_to,omitempty" jsonschema_description:"End of capture-time range"`
	Sorting     string `json:"sorting,omitempty" jsonschema_description:"Sort order: newest (default) or oldest"`
	Limit       int    `json:"limit,omitempty" jsonschema_description:"Maximum results (default 20)"`
}

// SearchRequestsResult is the result of a request search
type SearchRequestsResult struct {
	Query      string  `json:"query,omitempty"`
	TotalFound int     `json:"total_found"`
	Requests   []*View `json:"requests"`
}

// LatestRequestArgs contains parameters for fetching the newest request
type LatestRequestArgs struct {
	TokenID string `json:"token_id" jsonschema:"required" jsonschema_description:"Webhook token UUID or alias"`
}

// LatestRequestResult is the result of fetching the newest request
type LatestRequestResult struct {
	Request *View  `json:"request"`
	Message string `json:"message"`
}

// DeleteRequestArgs contains parameters for deleting one captured request
type DeleteRequestArgs struct {
	TokenID   string `json:"token_id" jsonschema:"required" jsonschema_description:"Webhook token UUID or alias"`
	RequestID string `json:"request_id" jsonschema:"required" jsonschema_description:"Captured request UUID to delete"`
}

// DeleteRequestResult is the result of deleting one captured request
type DeleteRequestResult struct {
	Deleted   bool   `json:"deleted"`
	RequestID string `json:"request_id"`
	Message   string `json:"message"`
}

// DeleteAllRequestsArgs contains parameters for bulk deletion
type DeleteAllRequestsArgs struct {
	TokenID  string `json:"token_id" jsonschema:"required" jsonschema_description:"Webhook token UUID or alias"`
	DateFrom string `json:"date_from,omitempty" jsonschema_description:"Delete only requests captured after this time (yyyy-MM-dd HH:mm:ss or now-7d)"`
	DateTo   string `json:"date_to,omitempty" jsonschema_description:"Delete only requests captured before this time"`
	Query    string `json:"query,omitempty" jsonschema_description:"Delete only requests matching this search expression"`
}

// DeleteAllRequestsResult is the result of bulk deletion
type DeleteAllRequestsResult struct {
	Deleted bool   `json:"deleted"`
	Message string `json:"message"`
}

// WaitForRequestArgs contains parameters for blocking on a new request
type WaitForRequestArgs struct {
	TokenID        string `json:"token_id" jsonschema:"required" jsonschema_description:"Webhook token UUID or alias"`
	TimeoutSeconds int    `json:"timeout_seconds,omitempty" jsonschema_description:"Maximum seconds to wait (default 60)"`
	RequestType    string `json:"request_type,omitempty" jsonschema_description:"Only match this type: web, email, or dns"`
}

// WaitForEmailArgs contains parameters for blocking on a new email
type WaitForEmailArgs struct {
	TokenID        string `json:"token_id" jsonschema:"required" jsonschema_description:"Webhook token UUID or alias"`
	TimeoutSeconds int    `json:"timeout_seconds,omitempty" jsonschema_description:"Maximum seconds to wait (default 60)"`
	ExtractLinks   *bool  `json:"extract_links,omitempty" jsonschema_description:"Extract URLs and auth links from the email body (default true)"`
}
