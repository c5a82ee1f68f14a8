package capture

import (
	"context"
	"fmt"
	"time"

	"github.com/probelab/webhook-site-mcp-server/internal/hook"
)

// MCP Tool wrapper methods
// These methods wrap the client methods with Args/Result types for MCP integration.

// ListRequestsMCP is the MCP wrapper for List
func (c *Client) ListRequestsMCP(ctx context.Context, args ListRequestsArgs) (ListRequestsResult, error) {
	limit := args.Limit
	if limit <= 0 {
		limit = DefaultPageSize
	}
	if err := validateType(args.RequestType); err != nil {
		return ListRequestsResult{}, err
	}

	page, err := c.List(ctx, args.TokenID, ListOptions{
		PerPage: limit,
		Type:    args.RequestType,
	})
	if err != nil {
		return ListRequestsResult{}, err
	}

	views := make([]*View, 0, len(page.Data))
	for i := range page.Data {
		views = append(views, NewView(&page.Data[i]))
	}
	return ListRequestsResult{
		TotalRequests: len(views),
		Requests:      views,
		Message:       fmt.Sprintf("Retrieved %d requests", len(views)),
	}, nil
}

// SearchRequestsMCP is the MCP wrapper for List with search filters
func (c *Client) SearchRequestsMCP(ctx context.Context, args SearchRequestsArgs) (SearchRequestsResult, error) {
	if err := validateType(args.RequestType); err != nil {
		return SearchRequestsResult{}, err
	}
	limit := args.Limit
	if limit <= 0 {
		limit = 20
	}
	sorting := args.Sorting
	if sorting == "" {
		sorting = SortNewest
	}

	page, err := c.List(ctx, args.TokenID, ListOptions{
		PerPage:  limit,
		Sorting:  sorting,
		Type:     args.RequestType,
		Query:    args.Query,
		DateFrom: args.DateFrom,
		DateTo:   args.DateTo,
	})
	if err != nil {
		return SearchRequestsResult{}, err
	}

	views := make([]*View, 0, len(page.Data))
	for i := range page.Data {
		views = append(views, NewView(&page.Data[i]))
	}
	return SearchRequestsResult{
		Query:      args.Query,
		TotalFound: len(views),
		Requests:   views,
	}, nil
}

// LatestRequestMCP is the MCP wrapper for Latest
func (c *Client) LatestRequestMCP(ctx context.Context, args LatestRequestArgs) (LatestRequestResult, error) {
	latest, err := c.Latest(ctx, args.TokenID)
	if err != nil {
		return LatestRequestResult{}, err
	}
	if latest == nil {
		return LatestRequestResult{Message: "No requests found for this webhook"}, nil
	}
	return LatestRequestResult{
		Request: NewView(latest),
		Message: "Latest request retrieved",
	}, nil
}

// DeleteRequestMCP is the MCP wrapper for DeleteRequest
func (c *Client) DeleteRequestMCP(ctx context.Context, args DeleteRequestArgs) (DeleteRequestResult, error) {
	ok, _, err := c.DeleteRequest(ctx, args.TokenID, args.RequestID)
	if err != nil {
		return DeleteRequestResult{}, err
	}
	msg := "Request deleted successfully"
	if !ok {
		msg = "Failed to delete request"
	}
	return DeleteRequestResult{Deleted: ok, RequestID: args.RequestID, Message: msg}, nil
}

// DeleteAllRequestsMCP is the MCP wrapper for DeleteAll
func (c *Client) DeleteAllRequestsMCP(ctx context.Context, args DeleteAllRequestsArgs) (DeleteAllRequestsResult, error) {
	filters := DeleteFilters{
		DateFrom: args.DateFrom,
		DateTo:   args.DateTo,
		Query:    args.Query,
	}
	ok, _, err := c.DeleteAll(ctx, args.TokenID, filters)
	if err != nil {
		return DeleteAllRequestsResult{}, err
	}
	msg := "Requests deleted successfully"
	if !ok {
		msg = "Failed to delete requests"
	}
	return DeleteAllRequestsResult{Deleted: ok, Message: msg}, nil
}

// WaitForRequestMCP is the MCP wrapper for WaitForRequest
func (c *Client) WaitForRequestMCP(ctx context.Context, args WaitForRequestArgs) (*WaitOutcome, error) {
	if err := hook.ValidateToken(args.TokenID); err != nil {
		return nil, err
	}
	if err := validateType(args.RequestType); err != nil {
		return nil, err
	}
	timeout := time.Duration(args.TimeoutSeconds) * time.Second
	return c.WaitForRequest(ctx, args.TokenID, timeout, args.RequestType), nil
}

// WaitForEmailMCP is the MCP wrapper for WaitForEmail
func (c *Client) WaitForEmailMCP(ctx context.Context, args WaitForEmailArgs) (*WaitOutcome, error) {
	if err := hook.ValidateToken(args.TokenID); err != nil {
		return nil, err
	}
	timeout := time.Duration(args.TimeoutSeconds) * time.Second
	extract := true
	if args.ExtractLinks != nil {
		extract = *args.ExtractLinks
	}
	return c.WaitForEmail(ctx, args.TokenID, timeout, extract), nil
}

func validateType(t string) error {
	switch t {
	case "", TypeWeb, TypeEmail, TypeDNS:
		return nil
	}
	return errValidation("request_type", t, "must be one of web, email, dns")
}
