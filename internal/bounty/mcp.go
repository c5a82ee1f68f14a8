package bounty

import (
	"context"
	"fmt"
	"time"

	"github.com/probelab/webhook-site-mcp-server/internal/hook"
)

// MCP Tool wrapper methods
// These methods wrap the client methods with Args/Result types for MCP integration.

// SSRFPayloadMCP is the MCP wrapper for SSRFPayloads
func (c *Client) SSRFPayloadMCP(ctx context.Context, args SSRFPayloadArgs) (PayloadResult, error) {
	if err := hook.ValidateToken(args.TokenID); err != nil {
		return PayloadResult{}, err
	}
	payloads := SSRFPayloads(args.TokenID, SSRFOptions{
		Identifier: args.Identifier,
		IncludeDNS: boolOr(args.IncludeDNS, true),
		IncludeIP:  boolOr(args.IncludeIP, true),
	})
	return PayloadResult{
		TokenID:    args.TokenID,
		Identifier: args.Identifier,
		Payloads:   payloads,
		UsageTips:  SSRFUsageTips,
		Message:    fmt.Sprintf("Generated %d SSRF payloads", len(payloads)),
	}, nil
}

// XSSPayloadMCP is the MCP wrapper for XSSPayloads
func (c *Client) XSSPayloadMCP(ctx context.Context, args XSSPayloadArgs) (PayloadResult, error) {
	if err := hook.ValidateToken(args.TokenID); err != nil {
		return PayloadResult{}, err
	}
	payloads := XSSPayloads(args.TokenID, XSSOptions{
		Identifier:     args.Identifier,
		IncludeCookies: boolOr(args.IncludeCookies, true),
		IncludeDOM:     boolOr(args.IncludeDOM, true),
	})
	return PayloadResult{
		TokenID:    args.TokenID,
		Identifier: args.Identifier,
		Payloads:   payloads,
		UsageTips:  XSSUsageTips,
		Message:    fmt.Sprintf("Generated %d XSS payloads", len(payloads)),
	}, nil
}

// CanaryTokenMCP is the MCP wrapper for CanaryToken
func (c *Client) CanaryTokenMCP(ctx context.Context, args CanaryTokenArgs) (CanaryTokenResult, error) {
	if err := hook.ValidateToken(args.TokenID); err != nil {
		return CanaryTokenResult{}, err
	}
	tokenType := args.TokenType
	if tokenType == "" {
		tokenType = CanaryURL
	}
	canary, err := CanaryToken(args.TokenID, tokenType, args.Identifier)
	if err != nil {
		return CanaryTokenResult{}, err
	}
	return CanaryTokenResult{
		Canary:       canary,
		Identifier:   args.Identifier,
		CheckCommand: "Use check_for_callbacks to see if triggered",
		Message:      fmt.Sprintf("Generated %s canary token", tokenType),
	}, nil
}

// CheckCallbacksMCP is the MCP wrapper for CheckCallbacks
func (c *Client) CheckCallbacksMCP(ctx context.Context, args CheckCallbacksArgs) (*CallbackReport, error) {
	window := time.Duration(args.SinceMinutes) * time.Minute
	return c.CheckCallbacks(ctx, args.TokenID, window, args.Identifier)
}

// ExtractLinksMCP is the MCP wrapper for ExtractRequestLinks
func (c *Client) ExtractLinksMCP(ctx context.Context, args ExtractLinksArgs) (*ExtractedLinks, error) {
	return c.ExtractRequestLinks(ctx, args.TokenID, args.RequestID, args.FilterDomain)
}

func boolOr(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}
