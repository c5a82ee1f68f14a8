package tools

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/probelab/webhook-site-mcp-server/internal/bounty"
	"github.com/probelab/webhook-site-mcp-server/internal/capture"
	"github.com/probelab/webhook-site-mcp-server/internal/hook"
	"github.com/probelab/webhook-site-mcp-server/metrics"
	"github.com/probelab/webhook-site-mcp-server/tracing"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// HandlerRegistry provides type-safe tool registration by mapping
// tool names to their concrete handler implementations.
type HandlerRegistry struct {
	hookClient    *hook.Client
	captureClient *capture.Client
	bountyClient  *bounty.Client
	logger        *slog.Logger
}

// NewHandlerRegistry creates a new handler registry.
func NewHandlerRegistry(hookClient *hook.Client, captureClient *capture.Client, bountyClient *bounty.Client, logger *slog.Logger) *HandlerRegistry {
	return &HandlerRegistry{
		hookClient:    hookClient,
		captureClient: captureClient,
		bountyClient:  bountyClient,
		logger:        logger,
	}
}

// RegisterAll registers all tools with the MCP server.
func (h *HandlerRegistry) RegisterAll(server *mcp.Server) {
	for _, spec := range AllTools {
		h.registerByName(server, spec)
	}
	h.logger.Info("Registered all tools", "count", len(AllTools))
}

// registerByName dispatches to the correct typed registration function.
func (h *HandlerRegistry) registerByName(server *mcp.Server, spec ToolSpec) {
	tool := h.buildTool(spec)

	switch spec.Method {
	// Webhook endpoint tools
	case "CreateToken":
		h.register(server, tool, spec, h.hookClient.CreateSimpleTokenMCP)
	case "CreateTokenWithConfig":
		h.register(server, tool, spec, h.hookClient.CreateTokenMCP)
	case "GetToken":
		h.register(server, tool, spec, h.hookClient.GetTokenMCP)
	case "UpdateToken":
		h.register(server, tool, spec, h.hookClient.UpdateTokenMCP)
	case "DeleteToken":
		h.register(server, tool, spec, h.hookClient.DeleteTokenMCP)
	case "Send":
		h.register(server, tool, spec, h.hookClient.SendMCP)
	case "GetURL":
		h.register(server, tool, spec, h.hookClient.GetURLMCP)
	case "GetEmail":
		h.register(server, tool, spec, h.hookClient.GetEmailMCP)
	case "GetDNS":
		h.register(server, tool, spec, h.hookClient.GetDNSMCP)

	// Captured request tools
	case "ListRequests":
		h.register(server, tool, spec, h.captureClient.ListRequestsMCP)
	case "SearchRequests":
		h.register(server, tool, spec, h.captureClient.SearchRequestsMCP)
	case "LatestRequest":
		h.register(server, tool, spec, h.captureClient.LatestRequestMCP)
	case "DeleteRequest":
		h.register(server, tool, spec, h.captureClient.DeleteRequestMCP)
	case "DeleteAllRequests":
		h.register(server, tool, spec, h.captureClient.DeleteAllRequestsMCP)

	// Wait tools
	case "WaitForRequest":
		h.register(server, tool, spec, h.captureClient.WaitForRequestMCP)
	case "WaitForEmail":
		h.register(server, tool, spec, h.captureClient.WaitForEmailMCP)

	// Security testing tools
	case "SSRFPayload":
		h.register(server, tool, spec, h.bountyClient.SSRFPayloadMCP)
	case "XSSPayload":
		h.register(server, tool, spec, h.bountyClient.XSSPayloadMCP)
	case "CanaryToken":
		h.register(server, tool, spec, h.bountyClient.CanaryTokenMCP)
	case "CheckCallbacks":
		h.register(server, tool, spec, h.bountyClient.CheckCallbacksMCP)
	case "ExtractLinks":
		h.register(server, tool, spec, h.bountyClient.ExtractLinksMCP)

	default:
		h.logger.Error("Unknown method, tool not registered", "method", spec.Method, "tool", spec.Name)
	}
}

// buildTool creates an mcp.Tool from a ToolSpec.
func (h *HandlerRegistry) buildTool(spec ToolSpec) *mcp.Tool {
	annotations := &mcp.ToolAnnotations{
		Title:          spec.Title,
		ReadOnlyHint:   spec.ReadOnly,
		IdempotentHint: spec.Idempotent,
	}
	if spec.Destructive {
		annotations.DestructiveHint = ptr(true)
	}
	if spec.OpenWorld {
		annotations.OpenWorldHint = ptr(true)
	}

	return &mcp.Tool{
		Name:        spec.Name,
		Description: spec.Description,
		Annotations: annotations,
	}
}

// register is a generic helper that registers a tool with the MCP server.
// It wraps the client method with panic recovery, metrics, tracing, and logging.
func register[Args, Result any](
	h *HandlerRegistry,
	server *mcp.Server,
	tool *mcp.Tool,
	spec ToolSpec,
	method func(context.Context, Args) (Result, error),
) {
	mcp.AddTool(server, tool, func(ctx context.Context, req *mcp.CallToolRequest, args Args) (*mcp.CallToolResult, Result, error) {
		defer h.recoverPanic(spec.Name)

		// Start trace span
		ctx, span := tracing.StartSpan(ctx, "mcp.tool."+spec.Name)
		defer span.End()

		span.SetAttributes(
			attribute.String("mcp.tool.name", spec.Name),
			attribute.String("mcp.tool.category", spec.Category),
			attribute.Bool("mcp.tool.readonly", spec.ReadOnly),
		)

		// Track in-flight requests
		metrics.RequestInFlight.WithLabelValues(spec.Name).Inc()
		defer metrics.RequestInFlight.WithLabelValues(spec.Name).Dec()

		start := time.Now()
		result, err := method(ctx, args)
		duration := time.Since(start).Seconds()

		span.SetAttributes(attribute.Float64("mcp.tool.duration_seconds", duration))

		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			metrics.RecordRequest(spec.Name, duration, false)
			var zero Result
			return nil, zero, fmt.Errorf("%s failed: %w", spec.Name, err)
		}

		span.SetStatus(codes.Ok, "")
		metrics.RecordRequest(spec.Name, duration, true)
		h.logExecution(spec, args, result)
		return nil, result, nil
	})
}

// recoverPanic recovers from panics in tool handlers.
func (h *HandlerRegistry) recoverPanic(toolName string) {
	if rec := recover(); rec != nil {
		metrics.PanicsRecovered.WithLabelValues(toolName).Inc()
		h.logger.Error("Panic recovered",
			"tool", toolName,
			"panic", rec,
			"stack", string(debug.Stack()))
	}
}

// logExecution logs tool execution details.
func (h *HandlerRegistry) logExecution(spec ToolSpec, args, result any) {
	attrs := []any{"tool", spec.Name, "category", spec.Category}

	// Add extractable fields from args using type assertions
	switch a := args.(type) {
	// Webhook endpoint args
	case hook.CreateSimpleArgs:
		// No args to log
	case hook.CreateTokenArgs:
		if a.Alias != nil {
			attrs = append(attrs, "alias", *a.Alias)
		}
	case hook.GetTokenArgs:
		attrs = append(attrs, "token_id", a.TokenID)
	case hook.UpdateTokenArgs:
		attrs = append(attrs, "token_id", a.TokenID)
	case hook.DeleteTokenArgs:
		attrs = append(attrs, "token_id", a.TokenID)
	case hook.SendArgs:
		attrs = append(attrs, "token_id", a.TokenID)
	case hook.AddressArgs:
		attrs = append(attrs, "token_id", a.TokenID, "validate", a.Validate)
	// Captured request args
	case capture.ListRequestsArgs:
		attrs = append(attrs, "token_id", a.TokenID, "limit", a.Limit)
	case capture.SearchRequestsArgs:
		attrs = append(attrs, "token_id", a.TokenID, "query", a.Query)
	case capture.LatestRequestArgs:
		attrs = append(attrs, "token_id", a.TokenID)
	case capture.DeleteRequestArgs:
		attrs = append(attrs, "token_id", a.TokenID, "request_id", a.RequestID)
	case capture.DeleteAllRequestsArgs:
		attrs = append(attrs, "token_id", a.TokenID)
	case capture.WaitForRequestArgs:
		attrs = append(attrs, "token_id", a.TokenID, "timeout_seconds", a.TimeoutSeconds)
	case capture.WaitForEmailArgs:
		attrs = append(attrs, "token_id", a.TokenID, "timeout_seconds", a.TimeoutSeconds)
	// Security testing args
	case bounty.SSRFPayloadArgs:
		attrs = append(attrs, "token_id", a.TokenID, "identifier", a.Identifier)
	case bounty.XSSPayloadArgs:
		attrs = append(attrs, "token_id", a.TokenID, "identifier", a.Identifier)
	case bounty.CanaryTokenArgs:
		attrs = append(attrs, "token_id", a.TokenID, "token_type", a.TokenType)
	case bounty.CheckCallbacksArgs:
		attrs = append(attrs, "token_id", a.TokenID, "since_minutes", a.SinceMinutes)
	case bounty.ExtractLinksArgs:
		attrs = append(attrs, "token_id", a.TokenID, "request_id", a.RequestID)
	}

	// Add extractable fields from result
	switch r := result.(type) {
	// Webhook endpoint results
	case hook.CreateTokenResult:
		attrs = append(attrs, "token_id", r.TokenID)
	case hook.DeleteTokenResult:
		attrs = append(attrs, "deleted", r.Deleted)
	// Captured request results
	case capture.ListRequestsResult:
		attrs = append(attrs, "total_requests", r.TotalRequests)
	case capture.SearchRequestsResult:
		attrs = append(attrs, "total_found", r.TotalFound)
	case capture.DeleteAllRequestsResult:
		attrs = append(attrs, "deleted", r.Deleted)
	// Wait results
	case *capture.WaitOutcome:
		attrs = append(attrs, "outcome", r.Outcome)
	// Security testing results
	case *bounty.CallbackReport:
		attrs = append(attrs, "detected", r.Detected, "total_callbacks", r.TotalCallbacks)
	case *bounty.ExtractedLinks:
		attrs = append(attrs, "total_links", r.TotalLinks)
	}

	h.logger.Info("Tool executed", attrs...)
}

// Convenience function to call the generic register with method receiver
func (h *HandlerRegistry) register(server *mcp.Server, tool *mcp.Tool, spec ToolSpec, method any) {
	switch m := method.(type) {
	// Webhook endpoint tools
	case func(context.Context, hook.CreateSimpleArgs) (hook.CreateTokenResult, error):
		register(h, server, tool, spec, m)
	case func(context.Context, hook.CreateTokenArgs) (hook.CreateTokenResult, error):
		register(h, server, tool, spec, m)
	case func(context.Context, hook.GetTokenArgs) (hook.GetTokenResult, error):
		register(h, server, tool, spec, m)
	case func(context.Context, hook.UpdateTokenArgs) (hook.UpdateTokenResult, error):
		register(h, server, tool, spec, m)
	case func(context.Context, hook.DeleteTokenArgs) (hook.DeleteTokenResult, error):
		register(h, server, tool, spec, m)
	case func(context.Context, hook.SendArgs) (hook.SendResult, error):
		register(h, server, tool, spec, m)
	case func(context.Context, hook.AddressArgs) (hook.URLResult, error):
		register(h, server, tool, spec, m)
	case func(context.Context, hook.AddressArgs) (hook.EmailResult, error):
		register(h, server, tool, spec, m)
	case func(context.Context, hook.AddressArgs) (hook.DNSResult, error):
		register(h, server, tool, spec, m)

	// Captured request tools
	case func(context.Context, capture.ListRequestsArgs) (capture.ListRequestsResult, error):
		register(h, server, tool, spec, m)
	case func(context.Context, capture.SearchRequestsArgs) (capture.SearchRequestsResult, error):
		register(h, server, tool, spec, m)
	case func(context.Context, capture.LatestRequestArgs) (capture.LatestRequestResult, error):
		register(h, server, tool, spec, m)
	case func(context.Context, capture.DeleteRequestArgs) (capture.DeleteRequestResult, error):
		register(h, server, tool, spec, m)
	case func(context.Context, capture.DeleteAllRequestsArgs) (capture.DeleteAllRequestsResult, error):
		register(h, server, tool, spec, m)

	// Wait tools
	case func(context.Context, capture.WaitForRequestArgs) (*capture.WaitOutcome, error):
		register(h, server, tool, spec, m)
	case func(context.Context, capture.WaitForEmailArgs) (*capture.WaitOutcome, error):
		register(h, server, tool, spec, m)

	// Security testing tools
	case func(context.Context, bounty.SSRFPayloadArgs) (bounty.PayloadResult, error):
		register(h, server, tool, spec, m)
	case func(context.Context, bounty.XSSPayloadArgs) (bounty.PayloadResult, error):
		register(h, server, tool, spec, m)
	case func(context.Context, bounty.CanaryTokenArgs) (bounty.CanaryTokenResult, error):
		register(h, server, tool, spec, m)
	case func(context.Context, bounty.CheckCallbacksArgs) (*bounty.CallbackReport, error):
		register(h, server, tool, spec, m)
	case func(context.Context, bounty.ExtractLinksArgs) (*bounty.ExtractedLinks, error):
		register(h, server, tool, spec, m)

	default:
		h.logger.Error("Unknown method type, tool not registered", "tool", spec.Name)
	}
}
