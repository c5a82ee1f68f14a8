// Webhook.site MCP Server - A Model Context Protocol server for webhook.site
// Provides tools for creating webhook endpoints, inspecting captured traffic,
// waiting on callbacks, and generating out-of-band security test payloads
package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/probelab/webhook-site-mcp-server/internal/base"
	"github.com/probelab/webhook-site-mcp-server/internal/bounty"
	"github.com/probelab/webhook-site-mcp-server/internal/capture"
	"github.com/probelab/webhook-site-mcp-server/internal/hook"
	"github.com/probelab/webhook-site-mcp-server/tools"
	"github.com/probelab/webhook-site-mcp-server/tracing"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	ServerName    = "webhook-site-mcp-server"
	ServerVersion = "1.0.0"
)

const serverInstructions = `Webhook.site MCP Server provides disposable HTTP/email/DNS endpoints for
testing integrations and detecting out-of-band interactions.

Typical flow:
1. create_webhook to get a token and its capture addresses
2. Point the system under test at the webhook URL (or email/DNS address)
3. wait_for_request / wait_for_email to block until NEW traffic arrives,
   or get_webhook_requests to inspect what was already captured
4. For security testing: generate_ssrf_payload, generate_xss_callback, or
   generate_canary_token, then check_for_callbacks to see what triggered

The wait tools only report traffic that arrives after the call starts;
pre-existing requests are never returned.

Configure via environment variables:
- WEBHOOK_SITE_URL: API endpoint (default https://webhook.site)
- WEBHOOK_SITE_API_KEY: API key for premium features (optional)
- WEBHOOK_WAIT_POLL_INTERVAL: poll interval for wait tools (default 2s)
- METRICS_ADDR: expose Prometheus metrics on this address (optional)
- OTEL_EXPORTER_OTLP_ENDPOINT: enable OTLP trace export (optional)`

func main() {
	// Configure logging to stderr (stdout is used for MCP protocol)
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	// Load configuration from environment
	config := base.LoadConfig()

	// Initialize tracing
	ctx := context.Background()
	shutdownTracing, err := tracing.Setup(ctx, tracing.DefaultConfig())
	if err != nil {
		log.Fatalf("Failed to set up tracing: %v", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(shutdownCtx); err != nil {
			logger.Error("Tracing shutdown failed", "error", err)
		}
	}()

	// Build the client stack: one shared HTTP client, domain clients on top
	baseClient := base.NewClientFromConfig(config, logger)
	defer baseClient.Close()

	hookClient := hook.NewClient(baseClient)
	captureClient := capture.NewClientFromConfig(baseClient, config)
	bountyClient := bounty.NewClient(captureClient)

	// Optionally expose Prometheus metrics
	if config.MetricsAddr != "" {
		go serveMetrics(config.MetricsAddr, logger)
	}

	// Create MCP server
	server := mcp.NewServer(&mcp.Implementation{
		Name:    ServerName,
		Version: ServerVersion,
	}, &mcp.ServerOptions{
		Logger:       logger,
		Instructions: serverInstructions,
	})

	// Register all tools
	registry := tools.NewHandlerRegistry(hookClient, captureClient, bountyClient, logger)
	registry.RegisterAll(server)

	// Run server on stdio transport
	logger.Info("Starting Webhook.site MCP Server",
		"name", ServerName,
		"version", ServerVersion,
		"api_url", config.BaseURL,
		"api_key_set", config.HasAPIKey(),
	)

	if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

func serveMetrics(addr string, logger *slog.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	logger.Info("Serving Prometheus metrics", "addr", addr)
	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("Metrics server failed", "error", err)
	}
}
