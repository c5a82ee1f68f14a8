package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/probelab/webhook-site-mcp-server/internal/base"
	"github.com/probelab/webhook-site-mcp-server/internal/capture"
	"github.com/probelab/webhook-site-mcp-server/internal/hook"
)

// measureCachePerformance runs a simple cache performance test against a
// live webhook.site endpoint. It creates a throwaway token and deletes it
// when done.
func measureCachePerformance() {
	config := base.LoadConfig()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	bc := base.NewClientFromConfig(config, logger)
	defer bc.Close()
	client := hook.NewClient(bc)
	ctx := context.Background()

	fmt.Println("=== Cache Performance Test ===")
	fmt.Println()

	token, err := client.Create(ctx)
	if err != nil {
		fmt.Printf("Error creating token: %v\n", err)
		return
	}
	defer func() { _, _, _ = client.Delete(ctx, token.UUID) }()

	// Test 1: Get caching
	fmt.Println("1. Token Get Cache Test:")

	start := time.Now()
	_, err = client.Get(ctx, token.UUID)
	if err != nil {
		fmt.Printf("   Error: %v\n", err)
		return
	}
	firstCall := time.Since(start)
	fmt.Printf("   First call (network):  %v\n", firstCall)

	start = time.Now()
	_, _ = client.Get(ctx, token.UUID)
	secondCall := time.Since(start)
	fmt.Printf("   Second call (cached):  %v\n", secondCall)
	fmt.Printf("   Speedup: %.0fx faster\n", float64(firstCall)/float64(secondCall))
	fmt.Println()

	// Test 2: List requests (not cached, baseline)
	fmt.Println("2. List Requests Performance (baseline, no caching):")
	cc := capture.NewClient(bc)
	start = time.Now()
	_, err = cc.List(ctx, token.UUID, capture.ListOptions{PerPage: 10})
	if err != nil {
		fmt.Printf("   Error: %v\n", err)
		return
	}
	listTime := time.Since(start)
	fmt.Printf("   List time: %v\n", listTime)
	fmt.Println()
}

// measurePollOverhead measures round trips consumed by a full wait timeout.
func measurePollOverhead() {
	config := base.LoadConfig()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	bc := base.NewClientFromConfig(config, logger)
	defer bc.Close()
	hc := hook.NewClient(bc)
	cc := capture.NewClientFromConfig(bc, config)
	ctx := context.Background()

	fmt.Println("=== Wait Poll Overhead ===")
	fmt.Println()

	token, err := hc.Create(ctx)
	if err != nil {
		fmt.Printf("Error creating token: %v\n", err)
		return
	}
	defer func() { _, _, _ = hc.Delete(ctx, token.UUID) }()

	// A 10s wait on an idle endpoint exercises the full poll loop:
	// baseline snapshot plus one page fetch per interval.
	fmt.Println("3. wait_for_request on an idle endpoint (10s budget):")
	start := time.Now()
	outcome := cc.WaitForRequest(ctx, token.UUID, 10*time.Second, "")
	elapsed := time.Since(start)
	fmt.Printf("   Outcome: %s\n", outcome.Outcome)
	fmt.Printf("   Wall time: %v\n", elapsed)
	fmt.Printf("   Expected API calls: 1 baseline + ~%d polls\n", int(elapsed/config.PollInterval))
	fmt.Println()
}

func main() {
	fmt.Println("Webhook.site MCP Server - Performance Measurements")
	fmt.Println("==================================================")
	fmt.Println()

	measureCachePerformance()
	measurePollOverhead()

	fmt.Println("=== Summary ===")
	fmt.Println()
	fmt.Println("Key characteristics:")
	fmt.Println("• Caching: repeated token lookups are served from memory within the TTL")
	fmt.Println("• Deduplication: concurrent identical lookups share one network call")
	fmt.Println("• Waiting: poll cost is one small page fetch per interval, newest first")
	fmt.Println("• Connection reuse: HTTP/2 + connection pooling reduces latency")
}
