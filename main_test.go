package main

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func TestServerIdentity(t *testing.T) {
	if ServerName != "webhook-site-mcp-server" {
		t.Errorf("ServerName = %q", ServerName)
	}
	if ServerVersion == "" {
		t.Error("ServerVersion should not be empty")
	}
}

func TestServerInstructions(t *testing.T) {
	// The instructions steer tool selection; the tools they mention must exist.
	for _, tool := range []string{
		"create_webhook",
		"wait_for_request",
		"wait_for_email",
		"get_webhook_requests",
		"check_for_callbacks",
	} {
		if !strings.Contains(serverInstructions, tool) {
			t.Errorf("Instructions should mention %s", tool)
		}
	}
}

func TestMetricsEndpoint(t *testing.T) {
	// Same handler serveMetrics mounts
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := httptest.NewServer(mux)
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/metrics")
	if err != nil {
		t.Fatalf("GET /metrics failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("Status = %d, want 200", resp.StatusCode)
	}
}
