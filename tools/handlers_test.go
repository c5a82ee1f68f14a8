package tools

import (
	"log/slog"
	"os"
	"testing"

	"github.com/probelab/webhook-site-mcp-server/internal/base"
	"github.com/probelab/webhook-site-mcp-server/internal/bounty"
	"github.com/probelab/webhook-site-mcp-server/internal/capture"
	"github.com/probelab/webhook-site-mcp-server/internal/hook"
)

func newTestRegistry(t *testing.T) *HandlerRegistry {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	bc := base.NewClient(base.WithLogger(logger))
	t.Cleanup(bc.Close)
	hookClient := hook.NewClient(bc)
	captureClient := capture.NewClient(bc)
	bountyClient := bounty.NewClient(captureClient)
	return NewHandlerRegistry(hookClient, captureClient, bountyClient, logger)
}

func TestNewHandlerRegistry(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	bc := base.NewClient(base.WithLogger(logger))
	defer bc.Close()
	hookClient := hook.NewClient(bc)
	captureClient := capture.NewClient(bc)
	bountyClient := bounty.NewClient(captureClient)

	registry := NewHandlerRegistry(hookClient, captureClient, bountyClient, logger)

	if registry == nil {
		t.Fatal("Expected non-nil registry")
	}
	if registry.hookClient != hookClient {
		t.Error("Registry should hold the hook client reference")
	}
	if registry.captureClient != captureClient {
		t.Error("Registry should hold the capture client reference")
	}
	if registry.bountyClient != bountyClient {
		t.Error("Registry should hold the bounty client reference")
	}
	if registry.logger != logger {
		t.Error("Registry should hold the logger reference")
	}
}

func TestBuildTool(t *testing.T) {
	registry := newTestRegistry(t)

	tests := []struct {
		name      string
		spec      ToolSpec
		wantName  string
		wantDesc  string
		wantRO    bool
		wantIdem  bool
		wantDestr bool
		wantOpen  bool
	}{
		{
			name: "read-only tool",
			spec: ToolSpec{
				Name:        "get_webhook_url",
				Title:       "Get Webhook URL",
				Description: "Derive the capture URLs for a token",
				Method:      "GetURL",
				Category:    "webhook",
				ReadOnly:    true,
				Idempotent:  true,
			},
			wantName:  "get_webhook_url",
			wantDesc:  "Derive the capture URLs for a token",
			wantRO:    true,
			wantIdem:  true,
			wantDestr: false,
			wantOpen:  false,
		},
		{
			name: "destructive tool",
			spec: ToolSpec{
				Name:        "delete_webhook",
				Title:       "Delete Webhook",
				Description: "Delete a webhook endpoint",
				Method:      "DeleteToken",
				Category:    "webhook",
				Destructive: true,
				OpenWorld:   true,
			},
			wantName:  "delete_webhook",
			wantDesc:  "Delete a webhook endpoint",
			wantDestr: true,
			wantOpen:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tool := registry.buildTool(tt.spec)

			if tool.Name != tt.wantName {
				t.Errorf("Name = %q, want %q", tool.Name, tt.wantName)
			}
			if tool.Description != tt.wantDesc {
				t.Errorf("Description = %q, want %q", tool.Description, tt.wantDesc)
			}
			if tool.Annotations == nil {
				t.Fatal("Expected annotations")
			}
			if tool.Annotations.ReadOnlyHint != tt.wantRO {
				t.Errorf("ReadOnlyHint = %v, want %v", tool.Annotations.ReadOnlyHint, tt.wantRO)
			}
			if tool.Annotations.IdempotentHint != tt.wantIdem {
				t.Errorf("IdempotentHint = %v, want %v", tool.Annotations.IdempotentHint, tt.wantIdem)
			}
			if tt.wantDestr && (tool.Annotations.DestructiveHint == nil || !*tool.Annotations.DestructiveHint) {
				t.Error("Expected DestructiveHint to be true")
			}
			if tt.wantOpen && (tool.Annotations.OpenWorldHint == nil || !*tool.Annotations.OpenWorldHint) {
				t.Error("Expected OpenWorldHint to be true")
			}
		})
	}
}

func TestRecoverPanic(t *testing.T) {
	registry := newTestRegistry(t)

	// Test that recoverPanic doesn't panic itself
	func() {
		defer registry.recoverPanic("test_tool")
		panic("test panic")
	}()

	// If we get here, panic was recovered successfully
}

func TestLogExecution(t *testing.T) {
	registry := newTestRegistry(t)
	spec := ToolSpec{Name: "test_tool", Category: "requests"}

	// Test with ListRequestsArgs
	registry.logExecution(spec,
		capture.ListRequestsArgs{TokenID: "abc", Limit: 5},
		capture.ListRequestsResult{TotalRequests: 2})

	// Test with WaitForRequestArgs
	registry.logExecution(spec,
		capture.WaitForRequestArgs{TokenID: "abc", TimeoutSeconds: 30},
		&capture.WaitOutcome{Outcome: "timeout"})

	// Test with CheckCallbacksArgs
	registry.logExecution(spec,
		bounty.CheckCallbacksArgs{TokenID: "abc", SinceMinutes: 15},
		&bounty.CallbackReport{Detected: true, TotalCallbacks: 3})

	// Test with SendArgs
	registry.logExecution(spec,
		hook.SendArgs{TokenID: "abc"},
		hook.SendResult{})
}

func TestAllToolsNotEmpty(t *testing.T) {
	if len(AllTools) == 0 {
		t.Error("AllTools should not be empty")
	}

	// Verify each tool has required fields
	for i, spec := range AllTools {
		if spec.Name == "" {
			t.Errorf("Tool %d has empty Name", i)
		}
		if spec.Method == "" {
			t.Errorf("Tool %s has empty Method", spec.Name)
		}
		if spec.Description == "" {
			t.Errorf("Tool %s has empty Description", spec.Name)
		}
		if spec.Category == "" {
			t.Errorf("Tool %s has empty Category", spec.Name)
		}
	}
}

func TestToolSpecMethods(t *testing.T) {
	knownMethods := map[string]bool{
		// Webhook endpoint tools
		"CreateToken":           true,
		"CreateTokenWithConfig": true,
		"GetToken":              true,
		"UpdateToken":           true,
		"DeleteToken":           true,
		"Send":                  true,
		"GetURL":                true,
		"GetEmail":              true,
		"GetDNS":                true,
		// Captured request tools
		"ListRequests":      true,
		"SearchRequests":    true,
		"LatestRequest":     true,
		"DeleteRequest":     true,
		"DeleteAllRequests": true,
		// Wait tools
		"WaitForRequest": true,
		"WaitForEmail":   true,
		// Security testing tools
		"SSRFPayload":    true,
		"XSSPayload":     true,
		"CanaryToken":    true,
		"CheckCallbacks": true,
		"ExtractLinks":   true,
	}

	for _, spec := range AllTools {
		if !knownMethods[spec.Method] {
			t.Errorf("Tool %s has unknown method: %s", spec.Name, spec.Method)
		}
	}
}

func TestToolNamesUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, spec := range AllTools {
		if seen[spec.Name] {
			t.Errorf("Duplicate tool name: %s", spec.Name)
		}
		seen[spec.Name] = true
	}
}

func TestDestructiveToolsFlagged(t *testing.T) {
	destructive := map[string]bool{
		"delete_webhook":      true,
		"delete_request":      true,
		"delete_all_requests": true,
	}

	for _, spec := range AllTools {
		if destructive[spec.Name] && !spec.Destructive {
			t.Errorf("Tool %s must carry the destructive hint", spec.Name)
		}
		if !destructive[spec.Name] && spec.Destructive {
			t.Errorf("Tool %s should not carry the destructive hint", spec.Name)
		}
	}
}

func TestToolsByCategory(t *testing.T) {
	for _, category := range []string{"webhook", "requests", "wait", "bounty"} {
		specs := ToolsByCategory(category)
		if len(specs) == 0 {
			t.Errorf("Expected tools in category %s", category)
		}
		for _, spec := range specs {
			if spec.Category != category {
				t.Errorf("Tool %s has category %s, expected %s", spec.Name, spec.Category, category)
			}
		}
	}

	// Non-existent category should return empty
	unknown := ToolsByCategory("unknown")
	if len(unknown) != 0 {
		t.Errorf("Expected 0 tools for unknown category, got %d", len(unknown))
	}
}
