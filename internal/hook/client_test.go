package hook

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/probelab/webhook-site-mcp-server/internal/base"
	apperrors "github.com/probelab/webhook-site-mcp-server/internal/errors"
)

const testUUID = "9e27b29f-3d17-4d6e-a0c8-6c427d1a8b11"

func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	bc := base.NewClient(base.WithBaseURL(server.URL))
	t.Cleanup(bc.Close)
	return NewClient(bc), server
}

func TestCreate(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/token" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		json.NewEncoder(w).Encode(Token{UUID: testUUID, DefaultStatus: 200})
	}))

	token, err := client.Create(context.Background())
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if token.UUID != testUUID {
		t.Errorf("UUID = %q, want %q", token.UUID, testUUID)
	}
}

func TestCreateWithConfig(t *testing.T) {
	status := 404
	alias := "my-test-hook"

	var captured map[string]interface{}
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&captured)
		json.NewEncoder(w).Encode(Token{UUID: testUUID, DefaultStatus: status, Alias: alias})
	}))

	token, err := client.CreateWithConfig(context.Background(), TokenConfig{
		DefaultStatus: &status,
		Alias:         &alias,
	})
	if err != nil {
		t.Fatalf("CreateWithConfig() error = %v", err)
	}
	if token.Alias != alias {
		t.Errorf("Alias = %q, want %q", token.Alias, alias)
	}
	if got := captured["default_status"]; got != float64(404) {
		t.Errorf("payload default_status = %v, want 404", got)
	}
	if _, present := captured["timeout"]; present {
		t.Error("nil config fields should be omitted from the payload")
	}
}

func TestCreateWithConfigValidation(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("invalid config should not reach the API")
	}))

	tests := []struct {
		name   string
		config TokenConfig
	}{
		{"status too low", TokenConfig{DefaultStatus: intPtr(100)}},
		{"status too high", TokenConfig{DefaultStatus: intPtr(600)}},
		{"timeout negative", TokenConfig{Timeout: intPtr(-1)}},
		{"timeout too long", TokenConfig{Timeout: intPtr(31)}},
		{"expiry beyond a week", TokenConfig{Expiry: intPtr(604801)}},
		{"alias too short", TokenConfig{Alias: strPtr("ab")}},
		{"alias bad chars", TokenConfig{Alias: strPtr("bad alias!")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := client.CreateWithConfig(context.Background(), tt.config)
			if !apperrors.IsValidation(err) {
				t.Errorf("error = %v, want validation error", err)
			}
		})
	}
}

func TestGetCachesToken(t *testing.T) {
	calls := 0
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		json.NewEncoder(w).Encode(Token{UUID: testUUID})
	}))

	for i := 0; i < 3; i++ {
		if _, err := client.Get(context.Background(), testUUID); err != nil {
			t.Fatalf("Get() error = %v", err)
		}
	}
	if calls != 1 {
		t.Errorf("API calls = %d, want 1 (cached)", calls)
	}
}

func TestGetInvalidToken(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("invalid token should not reach the API")
	}))

	_, err := client.Get(context.Background(), "not a token!!")
	if !apperrors.IsValidation(err) {
		t.Errorf("error = %v, want validation error", err)
	}
}

func TestGetNotFound(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	_, err := client.Get(context.Background(), testUUID)
	if !apperrors.IsNotFound(err) {
		t.Errorf("error = %v, want not-found error", err)
	}
}

func TestUpdateInvalidatesCache(t *testing.T) {
	status := 201
	gets := 0
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			gets++
		}
		json.NewEncoder(w).Encode(Token{UUID: testUUID, DefaultStatus: status})
	}))

	ctx := context.Background()
	if _, err := client.Get(ctx, testUUID); err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if _, err := client.Update(ctx, testUUID, TokenConfig{DefaultStatus: &status}); err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if _, err := client.Get(ctx, testUUID); err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if gets != 2 {
		t.Errorf("GET calls = %d, want 2 (cache invalidated by update)", gets)
	}
}

func TestDelete(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			t.Errorf("method = %s, want DELETE", r.Method)
		}
		w.WriteHeader(http.StatusNoContent)
	}))

	ok, status, err := client.Delete(context.Background(), testUUID)
	if err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if !ok || status != http.StatusNoContent {
		t.Errorf("Delete() = (%v, %d), want (true, 204)", ok, status)
	}
}

func TestSend(t *testing.T) {
	var captured map[string]interface{}
	client, server := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/"+testUUID {
			t.Errorf("path = %q, want /%s", r.URL.Path, testUUID)
		}
		json.NewDecoder(r.Body).Decode(&captured)
		w.WriteHeader(http.StatusOK)
	}))

	target, err := client.Send(context.Background(), testUUID, map[string]interface{}{"ping": "pong"})
	if err != nil {
		t.Fatalf("Send() error = %v", err)
	}
	if captured["ping"] != "pong" {
		t.Errorf("payload = %v, want ping=pong", captured)
	}
	if want := server.URL + "/" + testUUID; target != want {
		t.Errorf("target URL = %q, want %q", target, want)
	}
}

func TestDeriveAddresses(t *testing.T) {
	client := NewClient(base.NewClient(base.WithBaseURL("https://webhook.site")))
	defer client.Close()

	addrs := client.DeriveAddresses(testUUID, "")
	if want := "https://webhook.site/" + testUUID; addrs.URL != want {
		t.Errorf("URL = %q, want %q", addrs.URL, want)
	}
	if want := "https://" + testUUID + ".webhook.site"; addrs.SubdomainURL != want {
		t.Errorf("SubdomainURL = %q, want %q", addrs.SubdomainURL, want)
	}
	if want := testUUID + "@email.webhook.site"; addrs.Email != want {
		t.Errorf("Email = %q, want %q", addrs.Email, want)
	}
	if want := testUUID + ".dnshook.site"; addrs.DNS != want {
		t.Errorf("DNS = %q, want %q", addrs.DNS, want)
	}

	aliased := client.DeriveAddresses(testUUID, "my-alias")
	if !strings.HasSuffix(aliased.URL, "/my-alias") {
		t.Errorf("aliased URL = %q, want alias in path", aliased.URL)
	}
	if !strings.Contains(aliased.SubdomainURL, testUUID) {
		t.Errorf("SubdomainURL = %q, should always use the UUID", aliased.SubdomainURL)
	}
}

func TestValidateToken(t *testing.T) {
	tests := []struct {
		name    string
		token   string
		wantErr bool
	}{
		{"uuid", testUUID, false},
		{"alias", "my-custom-hook", false},
		{"empty", "", true},
		{"too short", "ab", true},
		{"spaces", "not a token", true},
		{"path traversal", "../etc/passwd", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateToken(tt.token)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateToken(%q) error = %v, wantErr %v", tt.token, err, tt.wantErr)
			}
		})
	}
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		config  TokenConfig
		wantErr bool
	}{
		{"empty config", TokenConfig{}, false},
		{"valid", TokenConfig{DefaultStatus: intPtr(404), Timeout: intPtr(5), Expiry: intPtr(3600)}, false},
		{"status too low", TokenConfig{DefaultStatus: intPtr(199)}, true},
		{"status too high", TokenConfig{DefaultStatus: intPtr(600)}, true},
		{"timeout negative", TokenConfig{Timeout: intPtr(-1)}, true},
		{"timeout too long", TokenConfig{Timeout: intPtr(31)}, true},
		{"expiry over a week", TokenConfig{Expiry: intPtr(604801)}, true},
		{"bad alias", TokenConfig{Alias: strPtr("a")}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateConfig(tt.config)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateConfig() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}

	// The offending value is carried in the error message.
	err := ValidateConfig(TokenConfig{DefaultStatus: intPtr(600)})
	if err == nil || !strings.Contains(err.Error(), `"600"`) {
		t.Errorf("error = %v, want rejected status value in message", err)
	}
}

func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }
