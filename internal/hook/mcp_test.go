package hook

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"
)

func TestCreateTokenMCP(t *testing.T) {
	posts := 0
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		posts++
		var body map[string]interface{}
		json.NewDecoder(r.Body).Decode(&body)
		if _, hasStatus := body["default_status"]; posts == 1 && hasStatus {
			t.Error("empty args should create with no payload settings")
		}
		json.NewEncoder(w).Encode(Token{UUID: testUUID})
	}))

	result, err := client.CreateTokenMCP(context.Background(), CreateTokenArgs{})
	if err != nil {
		t.Fatalf("CreateTokenMCP() error = %v", err)
	}
	if result.TokenID != testUUID {
		t.Errorf("TokenID = %q, want %q", result.TokenID, testUUID)
	}
	if !strings.Contains(result.Addresses.Email, "@email.webhook.site") {
		t.Errorf("Email = %q, want email.webhook.site address", result.Addresses.Email)
	}

	status := 503
	if _, err := client.CreateTokenMCP(context.Background(), CreateTokenArgs{DefaultStatus: &status}); err != nil {
		t.Fatalf("CreateTokenMCP(config) error = %v", err)
	}
	if posts != 2 {
		t.Errorf("POST calls = %d, want 2", posts)
	}
}

func TestGetURLMCPWithoutValidation(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("validate=false must not call the API")
	}))

	result, err := client.GetURLMCP(context.Background(), AddressArgs{TokenID: testUUID})
	if err != nil {
		t.Fatalf("GetURLMCP() error = %v", err)
	}
	if !strings.HasSuffix(result.URL, "/"+testUUID) {
		t.Errorf("URL = %q, want token in path", result.URL)
	}
}

func TestGetEmailMCPWithValidation(t *testing.T) {
	calls := 0
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		json.NewEncoder(w).Encode(Token{UUID: testUUID})
	}))

	result, err := client.GetEmailMCP(context.Background(), AddressArgs{TokenID: testUUID, Validate: true})
	if err != nil {
		t.Fatalf("GetEmailMCP() error = %v", err)
	}
	if calls != 1 {
		t.Errorf("API calls = %d, want 1", calls)
	}
	if want := testUUID + "@email.webhook.site"; result.Email != want {
		t.Errorf("Email = %q, want %q", result.Email, want)
	}
}

func TestGetDNSMCP(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("validate=false must not call the API")
	}))

	result, err := client.GetDNSMCP(context.Background(), AddressArgs{TokenID: testUUID})
	if err != nil {
		t.Fatalf("GetDNSMCP() error = %v", err)
	}
	if want := testUUID + ".dnshook.site"; result.DNS != want {
		t.Errorf("DNS = %q, want %q", result.DNS, want)
	}
}

func TestSendMCPDefaultsPayload(t *testing.T) {
	var captured map[string]interface{}
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&captured)
	}))

	result, err := client.SendMCP(context.Background(), SendArgs{TokenID: testUUID})
	if err != nil {
		t.Fatalf("SendMCP() error = %v", err)
	}
	if !result.Sent {
		t.Error("Sent = false, want true")
	}
	if captured["test"] != true {
		t.Errorf("default payload = %v, want test=true", captured)
	}
}
