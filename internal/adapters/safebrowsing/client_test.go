package safebrowsing

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"
)

func TestCheckEmptyURLList(t *testing.T) {
	client := NewClient("key", zap.NewNop())

	result := client.Check(context.Background(), nil)
	if !result.Checked {
		t.Error("empty input should report checked")
	}
	if len(result.URLs) != 0 || len(result.Matches) != 0 {
		t.Errorf("empty input should produce an empty result, got %+v", result)
	}
}

func TestCheckWithoutAPIKey(t *testing.T) {
	client := NewClient("", zap.NewNop())

	result := client.Check(context.Background(), []string{"http://a.example"})
	if result.Checked {
		t.Error("no API key means no lookup ran")
	}
	if result.APIKeyPresent {
		t.Error("APIKeyPresent must be false")
	}
	if result.Error != "" {
		t.Errorf("missing key is a skip, not a failure: %q", result.Error)
	}
	if v, ok := result.Matches["http://a.example"]; !ok || v.Unsafe {
		t.Errorf("unchecked URL must default to a safe verdict, got %+v", result.Matches)
	}
}

func TestCheckFlagsMaliciousURLs(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if r.URL.Query().Get("key") != "test-key" {
			t.Errorf("expected API key in query, got %q", r.URL.RawQuery)
		}

		var req lookupRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("bad request body: %v", err)
		}
		if req.Client.ClientID != clientID {
			t.Errorf("unexpected clientId %q", req.Client.ClientID)
		}
		if len(req.ThreatInfo.ThreatEntries) != 2 {
			t.Errorf("expected 2 threat entries, got %d", len(req.ThreatInfo.ThreatEntries))
		}

		resp := lookupResponse{}
		resp.Matches = append(resp.Matches, struct {
			ThreatType string `json:"threatType"`
			Threat     struct {
				URL string `json:"url"`
			} `json:"threat"`
		}{ThreatType: "SOCIAL_ENGINEERING", Threat: struct {
			URL string `json:"url"`
		}{URL: "http://evil.example"}})

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(resp); err != nil {
			t.Fatal(err)
		}
	}))
	defer server.Close()

	client := NewClient("test-key", zap.NewNop())
	client.endpoint = server.URL

	result := client.Check(context.Background(), []string{"http://evil.example", "http://fine.example"})
	if !result.Checked {
		t.Fatalf("lookup should have succeeded, error=%q", result.Error)
	}

	evil := result.Matches["http://evil.example"]
	if !evil.Unsafe {
		t.Error("flagged URL must be unsafe")
	}
	if len(evil.ThreatTypes) != 1 || evil.ThreatTypes[0] != "SOCIAL_ENGINEERING" {
		t.Errorf("unexpected threat types: %v", evil.ThreatTypes)
	}

	fine := result.Matches["http://fine.example"]
	if fine.Unsafe {
		t.Error("unflagged URL must stay safe")
	}
}

func TestCheckDegradesOnServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient("test-key", zap.NewNop())
	client.endpoint = server.URL

	result := client.Check(context.Background(), []string{"http://a.example"})
	if result.Checked {
		t.Error("failed lookup must not report checked")
	}
	if result.Error == "" {
		t.Error("failed lookup must carry an error description")
	}
	if v := result.Matches["http://a.example"]; v.Unsafe {
		t.Error("failure must not mark URLs unsafe")
	}
}

func TestCheckCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := NewClient("test-key", zap.NewNop())
	result := client.Check(ctx, []string{"http://a.example"})
	if result.Checked {
		t.Error("cancelled context must degrade, not succeed")
	}
	if result.Error == "" {
		t.Error("expected an error description")
	}
}
