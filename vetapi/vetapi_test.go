package vetapi

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestNewClient(t *testing.T) {
	client := NewClient()

	if client.baseURL != DefaultBaseURL {
		t.Errorf("expected baseURL %q, got %q", DefaultBaseURL, client.baseURL)
	}

	if client.httpClient.Timeout != DefaultTimeout {
		t.Errorf("expected timeout %v, got %v", DefaultTimeout, client.httpClient.Timeout)
	}

	if client.Auth == nil {
		t.Error("expected Auth service to be initialized")
	}
	if client.Owners == nil {
		t.Error("expected Owners service to be initialized")
	}
	if client.Animals == nil {
		t.Error("expected Animals service to be initialized")
	}
	if client.Records == nil {
		t.Error("expected Records service to be initialized")
	}

	if client.sessions == nil {
		t.Error("expected a default session store")
	}
}

func TestNewClient_WithOptions(t *testing.T) {
	customClient := &http.Client{Timeout: 60 * time.Second}
	customURL := "https://vet.example.com"
	store := NewMemorySessionStore()

	client := NewClient(
		WithBaseURL(customURL),
		WithHTTPClient(customClient),
		WithSessionStore(store),
	)

	if client.BaseURL() != customURL {
		t.Errorf("expected baseURL %q, got %q", customURL, client.baseURL)
	}
	if client.httpClient != customClient {
		t.Error("expected custom HTTP client to be set")
	}
	if client.Sessions() != SessionStore(store) {
		t.Error("expected custom session store to be set")
	}
}

func TestNewClient_WithTimeout(t *testing.T) {
	client := NewClient(WithTimeout(5 * time.Second))

	if client.httpClient.Timeout != 5*time.Second {
		t.Errorf("expected timeout 5s, got %v", client.httpClient.Timeout)
	}
}

// newTestServer creates a test server and an authenticated client for
// testing. The session store starts out holding a valid session.
func newTestServer(t *testing.T, handler http.HandlerFunc) (*httptest.Server, *Client) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	store := NewMemorySessionStore()
	if err := store.Save("test-token", []byte(`{"id":"u1","name":"Ana","email":"a@b.com"}`)); err != nil {
		t.Fatalf("seeding session store: %v", err)
	}

	client := NewClient(
		WithBaseURL(server.URL),
		WithSessionStore(store),
	)
	return server, client
}
