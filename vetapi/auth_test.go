package vetapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newLoginServer(t *testing.T) (*Client, *MemorySessionStore) {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/login":
			if r.Method != http.MethodPost {
				t.Errorf("expected POST /login, got %s", r.Method)
			}
			var req LoginRequest
			json.NewDecoder(r.Body).Decode(&req)
			if req.Email != "a@b.com" || req.Password != "validpass1" {
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(map[string]string{"message": "Invalid credentials"})
				return
			}
			json.NewEncoder(w).Encode(LoginResponse{
				Token: "T1",
				User:  User{ID: "u1", Name: "Ana", Email: "a@b.com"},
			})
		case "/users":
			var req CreateUserRequest
			json.NewDecoder(r.Body).Decode(&req)
			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(User{ID: "u9", Name: req.Name, Email: req.Email})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(server.Close)

	store := NewMemorySessionStore()
	client := NewClient(WithBaseURL(server.URL), WithSessionStore(store))
	return client, store
}

func TestAuthService_Login_PersistsSession(t *testing.T) {
	client, store := newLoginServer(t)

	resp, err := client.Auth.Login(context.Background(), LoginRequest{
		Email:    "a@b.com",
		Password: "validpass1",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if resp.Token != "T1" {
		t.Errorf("expected token T1, got %q", resp.Token)
	}
	if store.Token() != "T1" {
		t.Errorf("expected persisted token T1, got %q", store.Token())
	}

	var persisted User
	if err := json.Unmarshal(store.UserJSON(), &persisted); err != nil {
		t.Fatalf("persisted user snapshot is not valid JSON: %v", err)
	}
	if persisted.ID != "u1" {
		t.Errorf("expected persisted user u1, got %q", persisted.ID)
	}

	if !client.Auth.IsAuthenticated() {
		t.Error("expected IsAuthenticated after login")
	}
	if got := client.Auth.CurrentUser(); got == nil || got.Name != "Ana" {
		t.Errorf("expected current user Ana, got %+v", got)
	}
	if client.Auth.Token() != "T1" {
		t.Errorf("expected Token() to return T1, got %q", client.Auth.Token())
	}
}

func TestAuthService_Login_FailureLeavesNoSession(t *testing.T) {
	client, store := newLoginServer(t)

	_, err := client.Auth.Login(context.Background(), LoginRequest{
		Email:    "a@b.com",
		Password: "wrong",
	})
	if err == nil {
		t.Fatal("expected login to fail")
	}

	if store.Token() != "" || store.UserJSON() != nil {
		t.Error("expected no session after failed login")
	}
	if client.Auth.IsAuthenticated() {
		t.Error("expected IsAuthenticated to be false")
	}
}

func TestAuthService_Register_DoesNotEstablishSession(t *testing.T) {
	client, store := newLoginServer(t)

	user, err := client.Auth.Register(context.Background(), CreateUserRequest{
		Name:     "Bia",
		Email:    "b@c.com",
		Password: "validpass1",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.ID != "u9" {
		t.Errorf("expected created user u9, got %q", user.ID)
	}

	if store.Token() != "" {
		t.Error("register must not persist a token")
	}
	if client.Auth.IsAuthenticated() {
		t.Error("register must not authenticate the client")
	}
}

func TestAuthService_Logout_ClearsBothKeys(t *testing.T) {
	client, store := newLoginServer(t)

	if _, err := client.Auth.Login(context.Background(), LoginRequest{Email: "a@b.com", Password: "validpass1"}); err != nil {
		t.Fatalf("login: %v", err)
	}

	if err := client.Auth.Logout(); err != nil {
		t.Fatalf("logout: %v", err)
	}

	if store.Token() != "" || store.UserJSON() != nil {
		t.Error("expected both session keys cleared after logout")
	}
	if client.Auth.IsAuthenticated() {
		t.Error("expected IsAuthenticated to be false after logout")
	}
}

func TestAuthService_Logout_FiresSessionHandler(t *testing.T) {
	store := NewMemorySessionStore()
	store.Save("T1", []byte(`{"id":"u1","name":"Ana","email":"a@b.com"}`))

	fired := 0
	client := NewClient(
		WithSessionStore(store),
		WithSessionExpiredHandler(func() { fired++ }),
	)

	if err := client.Auth.Logout(); err != nil {
		t.Fatalf("logout: %v", err)
	}

	if fired != 1 {
		t.Errorf("expected lifecycle handler to fire once on logout, fired %d times", fired)
	}
	if store.Token() != "" || store.UserJSON() != nil {
		t.Error("expected both session keys cleared before the handler observes the logout")
	}
}

func TestAuthService_CurrentUser_MalformedSnapshotIsNil(t *testing.T) {
	store := NewMemorySessionStore()
	store.Save("T1", []byte(`{not json`))
	client := NewClient(WithSessionStore(store))

	if got := client.Auth.CurrentUser(); got != nil {
		t.Errorf("expected nil for malformed snapshot, got %+v", got)
	}
	// Token alone is not a session.
	if client.Auth.IsAuthenticated() {
		t.Error("expected IsAuthenticated to be false with unparseable user")
	}
}
