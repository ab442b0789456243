package vetapi

import (
	"context"
	"encoding/json"
)

// AuthService owns the authentication lifecycle: registration, login,
// logout, and the predicates the rest of the application gates on.
type AuthService struct {
	client *Client
}

// Register creates a new user account. It does not establish a session;
// the caller is expected to log in afterwards.
func (s *AuthService) Register(ctx context.Context, req CreateUserRequest) (*User, error) {
	var user User
	if err := s.client.postNoAuth(ctx, "/users", req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Login exchanges credentials for a session. On success both session
// keys (token and user snapshot) are persisted to the session store
// before the response is returned.
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	var resp LoginResponse
	if err := s.client.postNoAuth(ctx, "/login", req, &resp); err != nil {
		return nil, err
	}

	userJSON, err := json.Marshal(resp.User)
	if err != nil {
		return nil, err
	}
	if err := s.client.sessions.Save(resp.Token, userJSON); err != nil {
		return nil, err
	}

	return &resp, nil
}

// Logout clears both persisted session keys, then fires the session
// lifecycle handler so the embedding surface returns to its login
// view, the same signal a 401 teardown emits. No server call is made;
// the token is opaque and simply forgotten.
func (s *AuthService) Logout() error {
	if err := s.client.sessions.Clear(); err != nil {
		return err
	}
	if s.client.onSessionExpired != nil {
		s.client.onSessionExpired()
	}
	return nil
}

// CurrentUser returns the persisted user snapshot, or nil if the
// session is absent. A snapshot that fails to parse is treated the same
// as an absent one rather than surfaced as corruption.
func (s *AuthService) CurrentUser() *User {
	userJSON := s.client.sessions.UserJSON()
	if len(userJSON) == 0 {
		return nil
	}

	var user User
	if err := json.Unmarshal(userJSON, &user); err != nil {
		return nil
	}
	return &user
}

// IsAuthenticated reports whether a session exists: both a persisted
// token and a parseable persisted user.
func (s *AuthService) IsAuthenticated() bool {
	return s.Token() != "" && s.CurrentUser() != nil
}

// Token returns the raw persisted bearer token, or "" if absent.
func (s *AuthService) Token() string {
	return s.client.sessions.Token()
}
