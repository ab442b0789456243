// Package sessionstore persists the client session across process
// restarts as two well-known files under a configurable directory: the
// raw bearer token and the JSON-serialized user snapshot.
package sessionstore

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

const (
	// DefaultTokenKey is the file name holding the bearer token.
	DefaultTokenKey = "vet_system_token"
	// DefaultUserKey is the file name holding the user snapshot.
	DefaultUserKey = "vet_system_user"
)

// Store is a file-backed vetapi.SessionStore. Both keys live under a
// single directory; files are created with 0600 since the token grants
// full account access.
type Store struct {
	mu       sync.Mutex
	dir      string
	tokenKey string
	userKey  string
}

// New creates a store rooted at dir. Empty key names fall back to the
// well-known defaults.
func New(dir, tokenKey, userKey string) *Store {
	if tokenKey == "" {
		tokenKey = DefaultTokenKey
	}
	if userKey == "" {
		userKey = DefaultUserKey
	}
	return &Store{dir: dir, tokenKey: tokenKey, userKey: userKey}
}

func (s *Store) tokenPath() string { return filepath.Join(s.dir, s.tokenKey) }
func (s *Store) userPath() string  { return filepath.Join(s.dir, s.userKey) }

// Token returns the persisted bearer token, or "" if absent.
func (s *Store) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.tokenPath())
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

// UserJSON returns the persisted user snapshot, or nil if absent.
func (s *Store) UserJSON() []byte {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.userPath())
	if err != nil {
		return nil
	}
	return data
}

// Save persists both session keys.
func (s *Store) Save(token string, userJSON []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(s.dir, 0o700); err != nil {
		return fmt.Errorf("creating session directory: %w", err)
	}
	if err := os.WriteFile(s.tokenPath(), []byte(token), 0o600); err != nil {
		return fmt.Errorf("writing token: %w", err)
	}
	if err := os.WriteFile(s.userPath(), userJSON, 0o600); err != nil {
		return fmt.Errorf("writing user snapshot: %w", err)
	}
	return nil
}

// Clear removes both session keys. Removing an already-absent key is
// not an error, so a 401 teardown racing a logout stays harmless.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var errs []error
	for _, path := range []string{s.tokenPath(), s.userPath()} {
		if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
