package vetapi

import "sync"

// SessionStore persists the two pieces of session state the client
// depends on: the opaque bearer token and the JSON-serialized user
// snapshot. It is the single source of truth for auth state; the token
// is re-read before every authorized request, and any authorized
// request answered with 401 clears the store.
//
// Implementations must be safe for concurrent use. A 401 racing with a
// user-initiated logout is harmless since both converge on "cleared".
type SessionStore interface {
	// Token returns the persisted bearer token, or "" if absent.
	Token() string
	// UserJSON returns the persisted user snapshot, or nil if absent.
	UserJSON() []byte
	// Save persists both session keys.
	Save(token string, userJSON []byte) error
	// Clear removes both session keys.
	Clear() error
}

// MemorySessionStore is an in-memory SessionStore. It is the default
// for clients constructed without an explicit store, and is handy in
// tests and short-lived processes that don't need the session to
// survive restarts.
type MemorySessionStore struct {
	mu       sync.RWMutex
	token    string
	userJSON []byte
}

// NewMemorySessionStore creates an empty in-memory session store.
func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{}
}

func (s *MemorySessionStore) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

func (s *MemorySessionStore) UserJSON() []byte {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.userJSON == nil {
		return nil
	}
	out := make([]byte, len(s.userJSON))
	copy(out, s.userJSON)
	return out
}

func (s *MemorySessionStore) Save(token string, userJSON []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	s.userJSON = make([]byte, len(userJSON))
	copy(s.userJSON, userJSON)
	return nil
}

func (s *MemorySessionStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.userJSON = nil
	return nil
}
