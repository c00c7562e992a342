// Package session persists the signed-in member between CLI invocations.
//
// The persisted form is a flat string key/value document with the keys
// "user" (the JSON-encoded UserView), "isAuthenticated" (the string
// "true") and, optionally, "token".
package session

import (
	"encoding/json"
	"sync"

	"sosio/internal/identity"
)

// Storage keys.
const (
	KeyUser          = "user"
	KeyAuthenticated = "isAuthenticated"
	KeyToken         = "token"
)

// Session is the client-side record of a sign-in.
type Session struct {
	User          *identity.UserView
	Authenticated bool
	Token         string
}

// SignedIn returns an authenticated session for user.
func SignedIn(user identity.UserView, token string) Session {
	return Session{User: &user, Authenticated: true, Token: token}
}

// Store loads, saves and clears the persisted session.
type Store interface {
	// Load never fails: absent or unreadable data yields the zero Session.
	Load() Session
	Save(s Session) error
	Clear() error
}

// encode flattens a session into storage keys. An unauthenticated session
// encodes to nothing.
func encode(s Session) (map[string]string, error) {
	if !s.Authenticated || s.User == nil {
		return map[string]string{}, nil
	}
	raw, err := json.Marshal(s.User)
	if err != nil {
		return nil, err
	}
	kv := map[string]string{
		KeyUser:          string(raw),
		KeyAuthenticated: "true",
	}
	if s.Token != "" {
		kv[KeyToken] = s.Token
	}
	return kv, nil
}

// decode rebuilds a session. Both the flag and a decodable user are needed.
func decode(kv map[string]string) Session {
	if kv[KeyAuthenticated] != "true" || kv[KeyUser] == "" {
		return Session{}
	}
	var user identity.UserView
	if err := json.Unmarshal([]byte(kv[KeyUser]), &user); err != nil {
		return Session{}
	}
	return Session{User: &user, Authenticated: true, Token: kv[KeyToken]}
}

// MemoryStore keeps the session in process memory.
type MemoryStore struct {
	mu sync.Mutex
	kv map[string]string
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{kv: map[string]string{}}
}

func (m *MemoryStore) Load() Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	return decode(m.kv)
}

func (m *MemoryStore) Save(s Session) error {
	kv, err := encode(s)
	if err != nil {
		return err
	}
	m.mu.Lock()
	m.kv = kv
	m.mu.Unlock()
	return nil
}

func (m *MemoryStore) Clear() error {
	m.mu.Lock()
	m.kv = map[string]string{}
	m.mu.Unlock()
	return nil
}
