package session

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"sync"

	"mantranwebapi/internal/domain/entities"
)

// Store holds signed-in identities keyed by opaque token, mirrored to a
// single JSON file so sessions survive a restart. The file is the only
// local persistence this service keeps.
//
// A cache that fails to parse is discarded, not surfaced: the affected
// users are simply logged out.
type Store struct {
	path string

	mu       sync.RWMutex
	sessions map[string]entities.User
}

func NewStore(path string) *Store {
	s := &Store{path: path, sessions: map[string]entities.User{}}
	s.loadFromDisk()
	return s
}

func (s *Store) loadFromDisk() {
	if s.path == "" {
		return
	}
	content, err := os.ReadFile(s.path)
	if err != nil {
		return
	}
	var cached map[string]entities.User
	if err := json.Unmarshal(content, &cached); err != nil {
		log.Printf("[session][store] discarding malformed cache path=%s err=%v", s.path, err)
		_ = os.Remove(s.path)
		return
	}
	s.sessions = cached
}

// Put registers a session and persists the cache.
func (s *Store) Put(token string, u entities.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[token] = u
	return s.persist()
}

// Get returns the identity behind token, if any.
func (s *Store) Get(token string) (entities.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.sessions[token]
	return u, ok
}

// Delete removes a session and persists the cache.
func (s *Store) Delete(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
	return s.persist()
}

func (s *Store) persist() error {
	if s.path == "" {
		return nil
	}
	content, err := json.Marshal(s.sessions)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(s.path, content, 0o600)
}
