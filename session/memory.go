package session

import (
	"sync"
)

// MemoryStore is the default process-local backing.
type MemoryStore struct {
	mu     sync.RWMutex
	tokens map[string]uint
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{tokens: make(map[string]uint)}
}

func (s *MemoryStore) Set(token string, userID uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens[token] = userID
	return nil
}

func (s *MemoryStore) Get(token string) (uint, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.tokens[token]
	return id, ok
}

func (s *MemoryStore) Delete(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.tokens, token)
	return nil
}
