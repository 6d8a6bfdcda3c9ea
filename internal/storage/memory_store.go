package storage

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"
)

// MemoryStore is an in-memory implementation of Store. It is used in tests
// and as a fallback when no database is configured; contents do not survive
// a restart.
type MemoryStore struct {
	entries map[string]json.RawMessage
	mu      sync.RWMutex
}

// NewMemoryStore creates a new instance of MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]json.RawMessage),
	}
}

// Get decodes the value stored under key into out.
func (s *MemoryStore) Get(key string, out interface{}) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	raw, ok := s.entries[key]
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		log.Printf("Discarding corrupt value under key %s: %v", key, err)
		return false, nil
	}
	return true, nil
}

// Set encodes value and stores it under key.
func (s *MemoryStore) Set(key string, value interface{}) error {
	body, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode value for key %s: %w", key, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = body
	return nil
}

// Remove deletes the entry under key.
func (s *MemoryStore) Remove(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, key)
	return nil
}

// SetRaw stores an already-encoded value verbatim. Tests use it to simulate
// corrupt entries written by an external party.
func (s *MemoryStore) SetRaw(key string, raw []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = json.RawMessage(raw)
}
