package store

import (
	"sync"

	"houseprice/internal/domain"
)

// MemoryStore keeps preferences in memory only.
type MemoryStore struct {
	mu    sync.RWMutex
	prefs map[string]string
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{prefs: make(map[string]string)}
}

func (s *MemoryStore) Get(key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.prefs[key]
	return v, ok, nil
}

func (s *MemoryStore) Set(key, value string) error {
	s.mu.Lock()
	s.prefs[key] = value
	s.mu.Unlock()
	return nil
}

var _ domain.PreferenceStore = (*MemoryStore)(nil)
