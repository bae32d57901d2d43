// Package memory provides a process-local ports.KVStore. It backs tests and
// the server's default storage driver; values do not survive a restart.
package memory

import (
	"context"
	"sync"

	"github.com/jsamuelsen11/domain-storefront/internal/ports"
)

// Compile-time check that Store implements ports.KVStore.
var _ ports.KVStore = (*Store)(nil)

// Store is a concurrency-safe in-memory key-value store.
type Store struct {
	mu   sync.RWMutex
	data map[string]string
}

// New returns an empty Store.
func New() *Store {
	return &Store{data: make(map[string]string)}
}

// Get implements ports.KVStore.
func (s *Store) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.data[key]
	return v, ok, nil
}

// Set implements ports.KVStore.
func (s *Store) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = value
	return nil
}

// Len returns the number of stored keys.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}
