package memkv

import (
	"StudentPlanner/pkg/kv"
	"context"
	"sync"
)

// Store is an in-memory kv.Store. It backs tests and throwaway sessions where
// nothing should touch the disk.
type Store struct {
	mu      sync.RWMutex
	records map[string][]byte
}

func New() *Store {
	return &Store{
		records: make(map[string][]byte),
	}
}

func (s *Store) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.records[key]
	if !ok {
		return nil, kv.ErrKeyNotFound
	}

	copied := make([]byte, len(value))
	copy(copied, value)
	return copied, nil
}

func (s *Store) Set(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	copied := make([]byte, len(value))
	copy(copied, value)
	s.records[key] = copied
	return nil
}

func (s *Store) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.records, key)
	return nil
}
