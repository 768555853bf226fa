package kv

import "sync"

// MemoryStore is a non-durable Store for throwaway sessions and tests.
type MemoryStore struct {
	mu     sync.Mutex
	values map[string]string
	// Writes counts successful Put calls.
	Writes int
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

func (s *MemoryStore) Get(key string) (string, error) {
	if err := checkKey(key); err != nil {
		return "", err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.values[key]
	if !ok {
		return "", ErrNotFound
	}
	return v, nil
}

func (s *MemoryStore) Put(key, value string) error {
	if err := checkKey(key); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	s.Writes++
	return nil
}

func (s *MemoryStore) Close() error {
	return nil
}
