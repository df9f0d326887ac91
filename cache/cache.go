// Package cache provides the time-bounded memo cache shared by the geo
// pipeline. It is constructed once at process start and injected into the
// services that need it.
package cache

import (
	"sync"
	"time"
)

type entry struct {
	value    any
	storedAt time.Time
}

// Store memoizes values by query signature with a fixed TTL. Eviction is
// lazy: an expired entry is removed on the read that finds it. Access is
// atomic per key; concurrent writers to the same key race with
// last-write-wins semantics, which is acceptable for memoization.
type Store struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]entry
	now     func() time.Time
}

func New(ttl time.Duration) *Store {
	return &Store{
		ttl:     ttl,
		entries: make(map[string]entry),
		now:     time.Now,
	}
}

// Get returns the cached value for key, or ok=false on a miss. An entry
// older than the TTL is evicted and reported as a miss.
func (s *Store) Get(key string) (any, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[key]
	if !ok {
		return nil, false
	}
	if s.now().Sub(e.storedAt) > s.ttl {
		delete(s.entries, key)
		return nil, false
	}
	return e.value, true
}

// Set stores value under key, overwriting any previous entry.
func (s *Store) Set(key string, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = entry{value: value, storedAt: s.now()}
}
