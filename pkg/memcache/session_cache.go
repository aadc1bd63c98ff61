// pkg/mem/session_cache.go
package mem

import (
	"context"
	"sync"
	"time"
)

type entry struct {
	value     string
	expiresAt time.Time
}

// SessionCache is the in-process fallback for the session-scoped key-value
// store, used when no Redis is configured and in tests. Entries expire after
// the session TTL; expired entries are dropped lazily on read.
type SessionCache struct {
	mu   sync.RWMutex
	ttl  time.Duration
	data map[string]entry
}

func NewSessionCache(ttl time.Duration) *SessionCache {
	return &SessionCache{
		ttl:  ttl,
		data: make(map[string]entry),
	}
}

func (s *SessionCache) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	e, ok := s.data[key]
	s.mu.RUnlock()

	if !ok {
		return "", false, nil
	}
	if time.Now().After(e.expiresAt) {
		s.mu.Lock()
		delete(s.data, key) // cleanup expired
		s.mu.Unlock()
		return "", false, nil
	}
	return e.value, true, nil
}

func (s *SessionCache) Set(_ context.Context, key string, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = entry{
		value:     value,
		expiresAt: time.Now().Add(s.ttl),
	}
	return nil
}

func (s *SessionCache) Remove(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
	return nil
}
