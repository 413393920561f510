package credentials

import (
	"context"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

type cacheEntry struct {
	cred  *Credential
	built time.Time
}

// CachedStore wraps a Store with a TTL cache and stampede protection.
type CachedStore struct {
	next Store
	ttl  time.Duration
	now  func() time.Time

	mu      sync.RWMutex
	entries map[string]cacheEntry
	sf      singleflight.Group
}

// NewCachedStore wraps next. A non-positive ttl returns next unchanged.
func NewCachedStore(next Store, ttl time.Duration) Store {
	if ttl <= 0 {
		return next
	}
	return &CachedStore{
		next:    next,
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]cacheEntry),
	}
}

// Get returns a cached credential or loads it from the wrapped store.
func (s *CachedStore) Get(ctx context.Context, id string) (*Credential, error) {
	// Fast path
	if cred, ok := s.lookup(id); ok {
		return cred, nil
	}

	result, err, _ := s.sf.Do(id, func() (interface{}, error) {
		// Double-check after acquiring singleflight lock
		if cred, ok := s.lookup(id); ok {
			return cred, nil
		}

		cred, err := s.next.Get(ctx, id)
		if err != nil {
			return nil, err
		}

		// id may alias a fiber request buffer that is reused after the request.
		key := strings.Clone(id)
		s.mu.Lock()
		s.entries[key] = cacheEntry{cred: cred, built: s.now()}
		s.mu.Unlock()

		return cred, nil
	})
	if err != nil {
		return nil, err
	}

	return result.(*Credential), nil
}

// Invalidate drops id from the cache.
func (s *CachedStore) Invalidate(id string) {
	s.mu.Lock()
	delete(s.entries, id)
	s.mu.Unlock()
}

func (s *CachedStore) lookup(id string) (*Credential, bool) {
	s.mu.RLock()
	entry, ok := s.entries[id]
	s.mu.RUnlock()

	if !ok || s.now().Sub(entry.built) > s.ttl {
		return nil, false
	}
	return entry.cred, true
}
