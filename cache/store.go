package cache

import (
	"sync"
	"time"
)

type entry struct {
	value     interface{}
	tags      []string
	expiresAt time.Time
}

// MemoryStore is an in-process tag-indexed cache. Each entry carries the
// tags its value was derived from; invalidating a tag drops every entry
// that carries it.
type MemoryStore struct {
	mu      sync.RWMutex
	ttl     time.Duration
	entries map[string]entry
	byTag   map[string]map[string]struct{}
}

// NewMemoryStore creates an empty store whose entries live for ttl
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		ttl:     ttl,
		entries: make(map[string]entry),
		byTag:   make(map[string]map[string]struct{}),
	}
}

// Get returns the cached value for key, or false on a miss or expired entry
func (s *MemoryStore) Get(key string) (interface{}, bool) {
	s.mu.RLock()
	e, ok := s.entries[key]
	s.mu.RUnlock()

	if !ok {
		return nil, false
	}
	if time.Now().After(e.expiresAt) {
		s.mu.Lock()
		s.removeLocked(key)
		s.mu.Unlock()
		return nil, false
	}
	return e.value, true
}

// Set stores value under key, indexed by the given tags
func (s *MemoryStore) Set(key string, value interface{}, tags ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Drop any previous entry so stale tag index rows don't accumulate
	s.removeLocked(key)

	s.entries[key] = entry{
		value:     value,
		tags:      tags,
		expiresAt: time.Now().Add(s.ttl),
	}
	for _, tag := range tags {
		keys, ok := s.byTag[tag]
		if !ok {
			keys = make(map[string]struct{})
			s.byTag[tag] = keys
		}
		keys[key] = struct{}{}
	}
}

// Invalidate drops every entry carrying any of the given tags. Unknown
// tags are a safe no-op.
func (s *MemoryStore) Invalidate(tags ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, tag := range tags {
		for key := range s.byTag[tag] {
			s.removeLocked(key)
		}
	}
}

// PurgeExpired removes expired entries and returns how many were dropped
func (s *MemoryStore) PurgeExpired() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	purged := 0
	for key, e := range s.entries {
		if now.After(e.expiresAt) {
			s.removeLocked(key)
			purged++
		}
	}
	return purged
}

// Len returns the number of live entries
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// removeLocked deletes one entry and its tag index rows. Caller holds the lock.
func (s *MemoryStore) removeLocked(key string) {
	e, ok := s.entries[key]
	if !ok {
		return
	}
	delete(s.entries, key)
	for _, tag := range e.tags {
		keys := s.byTag[tag]
		delete(keys, key)
		if len(keys) == 0 {
			delete(s.byTag, tag)
		}
	}
}
