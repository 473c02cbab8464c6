package cache

import (
	"context"
	"fmt"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultMemorySize is the entry limit used when none is configured.
const DefaultMemorySize = 128

type memoryEntry struct {
	value     []byte
	expiresAt time.Time
}

// MemoryStore is an in-process Store backed by a size-bounded LRU.
// Expired entries are dropped lazily on read.
type MemoryStore struct {
	items *lru.Cache[string, memoryEntry]
	now   func() time.Time
}

// MemoryOption configures a MemoryStore.
type MemoryOption func(*MemoryStore)

// WithClock overrides the time source, used by tests to move past a TTL.
func WithClock(now func() time.Time) MemoryOption {
	return func(s *MemoryStore) {
		if now != nil {
			s.now = now
		}
	}
}

// NewMemoryStore creates a store holding at most size entries.
// Non-positive sizes fall back to DefaultMemorySize.
func NewMemoryStore(size int, opts ...MemoryOption) (*MemoryStore, error) {
	if size <= 0 {
		size = DefaultMemorySize
	}

	items, err := lru.New[string, memoryEntry](size)
	if err != nil {
		return nil, fmt.Errorf("cache: create lru: %w", err)
	}

	s := &MemoryStore{items: items, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

func (s *MemoryStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	entry, ok := s.items.Get(key)
	if !ok {
		return nil, false, nil
	}
	if !s.now().Before(entry.expiresAt) {
		s.items.Remove(key)
		return nil, false, nil
	}
	return entry.value, true, nil
}

func (s *MemoryStore) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	if err := validate(key, ttl); err != nil {
		return err
	}

	// Copy so callers cannot mutate the cached snapshot.
	stored := make([]byte, len(value))
	copy(stored, value)

	s.items.Add(key, memoryEntry{value: stored, expiresAt: s.now().Add(ttl)})
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, key string) error {
	s.items.Remove(key)
	return nil
}

// Len reports the number of entries, including expired ones not yet read.
func (s *MemoryStore) Len() int {
	return s.items.Len()
}
