package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"
)

var (
	ErrEmptyKey     = errors.New("cache key is empty")
	ErrInvalidTTL   = errors.New("cache ttl must be positive")
	ErrDecodeFailed = errors.New("failed to decode cached value")
	ErrEncodeFailed = errors.New("failed to encode value for cache")
)

// Store is a time-bounded key/value store with explicit invalidation.
// Implementations must be safe for concurrent use.
type Store interface {
	// Get returns the value stored under key. The boolean is false when the
	// key is absent or expired.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores value under key for ttl.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}

// Typed stores values of type T as JSON on top of a Store.
type Typed[T any] struct {
	store Store
}

// NewTyped wraps store. Panics on nil store.
func NewTyped[T any](store Store) *Typed[T] {
	if store == nil {
		panic("cache: store is required")
	}
	return &Typed[T]{store: store}
}

// Get decodes the value under key. A value that no longer decodes into T is
// reported as ErrDecodeFailed together with found=false.
func (t *Typed[T]) Get(ctx context.Context, key string) (T, bool, error) {
	var zero T

	raw, ok, err := t.store.Get(ctx, key)
	if err != nil || !ok {
		return zero, false, err
	}

	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return zero, false, errors.Join(ErrDecodeFailed, err)
	}
	return v, true, nil
}

// Set encodes v and stores it under key for ttl.
func (t *Typed[T]) Set(ctx context.Context, key string, v T, ttl time.Duration) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return errors.Join(ErrEncodeFailed, err)
	}
	return t.store.Set(ctx, key, raw, ttl)
}

// Delete removes key from the underlying store.
func (t *Typed[T]) Delete(ctx context.Context, key string) error {
	return t.store.Delete(ctx, key)
}

func validate(key string, ttl time.Duration) error {
	if key == "" {
		return ErrEmptyKey
	}
	if ttl <= 0 {
		return ErrInvalidTTL
	}
	return nil
}
