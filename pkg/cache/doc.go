// Package cache provides the time-bounded key/value stores used for
// read-through caching.
//
// Store is the minimal contract: Get, Set with a TTL, and Delete. Two
// implementations are available:
//
//   - MemoryStore keeps entries in a size-bounded LRU (hashicorp/golang-lru)
//     inside the process. Expiry is checked on read.
//   - RedisStore keeps entries in Redis with native key expiry, so several
//     processes observe the same entry and the same invalidations.
//
// Typed[T] layers JSON encoding over any Store:
//
//	store, _ := cache.NewMemoryStore(16)
//	sports := cache.NewTyped[[]sport.Sport](store)
//
//	if list, ok, err := sports.Get(ctx, "catalog:all"); err == nil && ok {
//		return list, nil
//	}
//
// Values written through Set are copies; later mutation of the caller's
// slice does not change the cached snapshot.
package cache
