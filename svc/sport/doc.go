// Package sport implements the sport catalog.
//
// FindAll is read-through cached under CatalogKey: a hit is served without
// touching the store, a miss loads the table and repopulates the cache for
// the configured TTL. Every successful Create, Update and Remove evicts the
// key before returning, so the next listing reflects the write. Lookups of
// a single sport always go to the store.
//
// The cache is injected as a cache.Store, so a process-local
// cache.MemoryStore and a shared cache.RedisStore are interchangeable.
package sport
