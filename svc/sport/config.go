package sport

import "time"

// CatalogKey is the cache key of the full catalog listing.
const CatalogKey = "catalog:all"

const DefaultCacheTTL = 5 * time.Minute

type Config struct {
	CacheTTL time.Duration `env:"CATALOG_CACHE_TTL" envDefault:"5m"`
}
