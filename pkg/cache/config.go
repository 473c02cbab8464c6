package cache

// Drivers selectable through Config.Driver.
const (
	DriverMemory = "memory"
	DriverRedis  = "redis"
)

type Config struct {
	Driver string `env:"CACHE_DRIVER" envDefault:"memory"`
	// Size bounds the number of in-memory entries.
	Size int `env:"CACHE_SIZE" envDefault:"128"`
	// KeyPrefix namespaces keys in a shared Redis.
	KeyPrefix string `env:"CACHE_KEY_PREFIX" envDefault:"clubhouse:"`
}
