package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Option configures Load.
type Option func(*options)

type options struct {
	dotenv      []string
	prefix      string
	environment map[string]string
}

// WithDotenv overrides the dotenv files read before parsing. Missing files are
// skipped; variables already set in the process environment win.
func WithDotenv(files ...string) Option {
	return func(o *options) { o.dotenv = files }
}

// WithPrefix prepends prefix to every env tag, e.g. "CLUBHOUSE_".
func WithPrefix(prefix string) Option {
	return func(o *options) { o.prefix = prefix }
}

// WithEnvironment parses from vars instead of the process environment and
// skips dotenv loading. Intended for tests.
func WithEnvironment(vars map[string]string) Option {
	return func(o *options) { o.environment = vars }
}

// Load parses environment variables into a new T using its env and
// envDefault struct tags.
//
//	type Config struct {
//		HTTP httpserver.Config
//		PG   pg.Config
//	}
//
//	cfg, err := config.Load[Config]()
func Load[T any](opts ...Option) (T, error) {
	o := options{dotenv: []string{".env"}}
	for _, opt := range opts {
		opt(&o)
	}

	var cfg T
	if o.environment == nil {
		if err := loadDotenv(o.dotenv...); err != nil {
			return cfg, err
		}
	}

	if err := env.ParseWithOptions(&cfg, env.Options{
		Prefix:      o.prefix,
		Environment: o.environment,
	}); err != nil {
		return cfg, errors.Join(ErrParsingConfig, err)
	}
	return cfg, nil
}

// MustLoad is Load that panics on error. Use it for configuration the
// process cannot start without.
func MustLoad[T any](opts ...Option) T {
	cfg, err := Load[T](opts...)
	if err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
	return cfg
}

func loadDotenv(files ...string) error {
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return errors.Join(ErrLoadingDotenv, err)
		}
	}
	return nil
}
