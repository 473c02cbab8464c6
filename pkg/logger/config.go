package logger

import (
	"fmt"
	"log/slog"
)

// Config drives logger construction from the environment.
type Config struct {
	Service string `env:"APP_NAME" envDefault:"clubhouse"`
	Env     string `env:"APP_ENV" envDefault:"development"`
	Level   string `env:"LOG_LEVEL"`
	Format  Format `env:"LOG_FORMAT"`
}

// Options translates cfg into factory options. Explicit Level and Format
// override the environment preset. Panics on an unparseable level.
func (cfg Config) Options() []Option {
	opts := []Option{WithEnvironment(cfg.Env, cfg.Service)}
	if cfg.Level != "" {
		var lvl slog.Level
		if err := lvl.UnmarshalText([]byte(cfg.Level)); err != nil {
			panic(fmt.Errorf("invalid log level %q: %w", cfg.Level, err))
		}
		opts = append(opts, WithLevel(lvl))
	}
	if cfg.Format != "" {
		opts = append(opts, WithFormat(cfg.Format))
	}
	return opts
}
