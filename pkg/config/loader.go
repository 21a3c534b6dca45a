package config

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// DefaultPrefix is prepended to every variable name.
const DefaultPrefix = "TEXTMASK_"

// Option configures Load.
type Option func(*options)

type options struct {
	prefix   string
	envFiles []string
}

// WithPrefix overrides DefaultPrefix. An empty prefix reads bare names.
func WithPrefix(prefix string) Option {
	return func(o *options) { o.prefix = prefix }
}

// WithEnvFiles sets the .env files read before parsing.
// Missing files are skipped.
func WithEnvFiles(paths ...string) Option {
	return func(o *options) { o.envFiles = paths }
}

// Load reads .env files and parses the environment into v.
//
// Example:
//
//	type CLI struct {
//		Preset string `env:"PRESET" envDefault:"phone-us"`
//	}
//
//	var c CLI
//	err := config.Load(&c) // reads TEXTMASK_PRESET
func Load[T any](v *T, opts ...Option) error {
	if v == nil {
		return ErrNilPointer
	}

	o := &options{prefix: DefaultPrefix}
	for _, opt := range opts {
		opt(o)
	}

	for _, path := range o.envFiles {
		// Missing files are fine, the environment alone may be enough.
		_ = godotenv.Load(path)
	}
	if len(o.envFiles) == 0 {
		_ = godotenv.Load()
	}

	if err := env.ParseWithOptions(v, env.Options{Prefix: o.prefix}); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

// MustLoad works like Load but panics on failure.
func MustLoad[T any](v *T, opts ...Option) {
	if err := Load(v, opts...); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}
