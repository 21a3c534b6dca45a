package textmask

import (
	"log/slog"

	"github.com/dmitrymomot/textmask/pkg/mask"
)

// Option configures an Input, or a single Update/SetValue call.
type Option func(*Config)

// Config is the effective configuration of one update cycle.
type Config struct {
	Mask              mask.Mask
	Pipe              Pipe
	Guide             bool
	PlaceholderChar   rune
	KeepCharPositions bool
	ShowMask          bool
	Logger            *slog.Logger
}

// NewConfig applies opts to the defaults: guide on, '_' placeholder,
// masking disabled and a discarding logger.
func NewConfig(opts ...Option) Config {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

func defaultConfig() Config {
	return Config{
		Mask:            mask.Disabled,
		Guide:           true,
		PlaceholderChar: mask.DefaultPlaceholderChar,
		Logger:          slog.New(slog.DiscardHandler),
	}
}

// WithMask sets the mask. An invalid (zero) mask fails on the next update.
func WithMask(m mask.Mask) Option {
	return func(c *Config) { c.Mask = m }
}

// WithPipe sets the post-conform hook. Nil removes it.
func WithPipe(p Pipe) Option {
	return func(c *Config) { c.Pipe = p }
}

// WithBundle sets mask and pipe together.
func WithBundle(b Bundle) Option {
	return func(c *Config) {
		c.Mask = b.Mask
		c.Pipe = b.Pipe
	}
}

func WithGuide(enabled bool) Option {
	return func(c *Config) { c.Guide = enabled }
}

// WithPlaceholderChar sets the character shown in empty slots. Zero is ignored.
func WithPlaceholderChar(r rune) Option {
	return func(c *Config) {
		if r != 0 {
			c.PlaceholderChar = r
		}
	}
}

func WithKeepCharPositions(enabled bool) Option {
	return func(c *Config) { c.KeepCharPositions = enabled }
}

// WithShowMask displays the placeholder instead of an empty field.
func WithShowMask(enabled bool) Option {
	return func(c *Config) { c.ShowMask = enabled }
}

// WithLogger sets the logger for debug traces. Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(c *Config) {
		if l != nil {
			c.Logger = l
		}
	}
}
