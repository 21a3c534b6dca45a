package config

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Defaults holds engine and logging defaults shared by the CLI and by
// applications that build inputs from configuration.
type Defaults struct {
	PlaceholderChar   string `env:"PLACEHOLDER_CHAR" envDefault:"_"`
	Guide             bool   `env:"GUIDE" envDefault:"true"`
	KeepCharPositions bool   `env:"KEEP_CHAR_POSITIONS" envDefault:"false"`
	ShowMask          bool   `env:"SHOW_MASK" envDefault:"false"`
	PresetsFile       string `env:"PRESETS_FILE"`
	LogLevel          string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat         string `env:"LOG_FORMAT" envDefault:"text"`
}

// Validate checks values that env tags cannot express.
func (d Defaults) Validate() error {
	if utf8.RuneCountInString(d.PlaceholderChar) != 1 {
		return fmt.Errorf("%w: %q", ErrInvalidPlaceholderChar, d.PlaceholderChar)
	}
	switch strings.ToLower(d.LogFormat) {
	case "text", "json":
	default:
		return fmt.Errorf("%w: %q", ErrInvalidLogFormat, d.LogFormat)
	}
	switch strings.ToLower(d.LogLevel) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("%w: %q", ErrInvalidLogLevel, d.LogLevel)
	}
	return nil
}

// Placeholder returns the placeholder character. Call Validate first;
// an invalid value yields the default '_'.
func (d Defaults) Placeholder() rune {
	if utf8.RuneCountInString(d.PlaceholderChar) != 1 {
		return '_'
	}
	r, _ := utf8.DecodeRuneInString(d.PlaceholderChar)
	return r
}
