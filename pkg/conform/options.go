package conform

import "github.com/dmitrymomot/textmask/pkg/mask"

// Option configures a Conform call.
type Option func(*config)

type config struct {
	guide                  bool
	placeholderChar        rune
	keepCharPositions      bool
	currentCaretPosition   int
	previousConformedValue string
	placeholder            string
}

func defaultConfig() *config {
	return &config{
		guide:                true,
		placeholderChar:      mask.DefaultPlaceholderChar,
		currentCaretPosition: -1,
	}
}

// WithGuide toggles padding of unfilled slots. Default true.
func WithGuide(enabled bool) Option {
	return func(c *config) { c.guide = enabled }
}

// WithPlaceholderChar sets the character shown in unfilled slots. Zero is ignored.
func WithPlaceholderChar(r rune) Option {
	return func(c *config) {
		if r != 0 {
			c.placeholderChar = r
		}
	}
}

// WithKeepCharPositions makes deletions leave placeholder gaps instead of
// shifting later characters left, and makes insertions overwrite gaps.
func WithKeepCharPositions(enabled bool) Option {
	return func(c *config) { c.keepCharPositions = enabled }
}

// WithCaretPosition sets the caret position after the edit. A negative value
// means unknown and is treated as the end of the raw value.
func WithCaretPosition(pos int) Option {
	return func(c *config) { c.currentCaretPosition = pos }
}

// WithPreviousConformedValue passes the value produced by the previous call.
func WithPreviousConformedValue(v string) Option {
	return func(c *config) { c.previousConformedValue = v }
}

// WithPlaceholder supplies a precomputed placeholder. It is ignored unless its
// length matches the resolved mask.
func WithPlaceholder(p string) Option {
	return func(c *config) { c.placeholder = p }
}
