package mask

import "errors"

var (
	// ErrInvalidMask is returned when a mask has the wrong shape for the operation,
	// e.g. a Disabled or Dynamic mask reaches the placeholder builder.
	ErrInvalidMask = errors.New("invalid mask")

	// ErrPlaceholderCollision is returned when a literal slot uses the placeholder character.
	ErrPlaceholderCollision = errors.New("placeholder character is used as a literal in the mask")

	// ErrEmptyPattern is returned when parsing an empty pattern string.
	ErrEmptyPattern = errors.New("mask pattern is empty")

	// ErrDanglingEscape is returned when a pattern ends with an unescaped backslash.
	ErrDanglingEscape = errors.New("mask pattern ends with a dangling escape")
)
