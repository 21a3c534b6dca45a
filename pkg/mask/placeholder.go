package mask

import (
	"fmt"
	"strings"
)

// DefaultPlaceholderChar marks unfilled pattern slots.
const DefaultPlaceholderChar = '_'

// BuildPlaceholder renders a Fixed mask with every pattern slot replaced by
// placeholderChar. Caret traps are skipped.
func BuildPlaceholder(m Mask, placeholderChar rune) (string, error) {
	if !m.IsFixed() {
		return "", fmt.Errorf("%w: mask must be a sequence", ErrInvalidMask)
	}
	return Placeholder(m.slots, placeholderChar), nil
}

// Placeholder renders slots the same way BuildPlaceholder does.
func Placeholder(slots []Slot, placeholderChar rune) string {
	var b strings.Builder
	b.Grow(len(slots))
	for _, s := range slots {
		switch s.kind {
		case KindLiteral:
			b.WriteRune(s.char)
		case KindPattern:
			b.WriteRune(placeholderChar)
		}
	}
	return b.String()
}

// Validate reports ErrPlaceholderCollision when a literal slot of a Fixed mask
// equals placeholderChar. Disabled and Dynamic masks are not inspected.
func Validate(m Mask, placeholderChar rune) error {
	if !m.IsValid() {
		return fmt.Errorf("%w: mask must be a sequence or function", ErrInvalidMask)
	}
	for i, s := range m.slots {
		if s.IsLiteral() && s.char == placeholderChar {
			return fmt.Errorf("%w: %q at slot %d", ErrPlaceholderCollision, placeholderChar, i)
		}
	}
	return nil
}
