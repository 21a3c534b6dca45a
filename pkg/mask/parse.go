package mask

import (
	lru "github.com/hashicorp/golang-lru"
	"golang.org/x/text/unicode/norm"
)

// Pattern tokens.
const (
	tokenDigit        = '9'
	tokenLetter       = 'a'
	tokenAlphanumeric = '*'
	tokenEscape       = '\\'
	tokenTrapOpen     = '['
	tokenTrapClose    = ']'
)

const parseCacheSize = 256

// Parsed masks are immutable, so one instance is shared by every caller.
var parseCache = mustNewCache(parseCacheSize)

func mustNewCache(size int) *lru.Cache {
	c, err := lru.New(size)
	if err != nil {
		panic(err)
	}
	return c
}

// Parse builds a Fixed mask from a pattern string such as "(999) 999-9999".
//
//	9   digit
//	a   letter
//	*   letter or digit
//	[]  caret trap
//	\x  literal x
//
// Any other character is a literal. The pattern is NFC-normalised first so a
// composed character always occupies a single slot.
func Parse(pattern string) (Mask, error) {
	if pattern == "" {
		return Mask{}, ErrEmptyPattern
	}
	if cached, ok := parseCache.Get(pattern); ok {
		return cached.(Mask), nil
	}

	runes := []rune(norm.NFC.String(pattern))
	slots := make([]Slot, 0, len(runes))
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		switch {
		case r == tokenEscape:
			if i+1 >= len(runes) {
				return Mask{}, ErrDanglingEscape
			}
			i++
			slots = append(slots, Literal(runes[i]))
		case r == tokenTrapOpen && i+1 < len(runes) && runes[i+1] == tokenTrapClose:
			i++
			slots = append(slots, CaretTrap())
		case r == tokenDigit:
			slots = append(slots, Digit)
		case r == tokenLetter:
			slots = append(slots, Letter)
		case r == tokenAlphanumeric:
			slots = append(slots, Alphanumeric)
		default:
			slots = append(slots, Literal(r))
		}
	}

	m := Mask{variant: variantFixed, slots: slots}
	parseCache.Add(pattern, m)
	return m, nil
}

// MustParse is like Parse but panics on error. Intended for package-level masks.
func MustParse(pattern string) Mask {
	m, err := Parse(pattern)
	if err != nil {
		panic(err)
	}
	return m
}
