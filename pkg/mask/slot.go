package mask

import (
	"regexp"
)

// Kind identifies what a Slot holds.
type Kind uint8

const (
	// KindLiteral slots always render their own character.
	KindLiteral Kind = iota + 1
	// KindPattern slots accept any character their predicate allows.
	KindPattern
	// KindCaretTrap slots pin the caret and are removed before conforming.
	KindCaretTrap
)

func (k Kind) String() string {
	switch k {
	case KindLiteral:
		return "literal"
	case KindPattern:
		return "pattern"
	case KindCaretTrap:
		return "caret_trap"
	default:
		return "invalid"
	}
}

// Predicate reports whether r may occupy a pattern slot.
type Predicate func(r rune) bool

// Slot is a single position of a mask.
type Slot struct {
	kind   Kind
	char   rune
	accept Predicate
}

// Literal returns a slot that always renders r.
func Literal(r rune) Slot {
	return Slot{kind: KindLiteral, char: r}
}

// Literals returns one literal slot per rune of s.
func Literals(s string) []Slot {
	slots := make([]Slot, 0, len(s))
	for _, r := range s {
		slots = append(slots, Literal(r))
	}
	return slots
}

// Pattern returns a slot accepting any character p allows.
// A nil predicate accepts nothing.
func Pattern(p Predicate) Slot {
	if p == nil {
		p = none
	}
	return Slot{kind: KindPattern, accept: p}
}

// Regexp returns a pattern slot accepting characters matched by re.
// The expression is tested against the single character, so `\d` and `[a-f]`
// work as expected while anchors are unnecessary.
func Regexp(re *regexp.Regexp) Slot {
	if re == nil {
		return Pattern(nil)
	}
	return Pattern(func(r rune) bool {
		return re.MatchString(string(r))
	})
}

// CaretTrap returns a caret trap marker.
func CaretTrap() Slot {
	return Slot{kind: KindCaretTrap}
}

func (s Slot) Kind() Kind { return s.kind }

func (s Slot) IsLiteral() bool { return s.kind == KindLiteral }

func (s Slot) IsPattern() bool { return s.kind == KindPattern }

func (s Slot) IsCaretTrap() bool { return s.kind == KindCaretTrap }

// Char returns the literal character, or 0 for other kinds.
func (s Slot) Char() rune {
	if s.kind != KindLiteral {
		return 0
	}
	return s.char
}

// Accepts reports whether r can be placed into this slot.
// Literal slots accept only their own character; caret traps accept nothing.
func (s Slot) Accepts(r rune) bool {
	switch s.kind {
	case KindLiteral:
		return r == s.char
	case KindPattern:
		return s.accept(r)
	default:
		return false
	}
}
