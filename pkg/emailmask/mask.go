package emailmask

import (
	"strings"

	"github.com/dmitrymomot/textmask/pkg/mask"
)

const (
	atSymbol = '@'
	dot      = '.'
	space    = ' '
	asterisk = '*'
)

// nonDotOrWhitespace accepts top-level-domain characters.
var nonDotOrWhitespace = mask.Pattern(func(r rune) bool {
	return r != dot && !mask.IsWhitespace(r)
})

// Mask is the e-mail mask.
var Mask = mask.Dynamic(provide)

func provide(raw string, ctx mask.Context) mask.Mask {
	rs := []rune(stripSpace(raw))

	at := indexOf(rs, atSymbol)
	tldDot := lastIndexOf(rs, dot)
	if tldDot < at {
		tldDot = -1
	}

	slots := toSlots(localPart(rs, at), mask.NonWhitespace)
	slots = append(slots, connector(rs, at+1, atSymbol)...)
	slots = append(slots, toSlots(domainName(rs, at, tldDot, ctx.PlaceholderChar), mask.NonWhitespace)...)
	slots = append(slots, connector(rs, tldDot-1, dot)...)
	slots = append(slots, toSlots(topLevelDomain(rs, tldDot, ctx.PlaceholderChar, ctx.CurrentCaretPosition), nonDotOrWhitespace)...)

	return mask.New(slots...)
}

// connector places sym between two caret traps. When sym is already typed
// at idx the leading trap is left out so the caret can step over it.
func connector(rs []rune, idx int, sym rune) []mask.Slot {
	if idx >= 0 && idx < len(rs) && rs[idx] == sym {
		return []mask.Slot{mask.Literal(sym), mask.CaretTrap()}
	}
	return []mask.Slot{mask.CaretTrap(), mask.Literal(sym), mask.CaretTrap()}
}

func localPart(rs []rune, at int) string {
	if at == -1 {
		return string(rs)
	}
	return string(rs[:at])
}

func domainName(rs []rune, at, tldDot int, pc rune) string {
	var name string
	switch {
	case at == -1:
	case tldDot == -1:
		name = string(rs[at+1:])
	default:
		name = string(rs[at+1 : tldDot])
	}
	name = strings.Map(func(r rune) rune {
		if mask.IsWhitespace(r) || r == pc {
			return -1
		}
		return r
	}, name)

	switch {
	case name == string(atSymbol):
		return string(asterisk)
	case name == "":
		return string(space)
	case strings.HasSuffix(name, string(dot)):
		return strings.TrimSuffix(name, string(dot))
	}
	return name
}

func topLevelDomain(rs []rune, tldDot int, pc rune, caret int) string {
	var tld string
	if tldDot != -1 {
		tld = string(rs[tldDot+1:])
	}
	tld = strings.Map(func(r rune) rune {
		if mask.IsWhitespace(r) || r == pc || r == dot {
			return -1
		}
		return r
	}, tld)

	if tld != "" {
		return tld
	}
	if tldDot >= 1 && rs[tldDot-1] == dot && caret != len(rs) {
		return string(asterisk)
	}
	return ""
}

// toSlots maps each character of a segment to a slot. Spaces stay literal,
// everything else becomes an editable slot of the given class.
func toSlots(segment string, class mask.Slot) []mask.Slot {
	slots := make([]mask.Slot, 0, len(segment))
	for _, r := range segment {
		if r == space {
			slots = append(slots, mask.Literal(space))
			continue
		}
		slots = append(slots, class)
	}
	return slots
}

func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if mask.IsWhitespace(r) {
			return -1
		}
		return r
	}, s)
}

func indexOf(rs []rune, r rune) int {
	for i, c := range rs {
		if c == r {
			return i
		}
	}
	return -1
}

func lastIndexOf(rs []rune, r rune) int {
	for i := len(rs) - 1; i >= 0; i-- {
		if rs[i] == r {
			return i
		}
	}
	return -1
}
