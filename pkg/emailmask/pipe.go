package emailmask

import (
	"strings"

	"github.com/dmitrymomot/textmask"
	"github.com/dmitrymomot/textmask/pkg/mask"
)

// Pipe cleans up what the mask alone cannot express: a single '@', no
// doubled dots and no dangling top-level dot.
func Pipe(conformed string, cfg textmask.PipeConfig) textmask.PipeResult {
	value := keepFirstAt(conformed)

	if isEmpty(cfg.RawValue, cfg.PlaceholderChar) {
		return textmask.Replace("")
	}

	atDot := runeIndex(value, "@.")
	switch {
	case strings.Contains(value, ".."),
		atDot != -1 && cfg.CurrentCaretPosition != atDot+1,
		!strings.ContainsRune(cfg.RawValue, atSymbol) && cfg.PreviousConformedValue != "" && strings.ContainsRune(cfg.RawValue, dot):
		return textmask.Reject()
	}

	at := strings.IndexRune(value, atSymbol)
	domain := value[at+1:]
	if strings.Count(domain, string(dot)) > 1 &&
		strings.HasSuffix(value, string(dot)) &&
		cfg.CurrentCaretPosition != len([]rune(cfg.RawValue)) {
		value = strings.TrimSuffix(value, string(dot))
	}

	return textmask.Replace(value)
}

// Bundle pairs Mask with Pipe.
func Bundle() textmask.Bundle {
	return textmask.Bundle{Mask: Mask, Pipe: Pipe}
}

func keepFirstAt(s string) string {
	first := strings.IndexRune(s, atSymbol)
	if first == -1 {
		return s
	}
	return s[:first+1] + strings.ReplaceAll(s[first+1:], string(atSymbol), "")
}

// isEmpty reports whether raw holds nothing but separators and placeholders.
func isEmpty(raw string, pc rune) bool {
	for _, r := range raw {
		if r != atSymbol && r != dot && r != pc && !mask.IsWhitespace(r) {
			return false
		}
	}
	return true
}

// runeIndex is strings.Index counted in runes.
func runeIndex(s, substr string) int {
	i := strings.Index(s, substr)
	if i == -1 {
		return -1
	}
	return len([]rune(s[:i]))
}
