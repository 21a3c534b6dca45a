package caret

import (
	"unicode"

	"github.com/dmitrymomot/textmask/pkg/mask"
)

// Input describes one edit.
type Input struct {
	PreviousConformedValue string
	// PreviousPlaceholder is the placeholder of the mask used for the previous
	// value. Dynamic masks change it between keystrokes.
	PreviousPlaceholder string
	ConformedValue      string
	RawValue            string
	Placeholder         string
	// PlaceholderChar defaults to mask.DefaultPlaceholderChar when zero.
	PlaceholderChar rune
	// CurrentCaretPosition is the caret in RawValue after the edit.
	CurrentCaretPosition int
	// IndexesOfPipedChars are positions a pipe added to ConformedValue.
	IndexesOfPipedChars []int
	CaretTrapIndexes    []int
}

// Adjust returns the caret position for in.ConformedValue. It never fails:
// degenerate input clamps to 0 or the length of the conformed value.
//
// Caret traps are stop points for the scan that moves the caret off literals.
// The scan halts at the first trap it meets, so a trap can hold the caret
// before the position it would otherwise reach. Traps are not a floor the
// result is raised to.
func Adjust(in Input) int {
	raw := []rune(in.RawValue)
	if in.CurrentCaretPosition <= 0 || len(raw) == 0 {
		return 0
	}

	pc := in.PlaceholderChar
	if pc == 0 {
		pc = mask.DefaultPlaceholderChar
	}

	prev := []rune(in.PreviousConformedValue)
	prevPlaceholder := []rune(in.PreviousPlaceholder)
	conformed := []rune(in.ConformedValue)
	placeholder := []rune(in.Placeholder)
	caret := in.CurrentCaretPosition
	traps := make(map[int]struct{}, len(in.CaretTrapIndexes))
	for _, i := range in.CaretTrapIndexes {
		traps[i] = struct{}{}
	}
	isTrap := func(i int) bool {
		_, ok := traps[i]
		return ok
	}

	editLength := len(raw) - len(prev)
	isAddition := editLength > 0

	// Typing a rejected character leaves the output unchanged.
	possiblyRejected := isAddition && (in.PreviousConformedValue == in.ConformedValue || in.ConformedValue == in.Placeholder)

	start := 0
	trackRight := false
	var target rune
	hasTarget := false

	if possiblyRejected {
		start = caret - editLength
	} else {
		normConformed := lower(conformed)
		normRaw := lower(raw)

		// Characters left of the caret that survived conforming; the last one is
		// the anchor to find again in the new value.
		var intersection []rune
		for _, r := range normRaw[:min(caret, len(normRaw))] {
			if containsRune(normConformed, r) {
				intersection = append(intersection, r)
			}
		}
		n := len(intersection)
		if n > 0 {
			target, hasTarget = intersection[n-1], true
		}

		prevLeftMaskChars := countNot(prefix(prevPlaceholder, n), pc)
		leftMaskChars := countNot(prefix(placeholder, n), pc)
		maskLengthChanged := leftMaskChars != prevLeftMaskChars

		prevAt, prevOK := at(prevPlaceholder, n-1)
		curAt, curOK := at(placeholder, n-1)
		curBefore, curBeforeOK := at(placeholder, n-2)
		targetIsMaskMovingLeft := prevOK && curBeforeOK &&
			prevAt != pc &&
			(!curOK || prevAt != curAt) &&
			prevAt == curBefore

		// On deletion, a literal anchor may have shifted; follow the character
		// right of the caret instead.
		if right, ok := at(raw, caret); ok &&
			!isAddition &&
			(maskLengthChanged || targetIsMaskMovingLeft) &&
			prevLeftMaskChars > 0 &&
			hasTarget && containsRune(placeholder, target) {
			trackRight = true
			target = right
		}

		required := 0
		if hasTarget {
			for _, idx := range in.IndexesOfPipedChars {
				if r, ok := at(normConformed, idx); ok && r == target {
					required++
				}
			}
			for _, r := range intersection {
				if r == target {
					required++
				}
			}
			// Literal look-alikes before the first editable slot that the raw
			// value does not carry at the same index.
			if first := indexRune(placeholder, pc); first > 0 {
				for i, r := range placeholder[:first] {
					if r != target {
						continue
					}
					if rr, ok := at(raw, i); ok && rr == r {
						continue
					}
					required++
				}
			}
		}
		if trackRight {
			required++
		}

		matches := 0
		for i, r := range normConformed {
			start = i + 1
			if hasTarget && r == target {
				matches++
			}
			if matches >= required {
				break
			}
		}
	}

	if isAddition {
		last := start
		for i := start; i <= len(placeholder); i++ {
			r, ok := at(placeholder, i)
			if ok && r == pc {
				last = i
			}
			if (ok && r == pc) || isTrap(i) || i == len(placeholder) {
				return clamp(last, len(conformed))
			}
		}
		return clamp(start, len(conformed))
	}

	if trackRight {
		for i := start - 1; i >= 0; i-- {
			if r, ok := at(conformed, i); (ok && r == target) || isTrap(i) || i == 0 {
				return clamp(i, len(conformed))
			}
		}
		return 0
	}

	for i := start; i >= 0; i-- {
		if r, ok := at(placeholder, i-1); (ok && r == pc) || isTrap(i) || i == 0 {
			return clamp(i, len(conformed))
		}
	}
	return 0
}

func lower(rs []rune) []rune {
	out := make([]rune, len(rs))
	for i, r := range rs {
		out[i] = unicode.ToLower(r)
	}
	return out
}

func at(rs []rune, i int) (rune, bool) {
	if i < 0 || i >= len(rs) {
		return 0, false
	}
	return rs[i], true
}

func prefix(rs []rune, n int) []rune {
	return rs[:min(max(n, 0), len(rs))]
}

func countNot(rs []rune, r rune) int {
	n := 0
	for _, c := range rs {
		if c != r {
			n++
		}
	}
	return n
}

func containsRune(rs []rune, r rune) bool {
	return indexRune(rs, r) >= 0
}

func indexRune(rs []rune, r rune) int {
	for i, c := range rs {
		if c == r {
			return i
		}
	}
	return -1
}

func clamp(pos, upper int) int {
	return min(max(pos, 0), upper)
}
