package conform

import (
	"github.com/dmitrymomot/textmask/pkg/mask"
)

// Result is the outcome of a Conform call.
type Result struct {
	ConformedValue string
	// DidRejectCharacter is set when at least one raw character fit no slot.
	DidRejectCharacter bool
	// Placeholder is the placeholder of the resolved mask.
	Placeholder string
	// CaretTraps are the trap indexes of the resolved mask.
	CaretTraps []int
	// Disabled is set when the mask resolved to Disabled; ConformedValue is then the raw value.
	Disabled bool
}

// Conform shapes raw to m. Only contract violations (an invalid mask) are
// returned as errors; malformed input is absorbed by rejection and padding.
func Conform(raw string, m mask.Mask, opts ...Option) (Result, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	resolved, err := m.Resolve(raw, mask.Context{
		CurrentCaretPosition:   cfg.currentCaretPosition,
		PreviousConformedValue: cfg.previousConformedValue,
		PlaceholderChar:        cfg.placeholderChar,
	})
	if err != nil {
		return Result{}, err
	}
	if resolved.Disabled {
		return Result{ConformedValue: raw, Disabled: true}, nil
	}

	placeholder := []rune(cfg.placeholder)
	if len(placeholder) != len(resolved.Slots) {
		placeholder = []rune(mask.Placeholder(resolved.Slots, cfg.placeholderChar))
	}

	value, rejected := conformSlots([]rune(raw), resolved.Slots, placeholder, cfg)
	return Result{
		ConformedValue:     value,
		DidRejectCharacter: rejected,
		Placeholder:        string(placeholder),
		CaretTraps:         resolved.CaretTraps,
	}, nil
}

type rawChar struct {
	char  rune
	isNew bool
}

func conformSlots(raw []rune, slots []mask.Slot, placeholder []rune, c *config) (string, bool) {
	if len(raw) == 0 {
		return "", false
	}

	pc := c.placeholderChar
	prev := []rune(c.previousConformedValue)
	suppressGuide := !c.guide

	editDistance := len(raw) - len(prev)
	isAddition := editDistance > 0

	caret := c.currentCaretPosition
	if caret < 0 || caret > len(raw) {
		caret = len(raw)
	}
	firstChange := caret
	if isAddition {
		firstChange = max(caret-editDistance, 0)
	}
	lastChange := firstChange + abs(editDistance)

	if c.keepCharPositions && !isAddition {
		var gaps []rune
		for i := firstChange; i < lastChange && i < len(placeholder); i++ {
			if placeholder[i] == pc {
				gaps = append(gaps, pc)
			}
		}
		if len(gaps) > 0 {
			expanded := make([]rune, 0, len(raw)+len(gaps))
			expanded = append(expanded, raw[:firstChange]...)
			expanded = append(expanded, gaps...)
			expanded = append(expanded, raw[firstChange:]...)
			raw = expanded
		}
	}

	chars := make([]rawChar, len(raw))
	for i, r := range raw {
		chars[i] = rawChar{char: r, isNew: i >= firstChange && i < lastChange}
	}

	// Literal characters sitting at their own mask position are scaffolding,
	// not user intent. After a full-length previous value, characters right
	// of the edit are compared against the position they held before it.
	offset := len(prev) == len(slots)
	for i := len(chars) - 1; i >= 0; i-- {
		ch := chars[i].char
		if ch == pc {
			continue
		}
		j := i
		if offset && i >= firstChange {
			j = i - editDistance
		}
		if j >= 0 && j < len(placeholder) && placeholder[j] == ch {
			chars = append(chars[:i], chars[i+1:]...)
		}
	}

	out := make([]rune, 0, len(slots))
	rejected, filled := false, false

slotLoop:
	for i := 0; i < len(slots); i++ {
		slot := slots[i]
		if !slot.IsPattern() {
			out = append(out, placeholder[i])
			continue
		}

		for len(chars) > 0 {
			next := chars[0]
			chars = chars[1:]

			if next.char == pc && !suppressGuide {
				out = append(out, pc)
				continue slotLoop
			}
			if !slot.Accepts(next.char) {
				rejected = true
				continue
			}

			if !c.keepCharPositions || !next.isNew || len(prev) == 0 || suppressGuide || !isAddition {
				out = append(out, next.char)
				filled = true
				continue slotLoop
			}

			// Overwrite the nearest gap instead of pushing existing characters right.
			gap := -1
			for k, cd := range chars {
				if cd.char != pc && !cd.isNew {
					break
				}
				if cd.char == pc {
					gap = k
					break
				}
			}
			if gap >= 0 {
				out = append(out, next.char)
				filled = true
				chars = append(chars[:gap], chars[gap+1:]...)
			} else {
				// No room: the character is dropped and the slot retried.
				i--
			}
			continue slotLoop
		}

		if !suppressGuide {
			out = append(out, placeholder[i:]...)
		}
		break
	}

	if suppressGuide && !isAddition {
		last := -1
		for i := range out {
			if slots[i].IsPattern() {
				last = i
			}
		}
		out = out[:last+1]
	}

	if suppressGuide && rejected && !filled {
		return "", true
	}

	return string(out), rejected
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
