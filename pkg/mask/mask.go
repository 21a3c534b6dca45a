package mask

import "fmt"

type variant uint8

const (
	variantInvalid variant = iota
	variantDisabled
	variantFixed
	variantDynamic
)

// Context is what a Provider may inspect besides the raw value.
type Context struct {
	// CurrentCaretPosition is the caret before the edit, or negative when unknown.
	CurrentCaretPosition   int
	PreviousConformedValue string
	PlaceholderChar        rune
}

// Provider builds a concrete mask for the given raw value.
// It must be a pure function of its arguments and return a Fixed mask or Disabled.
type Provider func(raw string, ctx Context) Mask

// Mask is the closed set {Disabled, Fixed, Dynamic}. The zero value is invalid.
type Mask struct {
	variant  variant
	slots    []Slot
	provider Provider
}

// Disabled turns masking off: raw text passes through unchanged.
var Disabled = Mask{variant: variantDisabled}

// New returns a Fixed mask. Slots may include caret traps.
func New(slots ...Slot) Mask {
	cp := make([]Slot, len(slots))
	copy(cp, slots)
	return Mask{variant: variantFixed, slots: cp}
}

// Dynamic returns a mask resolved by p on every conform call.
// A nil provider yields the invalid zero Mask.
func Dynamic(p Provider) Mask {
	if p == nil {
		return Mask{}
	}
	return Mask{variant: variantDynamic, provider: p}
}

func (m Mask) IsValid() bool    { return m.variant != variantInvalid }
func (m Mask) IsDisabled() bool { return m.variant == variantDisabled }
func (m Mask) IsFixed() bool    { return m.variant == variantFixed }
func (m Mask) IsDynamic() bool  { return m.variant == variantDynamic }

// Slots returns a copy of the slots of a Fixed mask, caret traps included.
// Other variants return nil.
func (m Mask) Slots() []Slot {
	if m.variant != variantFixed {
		return nil
	}
	cp := make([]Slot, len(m.slots))
	copy(cp, m.slots)
	return cp
}

// Len returns the number of slots of a Fixed mask, ignoring caret traps.
func (m Mask) Len() int {
	n := 0
	for _, s := range m.slots {
		if !s.IsCaretTrap() {
			n++
		}
	}
	return n
}

func (m Mask) String() string {
	switch m.variant {
	case variantDisabled:
		return "mask(disabled)"
	case variantFixed:
		return fmt.Sprintf("mask(fixed, %d slots)", m.Len())
	case variantDynamic:
		return "mask(dynamic)"
	default:
		return "mask(invalid)"
	}
}

// Resolved is the concrete mask used for a single conform cycle.
type Resolved struct {
	// Slots has caret traps removed.
	Slots []Slot
	// CaretTraps holds indexes into Slots where the caret must stop.
	CaretTraps []int
	// Disabled is set when masking is off for this cycle.
	Disabled bool
}

// Resolve evaluates the mask for raw. A Dynamic provider is called exactly once;
// when it returns anything other than a Fixed mask, masking is disabled.
func (m Mask) Resolve(raw string, ctx Context) (Resolved, error) {
	switch m.variant {
	case variantDisabled:
		return Resolved{Disabled: true}, nil
	case variantFixed:
		slots, traps := StripCaretTraps(m.slots)
		return Resolved{Slots: slots, CaretTraps: traps}, nil
	case variantDynamic:
		produced := m.provider(raw, ctx)
		if !produced.IsFixed() {
			return Resolved{Disabled: true}, nil
		}
		slots, traps := StripCaretTraps(produced.slots)
		return Resolved{Slots: slots, CaretTraps: traps}, nil
	default:
		return Resolved{}, fmt.Errorf("%w: mask must be a sequence or function", ErrInvalidMask)
	}
}
