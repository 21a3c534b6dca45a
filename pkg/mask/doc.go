// Package mask describes the shape a masked text input must conform to.
//
// A mask is an ordered list of slots. Each slot is either a literal character,
// which the conformed value always carries at that position, or a pattern
// slot, which accepts any character its predicate allows. Caret traps are a
// third kind of slot that only exists before processing: they mark positions
// the caret must stop at and are stripped before the mask is used.
//
// A Mask value is one of three variants:
//
//   - Disabled: masking is off and raw text passes through unchanged.
//   - Fixed: built with New or Parse, a concrete list of slots.
//   - Dynamic: built with Dynamic, a Provider evaluated once per conform call
//     that returns a Fixed mask (or Disabled) for the current raw value.
//
// The zero Mask is invalid. Passing it to the conform engine is a programming
// error reported as ErrInvalidMask.
//
// # Usage
//
//	phone := mask.New(
//	    mask.Literal('('), mask.Digit, mask.Digit, mask.Digit, mask.Literal(')'),
//	    mask.Literal(' '), mask.Digit, mask.Digit, mask.Digit, mask.Literal('-'),
//	    mask.Digit, mask.Digit, mask.Digit, mask.Digit,
//	)
//
//	placeholder, _ := mask.BuildPlaceholder(phone, '_')
//	// placeholder == "(___) ___-____"
//
// The same mask written as a pattern:
//
//	phone := mask.MustParse("(999) 999-9999")
//
// Pattern syntax: 9 is a digit, a is a letter, * is a letter or digit, []
// is a caret trap, a backslash escapes the next character, and every other
// character is a literal.
package mask
