// Package textmask binds the masking engine to an editable text field.
//
// The engine itself lives in sub-packages: pkg/mask describes masks,
// pkg/conform shapes raw text to a mask and pkg/caret decides where the
// caret goes afterwards. This package owns the per-field state the engine
// deliberately does not keep (the previous conformed value and placeholder)
// and drives one conform/pipe/caret cycle per change event.
//
// Key Features:
//
//   - Element abstraction over any text control with a value and a caret
//   - Fixed, dynamic and disabled masks through a single WithMask option
//   - Pipe hook for post-processing the conformed value
//   - Per-call option overrides for Update and SetValue
//   - In-memory TextField for tests, terminals and server-side rendering
//
// Basic Usage:
//
//	field := textmask.NewTextField("")
//	in := textmask.New(field,
//		textmask.WithMask(mask.MustParse("(999) 999-9999")),
//	)
//
//	// on every input event
//	field.Type("2")
//	if err := in.Update(); err != nil {
//		// mask is misconfigured
//	}
//	field.Value()         // "(2__) ___-____"
//	field.CaretPosition() // 2
//
//	// programmatic assignment
//	_ = in.SetValue(5551234567)
//
// An Input is not safe for concurrent use. Calls for one field must arrive
// in the order the edits happened, since caret placement compares each
// value with the one before it.
package textmask
