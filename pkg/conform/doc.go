// Package conform turns free-form text into a value shaped by a mask.
//
// Conform walks the mask slot by slot. Literal slots are emitted as-is,
// pattern slots take the next raw character their predicate accepts and
// characters that fit nowhere are dropped and flagged in the Result. In guide
// mode (the default) unfilled slots are padded with the placeholder character
// so the output always has the mask's length. Without the guide the output
// ends at the last filled slot.
//
// Conform is a pure function: state carried from one keystroke to the next
// (the previous conformed value) is passed in explicitly with
// WithPreviousConformedValue.
//
//	res, err := conform.Conform("2a3b", mask.MustParse("9999"))
//	// res.ConformedValue == "23__", res.DidRejectCharacter == true
package conform
