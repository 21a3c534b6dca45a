// Package emailmask is a dynamic mask for e-mail addresses and the pipe
// that goes with it.
//
// The mask is rebuilt on every keystroke around the first '@' and the last
// '.' after it. Caret traps sit around both separators, so typing a second
// '@' or a second top-level dot moves the caret over the existing separator
// instead of inserting another one.
//
//	in := textmask.New(field, textmask.WithBundle(emailmask.Bundle()))
package emailmask
