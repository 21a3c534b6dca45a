// Package caret decides where the text cursor lands after a masked input has
// been conformed.
//
// Keeping the same numeric offset is wrong whenever conforming inserted or
// removed literals around the edit. Adjust instead locates the character the
// user last typed (or, on some deletions, the character right of the caret)
// in the new value, then moves forward on insertion, or back on deletion,
// to the nearest editable slot. Caret traps reported by the mask stop that
// movement early.
package caret
