package textmask

import "github.com/dmitrymomot/textmask/pkg/mask"

// PipeConfig is what a Pipe sees besides the conformed value.
type PipeConfig struct {
	RawValue               string
	PreviousConformedValue string
	Guide                  bool
	PlaceholderChar        rune
	Placeholder            string
	CurrentCaretPosition   int
	KeepCharPositions      bool
}

// PipeResult replaces the conformed value before it is displayed.
type PipeResult struct {
	Value string
	// IndexesOfPipedChars are positions of characters the pipe added. Caret
	// placement ignores them like it ignores mask literals.
	IndexesOfPipedChars []int
	// Rejected restores the previous conformed value and ignores Value.
	Rejected bool
}

// Reject is the PipeResult that discards the edit.
func Reject() PipeResult {
	return PipeResult{Rejected: true}
}

// Replace returns a PipeResult showing v with no piped characters.
func Replace(v string) PipeResult {
	return PipeResult{Value: v}
}

// Pipe post-processes a conformed value.
type Pipe func(conformed string, cfg PipeConfig) PipeResult

// Bundle pairs a mask with the pipe written for it.
type Bundle struct {
	Mask mask.Mask
	Pipe Pipe
}
