package textmask

import "unicode/utf8"

// Element is the text control an Input drives. Caret positions are rune
// indexes into Value.
type Element interface {
	Value() string
	SetValue(string)
	CaretPosition() int
	SetCaretPosition(int)
}

// TextField is an in-memory Element. Assigning a value moves the caret to
// its end, the way browser inputs behave.
type TextField struct {
	value []rune
	caret int
}

// NewTextField returns a field holding value with the caret at its end.
func NewTextField(value string) *TextField {
	f := &TextField{}
	f.SetValue(value)
	return f
}

func (f *TextField) Value() string { return string(f.value) }

func (f *TextField) SetValue(v string) {
	f.value = []rune(v)
	f.caret = len(f.value)
}

func (f *TextField) CaretPosition() int { return f.caret }

// SetCaretPosition moves the caret, clamped to the value bounds.
func (f *TextField) SetCaretPosition(pos int) {
	f.caret = max(0, min(pos, len(f.value)))
}

// Type inserts s at the caret and leaves the caret after it.
func (f *TextField) Type(s string) {
	ins := []rune(s)
	next := make([]rune, 0, len(f.value)+len(ins))
	next = append(next, f.value[:f.caret]...)
	next = append(next, ins...)
	next = append(next, f.value[f.caret:]...)
	f.value = next
	f.caret += len(ins)
}

// Backspace deletes n runes before the caret.
func (f *TextField) Backspace(n int) {
	n = min(n, f.caret)
	if n <= 0 {
		return
	}
	f.value = append(f.value[:f.caret-n:f.caret-n], f.value[f.caret:]...)
	f.caret -= n
}

// Edit replaces the whole value and places the caret explicitly. Replays of
// recorded sessions use it to reproduce arbitrary edits.
func (f *TextField) Edit(value string, caret int) {
	f.value = []rune(value)
	if caret < 0 || caret > utf8.RuneCountInString(value) {
		caret = len(f.value)
	}
	f.caret = caret
}
