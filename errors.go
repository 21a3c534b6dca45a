package textmask

import (
	"errors"
	"fmt"
)

// ErrInvalidUpdateValue is matched by InvalidUpdateValueError.
var ErrInvalidUpdateValue = errors.New("textmask: invalid update value")

// InvalidUpdateValueError reports a SetValue argument that is neither a
// string, a number nor nil.
type InvalidUpdateValueError struct {
	Value any
}

// Error implements the error interface.
func (e *InvalidUpdateValueError) Error() string {
	return fmt.Sprintf("textmask: the value to update must be a string, a number or nil, got %#v", e.Value)
}

// Is reports whether target is ErrInvalidUpdateValue.
func (e *InvalidUpdateValueError) Is(target error) bool {
	return target == ErrInvalidUpdateValue
}
