package presets

import "errors"

var (
	ErrUnknownPreset   = errors.New("presets: unknown preset")
	ErrDuplicatePreset = errors.New("presets: duplicate preset name")
	ErrInvalidPreset   = errors.New("presets: invalid preset")
)
