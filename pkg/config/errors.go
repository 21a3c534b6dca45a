package config

import "errors"

var (
	// ErrParsingConfig is returned when environment variables cannot be parsed into the config struct.
	ErrParsingConfig = errors.New("failed to parse environment variables into config")

	// ErrNilPointer is returned when a nil pointer is provided to Load.
	ErrNilPointer = errors.New("nil pointer provided to config loader")

	// ErrInvalidPlaceholderChar is returned when the placeholder is not exactly one character.
	ErrInvalidPlaceholderChar = errors.New("placeholder char must be a single character")

	// ErrInvalidLogFormat is returned for log formats other than text and json.
	ErrInvalidLogFormat = errors.New("log format must be text or json")

	// ErrInvalidLogLevel is returned for unknown log levels.
	ErrInvalidLogLevel = errors.New("log level must be debug, info, warn or error")
)
