package logger

import (
	"log/slog"
	"strconv"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Errors groups multiple non-nil errors under the key "errors".
// If all errors are nil, it returns an empty Attr.
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// Error records err under the key "error". Nil gives an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Raw records the unconformed input under the key "raw".
func Raw(v string) slog.Attr {
	return slog.String("raw", v)
}

// Conformed records a conformed value under the key "conformed".
func Conformed(v string) slog.Attr {
	return slog.String("conformed", v)
}

// Placeholder records a placeholder string under the key "placeholder".
func Placeholder(v string) slog.Attr {
	return slog.String("placeholder", v)
}

// Caret records a caret index under the key "caret".
func Caret(pos int) slog.Attr {
	return slog.Int("caret", pos)
}

// Mask records a mask description under the key "mask".
// If m is nil, it returns an empty Attr.
func Mask(m any) slog.Attr {
	if m == nil {
		return slog.Attr{}
	}
	return slog.Any("mask", m)
}

// Preset records the preset name under the key "preset".
func Preset(name string) slog.Attr {
	return slog.String("preset", name)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}
