package logger_test

import (
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/textmask/pkg/logger"
)

func TestGroup(t *testing.T) {
	attr := logger.Group("step", slog.String("raw", "1"), slog.Int("caret", 2))
	require.Equal(t, "step", attr.Key)
	require.Equal(t, slog.KindGroup, attr.Value.Kind())
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, "raw", g[0].Key)
	assert.Equal(t, "caret", g[1].Key)
}

func TestErrors(t *testing.T) {
	err1 := errors.New("first")
	err2 := errors.New("second")

	attr := logger.Errors(err1, nil, err2)
	require.Equal(t, "errors", attr.Key)
	require.Equal(t, slog.KindGroup, attr.Value.Kind())
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, err1, g[0].Value.Any())
	assert.Equal(t, err2, g[1].Value.Any())

	empty := logger.Errors(nil)
	assert.True(t, empty.Equal(slog.Attr{}))
}

func TestError(t *testing.T) {
	err := errors.New("boom")
	attr := logger.Error(err)
	assert.Equal(t, "error", attr.Key)
	assert.Equal(t, err, attr.Value.Any())
	assert.True(t, logger.Error(nil).Equal(slog.Attr{}))
}

func TestDomainAttrs(t *testing.T) {
	tests := []struct {
		name string
		attr slog.Attr
		key  string
		want any
	}{
		{"raw", logger.Raw("12"), "raw", "12"},
		{"conformed", logger.Conformed("(12_)"), "conformed", "(12_)"},
		{"placeholder", logger.Placeholder("(___)"), "placeholder", "(___)"},
		{"caret", logger.Caret(3), "caret", int64(3)},
		{"preset", logger.Preset("phone-us"), "preset", "phone-us"},
		{"component", logger.Component("binding"), "component", "binding"},
		{"mask", logger.Mask("mask(fixed, 3 slots)"), "mask", "mask(fixed, 3 slots)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.key, tt.attr.Key)
			assert.Equal(t, tt.want, tt.attr.Value.Any())
		})
	}

	assert.True(t, logger.Mask(nil).Equal(slog.Attr{}))
}
