package main

import (
	"errors"
	"flag"
	"fmt"
	"unicode/utf8"

	"github.com/dmitrymomot/textmask"
	"github.com/dmitrymomot/textmask/pkg/conform"
	"github.com/dmitrymomot/textmask/pkg/logger"
	"github.com/dmitrymomot/textmask/pkg/mask"
)

var errNoMask = errors.New("one of -mask or -preset is required")

// maskFlags are the flags shared by commands that need a mask.
type maskFlags struct {
	fs          *flag.FlagSet
	pattern     string
	preset      string
	guide       bool
	keep        bool
	showMask    bool
	placeholder string
}

func (a *app) newMaskFlags(name string) *maskFlags {
	f := &maskFlags{fs: flag.NewFlagSet(name, flag.ContinueOnError)}
	f.fs.SetOutput(a.stdout)
	f.fs.StringVar(&f.pattern, "mask", "", "mask pattern, e.g. \"(999) 999-9999\"")
	f.fs.StringVar(&f.preset, "preset", "", "preset name (see: textmask presets)")
	f.fs.BoolVar(&f.guide, "guide", a.defaults.Guide, "show placeholders for unfilled slots")
	f.fs.BoolVar(&f.keep, "keep", a.defaults.KeepCharPositions, "keep character positions on delete")
	f.fs.BoolVar(&f.showMask, "show-mask", a.defaults.ShowMask, "show the placeholder when empty")
	f.fs.StringVar(&f.placeholder, "placeholder", a.defaults.PlaceholderChar, "placeholder character")
	return f
}

// options resolves the flags into binding options. Order matters: config
// defaults, then the preset, then flags given explicitly on the command line.
func (f *maskFlags) options(a *app) ([]textmask.Option, error) {
	opts := []textmask.Option{
		textmask.WithGuide(a.defaults.Guide),
		textmask.WithPlaceholderChar(a.defaults.Placeholder()),
		textmask.WithKeepCharPositions(a.defaults.KeepCharPositions),
		textmask.WithShowMask(a.defaults.ShowMask),
		textmask.WithLogger(a.log),
	}

	switch {
	case f.pattern != "" && f.preset != "":
		return nil, errors.New("-mask and -preset are mutually exclusive")
	case f.pattern != "":
		m, err := mask.Parse(f.pattern)
		if err != nil {
			return nil, err
		}
		opts = append(opts, textmask.WithMask(m))
	case f.preset != "":
		p, err := a.registry.Get(f.preset)
		if err != nil {
			return nil, err
		}
		a.log.Debug("using preset", logger.Preset(p.Name))
		opts = append(opts, p.Options()...)
	default:
		return nil, errNoMask
	}

	var flagErr error
	f.fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "guide":
			opts = append(opts, textmask.WithGuide(f.guide))
		case "keep":
			opts = append(opts, textmask.WithKeepCharPositions(f.keep))
		case "show-mask":
			opts = append(opts, textmask.WithShowMask(f.showMask))
		case "placeholder":
			if utf8.RuneCountInString(f.placeholder) != 1 {
				flagErr = fmt.Errorf("-placeholder must be one character, got %q", f.placeholder)
				return
			}
			r, _ := utf8.DecodeRuneInString(f.placeholder)
			opts = append(opts, textmask.WithPlaceholderChar(r))
		}
	})
	if flagErr != nil {
		return nil, flagErr
	}
	return opts, nil
}

// conformOptions maps a binding configuration onto engine options.
func conformOptions(cfg textmask.Config) []conform.Option {
	return []conform.Option{
		conform.WithGuide(cfg.Guide),
		conform.WithPlaceholderChar(cfg.PlaceholderChar),
		conform.WithKeepCharPositions(cfg.KeepCharPositions),
	}
}
