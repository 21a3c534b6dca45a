package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/textmask"
	"github.com/dmitrymomot/textmask/pkg/logger"
	"github.com/dmitrymomot/textmask/pkg/mask"
)

type sessionKey struct{}

// session is a recorded sequence of edits on one field.
type session struct {
	Name              string `yaml:"name"`
	Preset            string `yaml:"preset"`
	Mask              string `yaml:"mask"`
	Guide             *bool  `yaml:"guide"`
	PlaceholderChar   string `yaml:"placeholder_char"`
	KeepCharPositions *bool  `yaml:"keep_char_positions"`
	ShowMask          *bool  `yaml:"show_mask"`
	Steps             []step `yaml:"steps"`
}

// step is one edit. Value is the raw field content after the keystroke and
// Caret the caret position after it; a missing caret means end of value.
// Set replays a programmatic assignment instead of a keystroke.
type step struct {
	Value string `yaml:"value"`
	Caret *int   `yaml:"caret"`
	Set   bool   `yaml:"set"`
}

func parseSession(r io.Reader) (session, error) {
	var s session
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		return session{}, fmt.Errorf("parse session: %w", err)
	}
	if len(s.Steps) == 0 {
		return session{}, errors.New("parse session: no steps")
	}
	return s, nil
}

func (a *app) sessionOptions(s session) ([]textmask.Option, error) {
	opts := []textmask.Option{
		textmask.WithGuide(a.defaults.Guide),
		textmask.WithPlaceholderChar(a.defaults.Placeholder()),
		textmask.WithKeepCharPositions(a.defaults.KeepCharPositions),
		textmask.WithShowMask(a.defaults.ShowMask),
		textmask.WithLogger(a.log),
	}

	switch {
	case s.Mask != "" && s.Preset != "":
		return nil, errors.New("session: mask and preset are mutually exclusive")
	case s.Mask != "":
		m, err := mask.Parse(s.Mask)
		if err != nil {
			return nil, err
		}
		opts = append(opts, textmask.WithMask(m))
	case s.Preset != "":
		p, err := a.registry.Get(s.Preset)
		if err != nil {
			return nil, err
		}
		opts = append(opts, p.Options()...)
	default:
		return nil, errNoMask
	}

	if s.Guide != nil {
		opts = append(opts, textmask.WithGuide(*s.Guide))
	}
	if s.KeepCharPositions != nil {
		opts = append(opts, textmask.WithKeepCharPositions(*s.KeepCharPositions))
	}
	if s.ShowMask != nil {
		opts = append(opts, textmask.WithShowMask(*s.ShowMask))
	}
	if s.PlaceholderChar != "" {
		if utf8.RuneCountInString(s.PlaceholderChar) != 1 {
			return nil, fmt.Errorf("session: placeholder_char must be one character, got %q", s.PlaceholderChar)
		}
		r, _ := utf8.DecodeRuneInString(s.PlaceholderChar)
		opts = append(opts, textmask.WithPlaceholderChar(r))
	}
	return opts, nil
}

// replay feeds every step through a fresh binding and writes value|caret
// per step.
func (a *app) replay(ctx context.Context, s session, out io.Writer) error {
	opts, err := a.sessionOptions(s)
	if err != nil {
		return err
	}
	if s.Name != "" {
		ctx = context.WithValue(ctx, sessionKey{}, s.Name)
	}

	field := textmask.NewTextField("")
	in := textmask.New(field, opts...)

	for i, st := range s.Steps {
		if err := ctx.Err(); err != nil {
			return err
		}
		if st.Set {
			if st.Caret != nil {
				field.SetCaretPosition(*st.Caret)
			}
			err = in.SetValue(st.Value)
		} else {
			caret := -1
			if st.Caret != nil {
				caret = *st.Caret
			}
			field.Edit(st.Value, caret)
			err = in.Update()
		}
		if err != nil {
			return fmt.Errorf("step %d: %w", i+1, err)
		}

		a.log.DebugContext(ctx, "replay step",
			slog.Int("step", i+1),
			logger.Raw(st.Value),
			logger.Conformed(field.Value()),
			logger.Caret(field.CaretPosition()),
		)
		if _, err := fmt.Fprintf(out, "%s|%d\n", field.Value(), field.CaretPosition()); err != nil {
			return err
		}
	}
	return nil
}

func (a *app) cmdReplay(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("replay", flag.ContinueOnError)
	fs.SetOutput(a.stdout)
	path := fs.String("file", "", "session file (YAML); - reads stdin")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var r io.Reader
	switch *path {
	case "":
		return errors.New("replay: -file is required")
	case "-":
		r = a.stdin
	default:
		fh, err := os.Open(*path)
		if err != nil {
			return err
		}
		defer fh.Close()
		r = fh
	}

	s, err := parseSession(r)
	if err != nil {
		return err
	}
	return a.replay(ctx, s, a.stdout)
}
