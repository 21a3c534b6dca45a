package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"

	"github.com/dmitrymomot/textmask"
	"github.com/dmitrymomot/textmask/pkg/mask"
)

var errAborted = errors.New("aborted")

// prompter asks for one line of input.
type prompter interface {
	Ask(ctx context.Context, message, help string) (string, error)
}

type surveyPrompter struct{}

func (surveyPrompter) Ask(ctx context.Context, message, help string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	var out string
	prompt := &survey.Input{Message: message, Help: help}
	if err := survey.AskOne(prompt, &out); err != nil {
		if errors.Is(err, terminal.InterruptErr) {
			return "", errAborted
		}
		return "", err
	}
	return out, nil
}

// cmdTry reads values interactively and echoes each one through the binding
// until an empty answer or an interrupt.
func (a *app) cmdTry(ctx context.Context, args []string) error {
	f := a.newMaskFlags("try")
	if err := f.fs.Parse(args); err != nil {
		return err
	}
	opts, err := f.options(a)
	if err != nil {
		return err
	}

	field := textmask.NewTextField("")
	in := textmask.New(field, opts...)
	help := "empty answer quits"
	cfg := textmask.NewConfig(opts...)
	if p, err := mask.BuildPlaceholder(cfg.Mask, cfg.PlaceholderChar); err == nil {
		help = fmt.Sprintf("mask %s, empty answer quits", p)
	}

	for {
		answer, err := a.prompter.Ask(ctx, "value:", help)
		switch {
		case errors.Is(err, errAborted), errors.Is(err, context.Canceled):
			return nil
		case err != nil:
			return err
		case answer == "":
			return nil
		}

		// Each answer is a paste into a cleared field.
		if err := in.SetValue(""); err != nil {
			return err
		}
		field.Edit(answer, -1)
		if err := in.Update(); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(a.stdout, "%s|%d\n", field.Value(), field.CaretPosition()); err != nil {
			return err
		}
	}
}
