// Command textmask conforms text to input masks from the terminal.
//
// Usage:
//
//	textmask conform [-mask P | -preset N] [flags] [values...]
//	textmask replay -file session.yaml
//	textmask try [-mask P | -preset N] [flags]
//	textmask presets
//
// Defaults come from TEXTMASK_* environment variables and .env files.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrymomot/textmask/pkg/config"
	"github.com/dmitrymomot/textmask/pkg/logger"
	"github.com/dmitrymomot/textmask/pkg/presets"
)

var errUsage = errors.New("usage: textmask <conform|replay|try|presets> [flags]")

type app struct {
	defaults config.Defaults
	log      *slog.Logger
	registry *presets.Registry
	prompter prompter
	stdin    io.Reader
	stdout   io.Writer
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "textmask:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string) error {
	var defaults config.Defaults
	if err := config.Load(&defaults); err != nil {
		return err
	}
	if err := defaults.Validate(); err != nil {
		return err
	}

	level, err := logger.ParseLevel(defaults.LogLevel)
	if err != nil {
		return err
	}
	format, err := logger.ParseFormat(defaults.LogFormat)
	if err != nil {
		return err
	}
	log := logger.New(
		logger.WithLevel(level),
		logger.WithFormat(format),
		logger.WithOutput(os.Stderr),
		logger.WithContextValue("session", sessionKey{}),
		logger.WithAttr(logger.Component("cli")),
	)

	registry, err := loadRegistry(defaults.PresetsFile)
	if err != nil {
		return err
	}

	a := &app{
		defaults: defaults,
		log:      log,
		registry: registry,
		prompter: surveyPrompter{},
		stdin:    os.Stdin,
		stdout:   os.Stdout,
	}
	return a.dispatch(ctx, args)
}

func (a *app) dispatch(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errUsage
	}
	switch args[0] {
	case "conform":
		return a.cmdConform(ctx, args[1:])
	case "replay":
		return a.cmdReplay(ctx, args[1:])
	case "try":
		return a.cmdTry(ctx, args[1:])
	case "presets":
		return a.cmdPresets(args[1:])
	case "help", "-h", "-help", "--help":
		fmt.Fprintln(a.stdout, errUsage.Error())
		return nil
	default:
		return fmt.Errorf("unknown command %q: %w", args[0], errUsage)
	}
}

// loadRegistry returns the built-in presets merged with an optional file.
func loadRegistry(path string) (*presets.Registry, error) {
	reg := presets.Default()
	if path == "" {
		return reg, nil
	}
	extra, err := presets.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load presets file: %w", err)
	}
	if err := reg.Merge(extra); err != nil {
		return nil, err
	}
	return reg, nil
}
