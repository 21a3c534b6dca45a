package textmask

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/textmask/pkg/caret"
	"github.com/dmitrymomot/textmask/pkg/conform"
	"github.com/dmitrymomot/textmask/pkg/logger"
	"github.com/dmitrymomot/textmask/pkg/mask"
)

// State is what an Input remembers between updates.
type State struct {
	PreviousConformedValue string
	PreviousPlaceholder    string
}

// Input keeps one Element conformed to a mask.
type Input struct {
	el      Element
	cfg     Config
	state   State
	touched bool
}

// New binds el. Nothing is written to el until the first Update or SetValue.
func New(el Element, opts ...Option) *Input {
	return &Input{el: el, cfg: NewConfig(opts...)}
}

// State returns a copy of the per-field state.
func (in *Input) State() State { return in.state }

// Config returns the base configuration.
func (in *Input) Config() Config { return in.cfg }

// Element returns the bound element.
func (in *Input) Element() Element { return in.el }

// Update conforms the element's current value. opts override the base
// configuration for this call only.
func (in *Input) Update(opts ...Option) error {
	return in.update(in.el.Value(), opts)
}

// SetValue conforms v and writes the result to the element. v may be a
// string, any integer or float kind, or nil (treated as empty).
func (in *Input) SetValue(v any, opts ...Option) error {
	raw, err := rawValue(v)
	if err != nil {
		return err
	}
	return in.update(raw, opts)
}

func (in *Input) update(raw string, opts []Option) error {
	if in.touched && raw == in.state.PreviousConformedValue {
		return nil
	}

	cfg := in.cfg
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Mask.IsDisabled() {
		return nil
	}
	if cfg.Mask.IsFixed() {
		if err := mask.Validate(cfg.Mask, cfg.PlaceholderChar); err != nil {
			return err
		}
	}

	pos := in.el.CaretPosition()
	prev := in.state

	res, err := conform.Conform(raw, cfg.Mask,
		conform.WithGuide(cfg.Guide),
		conform.WithPlaceholderChar(cfg.PlaceholderChar),
		conform.WithKeepCharPositions(cfg.KeepCharPositions),
		conform.WithCaretPosition(pos),
		conform.WithPreviousConformedValue(prev.PreviousConformedValue),
	)
	if err != nil {
		return err
	}
	if res.Disabled {
		return nil
	}

	log := cfg.Logger
	ctx := context.Background()
	if res.DidRejectCharacter {
		log.DebugContext(ctx, "rejected characters",
			logger.Raw(raw),
			logger.Conformed(res.ConformedValue),
			logger.Caret(pos),
		)
	}

	value := res.ConformedValue
	var piped []int
	if cfg.Pipe != nil {
		out := cfg.Pipe(res.ConformedValue, PipeConfig{
			RawValue:               raw,
			PreviousConformedValue: prev.PreviousConformedValue,
			Guide:                  cfg.Guide,
			PlaceholderChar:        cfg.PlaceholderChar,
			Placeholder:            res.Placeholder,
			CurrentCaretPosition:   pos,
			KeepCharPositions:      cfg.KeepCharPositions,
		})
		if out.Rejected {
			log.DebugContext(ctx, "pipe rejected edit",
				logger.Raw(raw),
				logger.Conformed(res.ConformedValue),
			)
			value = prev.PreviousConformedValue
		} else {
			value = out.Value
			piped = out.IndexesOfPipedChars
		}
	}

	adjusted := caret.Adjust(caret.Input{
		PreviousConformedValue: prev.PreviousConformedValue,
		PreviousPlaceholder:    prev.PreviousPlaceholder,
		ConformedValue:         value,
		RawValue:               raw,
		Placeholder:            res.Placeholder,
		PlaceholderChar:        cfg.PlaceholderChar,
		CurrentCaretPosition:   pos,
		IndexesOfPipedChars:    piped,
		CaretTrapIndexes:       res.CaretTraps,
	})

	if (value == "" || value == res.Placeholder) && adjusted == 0 {
		value = ""
		if cfg.ShowMask {
			value = res.Placeholder
		}
	}

	in.touched = true
	in.state = State{
		PreviousConformedValue: value,
		PreviousPlaceholder:    res.Placeholder,
	}

	if log.Enabled(ctx, slog.LevelDebug) {
		log.DebugContext(ctx, "conformed",
			logger.Mask(cfg.Mask.String()),
			logger.Raw(raw),
			logger.Conformed(value),
			logger.Placeholder(res.Placeholder),
			logger.Caret(adjusted),
		)
	}

	if in.el.Value() != value {
		in.el.SetValue(value)
	}
	in.el.SetCaretPosition(adjusted)
	return nil
}
