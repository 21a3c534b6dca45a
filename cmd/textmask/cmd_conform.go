package main

import (
	"bufio"
	"context"
	"fmt"

	"github.com/dmitrymomot/textmask"
	"github.com/dmitrymomot/textmask/pkg/conform"
	"github.com/dmitrymomot/textmask/pkg/logger"
)

// cmdConform runs the engine on each argument, or on each stdin line when
// there are none. Pipes are not applied; replay and try use the full binding.
func (a *app) cmdConform(ctx context.Context, args []string) error {
	f := a.newMaskFlags("conform")
	verbose := f.fs.Bool("v", false, "also print whether characters were rejected")
	if err := f.fs.Parse(args); err != nil {
		return err
	}
	opts, err := f.options(a)
	if err != nil {
		return err
	}
	cfg := textmask.NewConfig(opts...)

	one := func(raw string) error {
		res, err := conform.Conform(raw, cfg.Mask, conformOptions(cfg)...)
		if err != nil {
			return err
		}
		a.log.DebugContext(ctx, "conform", logger.Raw(raw), logger.Conformed(res.ConformedValue))
		if *verbose {
			_, err = fmt.Fprintf(a.stdout, "%s\trejected=%t\n", res.ConformedValue, res.DidRejectCharacter)
			return err
		}
		_, err = fmt.Fprintln(a.stdout, res.ConformedValue)
		return err
	}

	if f.fs.NArg() > 0 {
		for _, raw := range f.fs.Args() {
			if err := one(raw); err != nil {
				return err
			}
		}
		return nil
	}

	sc := bufio.NewScanner(a.stdin)
	for sc.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := one(sc.Text()); err != nil {
			return err
		}
	}
	return sc.Err()
}
