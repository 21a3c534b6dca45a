package main

import (
	"flag"
	"fmt"
	"text/tabwriter"
)

func (a *app) cmdPresets(args []string) error {
	fs := flag.NewFlagSet("presets", flag.ContinueOnError)
	fs.SetOutput(a.stdout)
	if err := fs.Parse(args); err != nil {
		return err
	}

	tw := tabwriter.NewWriter(a.stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tPATTERN\tDESCRIPTION")
	for _, name := range a.registry.Names() {
		p, err := a.registry.Get(name)
		if err != nil {
			return err
		}
		pattern := p.Pattern
		if pattern == "" {
			pattern = "(dynamic)"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", p.Name, pattern, p.Description)
	}
	return tw.Flush()
}
