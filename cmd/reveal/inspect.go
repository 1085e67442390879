package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"sort"

	"github.com/maruel/natural"
	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"reveal/apply"
	"reveal/common"
	"reveal/css"
	"reveal/htmldoc"
	"reveal/state"
	"reveal/styling"
)

func inspectStyles(ctx context.Context, cmd *cli.Command) error {
	env := state.EnvFromContext(ctx)

	fname := cmd.Args().Get(0)
	if len(fname) == 0 {
		return errors.New("no input source has been specified")
	}
	if cmd.Args().Len() > 1 {
		env.Log.Warn("Malformed command line, too many sources", zap.Strings("ignoring", cmd.Args().Slice()[1:]))
	}

	data, err := os.ReadFile(fname)
	if err != nil {
		return fmt.Errorf("unable to read '%s': %w", fname, err)
	}
	if apply.IsPage(fname) {
		doc, err := htmldoc.Load(bytes.NewReader(data), "", env.Log)
		if err != nil {
			return err
		}
		sheet := doc.Stylesheet()
		if !sheet.Created {
			env.Log.Info("Page has no reveal stylesheet", zap.String("file", fname))
			return nil
		}
		data = []byte(sheet.Text)
	}

	sheet := css.NewParser(env.Log).Parse(data, fname)
	for _, w := range sheet.Warnings {
		env.Log.Debug("CSS parser warning", zap.String("warning", w))
	}
	return writeReport(os.Stdout, sheet, env.Cfg.Responsive)
}

// writeReport lists selectors active at the breakpoint of every device.
func writeReport(w io.Writer, sheet *css.Stylesheet, r styling.Responsive) error {
	for d := common.DeviceMobile; d <= common.DeviceDesktop; d++ {
		settings := r.Device(d)

		var selectors []string
		for _, rule := range sheet.ActiveRules(settings.Breakpoint) {
			if !slices.Contains(selectors, rule.Selector) {
				selectors = append(selectors, rule.Selector)
			}
		}
		sort.Sort(natural.StringSlice(selectors))

		status := "off"
		if settings.Enabled {
			status = "on"
		}
		if _, err := fmt.Fprintf(w, "%s (%dpx, %s): %d selector(s)\n", d, settings.Breakpoint, status, len(selectors)); err != nil {
			return err
		}
		for _, s := range selectors {
			if _, err := fmt.Fprintf(w, "    %s\n", s); err != nil {
				return err
			}
		}
	}
	return nil
}
