package main

import (
	"context"
	"fmt"
	"strings"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"reveal/common"
	"reveal/state"
	"reveal/styling"
)

func outputStyles(ctx context.Context, cmd *cli.Command) error {
	env := state.EnvFromContext(ctx)
	if cmd.Args().Len() > 1 {
		env.Log.Warn("Malformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[1:]))
	}

	opts, err := env.Cfg.OptionsFor(cmd.String("ref"))
	if err != nil {
		return err
	}
	if err := overrideOptions(cmd, &opts); err != nil {
		return err
	}

	sheet, classes, err := env.Engine().Preview(opts)
	if err != nil {
		return fmt.Errorf("unable to build stylesheet: %w", err)
	}

	fname := cmd.Args().Get(0)
	env.Log.Info("Outputing stylesheet", zap.String("class", classes.Main), zap.String("base", classes.Base), zap.String("file", destName(fname)))
	return writeOutput(fname, fmt.Appendf(nil, "/* %s %s */\n%s\n", classes.Main, classes.Base, sheet.Text))
}

func styleFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "ref", Usage: "take options for element `REF` from configuration"},
		&cli.StringFlag{Name: "transition", Aliases: []string{"t"},
			Usage: "transition `NAME` (supported: " + strings.Join(common.TransitionNames(), ", ") + ")"},
		&cli.StringFlag{Name: "easing", Aliases: []string{"e"}, Usage: "easing curve `NAME`"},
		&cli.FloatFlag{Name: "duration", Usage: "transition duration in `MS`"},
		&cli.FloatFlag{Name: "delay", Usage: "transition delay in `MS`"},
		&cli.FloatFlag{Name: "x", Usage: "horizontal offset in `PX`"},
		&cli.FloatFlag{Name: "y", Usage: "vertical offset in `PX`"},
		&cli.FloatFlag{Name: "rotate", Usage: "rotation in `DEG`"},
		&cli.FloatFlag{Name: "opacity", Usage: "initial opacity `VALUE` (0-1)"},
		&cli.FloatFlag{Name: "blur", Usage: "blur radius in `PX`"},
		&cli.FloatFlag{Name: "scale", Usage: "initial scale `VALUE`"},
	}
}

// overrideOptions replaces options with values of flags present on command
// line.
func overrideOptions(cmd *cli.Command, o *styling.Options) (err error) {
	if cmd.IsSet("transition") {
		if o.Transition, err = common.ParseTransition(cmd.String("transition")); err != nil {
			return err
		}
	}
	if cmd.IsSet("easing") {
		if o.Easing, err = common.ParseEasing(cmd.String("easing")); err != nil {
			return err
		}
	}
	for name, v := range map[string]*float64{
		"duration": &o.Duration,
		"delay":    &o.Delay,
		"x":        &o.X,
		"y":        &o.Y,
		"rotate":   &o.Rotate,
		"opacity":  &o.Opacity,
		"blur":     &o.Blur,
		"scale":    &o.Scale,
	} {
		if cmd.IsSet(name) {
			*v = cmd.Float(name)
		}
	}
	return nil
}
