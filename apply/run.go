// Package apply activates reveal animations in static HTML pages.
package apply

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime/debug"
	"strings"
	"time"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"reveal/config"
	"reveal/htmldoc"
	"reveal/reveal"
	"reveal/state"
)

func Run(ctx context.Context, cmd *cli.Command) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("apply")

	src := cmd.Args().Get(0)
	if len(src) == 0 {
		return errors.New("no input source has been specified")
	}
	src, err = filepath.Abs(src)
	if err != nil {
		return err
	}

	dst := cmd.Args().Get(1)
	if len(dst) == 0 {
		if dst, err = os.Getwd(); err != nil {
			return fmt.Errorf("unable to get working directory: %w", err)
		}
	}
	if dst, err = filepath.Abs(dst); err != nil {
		return err
	}
	if cmd.Args().Len() > 2 {
		log.Warn("Mailformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[2:]))
	}

	env.Overwrite = cmd.Bool("overwrite")

	log.Info("Processing starting", zap.String("source", src), zap.String("destination", dst))
	defer func(start time.Time) {
		log.Info("Processing completed", zap.Duration("elapsed", time.Since(start)))
	}(time.Now())

	return process(ctx, src, dst, log)
}

// process handles either single page or directory tree of pages.
func process(ctx context.Context, src, dst string, log *zap.Logger) error {
	fi, err := os.Stat(src)
	if err != nil {
		return fmt.Errorf("input source was not found (%s): %w", src, err)
	}

	if fi.Mode().IsDir() {
		return processDir(ctx, src, dst, log)
	}
	if !fi.Mode().IsRegular() {
		return fmt.Errorf("unexpected path mode for (%s)", src)
	}
	if !IsPage(src) {
		return fmt.Errorf("input was not recognized as HTML page (%s)", src)
	}

	file, err := os.Open(src)
	if err != nil {
		return err
	}
	defer file.Close()

	return processPage(ctx, file, filepath.Base(src), dst, log)
}

// processDir walks directory tree finding pages and processes them keeping
// relative paths.
func processDir(ctx context.Context, dir, dst string, log *zap.Logger) (err error) {
	count := 0
	defer func() {
		if err == nil && count == 0 {
			log.Debug("Nothing to process", zap.String("dir", dir))
		}
	}()

	return filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err := ctx.Err(); err != nil {
			return err
		}

		if err != nil {
			log.Warn("Skipping path", zap.String("path", path), zap.Error(err))
			return nil
		}
		if !info.Mode().IsRegular() {
			return nil
		}
		if !IsPage(path) {
			log.Debug("Skipping file, not recognized as page", zap.String("file", path))
			return nil
		}

		count++

		file, err := os.Open(path)
		if err != nil {
			log.Error("Unable to process file", zap.String("file", path), zap.Error(err))
			return nil
		}
		defer file.Close()

		src := strings.TrimPrefix(strings.TrimPrefix(path, dir), string(filepath.Separator))
		if err := processPage(ctx, file, src, dst, log); err != nil {
			log.Error("Unable to process file", zap.String("file", path), zap.Error(err))
		}
		return nil
	})
}

// processPage processes single page. "src" is path relative to the original
// source, "dst" is destination directory.
func processPage(ctx context.Context, r io.Reader, src, dst string, log *zap.Logger) (rerr error) {
	env := state.EnvFromContext(ctx)

	var (
		outputName string
		activated  int
	)

	log.Info("Page processing starting", zap.String("from", src))
	defer func(start time.Time) {
		if r := recover(); r != nil {
			log.Error("Page processing ended with panic",
				zap.Any("panic", r), zap.Duration("elapsed", time.Since(start)), zap.String("to", outputName), zap.ByteString("stack", debug.Stack()))
			rerr = fmt.Errorf("page processing panic: %v", r)
		} else if rerr == nil {
			log.Info("Page processing completed", zap.Duration("elapsed", time.Since(start)), zap.String("to", outputName), zap.Int("activated", activated))
		}
	}(time.Now())

	doc, err := htmldoc.Load(r, "", log)
	if err != nil {
		return fmt.Errorf("unable to parse page (%s): %w", src, err)
	}

	activated, err = Activate(doc, env.Engine(), env.Cfg, log)
	// problems with individual elements should not stop processing
	for _, e := range multierr.Errors(err) {
		log.Warn("Unable to activate element", zap.String("page", src), zap.Error(e))
	}

	outputName = filepath.Join(dst, src)
	if _, err := os.Stat(outputName); err == nil {
		if !env.Overwrite {
			return fmt.Errorf("output file already exists: %s", outputName)
		}
		log.Warn("Overwriting existing file", zap.String("file", outputName))
	} else if !os.IsNotExist(err) {
		return err
	} else if err := os.MkdirAll(filepath.Dir(outputName), 0755); err != nil {
		return fmt.Errorf("unable to create output directory: %w", err)
	}

	out, err := os.Create(outputName)
	if err != nil {
		return fmt.Errorf("unable to create output file: %w", err)
	}
	if err := doc.Render(out); err != nil {
		return multierr.Append(fmt.Errorf("unable to write output: %w", err), out.Close())
	}
	return out.Close()
}

// Activate activates every marked element of doc using options configured for
// its ref and stores resulting stylesheet in the document. Elements activated
// earlier are left alone so processing the same page again changes nothing.
// It returns number of activated elements, elements which failed are reported
// in combined error and left untouched.
func Activate(doc *htmldoc.Document, engine *reveal.Engine, cfg *config.Config, log *zap.Logger) (int, error) {
	var (
		err   error
		count int
	)

	sheet := doc.Stylesheet()
	for _, node := range doc.Nodes() {
		if node.Activated() {
			log.Debug("Skipping element, already activated", zap.String("ref", node.Ref()), zap.Strings("classes", node.Classes()))
			continue
		}
		opts, er := cfg.OptionsFor(node.Ref())
		if er != nil {
			err = multierr.Append(err, er)
			continue
		}
		next, classes, er := engine.Activate(sheet, node, opts)
		if er != nil {
			err = multierr.Append(err, er)
			continue
		}
		sheet = next
		if len(classes.Main) > 0 {
			count++
		}
	}
	return count, multierr.Append(err, doc.SetStylesheet(sheet))
}

// IsPage reports whether path looks like HTML page by its extension.
func IsPage(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm", ".xhtml":
		return true
	}
	return false
}
