package main

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fatih/color"

	"ssac/internal/compiler"
	"ssac/internal/config"
	"ssac/internal/errors"
	"ssac/internal/ir"
	"ssac/internal/lower"
)

const (
	emitIR   = "ir"
	emitRaw  = "raw"
	emitAST  = "ast"
	emitLLVM = "llvm"
)

type buildOptions struct {
	Path       string
	Emit       string
	ConfigPath string
	Stats      bool
}

// loadConfig reads the explicit config file, or the nearest ssac.toml above
// the compiled path
func loadConfig(opts buildOptions) (*config.Config, error) {
	if opts.ConfigPath != "" {
		return config.Load(opts.ConfigPath)
	}

	dir := opts.Path
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		dir = filepath.Dir(dir)
	}
	return config.Find(dir)
}

// build compiles every unit under opts.Path and prints the requested
// representation to stdout. Diagnostics go to stderr. It reports success.
func build(ctx context.Context, opts buildOptions, cfg *config.Config, stdout, stderr io.Writer) bool {
	startTime := time.Now()

	units, err := compiler.LoadUnits(opts.Path)
	if err != nil {
		reportFailure(stderr, err, startTime)
		return false
	}

	results, err := compiler.CompileAll(ctx, units, compiler.Options{Pipeline: cfg.Optimize})
	if err != nil {
		reportFailure(stderr, err, startTime)
		return false
	}

	for _, result := range results {
		if len(results) > 1 {
			fmt.Fprintf(stdout, "// %s\n", result.Unit.Path)
		}
		if err := emit(stdout, result, opts.Emit); err != nil {
			reportFailure(stderr, err, startTime)
			return false
		}

		if warnings := compiler.Warnings(result); len(warnings) > 0 {
			reporter := errors.NewErrorReporter(result.Unit.Path, result.Unit.Source)
			fmt.Fprint(stderr, reporter.FormatErrors(warnings))
		}

		if opts.Stats {
			if err := renderStats(stdout, result.Stats); err != nil {
				reportFailure(stderr, err, startTime)
				return false
			}
		}
	}

	color.New(color.FgGreen).Fprintf(stderr, "Successfully compiled %s in %s\n",
		plural(len(results), "unit"), formatDuration(time.Since(startTime)))
	return true
}

// emit writes one representation of a compiled unit
func emit(w io.Writer, result *compiler.Result, kind string) error {
	switch kind {
	case emitIR:
		_, err := io.WriteString(w, ir.Print(result.Optimized))
		return err
	case emitRaw:
		_, err := io.WriteString(w, ir.Print(result.Raw))
		return err
	case emitAST:
		_, err := io.WriteString(w, result.AST.String())
		return err
	case emitLLVM:
		name := strings.TrimSuffix(filepath.Base(result.Unit.Path), compiler.SourceExt)
		text, err := lower.Lower(name, result.Optimized)
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, text)
		return err
	}
	return fmt.Errorf("unknown emit kind %q", kind)
}

// reportFailure prints the diagnostics of a failed unit with its source, or
// the bare error when no unit is involved
func reportFailure(w io.Writer, err error, startTime time.Time) {
	var unitErr *compiler.UnitError
	if stderrors.As(err, &unitErr) {
		reporter := errors.NewErrorReporter(unitErr.Unit.Path, unitErr.Unit.Source)
		fmt.Fprint(w, reporter.FormatErrors(compiler.Diagnostics(unitErr.Err, unitErr.Unit.Source)))
	} else {
		fmt.Fprintf(w, "%s: %s\n", color.RedString("error"), err)
	}

	color.New(color.FgRed).Fprintf(w, "Compilation failed after %s\n", formatDuration(time.Since(startTime)))
}

func plural(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return fmt.Sprintf("%d %ss", n, noun)
}

func formatDuration(d time.Duration) string {
	switch {
	case d >= time.Minute:
		return fmt.Sprintf("%.2fmin", d.Minutes())
	case d >= time.Second:
		return fmt.Sprintf("%.2fs", d.Seconds())
	case d >= time.Millisecond:
		return fmt.Sprintf("%.1fms", float64(d.Nanoseconds())/1000000.0)
	case d >= time.Microsecond:
		return fmt.Sprintf("%.1fμs", float64(d.Nanoseconds())/1000.0)
	default:
		return fmt.Sprintf("%dns", d.Nanoseconds())
	}
}
