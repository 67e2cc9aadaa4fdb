package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"flint/internal/cmdline"
	"flint/internal/config"
	"flint/internal/diag"
	"flint/internal/diagfmt"
	"flint/internal/driver"
	"flint/internal/observ"
	"flint/internal/prof"
	"flint/internal/source"
	"flint/internal/trace"
	"flint/internal/version"
)

// errReported signals that a diagnostic was already written to stderr.
var errReported = errors.New("error reported")

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	opts, err := cmdline.ParseArgs(args)
	if err != nil {
		return report(stderr, err, nil, config.Default(), false)
	}

	switch {
	case opts.Help:
		_, err := io.WriteString(stdout, usage)
		return err
	case opts.Version:
		_, err := fmt.Fprintln(stdout, version.Banner(colorEnabled(opts.Color, stdout)))
		return err
	case opts.File == "":
		_, err := fmt.Fprintln(stdout, "No input files")
		return err
	}

	cfg, err := config.Resolve(opts.ConfigPath, opts.File)
	if err != nil {
		return report(stderr, diag.Cmdlinef("cannot load settings: %v", err), nil, config.Default(), colorEnabled(opts.Color, stderr))
	}
	opts.Apply(&cfg)

	ctx, cleanup, err := setupTracing(ctx, cfg.Trace)
	if err != nil {
		return report(stderr, diag.Cmdlinef("cannot set up tracing: %v", err), nil, cfg, colorEnabled(cfg.Diagnostics.Color, stderr))
	}
	defer cleanup()
	ctx, span := trace.StartSpan(ctx, trace.ScopeDriver, "flint")
	defer span.End(opts.File)

	profOpts := prof.Options{CPU: opts.CPUProfile, Mem: opts.MemProfile, Trace: opts.RuntimeTrace}
	if profOpts.Enabled() {
		session, perr := prof.Start(profOpts)
		if perr != nil {
			return report(stderr, diag.Cmdlinef("cannot start profiling: %v", perr), nil, cfg, colorEnabled(cfg.Diagnostics.Color, stderr))
		}
		defer func() {
			if serr := session.Stop(); serr != nil {
				_, _ = fmt.Fprintf(stderr, "warning: profiling: %v\n", serr)
			}
		}()
	}

	var timer *observ.Timer
	var observer driver.PhaseObserver
	if opts.Timings {
		timer = observ.NewTimer()
		observer = func(ev driver.PhaseEvent) {
			if ev.Status == driver.PhaseEnd {
				timer.Record(ev.Name, ev.Elapsed, ev.Err != nil)
			}
		}
		defer func() { _, _ = io.WriteString(stderr, timer.Summary()) }()
	}

	res, err := driver.Tokenize(ctx, opts.File, driver.Options{
		StripTrailingNewline: true,
		NormalizeNFC:         cfg.Lexer.Normalize == "nfc",
		MaxTokenLength:       cfg.Lexer.MaxTokenLength,
		Parse:                opts.Parse,
		Observer:             observer,
	})
	if err != nil {
		return report(stderr, err, res.File, cfg, colorEnabled(cfg.Diagnostics.Color, stderr))
	}

	if opts.Quiet && !opts.Tokens {
		return nil
	}
	if err := writeTokens(stdout, res, cfg); err != nil {
		return report(stderr, diag.WrapInternal(err, "write tokens"), nil, cfg, false)
	}
	return nil
}

func writeTokens(w io.Writer, res *driver.Result, cfg config.Config) error {
	switch cfg.Output.Format {
	case "json":
		return diagfmt.FormatTokensJSON(w, res.Tokens, res.File, diagfmt.JSONOpts{IncludePositions: true})
	case "msgpack":
		return diagfmt.FormatTokensMsgpack(w, res.Tokens, res.File)
	default:
		return diagfmt.FormatTokensPretty(w, res.Tokens, res.File, diagfmt.TokenOpts{
			Color: colorEnabled(cfg.Diagnostics.Color, w),
		})
	}
}

// report renders err on stderr and returns errReported. JSON output keeps
// diagnostics machine-readable too.
func report(stderr io.Writer, err error, file *source.File, cfg config.Config, colored bool) error {
	de := diag.AsError(err)
	var werr error
	if cfg.Output.Format == "json" {
		werr = diagfmt.FormatJSON(stderr, de, file, diagfmt.JSONOpts{IncludePositions: true})
	} else {
		werr = diagfmt.Pretty(stderr, de, file, diagfmt.PrettyOpts{
			Color:    colored,
			TabWidth: cfg.Diagnostics.TabWidth,
		})
	}
	if werr != nil {
		return errors.Join(errReported, werr)
	}
	return errReported
}

// colorEnabled resolves auto|on|off against w; auto also honors NO_COLOR.
func colorEnabled(mode string, w io.Writer) bool {
	switch mode {
	case "on":
		return true
	case "off":
		return false
	default:
		return os.Getenv("NO_COLOR") == "" && isTerminal(w)
	}
}
