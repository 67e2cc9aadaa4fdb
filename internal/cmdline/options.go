package cmdline

import (
	"strconv"

	"flint/internal/config"
	"flint/internal/diag"
)

// Options is the resolved meaning of an Invocation. Empty strings and zero
// numbers mean "not given on the command line".
type Options struct {
	Help    bool
	Version bool
	Tokens  bool
	Quiet   bool
	Parse   bool
	Timings bool

	Format      string // pretty|json|msgpack
	Color       string // auto|on|off
	ConfigPath  string
	TraceLevel  string
	TraceFormat string
	TabWidth    int

	CPUProfile   string
	MemProfile   string
	RuntimeTrace string

	// File is the single input file; empty when none was given.
	File string
}

type flagKind uint8

const (
	boolFlag flagKind = iota
	valueFlag
)

type flagSpec struct {
	long  string
	short rune
	kind  flagKind
	apply func(o *Options, value string) error
}

func enumValue(name string, dst *string, allowed ...string) func(*Options, string) error {
	return func(_ *Options, v string) error {
		for _, a := range allowed {
			if v == a {
				*dst = v
				return nil
			}
		}
		return diag.Cmdlinef("invalid value %q for `--%s`", v, name)
	}
}

func pathValue(name string, dst *string) func(*Options, string) error {
	return func(_ *Options, v string) error {
		if v == "" {
			return diag.Cmdlinef("`--%s` needs a path", name)
		}
		*dst = v
		return nil
	}
}

func specs(o *Options) []flagSpec {
	return []flagSpec{
		{long: "help", short: 'h', apply: func(o *Options, _ string) error { o.Help = true; return nil }},
		{long: "version", short: 'V', apply: func(o *Options, _ string) error { o.Version = true; return nil }},
		{long: "tokens", short: 't', apply: func(o *Options, _ string) error { o.Tokens = true; return nil }},
		{long: "quiet", short: 'q', apply: func(o *Options, _ string) error { o.Quiet = true; return nil }},
		{long: "parse", short: 'p', apply: func(o *Options, _ string) error { o.Parse = true; return nil }},
		{long: "timings", apply: func(o *Options, _ string) error { o.Timings = true; return nil }},
		{long: "no-color", apply: func(o *Options, _ string) error { o.Color = "off"; return nil }},
		{long: "format", kind: valueFlag, apply: enumValue("format", &o.Format, "pretty", "json", "msgpack")},
		{long: "color", kind: valueFlag, apply: enumValue("color", &o.Color, "auto", "on", "off")},
		{long: "trace-format", kind: valueFlag, apply: enumValue("trace-format", &o.TraceFormat, "text", "ndjson")},
		{long: "trace", kind: valueFlag, apply: enumValue("trace", &o.TraceLevel, "off", "error", "phase", "detail", "debug")},
		{long: "config", kind: valueFlag, apply: pathValue("config", &o.ConfigPath)},
		{long: "cpu-profile", kind: valueFlag, apply: pathValue("cpu-profile", &o.CPUProfile)},
		{long: "mem-profile", kind: valueFlag, apply: pathValue("mem-profile", &o.MemProfile)},
		{long: "runtime-trace", kind: valueFlag, apply: pathValue("runtime-trace", &o.RuntimeTrace)},
		{long: "tab-width", kind: valueFlag, apply: func(o *Options, v string) error {
			n, err := strconv.Atoi(v)
			if err != nil || n < 1 || n > 16 {
				return diag.Cmdlinef("invalid value %q for `--tab-width` (expected 1..16)", v)
			}
			o.TabWidth = n
			return nil
		}},
	}
}

func lookup(table []flagSpec, f Flag) (flagSpec, bool) {
	for _, s := range table {
		if f.Long && s.long == f.Name {
			return s, true
		}
		if !f.Long && s.short != 0 && string(s.short) == f.Name {
			return s, true
		}
	}
	return flagSpec{}, false
}

// Resolve interprets inv. Unknown flags, misplaced values and more than
// one input file are command line errors.
func Resolve(inv Invocation) (Options, error) {
	var o Options
	table := specs(&o)
	for _, f := range inv.Flags {
		s, ok := lookup(table, f)
		if !ok {
			return Options{}, diag.Cmdlinef("unknown flag `%s`", f.Spelling())
		}
		switch {
		case s.kind == boolFlag && f.HasValue:
			return Options{}, diag.Cmdlinef("flag `%s` does not take a value", f.Spelling())
		case s.kind == valueFlag && !f.HasValue:
			return Options{}, diag.Cmdlinef("flag `%s` needs a value: `%s=<value>`", f.Spelling(), f.Spelling())
		}
		if err := s.apply(&o, f.Value); err != nil {
			return Options{}, err
		}
	}
	switch len(inv.Files) {
	case 0:
	case 1:
		o.File = inv.Files[0]
	default:
		return Options{}, diag.Cmdlinef("expected one input file, got %d", len(inv.Files))
	}
	return o, nil
}

// ParseArgs is Parse followed by Resolve.
func ParseArgs(args []string) (Options, error) {
	inv, err := Parse(args)
	if err != nil {
		return Options{}, err
	}
	return Resolve(inv)
}

// Apply overlays the command line values on cfg.
func (o Options) Apply(cfg *config.Config) {
	if o.Format != "" {
		cfg.Output.Format = o.Format
	}
	if o.Color != "" {
		cfg.Diagnostics.Color = o.Color
	}
	if o.TabWidth != 0 {
		cfg.Diagnostics.TabWidth = o.TabWidth
	}
	if o.TraceLevel != "" {
		cfg.Trace.Level = o.TraceLevel
	}
	if o.TraceFormat != "" {
		cfg.Trace.Format = o.TraceFormat
	}
}
