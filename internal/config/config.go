// Package config loads flint.toml, the optional per-project settings file.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

// FileName is the settings file looked up next to the input.
const FileName = "flint.toml"

// ErrInvalid wraps every validation failure of a settings file.
var ErrInvalid = errors.New("invalid configuration")

// Config is the decoded form of flint.toml.
type Config struct {
	Diagnostics Diagnostics `toml:"diagnostics"`
	Lexer       Lexer       `toml:"lexer"`
	Output      Output      `toml:"output"`
	Trace       Trace       `toml:"trace"`

	// Path is the file the values came from; empty for defaults.
	Path string `toml:"-"`
}

// Diagnostics controls excerpt rendering.
type Diagnostics struct {
	Color    string `toml:"color"` // auto|on|off
	TabWidth int    `toml:"tab_width"`
}

// Lexer controls scanning limits and input normalization.
type Lexer struct {
	MaxTokenLength int    `toml:"max_token_length"`
	Normalize      string `toml:"normalize"` // none|nfc
}

// Output selects the token dump format.
type Output struct {
	Format string `toml:"format"` // pretty|json|msgpack
}

// Trace mirrors the --trace flags.
type Trace struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
	Output string `toml:"output"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Diagnostics: Diagnostics{Color: "auto", TabWidth: 4},
		Lexer:       Lexer{MaxTokenLength: 0, Normalize: "none"},
		Output:      Output{Format: "pretty"},
		Trace:       Trace{Level: "off", Format: "text", Output: "-"},
	}
}

// Load decodes path over the defaults. Keys absent from the file keep
// their default values.
func Load(path string) (Config, error) {
	cfg := Default()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undec := meta.Undecoded(); len(undec) > 0 {
		keys := make([]string, 0, len(undec))
		for _, k := range undec {
			keys = append(keys, k.String())
		}
		return Config{}, fmt.Errorf("%s: %w: unknown keys %s", path, ErrInvalid, strings.Join(keys, ", "))
	}
	// an explicitly empty value means "default", same as an absent key
	def := Default()
	if meta.IsDefined("lexer", "normalize") && strings.TrimSpace(cfg.Lexer.Normalize) == "" {
		cfg.Lexer.Normalize = def.Lexer.Normalize
	}
	if meta.IsDefined("output", "format") && strings.TrimSpace(cfg.Output.Format) == "" {
		cfg.Output.Format = def.Output.Format
	}
	cfg.Path = path
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks enumerated values and numeric ranges.
func (c Config) Validate() error {
	check := func(key, val string, allowed ...string) error {
		for _, a := range allowed {
			if val == a {
				return nil
			}
		}
		return fmt.Errorf("%w: %s = %q (expected: %s)", ErrInvalid, key, val, strings.Join(allowed, "|"))
	}
	if err := check("diagnostics.color", c.Diagnostics.Color, "auto", "on", "off"); err != nil {
		return err
	}
	if c.Diagnostics.TabWidth < 1 || c.Diagnostics.TabWidth > 16 {
		return fmt.Errorf("%w: diagnostics.tab_width = %d (expected 1..16)", ErrInvalid, c.Diagnostics.TabWidth)
	}
	if c.Lexer.MaxTokenLength < 0 {
		return fmt.Errorf("%w: lexer.max_token_length = %d (0 disables the limit)", ErrInvalid, c.Lexer.MaxTokenLength)
	}
	if err := check("lexer.normalize", c.Lexer.Normalize, "none", "nfc"); err != nil {
		return err
	}
	if err := check("output.format", c.Output.Format, "pretty", "json", "msgpack"); err != nil {
		return err
	}
	if err := check("trace.level", strings.ToLower(c.Trace.Level), "off", "error", "phase", "detail", "debug"); err != nil {
		return err
	}
	return check("trace.format", strings.ToLower(c.Trace.Format), "text", "ndjson", "json")
}
