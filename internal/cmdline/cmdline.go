// Package cmdline splits raw argv into input files and flags.
//
// Grammar:
//
//	file        any argument not starting with '-'
//	-abc        cluster of single-character flags a, b, c
//	--name      named flag
//	--name=val  named flag with a value
//
// A bare "-" or "--" is rejected. Flag values only exist in the long form.
package cmdline

import (
	"strings"

	"flint/internal/diag"
)

// Flag is one parsed flag occurrence.
type Flag struct {
	Name     string
	Value    string
	HasValue bool
	Long     bool
}

// Spelling renders the flag as the user wrote its name.
func (f Flag) Spelling() string {
	if f.Long {
		return "--" + f.Name
	}
	return "-" + f.Name
}

// Invocation is argv split into files and flags, in order.
type Invocation struct {
	Files []string
	Flags []Flag
}

// Parse splits args (without the program name).
func Parse(args []string) (Invocation, error) {
	var inv Invocation
	for _, arg := range args {
		switch {
		case arg == "-" || arg == "--":
			return Invocation{}, diag.Cmdlinef("malformed flag `%s`: expected a flag name", arg)
		case strings.HasPrefix(arg, "--"):
			name, value, hasValue := strings.Cut(arg[2:], "=")
			if name == "" {
				return Invocation{}, diag.Cmdlinef("malformed flag `%s`: expected a flag name", arg)
			}
			inv.Flags = append(inv.Flags, Flag{Name: name, Value: value, HasValue: hasValue, Long: true})
		case strings.HasPrefix(arg, "-"):
			for _, r := range arg[1:] {
				inv.Flags = append(inv.Flags, Flag{Name: string(r)})
			}
		default:
			inv.Files = append(inv.Files, arg)
		}
	}
	return inv, nil
}
