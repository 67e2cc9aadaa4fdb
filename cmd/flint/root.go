package main

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"flint/internal/config"
	"flint/internal/diag"
)

const usage = `Usage: flint [options] <file>

Scans <file> and prints its tokens. The first error is reported on stderr.

Options:
  -h, --help                 show this help
  -V, --version              show the version
  -t, --tokens               print tokens (default)
  -q, --quiet                do not print tokens
  -p, --parse                check top-level items and brackets
      --format=<fmt>         token output: pretty|json|msgpack
      --color=<when>         auto|on|off
      --no-color             same as --color=off
      --config=<path>        settings file (default: nearest flint.toml)
      --trace=<level>        off|error|phase|detail|debug
      --trace-format=<fmt>   text|ndjson
      --tab-width=<n>        columns per tab in excerpts
      --timings              print phase timings on stderr
      --cpu-profile=<path>   write a CPU profile
      --mem-profile=<path>   write a heap profile on exit
      --runtime-trace=<path> write a Go runtime trace

Short flags may be combined: -qp.

Commands:
  version [--format=pretty|json] [--full]
                             build fingerprints; only as the first argument
                             (a file named "version" is given as ./version)
`

// newRootCmd builds the CLI. Flags are not parsed by cobra: flint's own
// grammar (see internal/cmdline) decides what an argument means.
func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:                "flint [options] <file>",
		Short:              "Scanner and diagnostics for the flint language",
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceErrors:      true,
		SilenceUsage:       true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 && args[0] == "version" {
				return runVersion(cmd.Context(), args[1:], stdout, stderr)
			}
			return run(cmd.Context(), args, stdout, stderr)
		},
	}
	root.CompletionOptions.DisableDefaultCmd = true
	root.SetOut(stdout)
	root.SetErr(stderr)
	return root
}

// runVersion executes the version command detached from root: registered
// as a subcommand, cobra would route any argument spelled "version" to it.
func runVersion(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	vc := newVersionCmd()
	vc.SilenceErrors = true
	vc.SilenceUsage = true
	vc.SetOut(stdout)
	vc.SetErr(stderr)
	vc.SetArgs(append([]string{}, args...))
	if err := vc.ExecuteContext(ctx); err != nil {
		return report(stderr, diag.Cmdlinef("version: %v", err), nil, config.Default(), false)
	}
	return nil
}
