package version

import (
	"strings"

	"github.com/fatih/color"
)

// Version information for the flint CLI.
// These variables can be overridden at build time via -ldflags.
var (
	// Version is the semantic version of the CLI.
	Version = "0.1.0-dev"

	// GitCommit is an optional git commit hash.
	GitCommit = ""

	// BuildDate is an optional build date in ISO-8601.
	BuildDate = ""
)

// Banner returns "flint <version>" with major, minor and patch colored
// when colored is set. Non-semver versions are printed as is.
func Banner(colored bool) string {
	v := strings.TrimSpace(Version)
	if v == "" {
		v = "dev"
	}
	if !colored {
		return "flint " + v
	}

	core, suffix := v, ""
	if i := strings.IndexAny(v, "-+"); i >= 0 {
		core, suffix = v[:i], v[i:]
	}
	parts := strings.Split(core, ".")
	if len(parts) != 3 {
		return "flint " + v
	}
	palette := []*color.Color{
		color.New(color.FgYellow, color.Bold),
		color.New(color.FgGreen, color.Bold),
		color.New(color.FgBlue, color.Bold),
	}
	for i, c := range palette {
		c.EnableColor()
		parts[i] = c.Sprint(parts[i])
	}
	return "flint " + strings.Join(parts, ".") + suffix
}
