package version

import (
	"strings"
	"testing"
)

func TestVersion_DefaultValues(t *testing.T) {
	if Version == "" {
		t.Error("Version should have a default value")
	}
}

func TestBannerPlain(t *testing.T) {
	orig := Version
	defer func() { Version = orig }()

	Version = "1.2.3-rc.1"
	if got := Banner(false); got != "flint 1.2.3-rc.1" {
		t.Fatalf("Banner(false) = %q", got)
	}
	Version = ""
	if got := Banner(false); got != "flint dev" {
		t.Fatalf("empty version banner = %q", got)
	}
}

func TestBannerColored(t *testing.T) {
	orig := Version
	defer func() { Version = orig }()

	Version = "0.1.0-dev"
	got := Banner(true)
	if !strings.Contains(got, "\x1b[") || !strings.HasSuffix(got, "-dev") {
		t.Fatalf("Banner(true) = %q", got)
	}

	Version = "nightly"
	if got := Banner(true); got != "flint nightly" {
		t.Fatalf("non-semver banner = %q", got)
	}
}
