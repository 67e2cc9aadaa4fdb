package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Find walks up from startDir to locate flint.toml.
func Find(startDir string) (path string, ok bool, err error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Resolve picks the settings for an input file: explicit wins, then the
// nearest flint.toml above the input, then Default.
func Resolve(explicit, inputFile string) (Config, error) {
	if explicit != "" {
		return Load(explicit)
	}
	startDir := "."
	if inputFile != "" {
		startDir = filepath.Dir(inputFile)
	}
	path, ok, err := Find(startDir)
	if err != nil {
		return Config{}, err
	}
	if !ok {
		return Default(), nil
	}
	return Load(path)
}
