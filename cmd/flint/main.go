package main

import (
	"context"
	"os"

	"golang.org/x/term"
)

// main runs the root command; any reported error exits with status 1.
func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

// isTerminal проверяет, является ли writer терминалом
func isTerminal(w any) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
