package driver

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"flint/internal/diag"
	"flint/internal/testkit"
)

func corpusFiles(t *testing.T, dir string) []string {
	t.Helper()
	files, err := filepath.Glob(filepath.Join("..", "..", "testdata", dir, "*.fl"))
	if err != nil {
		t.Fatal(err)
	}
	if len(files) == 0 {
		t.Skipf("no corpus in testdata/%s", dir)
	}
	return files
}

func TestCorpusAccepted(t *testing.T) {
	for _, path := range corpusFiles(t, "ok") {
		t.Run(filepath.Base(path), func(t *testing.T) {
			res, err := Tokenize(context.Background(), path, Options{StripTrailingNewline: true, Parse: true})
			if err != nil {
				t.Fatalf("Tokenize: %v", err)
			}
			if err := testkit.CheckTokenInvariants(res.Tokens, res.File); err != nil {
				t.Fatal(err)
			}
			if err := testkit.CheckItemInvariants(res.Items, res.File); err != nil {
				t.Fatal(err)
			}
			if len(res.Items) == 0 {
				t.Fatalf("no items parsed")
			}
		})
	}
}

func TestCorpusRejected(t *testing.T) {
	for _, path := range corpusFiles(t, "errors") {
		t.Run(filepath.Base(path), func(t *testing.T) {
			res, err := Tokenize(context.Background(), path, Options{StripTrailingNewline: true, Parse: true})
			var se *diag.SyntaxError
			if !errors.As(err, &se) {
				t.Fatalf("expected syntax error, got %v", err)
			}
			if err := testkit.CheckTokenInvariants(res.Tokens, res.File); err != nil {
				t.Fatalf("partial tokens: %v", err)
			}
		})
	}
}
