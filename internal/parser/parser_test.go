package parser_test

import (
	"errors"
	"testing"

	"flint/internal/diag"
	"flint/internal/lexer"
	"flint/internal/parser"
	"flint/internal/source"
)

func parse(t *testing.T, src string) ([]parser.Item, error) {
	t.Helper()
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("p.fl", []byte(src)))
	return parser.Parse(lexer.New(file, lexer.Options{}), parser.Options{})
}

func syntaxErr(t *testing.T, err error) *diag.SyntaxError {
	t.Helper()
	var se *diag.SyntaxError
	if !errors.As(err, &se) {
		t.Fatalf("expected syntax error, got %v", err)
	}
	return se
}

func TestEmptyInputHasNoItems(t *testing.T) {
	items, err := parse(t, "  \n ")
	if err != nil || len(items) != 0 {
		t.Fatalf("got %v, %v", items, err)
	}
}

func TestItems(t *testing.T) {
	src := "import std;\nconst N = 3;\nfn main() {\n  let x = (1 + 2) * N;\n}\nstruct P { x: int }\npub fn f() {}\ntype T = int"
	items, err := parse(t, src)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	want := []string{"import", "const", "fn", "struct", "pub", "type"}
	if len(items) != len(want) {
		t.Fatalf("got %d items", len(items))
	}
	for i, kw := range want {
		if items[i].Keyword != kw {
			t.Fatalf("item %d keyword %q, want %q", i, items[i].Keyword, kw)
		}
	}
	fn := items[2]
	if src[fn.Span.Start:fn.Span.End] != "fn main() {\n  let x = (1 + 2) * N;\n}" {
		t.Fatalf("fn item span covers %q", src[fn.Span.Start:fn.Span.End])
	}
}

func TestBraceFollowedBySemicolon(t *testing.T) {
	items, err := parse(t, "let s = { 1 };\nlet t = {2} + 3;")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("got %d items", len(items))
	}
	if last := items[0].Tokens[len(items[0].Tokens)-1]; last.Text != ";" {
		t.Fatalf("';' after '}' not absorbed, last token %q", last.Text)
	}
	if n := len(items[1].Tokens); n != 9 {
		t.Fatalf("second item has %d tokens", n)
	}
}

func TestExpectedItem(t *testing.T) {
	tests := []struct {
		src   string
		msg   string
		start uint32
	}{
		{"main", "expected item, not identifier", 0},
		{"fn f() {}\n42", "expected item, not integer", 10},
		{"if x {}", "expected item, not keyword", 0},
		{"let a = 1; ;", "expected item, not symbol", 11},
	}
	for _, tt := range tests {
		items, err := parse(t, tt.src)
		se := syntaxErr(t, err)
		if se.Code != diag.SynExpectItem || se.Msg != tt.msg || se.Span.Start != tt.start {
			t.Fatalf("%q: got %v", tt.src, se)
		}
		if tt.start > 0 && len(items) != 1 {
			t.Fatalf("%q: completed items should be kept, got %d", tt.src, len(items))
		}
	}
}

func TestBracketErrors(t *testing.T) {
	tests := []struct {
		src        string
		code       diag.Code
		start, end uint32
	}{
		{"fn f() {", diag.SynUnclosedDelimiter, 7, 8},
		{"fn f() { (", diag.SynUnclosedDelimiter, 9, 10},
		{"let x = 1);", diag.SynUnexpectedClosing, 9, 10},
		{"fn f( ]", diag.SynMismatchedClosing, 4, 7},
	}
	for _, tt := range tests {
		_, err := parse(t, tt.src)
		se := syntaxErr(t, err)
		if se.Code != tt.code || se.Span.Start != tt.start || se.Span.End != tt.end {
			t.Fatalf("%q: got %v", tt.src, se)
		}
	}
}

func TestLexErrorPassesThrough(t *testing.T) {
	_, err := parse(t, "fn f() { \"open }")
	if se := syntaxErr(t, err); se.Code != diag.LexUnterminatedString {
		t.Fatalf("got %v", se)
	}
}
