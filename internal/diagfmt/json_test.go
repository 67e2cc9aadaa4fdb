package diagfmt

import (
	"bytes"
	"encoding/json"
	"testing"

	"flint/internal/diag"
	"flint/internal/lexer"
	"flint/internal/source"
	"flint/internal/token"
)

func lexAll(t *testing.T, file *source.File) []token.Token {
	t.Helper()
	toks, err := lexer.New(file, lexer.Options{}).All()
	if err != nil {
		t.Fatalf("lex: %v", err)
	}
	return toks
}

func TestDiagnosticJSONSyntax(t *testing.T) {
	file := virtualFile(t, "j.fl", "let a\n  = \"x")
	err := diag.Syntax(diag.LexUnterminatedString, source.Span{File: file.ID, Start: 10, End: 12}, "unterminated").
		WithSnippet(`"x`)

	var buf bytes.Buffer
	if werr := FormatJSON(&buf, err, file, JSONOpts{IncludePositions: true}); werr != nil {
		t.Fatalf("FormatJSON: %v", werr)
	}
	var got DiagnosticJSON
	if uerr := json.Unmarshal(buf.Bytes(), &got); uerr != nil {
		t.Fatalf("invalid json: %v\n%s", uerr, buf.String())
	}
	if got.Kind != "Syntax Error" || got.Code != "LEX1002" || got.Snippet != `"x` {
		t.Fatalf("unexpected diagnostic %+v", got)
	}
	if got.Location == nil || got.Location.StartLine != 2 || got.Location.StartCol != 5 || got.Location.EndCol != 7 {
		t.Fatalf("unexpected location %+v", got.Location)
	}
	if got.Origin != nil {
		t.Fatalf("syntax errors carry no origin")
	}
}

func TestDiagnosticJSONCode(t *testing.T) {
	got := BuildDiagnosticJSON(diag.Internal("boom"), nil, JSONOpts{})
	if got.Kind != "Code Error" || got.Origin == nil || got.Origin.Line == 0 || got.Location != nil {
		t.Fatalf("unexpected diagnostic %+v", got)
	}
}

func TestTokensJSON(t *testing.T) {
	file := virtualFile(t, "t.fl", "let s = \"a\\tb\"; 'q' 42 2.5 true")
	var buf bytes.Buffer
	if err := FormatTokensJSON(&buf, lexAll(t, file), file, JSONOpts{IncludePositions: true}); err != nil {
		t.Fatalf("FormatTokensJSON: %v", err)
	}
	var out []TokenOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(out) != 10 {
		t.Fatalf("expected 10 tokens including EOF, got %d", len(out))
	}
	checks := map[int]any{
		3: "a\tb",
		5: "q",
		6: float64(42),
		7: 2.5,
		8: true,
	}
	for i, want := range checks {
		if out[i].Value != want {
			t.Errorf("token %d (%s) value = %#v, want %#v", i, out[i].Text, out[i].Value, want)
		}
	}
	if out[9].Kind != "EndOfInput" || out[9].Location.StartByte != 31 {
		t.Fatalf("bad EOF entry %+v", out[9])
	}
}

func TestTokensPretty(t *testing.T) {
	file := virtualFile(t, "p.fl", "fn f()\n{ }")
	var buf bytes.Buffer
	if err := FormatTokensPretty(&buf, lexAll(t, file), file, TokenOpts{}); err != nil {
		t.Fatalf("FormatTokensPretty: %v", err)
	}
	want := "" +
		"  1: Keyword         \"fn\" at 1:1-1:3\n" +
		"  2: Identifier      \"f\" at 1:4-1:5\n" +
		"  3: Parenthesis     \"(\" at 1:5-1:6\n" +
		"  4: Parenthesis     \")\" at 1:6-1:7\n" +
		"  5: Parenthesis     \"{\" at 2:1-2:2\n" +
		"  6: Parenthesis     \"}\" at 2:3-2:4\n" +
		"  7: EndOfInput      at 2:4-2:4\n"
	if buf.String() != want {
		t.Fatalf("got:\n%s\nwant:\n%s", buf.String(), want)
	}
}

func TestTokensMsgpack(t *testing.T) {
	file := virtualFile(t, "m.fl", "x <<= 1")
	toks := lexAll(t, file)
	var buf bytes.Buffer
	if err := FormatTokensMsgpack(&buf, toks, file); err != nil {
		t.Fatalf("FormatTokensMsgpack: %v", err)
	}
	dump, err := ReadTokenDump(&buf)
	if err != nil {
		t.Fatalf("ReadTokenDump: %v", err)
	}
	if dump.File != "m.fl" || len(dump.Hash) != 32 || len(dump.Tokens) != len(toks) {
		t.Fatalf("unexpected dump %+v", dump)
	}
	if r := dump.Tokens[1]; token.Kind(r.Kind) != token.Symbol || r.Text != "<<=" || r.Start != 2 || r.End != 5 {
		t.Fatalf("unexpected record %+v", r)
	}
}
