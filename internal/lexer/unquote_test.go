package lexer_test

import (
	"errors"
	"testing"

	"flint/internal/lexer"
)

func TestUnquote(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{`""`, ""},
		{`"plain"`, "plain"},
		{`"a\nb"`, "a\nb"},
		{`"tab\there"`, "tab\there"},
		{`"q\"q"`, `q"q`},
		{`"back\\slash"`, `back\slash`},
		{`"nul\0"`, "nul\x00"},
		{`"\x41\x7e"`, "A~"},
		{`"漢\r"`, "漢\r"},
	}
	for _, tt := range tests {
		got, err := lexer.Unquote(tt.in)
		if err != nil {
			t.Fatalf("Unquote(%s): %v", tt.in, err)
		}
		if got != tt.want {
			t.Fatalf("Unquote(%s) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestUnquoteRejects(t *testing.T) {
	for _, in := range []string{``, `"`, `abc`, `"\q"`, `"\x8"`, `"\xff"`, `"\'"`, `"trailing\"`} {
		if _, err := lexer.Unquote(in); !errors.Is(err, lexer.ErrBadLiteral) {
			t.Fatalf("Unquote(%s) = %v, want ErrBadLiteral", in, err)
		}
	}
}

func TestUnquoteChar(t *testing.T) {
	tests := []struct {
		in   string
		want rune
	}{
		{`'x'`, 'x'},
		{`'\''`, '\''},
		{`'\\'`, '\\'},
		{`'\x41'`, 'A'},
		{`'漢'`, '漢'},
	}
	for _, tt := range tests {
		got, err := lexer.UnquoteChar(tt.in)
		if err != nil || got != tt.want {
			t.Fatalf("UnquoteChar(%s) = %q, %v; want %q", tt.in, got, err, tt.want)
		}
	}
	for _, in := range []string{`''`, `'ab'`, `x`, `'\q'`} {
		if _, err := lexer.UnquoteChar(in); err == nil {
			t.Fatalf("UnquoteChar(%s) should fail", in)
		}
	}
}

// Every literal the lexer accepts can be decoded.
func TestLexedLiteralsUnquote(t *testing.T) {
	toks, err := makeTestLexer(`"a\x41\t" '\'' "" '\0'`).All()
	if err != nil {
		t.Fatalf("lex: %v", err)
	}
	for _, tok := range toks {
		switch tok.Text[0:min(1, len(tok.Text))] {
		case `"`:
			if _, err := lexer.Unquote(tok.Text); err != nil {
				t.Fatalf("Unquote(%s): %v", tok.Text, err)
			}
		case `'`:
			if _, err := lexer.UnquoteChar(tok.Text); err != nil {
				t.Fatalf("UnquoteChar(%s): %v", tok.Text, err)
			}
		}
	}
}
