package token_test

import (
	"testing"

	"flint/internal/source"
	"flint/internal/token"
)

func tok(k token.Kind, text string) token.Token {
	return token.Token{Kind: k, Span: source.Span{Start: 0, End: 0}, Text: text}
}

func TestKindNames(t *testing.T) {
	want := map[token.Kind]string{
		token.Ident:     "Identifier",
		token.Keyword:   "Keyword",
		token.IntLit:    "Integer",
		token.FloatLit:  "Float",
		token.StringLit: "String",
		token.CharLit:   "Character",
		token.Paren:     "Parenthesis",
		token.Symbol:    "Symbol",
		token.EOF:       "EndOfInput",
	}
	for k, name := range want {
		if k.String() != name {
			t.Errorf("%d.String() = %q, want %q", k, k.String(), name)
		}
	}
	if got := token.Kind(200).String(); got != "Unknown" {
		t.Errorf("out of range kind = %q", got)
	}
	if got := token.Ident.Describe(); got != "identifier" {
		t.Errorf("Ident.Describe() = %q", got)
	}
}

func TestIsLiteral(t *testing.T) {
	lits := []token.Kind{token.IntLit, token.FloatLit, token.StringLit, token.CharLit}
	for _, k := range lits {
		if !tok(k, "").IsLiteral() {
			t.Fatalf("%v should be literal", k)
		}
	}
	non := []token.Kind{token.Ident, token.Keyword, token.Symbol, token.Paren, token.EOF}
	for _, k := range non {
		if tok(k, "").IsLiteral() {
			t.Fatalf("%v must NOT be literal", k)
		}
	}
}

func TestIsIdentAndKeyword(t *testing.T) {
	if !tok(token.Ident, "x").IsIdent() {
		t.Fatalf("Ident should be ident")
	}
	if tok(token.Keyword, "fn").IsIdent() {
		t.Fatalf("Keyword must not be ident")
	}
	if !tok(token.Keyword, "fn").IsKeyword() {
		t.Fatalf("Keyword should be keyword")
	}
}

func TestIsOpenParen(t *testing.T) {
	for _, open := range []string{"(", "[", "{"} {
		if !tok(token.Paren, open).IsOpenParen() {
			t.Errorf("%q should open a pair", open)
		}
	}
	for _, closing := range []string{")", "]", "}"} {
		if tok(token.Paren, closing).IsOpenParen() {
			t.Errorf("%q must not open a pair", closing)
		}
	}
	if tok(token.Symbol, "(").IsOpenParen() {
		t.Errorf("only Paren tokens open pairs")
	}
}
