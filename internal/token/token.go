package token

import (
	"flint/internal/source"
)

// Token represents a single source token with its location.
type Token struct {
	Kind Kind
	Span source.Span
	Text string
}

// IsLiteral reports whether the token is a numeric, string or character literal.
func (t Token) IsLiteral() bool { return t.Kind.IsLiteral() }

// IsKeyword reports whether the token is a language keyword.
func (t Token) IsKeyword() bool { return t.Kind == Keyword }

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident }

// IsOpenParen reports whether the token opens a bracket pair.
func (t Token) IsOpenParen() bool {
	_, ok := ClosingParen(t.Text)
	return t.Kind == Paren && ok
}
