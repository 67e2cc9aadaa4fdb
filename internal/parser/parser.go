// Package parser is the grammar layer over the token stream.
//
// It does not build an AST. It groups the stream into items, each a run of
// tokens led by an item keyword, and checks that brackets balance. The
// first problem ends the parse.
package parser

import (
	"fmt"

	"flint/internal/diag"
	"flint/internal/source"
	"flint/internal/token"
	"flint/internal/trace"
)

// TokenSource yields tokens until EOF; *lexer.Lexer satisfies it.
type TokenSource interface {
	Next() (token.Token, error)
}

// Item is a top-level declaration: its leading keyword and every token up
// to and including its terminating ';' or '}'.
type Item struct {
	Keyword string
	Tokens  []token.Token
	Span    source.Span
}

// Options tunes a parse.
type Options struct {
	Tracer      trace.Tracer
	TraceParent uint64 // span the item events nest under
}

var itemKeywords = map[string]struct{}{
	"fn": {}, "let": {}, "const": {}, "struct": {},
	"enum": {}, "import": {}, "pub": {}, "type": {},
}

// IsItemKeyword reports whether kw may start a top-level item.
func IsItemKeyword(kw string) bool {
	_, ok := itemKeywords[kw]
	return ok
}

// Parser: состояние парсера на один файл
type Parser struct {
	src    TokenSource
	look   *token.Token // 1 элементный буфер
	open   []token.Token
	tracer trace.Tracer
	parent uint64
}

// New creates a parser reading from src.
func New(src TokenSource, opts Options) *Parser {
	t := opts.Tracer
	if t == nil {
		t = trace.Nop
	}
	return &Parser{src: src, tracer: t, parent: opts.TraceParent}
}

// Parse reads src to EOF and returns its items.
func Parse(src TokenSource, opts Options) ([]Item, error) {
	return New(src, opts).Items()
}

func (p *Parser) next() (token.Token, error) {
	if p.look != nil {
		tok := *p.look
		p.look = nil
		return tok, nil
	}
	return p.src.Next()
}

func (p *Parser) peek() (token.Token, error) {
	tok, err := p.next()
	if err != nil {
		return tok, err
	}
	p.look = &tok
	return tok, nil
}

// Items parses every item. Items completed before an error are returned
// with it.
func (p *Parser) Items() ([]Item, error) {
	var items []Item
	for {
		tok, err := p.next()
		if err != nil {
			return items, err
		}
		if tok.Kind == token.EOF {
			return items, nil
		}
		if tok.Kind != token.Keyword || !IsItemKeyword(tok.Text) {
			return items, diag.Syntax(diag.SynExpectItem, tok.Span,
				fmt.Sprintf("expected item, not %s", tok.Kind.Describe()))
		}
		item, err := p.item(tok)
		if err != nil {
			return items, err
		}
		trace.Point(p.tracer, trace.ScopeFile, "item", fmt.Sprintf("%s %s", item.Keyword, item.Span), p.parent)
		items = append(items, item)
	}
}
