package parser

import (
	"fmt"

	"flint/internal/diag"
	"flint/internal/token"
)

// item collects tokens after the leading keyword until the item ends: a ';'
// at bracket depth 0, or a '}' returning to depth 0 that is not followed by
// an operator continuing the expression.
func (p *Parser) item(lead token.Token) (Item, error) {
	it := Item{Keyword: lead.Text, Tokens: []token.Token{lead}, Span: lead.Span}
	for {
		tok, err := p.next()
		if err != nil {
			return Item{}, err
		}
		if tok.Kind == token.EOF {
			if len(p.open) > 0 {
				return Item{}, p.unclosed()
			}
			// an item may run to end of input without ';'
			p.look = &tok
			return it, nil
		}
		it.Tokens = append(it.Tokens, tok)
		it.Span = it.Span.Cover(tok.Span)

		switch {
		case tok.Kind == token.Paren:
			closedBrace, err := p.bracket(tok)
			if err != nil {
				return Item{}, err
			}
			if closedBrace && len(p.open) == 0 {
				done, err := p.endAfterBrace(&it)
				if err != nil || done {
					return it, err
				}
			}
		case tok.Kind == token.Symbol && tok.Text == ";" && len(p.open) == 0:
			return it, nil
		}
	}
}

// bracket updates the open-bracket stack; closedBrace reports a '}' that
// matched.
func (p *Parser) bracket(tok token.Token) (closedBrace bool, err error) {
	if tok.IsOpenParen() {
		p.open = append(p.open, tok)
		return false, nil
	}
	if len(p.open) == 0 {
		return false, diag.Syntax(diag.SynUnexpectedClosing, tok.Span,
			fmt.Sprintf("unexpected closing delimiter: `%s`", tok.Text))
	}
	top := p.open[len(p.open)-1]
	want, _ := token.ClosingParen(top.Text)
	if tok.Text != want {
		return false, diag.Syntax(diag.SynMismatchedClosing, top.Span.Cover(tok.Span),
			fmt.Sprintf("mismatched closing delimiter: `%s` does not close `%s`", tok.Text, top.Text))
	}
	p.open = p.open[:len(p.open)-1]
	return tok.Text == "}", nil
}

// endAfterBrace decides whether a top-level '}' ends the item. A following
// ';' is absorbed into the item.
func (p *Parser) endAfterBrace(it *Item) (bool, error) {
	next, err := p.peek()
	if err != nil {
		return false, err
	}
	if next.Kind != token.Symbol {
		return true, nil
	}
	if next.Text == ";" {
		p.look = nil
		it.Tokens = append(it.Tokens, next)
		it.Span = it.Span.Cover(next.Span)
		return true, nil
	}
	return false, nil
}

func (p *Parser) unclosed() error {
	top := p.open[len(p.open)-1]
	want, _ := token.ClosingParen(top.Text)
	return diag.Syntax(diag.SynUnclosedDelimiter, top.Span,
		fmt.Sprintf("unclosed delimiter: `%s` is never closed by `%s`", top.Text, want))
}
