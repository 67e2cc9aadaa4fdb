package lexer

import (
	"fmt"

	"flint/internal/diag"
	"flint/internal/token"
)

// scanString reads a double-quoted literal. The token text keeps the quotes
// and the escape text; escapes are only validated here.
func (lx *Lexer) scanString() (token.Token, error) {
	start := lx.cursor.Mark()
	lx.cursor.Advance() // '"'

	for {
		switch ch := lx.cursor.Current(); {
		case lx.cursor.EOF() || ch == '\n':
			return token.Token{}, diag.Syntax(diag.LexUnterminatedString, lx.cursor.SpanFrom(start),
				"expected trailing `\"` to terminate string literal")
		case ch == '"':
			lx.cursor.Advance()
			return lx.emit(token.StringLit, start), nil
		case ch == '\\':
			if err := lx.scanEscape(false); err != nil {
				return token.Token{}, err
			}
		default:
			lx.cursor.Advance()
		}
	}
}

// scanEscape validates one escape sequence starting at the backslash under
// the cursor. apostrophe admits \' (character literals only).
func (lx *Lexer) scanEscape(apostrophe bool) error {
	esc := lx.cursor.Offset()
	lx.cursor.Advance() // '\\'

	ch := lx.cursor.Current()
	switch {
	case ch == '\\', ch == '"', ch == '0', ch == 't', ch == 'n', ch == 'r':
		lx.cursor.Advance()
		return nil
	case ch == '\'' && apostrophe:
		lx.cursor.Advance()
		return nil
	case ch == 'x':
		lx.cursor.Advance()
		var v rune
		for i := 0; i < 2; i++ {
			d := lx.cursor.Current()
			if !isHex(d) {
				return diag.Syntax(diag.LexBadHexEscape, lx.span(esc, lx.cursor.Offset()),
					"malformed hex escape: expected two hex digits after `\\x`")
			}
			v = v<<4 | hexVal(d)
			lx.cursor.Advance()
		}
		if v > 0x7f {
			sp := lx.span(esc, lx.cursor.Offset())
			return diag.Syntax(diag.LexBadHexEscape, sp, "hex escape out of range: must be at most `\\x7F`").
				WithSnippet(string(lx.file.Content[sp.Start:sp.End]))
		}
		return nil
	case lx.cursor.EOF() || ch == '\n':
		// the enclosing literal reports the missing terminator
		return nil
	default:
		end := lx.cursor.Offset() + lx.cursor.Width()
		sp := lx.span(esc, end)
		return diag.Syntax(diag.LexUnknownEscape, sp, fmt.Sprintf("unknown character escape: `%c`", ch)).
			WithSnippet(string(lx.file.Content[sp.Start:sp.End]))
	}
}
