package lexer

import (
	"flint/internal/diag"
	"flint/internal/token"
)

// scanChar reads a single-quoted literal holding exactly one character or
// one escape sequence.
func (lx *Lexer) scanChar() (token.Token, error) {
	start := lx.cursor.Mark()
	lx.cursor.Advance() // '\''

	switch ch := lx.cursor.Current(); {
	case lx.cursor.EOF():
		return token.Token{}, lx.unterminatedChar(start)
	case ch == '\'':
		return token.Token{}, diag.Syntax(diag.LexEmptyChar, lx.span(uint32(start), uint32(start)+2),
			"empty character literal")
	case ch == ' ' || ch == '\t' || ch == '\n':
		off := lx.cursor.Offset()
		return token.Token{}, diag.Syntax(diag.LexCharWhitespace, lx.span(off, off+1),
			"character literal may not contain raw whitespace; use an escape")
	case ch == '\\':
		if err := lx.scanEscape(true); err != nil {
			return token.Token{}, err
		}
	default:
		lx.cursor.Advance()
	}

	if !lx.cursor.Eat('\'') {
		return token.Token{}, lx.unterminatedChar(start)
	}
	return lx.emit(token.CharLit, start), nil
}

// unterminatedChar spans from the opening quote through the offending
// character, if there is one on the line.
func (lx *Lexer) unterminatedChar(start Mark) error {
	end := lx.cursor.Offset()
	if !lx.cursor.EOF() && lx.cursor.Current() != '\n' {
		end += lx.cursor.Width()
	}
	return diag.Syntax(diag.LexUnterminatedChar, lx.span(uint32(start), end), "expected trailing quote")
}
