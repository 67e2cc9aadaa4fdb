package lexer

import (
	"flint/internal/token"
)

// scanNumber reads digits with at most one '.'.
// A '.' not followed by a digit is handed back to the cursor, so "5." is
// the integer 5 followed by whatever starts at the dot.
func (lx *Lexer) scanNumber() (token.Token, error) {
	start := lx.cursor.Mark()
	kind := token.IntLit
	trailingDot := false

	for {
		ch := lx.cursor.Current()
		switch {
		case isDigit(ch):
			trailingDot = false
		case ch == '.' && kind == token.IntLit:
			kind = token.FloatLit
			trailingDot = true
		default:
			if trailingDot {
				if err := lx.cursor.Retract('.'); err != nil {
					return token.Token{}, err
				}
				kind = token.IntLit
			}
			return lx.emit(kind, start), nil
		}
		lx.cursor.Advance()
	}
}
