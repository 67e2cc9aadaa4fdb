package lexer

import (
	"strings"

	"flint/internal/diag"
	"flint/internal/token"
)

// scanSymbol matches the longest entry of the symbol table, trying
// token.MaxSymbolLen characters first and shrinking to one.
func (lx *Lexer) scanSymbol() (token.Token, error) {
	var buf [token.MaxSymbolLen]rune
	n := 0
	for n < token.MaxSymbolLen {
		r, ok := lx.cursor.PeekAt(n)
		if !ok {
			break
		}
		buf[n] = r
		n++
	}

	var sb strings.Builder
	for ; n > 0; n-- {
		sb.Reset()
		for _, r := range buf[:n] {
			sb.WriteRune(r)
		}
		if token.IsSymbol(sb.String()) {
			start := lx.cursor.Mark()
			for i := 0; i < n; i++ {
				lx.cursor.Advance()
			}
			return lx.emit(token.Symbol, start), nil
		}
	}

	off := lx.cursor.Offset()
	sp := lx.span(off, off+lx.cursor.Width())
	return token.Token{}, diag.Syntax(diag.LexUnknownChar, sp, "invalid character").
		WithSnippet(string(lx.file.Content[sp.Start:sp.End]))
}
