package lexer

import (
	"flint/internal/token"
)

// scanIdentOrKeyword сканирует идентификатор и сверяет его с набором ключевых слов.
// Ключевые слова регистрозависимые. Token.Text: ровно исходный срез.
func (lx *Lexer) scanIdentOrKeyword() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Advance() // первый символ уже проверен в scan
	for isIdentContinue(lx.cursor.Current()) {
		lx.cursor.Advance()
	}
	tok := lx.emit(token.Ident, start)
	if token.IsKeyword(tok.Text) {
		tok.Kind = token.Keyword
	}
	return tok
}
