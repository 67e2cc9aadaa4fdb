package lexer

// skipWhitespace consumes spaces, tabs and newlines. Newlines are already
// recorded by the file's line index, so nothing else happens here.
func (lx *Lexer) skipWhitespace() {
	for {
		switch lx.cursor.Current() {
		case ' ', '\t', '\n':
			lx.cursor.Advance()
		default:
			return
		}
	}
}
