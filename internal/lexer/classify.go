package lexer

func isASCIILetter(r rune) bool {
	return (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z')
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

func isHex(r rune) bool {
	return isDigit(r) || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

// isIdentStart: ASCII letter, '_' or '.'.
func isIdentStart(r rune) bool {
	return isASCIILetter(r) || r == '_' || r == '.'
}

func isIdentContinue(r rune) bool {
	return isASCIILetter(r) || isDigit(r) || r == '_'
}

func hexVal(r rune) rune {
	switch {
	case r >= '0' && r <= '9':
		return r - '0'
	case r >= 'a' && r <= 'f':
		return r - 'a' + 10
	default:
		return r - 'A' + 10
	}
}
