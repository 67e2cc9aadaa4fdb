package token

// MaxSymbolLen is the lookahead, in characters, needed to match any symbol.
const MaxSymbolLen = 3

// symbols holds every operator and punctuation lexeme. '.' never starts a
// symbol because it starts identifiers.
var symbols = map[string]struct{}{
	// 3
	"<<=": {}, ">>=": {}, "**=": {},
	// 2
	"==": {}, "!=": {}, "<=": {}, ">=": {},
	"&&": {}, "||": {}, "<<": {}, ">>": {},
	"->": {}, "=>": {}, "::": {}, "**": {}, "??": {},
	"+=": {}, "-=": {}, "*=": {}, "/=": {}, "%=": {},
	"&=": {}, "|=": {}, "^=": {},
	// 1
	"+": {}, "-": {}, "*": {}, "/": {}, "%": {},
	"=": {}, "!": {}, "<": {}, ">": {},
	"&": {}, "|": {}, "^": {}, "~": {},
	"?": {}, ":": {}, ";": {}, ",": {},
	"@": {}, "#": {}, "$": {},
}

// IsSymbol reports whether s is exactly one entry of the symbol table.
func IsSymbol(s string) bool {
	_, ok := symbols[s]
	return ok
}

// IsParen reports whether r is one of ( ) [ ] { }.
func IsParen(r rune) bool {
	switch r {
	case '(', ')', '[', ']', '{', '}':
		return true
	default:
		return false
	}
}

// ClosingParen returns the closing counterpart of an opening bracket.
func ClosingParen(open string) (string, bool) {
	switch open {
	case "(":
		return ")", true
	case "[":
		return "]", true
	case "{":
		return "}", true
	default:
		return "", false
	}
}
