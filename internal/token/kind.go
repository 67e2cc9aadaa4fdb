package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid is the zero Kind; the lexer never emits it.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF
	// Ident represents an identifier token.
	Ident
	// Keyword represents a member of the fixed keyword set.
	Keyword
	// IntLit represents an integer literal.
	IntLit
	// FloatLit represents a float literal.
	FloatLit
	// StringLit represents a double-quoted string literal.
	StringLit
	// CharLit represents a single-quoted character literal.
	CharLit
	// Paren represents one of ( ) [ ] { }.
	Paren
	// Symbol represents an operator or punctuation from the symbol table.
	Symbol
)

var kindNames = [...]string{
	Invalid:   "Invalid",
	EOF:       "EndOfInput",
	Ident:     "Identifier",
	Keyword:   "Keyword",
	IntLit:    "Integer",
	FloatLit:  "Float",
	StringLit: "String",
	CharLit:   "Character",
	Paren:     "Parenthesis",
	Symbol:    "Symbol",
}

var kindDescriptions = [...]string{
	Invalid:   "invalid token",
	EOF:       "end of input",
	Ident:     "identifier",
	Keyword:   "keyword",
	IntLit:    "integer",
	FloatLit:  "float",
	StringLit: "string",
	CharLit:   "character",
	Paren:     "parenthesis",
	Symbol:    "symbol",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Unknown"
}

// Describe returns the lower-case phrase used in diagnostics ("identifier").
func (k Kind) Describe() string {
	if int(k) < len(kindDescriptions) {
		return kindDescriptions[k]
	}
	return "unknown token"
}

// IsEOF reports whether k is EOF.
func (k Kind) IsEOF() bool { return k == EOF }

// IsLiteral reports whether k is a numeric, string or character literal kind.
func (k Kind) IsLiteral() bool {
	switch k {
	case IntLit, FloatLit, StringLit, CharLit:
		return true
	default:
		return false
	}
}
