package token

var keywords = map[string]struct{}{
	"fn":       {},
	"let":      {},
	"mut":      {},
	"const":    {},
	"if":       {},
	"else":     {},
	"while":    {},
	"for":      {},
	"in":       {},
	"return":   {},
	"break":    {},
	"continue": {},
	"struct":   {},
	"enum":     {},
	"match":    {},
	"import":   {},
	"pub":      {},
	"type":     {},
	"true":     {},
	"false":    {},
}

// IsKeyword reports whether ident is a member of the keyword set.
// Ключевые слова регистрозависимые: только lowercase версии распознаются.
func IsKeyword(ident string) bool {
	_, ok := keywords[ident]
	return ok
}

// Keywords returns the keyword set in no particular order.
func Keywords() []string {
	out := make([]string, 0, len(keywords))
	for kw := range keywords {
		out = append(out, kw)
	}
	return out
}
