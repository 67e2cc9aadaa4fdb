package lexer

import "flint/internal/trace"

// Options tunes a Lexer.
type Options struct {
	MaxTokenLength int          // 0 means no limit
	Tracer         trace.Tracer // nil means trace.Nop
	TraceParent    uint64       // span the lexer's trace events nest under
}

// tokenLimit reports the lexeme length bound, if any.
func (o Options) tokenLimit() (int, bool) {
	return o.MaxTokenLength, o.MaxTokenLength > 0
}
