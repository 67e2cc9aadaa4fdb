package lexer

import (
	"fmt"

	"flint/internal/diag"
	"flint/internal/source"
	"flint/internal/token"
	"flint/internal/trace"
)

// Lexer turns a file into tokens, one Next call at a time.
// It stops at the first error and keeps returning that error afterwards.
type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options
	tracer trace.Tracer
	eof    *token.Token // cached end-of-input token
	err    error        // first error; the lexer is poisoned once set
}

// New creates a lexer over file. A file too large to address with 32-bit
// offsets yields a lexer whose first Next returns a Code error.
func New(file *source.File, opts Options) *Lexer {
	lx := &Lexer{file: file, opts: opts, tracer: opts.Tracer}
	if lx.tracer == nil {
		lx.tracer = trace.Nop
	}
	cur, err := NewCursor(file)
	if err != nil {
		lx.err = err
	}
	lx.cursor = cur
	return lx
}

// Next returns the next token or the first error encountered.
// After end of input it returns the same EOF token on every call.
func (lx *Lexer) Next() (token.Token, error) {
	if lx.err != nil {
		return token.Token{}, lx.err
	}
	if lx.eof != nil {
		return *lx.eof, nil
	}

	lx.skipWhitespace()

	if lx.cursor.EOF() {
		tok := token.Token{Kind: token.EOF, Span: lx.emptySpan()}
		lx.eof = &tok
		return tok, nil
	}

	tok, err := lx.scan()
	if limit, ok := lx.opts.tokenLimit(); ok && err == nil && len(tok.Text) > limit {
		err = diag.Syntax(diag.LexTokenTooLong, tok.Span,
			fmt.Sprintf("token too long (%d bytes, limit %d)", len(tok.Text), limit))
	}
	if err != nil {
		lx.err = err
		trace.Error(lx.tracer, trace.ScopeToken, "lex-error", err.Error(), lx.opts.TraceParent)
		return token.Token{}, err
	}

	if lx.tracer.Level() >= trace.LevelDebug {
		trace.Point(lx.tracer, trace.ScopeToken, "token", fmt.Sprintf("%s %q %s", tok.Kind, tok.Text, tok.Span), lx.opts.TraceParent)
	}
	return tok, nil
}

// All drains the lexer. On error it returns the tokens produced so far.
// The trailing EOF token is included on success.
func (lx *Lexer) All() ([]token.Token, error) {
	var out []token.Token
	for {
		tok, err := lx.Next()
		if err != nil {
			return out, err
		}
		out = append(out, tok)
		if tok.Kind == token.EOF {
			return out, nil
		}
	}
}

// scan dispatches on the current character.
func (lx *Lexer) scan() (token.Token, error) {
	ch := lx.cursor.Current()
	switch {
	case isIdentStart(ch):
		return lx.scanIdentOrKeyword(), nil
	case isDigit(ch):
		return lx.scanNumber()
	case ch == '"':
		return lx.scanString()
	case ch == '\'':
		return lx.scanChar()
	case token.IsParen(ch):
		start := lx.cursor.Mark()
		lx.cursor.Advance()
		return lx.emit(token.Paren, start), nil
	default:
		return lx.scanSymbol()
	}
}

func (lx *Lexer) emit(kind token.Kind, start Mark) token.Token {
	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: kind, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
}

func (lx *Lexer) emptySpan() source.Span {
	off := lx.cursor.Offset()
	return source.Span{File: lx.file.ID, Start: off, End: off}
}

func (lx *Lexer) span(start, end uint32) source.Span {
	return source.Span{File: lx.file.ID, Start: start, End: end}
}
