package driver

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"strconv"

	"flint/internal/diag"
	"flint/internal/lexer"
	"flint/internal/parser"
	"flint/internal/source"
	"flint/internal/token"
	"flint/internal/trace"
)

// Result holds everything a run produced. On failure it still carries the
// file (if it loaded) and every token scanned before the error.
type Result struct {
	FileSet *source.FileSet
	File    *source.File
	Tokens  []token.Token
	Items   []parser.Item
}

// Tokenize loads path and scans it. The returned error, if any, is a
// diag.Error.
func Tokenize(ctx context.Context, path string, opts Options) (*Result, error) {
	return run(ctx, path, opts, func(fset *source.FileSet, lo source.LoadOptions) (source.FileID, error) {
		return fset.Load(path, lo)
	})
}

// TokenizeSource is Tokenize over in-memory content.
func TokenizeSource(ctx context.Context, name string, content []byte, opts Options) (*Result, error) {
	return run(ctx, name, opts, func(fset *source.FileSet, lo source.LoadOptions) (source.FileID, error) {
		return fset.LoadVirtual(name, content, lo)
	})
}

type loadFunc func(*source.FileSet, source.LoadOptions) (source.FileID, error)

func run(ctx context.Context, path string, opts Options, load loadFunc) (*Result, error) {
	tracer := trace.FromContext(ctx)
	ctx, root := trace.StartSpan(ctx, trace.ScopeDriver, "tokenize")
	defer root.End(path)

	res := &Result{FileSet: source.NewFileSet()}

	// load
	_, span := trace.StartSpan(ctx, trace.ScopePass, "load")
	began := opts.Observer.start("load")
	file, err := loadFile(res.FileSet, path, opts, load)
	opts.Observer.end("load", began, err)
	if err != nil {
		trace.Error(tracer, trace.ScopePass, "load", err.Error(), span.ID())
		span.End("failed")
		return res, err
	}
	res.File = file
	trace.Point(tracer, trace.ScopeFile, "file",
		fmt.Sprintf("%s bytes=%d lines=%d flags=%s", file.Path, len(file.Content), file.Lines.LineCount(),
			strconv.FormatUint(uint64(file.Flags), 2)), span.ID())
	span.End("")

	// lex
	_, span = trace.StartSpan(ctx, trace.ScopePass, "lex")
	began = opts.Observer.start("lex")
	lx := lexer.New(file, lexer.Options{MaxTokenLength: opts.MaxTokenLength, Tracer: tracer, TraceParent: span.ID()})
	res.Tokens, err = lx.All()
	opts.Observer.end("lex", began, err)
	span.WithExtra("tokens", strconv.Itoa(len(res.Tokens))).End("")
	if err != nil {
		return res, diag.AsError(err)
	}

	if !opts.Parse {
		return res, nil
	}

	// parse
	_, span = trace.StartSpan(ctx, trace.ScopePass, "parse")
	began = opts.Observer.start("parse")
	res.Items, err = parser.Parse(&sliceSource{toks: res.Tokens}, parser.Options{Tracer: tracer, TraceParent: span.ID()})
	opts.Observer.end("parse", began, err)
	span.WithExtra("items", strconv.Itoa(len(res.Items))).End("")
	if err != nil {
		trace.Error(tracer, trace.ScopePass, "parse", err.Error(), span.ID())
		return res, diag.AsError(err)
	}
	return res, nil
}

// loadFile maps load failures onto the error taxonomy: unreadable input
// is the user's problem, undecodable input is fatal.
func loadFile(fset *source.FileSet, path string, opts Options, load loadFunc) (*source.File, error) {
	id, err := load(fset, source.LoadOptions{
		StripTrailingNewline: opts.StripTrailingNewline,
		NormalizeNFC:         opts.NormalizeNFC,
	})
	var pathErr *fs.PathError
	switch {
	case err == nil:
	case errors.Is(err, source.ErrInvalidUTF8):
		return nil, diag.WrapInternal(err, "input is not valid UTF-8")
	case errors.As(err, &pathErr):
		return nil, diag.Cmdlinef("cannot read `%s`: %v", path, pathErr.Err)
	default:
		return nil, diag.WrapInternal(err, "load "+path)
	}
	file := fset.Get(id)
	if file == nil {
		return nil, diag.Internalf("file set lost file %d", id)
	}
	return file, nil
}

// sliceSource replays scanned tokens to the parser; it repeats the final
// token once exhausted.
type sliceSource struct {
	toks []token.Token
	pos  int
}

func (s *sliceSource) Next() (token.Token, error) {
	if len(s.toks) == 0 {
		return token.Token{Kind: token.EOF}, nil
	}
	if s.pos >= len(s.toks) {
		return s.toks[len(s.toks)-1], nil
	}
	tok := s.toks[s.pos]
	s.pos++
	return tok, nil
}
