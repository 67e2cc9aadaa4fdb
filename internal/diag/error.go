package diag

import (
	"errors"
	"fmt"
	"path/filepath"
	"runtime"
	"strings"

	"flint/internal/source"
)

// Tag is the coarse category of an Error.
type Tag uint8

const (
	TagCode Tag = iota + 1
	TagCmdline
	TagSyntax
)

func (t Tag) String() string {
	switch t {
	case TagCode:
		return "Code Error"
	case TagCmdline:
		return "Command Line Error"
	case TagSyntax:
		return "Syntax Error"
	}
	return "Error"
}

// Error is implemented only by *CodeError, *CmdlineError and *SyntaxError.
type Error interface {
	error
	Tag() Tag
	// Message returns the bare message without the tag heading.
	Message() string
	sealed()
}

// Origin identifies the internal check that produced a CodeError.
type Origin struct {
	File string
	Line int
	Func string
}

func (o Origin) String() string {
	if o.File == "" {
		return "<unknown>"
	}
	return fmt.Sprintf("%s:%d (%s)", o.File, o.Line, o.Func)
}

// CodeError reports a bug in flint itself.
type CodeError struct {
	Msg    string
	Origin Origin
	cause  error
}

// CmdlineError reports a bad invocation.
type CmdlineError struct {
	Msg string
}

// SyntaxError reports malformed user source.
type SyntaxError struct {
	Code    Code
	Msg     string
	Span    source.Span
	Snippet string // offending literal text, may be empty
}

func (*CodeError) sealed()    {}
func (*CmdlineError) sealed() {}
func (*SyntaxError) sealed()  {}

func (e *CodeError) Tag() Tag    { return TagCode }
func (e *CmdlineError) Tag() Tag { return TagCmdline }
func (e *SyntaxError) Tag() Tag  { return TagSyntax }

func (e *CodeError) Message() string    { return e.Msg }
func (e *CmdlineError) Message() string { return e.Msg }
func (e *SyntaxError) Message() string  { return e.Msg }

func (e *CodeError) Error() string {
	return fmt.Sprintf("%s: %s (at %s)", TagCode, e.Msg, e.Origin)
}

func (e *CodeError) Unwrap() error { return e.cause }

func (e *CmdlineError) Error() string {
	return fmt.Sprintf("%s: %s", TagCmdline, e.Msg)
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s: %s [%s] at %d-%d", TagSyntax, e.Msg, e.Code.ID(), e.Span.Start, e.Span.End)
}

// Internal builds a CodeError whose Origin is the caller of Internal.
func Internal(msg string) *CodeError {
	return &CodeError{Msg: msg, Origin: callerOrigin(1)}
}

// Internalf is Internal with fmt formatting.
func Internalf(format string, args ...any) *CodeError {
	return &CodeError{Msg: fmt.Sprintf(format, args...), Origin: callerOrigin(1)}
}

// WrapInternal turns an arbitrary error into a CodeError attributed to the
// caller. An err that already is a CodeError is returned unchanged.
func WrapInternal(err error, context string) *CodeError {
	var ce *CodeError
	if errors.As(err, &ce) {
		return ce
	}
	msg := err.Error()
	if context != "" {
		msg = context + ": " + msg
	}
	return &CodeError{Msg: msg, Origin: callerOrigin(1), cause: err}
}

// Cmdline builds a command-line error.
func Cmdline(msg string) *CmdlineError {
	return &CmdlineError{Msg: msg}
}

// Cmdlinef is Cmdline with fmt formatting.
func Cmdlinef(format string, args ...any) *CmdlineError {
	return &CmdlineError{Msg: fmt.Sprintf(format, args...)}
}

// Syntax builds a syntax error over span.
func Syntax(code Code, span source.Span, msg string) *SyntaxError {
	return &SyntaxError{Code: code, Msg: msg, Span: span}
}

// WithSnippet attaches the offending literal text.
func (e *SyntaxError) WithSnippet(s string) *SyntaxError {
	e.Snippet = s
	return e
}

// AsError extracts the taxonomy variant from err. Errors outside the
// taxonomy become CodeErrors attributed to the caller, since every expected
// failure is supposed to be classified where it happens.
func AsError(err error) Error {
	if err == nil {
		return nil
	}
	var (
		se *SyntaxError
		ce *CmdlineError
		ie *CodeError
	)
	switch {
	case errors.As(err, &se):
		return se
	case errors.As(err, &ce):
		return ce
	case errors.As(err, &ie):
		return ie
	}
	return &CodeError{Msg: err.Error(), Origin: callerOrigin(1), cause: err}
}

func callerOrigin(skip int) Origin {
	pc, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return Origin{}
	}
	fn := "?"
	if f := runtime.FuncForPC(pc); f != nil {
		fn = f.Name()
	}
	return Origin{File: shortPath(file), Line: line, Func: fn}
}

// shortPath keeps the package directory and file name ("lexer/cursor.go").
func shortPath(file string) string {
	file = filepath.ToSlash(file)
	if i := strings.LastIndex(file, "/"); i >= 0 {
		if j := strings.LastIndex(file[:i], "/"); j >= 0 {
			return file[j+1:]
		}
	}
	return file
}
