// Package diag defines the error taxonomy shared by every stage of the
// flint front-end.
//
// # Taxonomy
//
// Error is a closed sum type with exactly three variants:
//
//   - *CodeError – an internal invariant was violated. It carries the Origin
//     (file, line, function) of the failing check, captured with
//     runtime.Caller at construction time. Always fatal.
//   - *CmdlineError – the tool was invoked incorrectly. No source span.
//   - *SyntaxError – the user source is malformed. Always carries a Span into
//     the buffer, a stable Code and optionally the offending literal snippet.
//
// The variants are distinguished with a type switch; Tag gives the coarse
// category used as the rendered heading.
//
// # Scope
//
// Package diag does not format excerpts or touch IO. Rendering lives in
// internal/diagfmt. Errors are built at the failure site and handed straight
// to the caller: there is no collection bag and no recovery.
package diag
