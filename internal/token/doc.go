// Package token defines lexical token kinds for the flint front-end.
// Invariants:
//   - Token.Text is exactly the source text covered by Token.Span.
//   - String and character lexemes keep their quotes and escape text;
//     decoding is left to lexer.Unquote / lexer.UnquoteChar.
//   - Keywords are recognised only by membership in the fixed keyword set;
//     everything else shaped like an identifier stays Ident.
//   - EOF carries an empty span at len(buffer).
package token
