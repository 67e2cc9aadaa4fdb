package lexer

import (
	"errors"
	"strings"
	"unicode/utf8"
)

// ErrBadLiteral reports a lexeme that is not a well-formed string or
// character literal. Lexemes produced by the Lexer never trigger it.
var ErrBadLiteral = errors.New("malformed literal")

// Unquote decodes the text of a StringLit token into its value.
func Unquote(lexeme string) (string, error) {
	if len(lexeme) < 2 || lexeme[0] != '"' || lexeme[len(lexeme)-1] != '"' {
		return "", ErrBadLiteral
	}
	body := lexeme[1 : len(lexeme)-1]
	if !strings.ContainsRune(body, '\\') {
		return body, nil
	}
	var sb strings.Builder
	sb.Grow(len(body))
	for body != "" {
		r, rest, err := decodeOne(body, false)
		if err != nil {
			return "", err
		}
		sb.WriteRune(r)
		body = rest
	}
	return sb.String(), nil
}

// UnquoteChar decodes the text of a CharLit token into its rune.
func UnquoteChar(lexeme string) (rune, error) {
	if len(lexeme) < 3 || lexeme[0] != '\'' || lexeme[len(lexeme)-1] != '\'' {
		return 0, ErrBadLiteral
	}
	r, rest, err := decodeOne(lexeme[1:len(lexeme)-1], true)
	if err != nil {
		return 0, err
	}
	if rest != "" {
		return 0, ErrBadLiteral
	}
	return r, nil
}

// decodeOne decodes the first character or escape of s.
func decodeOne(s string, apostrophe bool) (r rune, rest string, err error) {
	if s[0] != '\\' {
		r, sz := utf8.DecodeRuneInString(s)
		return r, s[sz:], nil
	}
	if len(s) < 2 {
		return 0, "", ErrBadLiteral
	}
	switch s[1] {
	case '\\':
		return '\\', s[2:], nil
	case '"':
		return '"', s[2:], nil
	case '0':
		return 0, s[2:], nil
	case 't':
		return '\t', s[2:], nil
	case 'n':
		return '\n', s[2:], nil
	case 'r':
		return '\r', s[2:], nil
	case '\'':
		if apostrophe {
			return '\'', s[2:], nil
		}
	case 'x':
		if len(s) >= 4 {
			hi, lo := rune(s[2]), rune(s[3])
			if isHex(hi) && isHex(lo) {
				if v := hexVal(hi)<<4 | hexVal(lo); v <= 0x7f {
					return v, s[4:], nil
				}
			}
		}
	}
	return 0, "", ErrBadLiteral
}
