package diag

import (
	"fmt"
)

// Code is a stable numeric identifier for a syntax diagnostic.
type Code uint16

const (
	// Неизвестная ошибка - на первое время
	UnknownCode Code = 0

	// Лексические
	LexInfo               Code = 1000
	LexUnknownChar        Code = 1001
	LexUnterminatedString Code = 1002
	LexTokenTooLong       Code = 1005
	LexUnknownEscape      Code = 1006
	LexBadHexEscape       Code = 1007
	LexEmptyChar          Code = 1008
	LexCharWhitespace     Code = 1009
	LexUnterminatedChar   Code = 1010

	// Парсерные
	SynInfo              Code = 2000
	SynExpectItem        Code = 2001
	SynUnclosedDelimiter Code = 2002
	SynUnexpectedClosing Code = 2003
	SynMismatchedClosing Code = 2004
)

var codeDescription = map[Code]string{
	UnknownCode:           "Unknown error",
	LexInfo:               "Lexical information",
	LexUnknownChar:        "Invalid character",
	LexUnterminatedString: "Unterminated string literal",
	LexTokenTooLong:       "Token too long",
	LexUnknownEscape:      "Unknown escape sequence",
	LexBadHexEscape:       "Malformed hex escape",
	LexEmptyChar:          "Empty character literal",
	LexCharWhitespace:     "Raw whitespace in character literal",
	LexUnterminatedChar:   "Unterminated character literal",
	SynInfo:               "Syntax information",
	SynExpectItem:         "Expected item",
	SynUnclosedDelimiter:  "Unclosed delimiter",
	SynUnexpectedClosing:  "Unexpected closing delimiter",
	SynMismatchedClosing:  "Mismatched closing delimiter",
}

// ID returns the short stable form of the code ("LEX1002").
func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
