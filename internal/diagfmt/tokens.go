package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/vmihailenco/msgpack/v5"

	"flint/internal/lexer"
	"flint/internal/source"
	"flint/internal/token"
)

// TokenOutput is the JSON shape of one token.
type TokenOutput struct {
	Kind     string       `json:"kind"`
	Text     string       `json:"text,omitempty"`
	Value    any          `json:"value,omitempty"`
	Location LocationJSON `json:"location"`
}

// literalValue decodes the value of a literal token; nil if it has none or
// does not fit the host type.
func literalValue(tok token.Token) any {
	switch tok.Kind {
	case token.IntLit:
		if v, err := strconv.ParseUint(tok.Text, 10, 64); err == nil {
			return v
		}
	case token.FloatLit:
		if v, err := strconv.ParseFloat(tok.Text, 64); err == nil {
			return v
		}
	case token.StringLit:
		if v, err := lexer.Unquote(tok.Text); err == nil {
			return v
		}
	case token.CharLit:
		if v, err := lexer.UnquoteChar(tok.Text); err == nil {
			return string(v)
		}
	case token.Keyword:
		switch tok.Text {
		case "true":
			return true
		case "false":
			return false
		}
	}
	return nil
}

var kindStyles = map[token.Kind]lipgloss.Style{
	token.Keyword:   lipgloss.NewStyle().Foreground(lipgloss.Color("5")).Bold(true),
	token.Ident:     lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	token.IntLit:    lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	token.FloatLit:  lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	token.StringLit: lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	token.CharLit:   lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	token.Paren:     lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	token.Symbol:    lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	token.EOF:       lipgloss.NewStyle().Faint(true),
}

var posStyle = lipgloss.NewStyle().Faint(true)

// FormatTokensPretty выводит токены в человекочитаемом формате, одна строка на токен:
//
//	  1: Keyword         "let" at 1:1-1:4
func FormatTokensPretty(w io.Writer, tokens []token.Token, file *source.File, opts TokenOpts) error {
	for i, tok := range tokens {
		start, end, err := resolve(file, tok.Span)
		if err != nil {
			return err
		}
		kind := fmt.Sprintf("%-15s", tok.Kind.String())
		pos := fmt.Sprintf("at %d:%d-%d:%d", start.Line, start.Col, end.Line, end.Col)
		if opts.Color {
			kind = kindStyles[tok.Kind].Render(kind)
			pos = posStyle.Render(pos)
		}

		line := fmt.Sprintf("%3d: %s", i+1, kind)
		if tok.Text != "" {
			line += fmt.Sprintf(" %q", tok.Text)
		}
		if _, err := fmt.Fprintf(w, "%s %s\n", line, pos); err != nil {
			return err
		}
		if tok.Kind == token.EOF {
			break
		}
	}
	return nil
}

func resolve(file *source.File, sp source.Span) (start, end source.LineCol, err error) {
	if start, err = file.Lines.Lookup(sp.Start); err != nil {
		return start, end, fmt.Errorf("token span %s: %w", sp, err)
	}
	if end, err = file.Lines.Lookup(sp.End); err != nil {
		return start, end, fmt.Errorf("token span %s: %w", sp, err)
	}
	return start, end, nil
}

// FormatTokensJSON выводит токены в JSON формате
func FormatTokensJSON(w io.Writer, tokens []token.Token, file *source.File, opts JSONOpts) error {
	output := make([]TokenOutput, 0, len(tokens))
	for _, tok := range tokens {
		output = append(output, TokenOutput{
			Kind:     tok.Kind.String(),
			Text:     tok.Text,
			Value:    literalValue(tok),
			Location: makeLocation(file, tok.Span, opts),
		})
		if tok.Kind == token.EOF {
			break
		}
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}

// TokenRecord is the msgpack shape of one token.
type TokenRecord struct {
	Kind  uint8  `msgpack:"k"`
	Text  string `msgpack:"t"`
	Start uint32 `msgpack:"s"`
	End   uint32 `msgpack:"e"`
}

// TokenDump is the msgpack document written by FormatTokensMsgpack.
// Hash is the sha256 of the scanned (normalized) content.
type TokenDump struct {
	File   string        `msgpack:"file"`
	Hash   []byte        `msgpack:"hash"`
	Tokens []TokenRecord `msgpack:"tokens"`
}

// FormatTokensMsgpack writes tokens as a single msgpack TokenDump.
func FormatTokensMsgpack(w io.Writer, tokens []token.Token, file *source.File) error {
	dump := TokenDump{
		File:   file.Path,
		Hash:   file.Hash[:],
		Tokens: make([]TokenRecord, 0, len(tokens)),
	}
	for _, tok := range tokens {
		dump.Tokens = append(dump.Tokens, TokenRecord{
			Kind:  uint8(tok.Kind),
			Text:  tok.Text,
			Start: tok.Span.Start,
			End:   tok.Span.End,
		})
	}
	return msgpack.NewEncoder(w).Encode(&dump)
}

// ReadTokenDump decodes a document written by FormatTokensMsgpack.
func ReadTokenDump(r io.Reader) (TokenDump, error) {
	var dump TokenDump
	if err := msgpack.NewDecoder(r).Decode(&dump); err != nil {
		return TokenDump{}, fmt.Errorf("decode token dump: %w", err)
	}
	return dump, nil
}
