// Package testkit holds invariant checks shared by package tests and fuzz
// harnesses.
package testkit

import (
	"fmt"

	"fortio.org/safecast"

	"flint/internal/parser"
	"flint/internal/source"
	"flint/internal/token"
)

// CheckTokenInvariants checks a token stream scanned from sf:
//  1. every span lies within the buffer and belongs to sf
//  2. spans are non-empty, ascending and non-overlapping
//  3. Text equals the covered source bytes
//  4. a final EOF, if present, sits at len(buffer) with an empty span
func CheckTokenInvariants(tokens []token.Token, sf *source.File) error {
	if sf == nil {
		return fmt.Errorf("nil file")
	}
	size, err := safecast.Conv[uint32](len(sf.Content))
	if err != nil {
		return fmt.Errorf("len content overflow: %w", err)
	}

	var prevEnd uint32
	for i, tok := range tokens {
		sp := tok.Span
		if sp.File != sf.ID {
			return fmt.Errorf("token %d: span file mismatch: got=%d want=%d", i, sp.File, sf.ID)
		}
		if sp.Start > sp.End || sp.End > size {
			return fmt.Errorf("token %d: span %v outside buffer of %d bytes", i, sp, size)
		}
		if tok.Kind == token.EOF {
			if i != len(tokens)-1 {
				return fmt.Errorf("token %d: EOF before end of stream", i)
			}
			if sp.Start != size || sp.End != size {
				return fmt.Errorf("EOF span %v, want %d-%d", sp, size, size)
			}
			continue
		}
		if sp.Empty() {
			return fmt.Errorf("token %d (%v): empty span", i, tok.Kind)
		}
		if sp.Start < prevEnd {
			return fmt.Errorf("token %d: span %v overlaps previous token ending at %d", i, sp, prevEnd)
		}
		if got := string(sf.Content[sp.Start:sp.End]); got != tok.Text {
			return fmt.Errorf("token %d: text %q differs from source %q", i, tok.Text, got)
		}
		prevEnd = sp.End
	}
	return nil
}

// CheckItemInvariants checks that every item is non-empty, led by its
// keyword, covers its tokens and does not overlap the previous item.
func CheckItemInvariants(items []parser.Item, sf *source.File) error {
	var prevEnd uint32
	for i, it := range items {
		if len(it.Tokens) == 0 {
			return fmt.Errorf("item %d: no tokens", i)
		}
		if it.Tokens[0].Text != it.Keyword {
			return fmt.Errorf("item %d: leading token %q, keyword %q", i, it.Tokens[0].Text, it.Keyword)
		}
		if it.Span.Start < prevEnd {
			return fmt.Errorf("item %d: span %v overlaps previous item ending at %d", i, it.Span, prevEnd)
		}
		for _, tok := range it.Tokens {
			if tok.Span.Start < it.Span.Start || tok.Span.End > it.Span.End {
				return fmt.Errorf("item %d: token span %v outside item span %v", i, tok.Span, it.Span)
			}
		}
		if err := CheckTokenInvariants(it.Tokens, sf); err != nil {
			return fmt.Errorf("item %d: %w", i, err)
		}
		prevEnd = it.Span.End
	}
	return nil
}
