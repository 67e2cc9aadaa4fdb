package source

import (
	"errors"
	"testing"
)

func mustIndex(t *testing.T, content string) LineIndex {
	t.Helper()
	idx, err := BuildLineIndex([]byte(content))
	if err != nil {
		t.Fatalf("BuildLineIndex(%q): %v", content, err)
	}
	return idx
}

func TestBuildLineIndexStarts(t *testing.T) {
	tests := []struct {
		content string
		want    []uint32
	}{
		{"", []uint32{0}},
		{"abc", []uint32{0}},
		{"a\nb", []uint32{0, 2}},
		{"a\nb\n", []uint32{0, 2, 4}},
		{"\n\n", []uint32{0, 1, 2}},
		{"let x\n  = 1", []uint32{0, 6}},
	}
	for _, tt := range tests {
		idx := mustIndex(t, tt.content)
		got := idx.Starts()
		if len(got) != len(tt.want) {
			t.Fatalf("%q: starts = %v, want %v", tt.content, got, tt.want)
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Fatalf("%q: starts = %v, want %v", tt.content, got, tt.want)
			}
		}
		if idx.LineCount() != len(tt.want) {
			t.Errorf("%q: LineCount() = %d, want %d", tt.content, idx.LineCount(), len(tt.want))
		}
	}
}

func TestLookupBoundaries(t *testing.T) {
	// "ab\ncd\n\nef": line starts 0, 3, 6, 7
	idx := mustIndex(t, "ab\ncd\n\nef")

	tests := []struct {
		name string
		off  uint32
		want LineCol
	}{
		{"buffer start", 0, LineCol{Line: 1, Col: 1}},
		{"inside first line", 1, LineCol{Line: 1, Col: 2}},
		{"newline byte belongs to its line", 2, LineCol{Line: 1, Col: 3}},
		{"exact line start", 3, LineCol{Line: 2, Col: 1}},
		{"second newline", 5, LineCol{Line: 2, Col: 3}},
		{"empty line start", 6, LineCol{Line: 3, Col: 1}},
		{"last line start", 7, LineCol{Line: 4, Col: 1}},
		{"last char", 8, LineCol{Line: 4, Col: 2}},
		{"end of buffer", 9, LineCol{Line: 4, Col: 3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := idx.Lookup(tt.off)
			if err != nil {
				t.Fatalf("Lookup(%d): %v", tt.off, err)
			}
			if got != tt.want {
				t.Errorf("Lookup(%d) = %+v, want %+v", tt.off, got, tt.want)
			}
		})
	}
}

func TestLookupEndOfBufferAfterTrailingNewline(t *testing.T) {
	idx := mustIndex(t, "a\n")
	got, err := idx.Lookup(2)
	if err != nil {
		t.Fatalf("Lookup(2): %v", err)
	}
	if want := (LineCol{Line: 2, Col: 1}); got != want {
		t.Fatalf("Lookup(2) = %+v, want %+v", got, want)
	}
}

func TestLookupOutOfRange(t *testing.T) {
	idx := mustIndex(t, "abc")
	if _, err := idx.Lookup(4); !errors.Is(err, ErrOffsetOutOfRange) {
		t.Fatalf("Lookup(4) err = %v, want ErrOffsetOutOfRange", err)
	}
}

func TestLookupEmptyBuffer(t *testing.T) {
	idx := mustIndex(t, "")
	got, err := idx.Lookup(0)
	if err != nil {
		t.Fatalf("Lookup(0): %v", err)
	}
	if want := (LineCol{Line: 1, Col: 1}); got != want {
		t.Fatalf("Lookup(0) = %+v, want %+v", got, want)
	}
}

func TestLookupMatchesLinearScan(t *testing.T) {
	content := "fn main\n\n  let x = 1\n\tlet y\n\n\nz"
	idx := mustIndex(t, content)
	line, col := uint32(1), uint32(1)
	for off := 0; off <= len(content); off++ {
		got, err := idx.Lookup(uint32(off))
		if err != nil {
			t.Fatalf("Lookup(%d): %v", off, err)
		}
		if want := (LineCol{Line: line, Col: col}); got != want {
			t.Fatalf("Lookup(%d) = %+v, want %+v", off, got, want)
		}
		if off < len(content) && content[off] == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
}

func TestLineBounds(t *testing.T) {
	idx := mustIndex(t, "ab\n\ncde")
	tests := []struct {
		line       uint32
		start, end uint32
	}{
		{1, 0, 2},
		{2, 3, 3},
		{3, 4, 7},
	}
	for _, tt := range tests {
		start, end, err := idx.LineBounds(tt.line)
		if err != nil {
			t.Fatalf("LineBounds(%d): %v", tt.line, err)
		}
		if start != tt.start || end != tt.end {
			t.Errorf("LineBounds(%d) = [%d,%d), want [%d,%d)", tt.line, start, end, tt.start, tt.end)
		}
	}
	if _, _, err := idx.LineBounds(0); !errors.Is(err, ErrLineOutOfRange) {
		t.Errorf("LineBounds(0) err = %v, want ErrLineOutOfRange", err)
	}
	if _, _, err := idx.LineBounds(4); !errors.Is(err, ErrLineOutOfRange) {
		t.Errorf("LineBounds(4) err = %v, want ErrLineOutOfRange", err)
	}
}
