package source

import (
	"testing"
)

func TestSpan_Cover(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Span
		expected Span
	}{
		{
			name:     "disjoint spans",
			a:        Span{File: 1, Start: 10, End: 20},
			b:        Span{File: 1, Start: 30, End: 40},
			expected: Span{File: 1, Start: 10, End: 40},
		},
		{
			name:     "nested span",
			a:        Span{File: 1, Start: 10, End: 40},
			b:        Span{File: 1, Start: 15, End: 20},
			expected: Span{File: 1, Start: 10, End: 40},
		},
		{
			name:     "other starts earlier",
			a:        Span{File: 1, Start: 10, End: 20},
			b:        Span{File: 1, Start: 2, End: 12},
			expected: Span{File: 1, Start: 2, End: 20},
		},
		{
			name:     "different files - returns original",
			a:        Span{File: 1, Start: 10, End: 20},
			b:        Span{File: 2, Start: 0, End: 50},
			expected: Span{File: 1, Start: 10, End: 20},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Cover(tt.b); got != tt.expected {
				t.Errorf("Cover() = %+v, want %+v", got, tt.expected)
			}
		})
	}
}

func TestSpan_LenEmptyContains(t *testing.T) {
	sp := Span{Start: 4, End: 7}
	if sp.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", sp.Len())
	}
	if sp.Empty() {
		t.Fatalf("span %v must not be empty", sp)
	}
	if !sp.Contains(4) || !sp.Contains(6) || sp.Contains(7) || sp.Contains(3) {
		t.Fatalf("Contains is not half-open for %v", sp)
	}
	if !(Span{Start: 5, End: 5}).Empty() {
		t.Fatalf("zero-width span must be empty")
	}
}
