package diagfmt

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// expandTabs renders s starting at display column col, replacing each tab
// with spaces up to the next tab stop. It returns the text and the column
// after it.
func expandTabs(s string, col, tab int) (string, int) {
	if !strings.ContainsRune(s, '\t') {
		return s, col + runewidth.StringWidth(s)
	}
	var sb strings.Builder
	for _, r := range s {
		if r == '\t' {
			n := tab - col%tab
			sb.WriteString(strings.Repeat(" ", n))
			col += n
			continue
		}
		sb.WriteRune(r)
		col += runewidth.RuneWidth(r)
	}
	return sb.String(), col
}

// digits returns the decimal width of n (n >= 0).
func digits(n uint32) int {
	d := 1
	for n >= 10 {
		n /= 10
		d++
	}
	return d
}
