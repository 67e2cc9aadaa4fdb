package source

import (
	"errors"
	"fmt"

	"fortio.org/safecast"
)

var (
	// ErrOffsetOutOfRange reports a byte offset past the end of the buffer.
	ErrOffsetOutOfRange = errors.New("offset out of range")
	// ErrLineOutOfRange reports a 1-based line number the index does not hold.
	ErrLineOutOfRange = errors.New("line out of range")
)

// LineIndex is the ascending table of line-start byte offsets of a buffer.
// starts[0] is always 0; every other entry is the offset right after a '\n'.
// The index is built once and never mutated, so it may be shared freely.
type LineIndex struct {
	starts []uint32
	size   uint32
}

// BuildLineIndex scans content once and records the start of every line.
func BuildLineIndex(content []byte) (LineIndex, error) {
	size, err := safecast.Conv[uint32](len(content))
	if err != nil {
		return LineIndex{}, fmt.Errorf("content length overflow: %w", err)
	}
	starts := make([]uint32, 1, 1+len(content)/32)
	for i, b := range content {
		if b == '\n' {
			// i+1 <= size, conversion cannot overflow
			starts = append(starts, uint32(i)+1)
		}
	}
	return LineIndex{starts: starts, size: size}, nil
}

// LineCount returns the number of lines, counting a trailing empty line
// after a final '\n'.
func (idx LineIndex) LineCount() int {
	if len(idx.starts) == 0 {
		return 1
	}
	return len(idx.starts)
}

// Size returns the length of the indexed buffer in bytes.
func (idx LineIndex) Size() uint32 {
	return idx.size
}

// Starts returns a copy of the recorded line starts.
func (idx LineIndex) Starts() []uint32 {
	if len(idx.starts) == 0 {
		return []uint32{0}
	}
	out := make([]uint32, len(idx.starts))
	copy(out, idx.starts)
	return out
}

// lineOf returns the 0-based index of the greatest line start <= off.
func (idx LineIndex) lineOf(off uint32) int {
	// бинпоиск: находим наибольший starts[i] <= off
	lo, hi := 0, len(idx.starts)-1
	for lo <= hi {
		mid := (lo + hi) >> 1
		if idx.starts[mid] <= off {
			lo = mid + 1
		} else {
			hi = mid - 1
		}
	}
	// starts[0] == 0 guarantees hi >= 0 for any off
	return max(hi, 0)
}

// Lookup converts a byte offset into a 1-based line and column.
//
// An offset exactly at a line start belongs to that line, the offset of a
// '\n' byte belongs to the line it terminates, and off == Size() maps to the
// position just past the last character.
func (idx LineIndex) Lookup(off uint32) (LineCol, error) {
	if off > idx.size {
		return LineCol{}, fmt.Errorf("%w: %d > %d", ErrOffsetOutOfRange, off, idx.size)
	}
	if len(idx.starts) == 0 {
		return LineCol{Line: 1, Col: off + 1}, nil
	}
	line := idx.lineOf(off)
	// line < len(starts) <= size+1, no overflow
	return LineCol{Line: uint32(line) + 1, Col: off - idx.starts[line] + 1}, nil
}

// LineStart returns the byte offset at which the 1-based line begins.
func (idx LineIndex) LineStart(line uint32) (uint32, error) {
	if line == 0 || int(line) > idx.LineCount() {
		return 0, fmt.Errorf("%w: %d of %d", ErrLineOutOfRange, line, idx.LineCount())
	}
	if len(idx.starts) == 0 {
		return 0, nil
	}
	return idx.starts[line-1], nil
}

// LineBounds returns [start, end) of the 1-based line, excluding its '\n'.
func (idx LineIndex) LineBounds(line uint32) (start, end uint32, err error) {
	start, err = idx.LineStart(line)
	if err != nil {
		return 0, 0, err
	}
	if int(line) < len(idx.starts) {
		return start, idx.starts[line] - 1, nil
	}
	return start, idx.size, nil
}
