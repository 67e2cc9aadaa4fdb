package lexer

import (
	"unicode/utf8"

	"flint/internal/diag"
	"flint/internal/source"

	"fortio.org/safecast"
)

// Cursor walks the decoded characters of a file.
// Content is expected to be valid UTF-8; source.FileSet validates it at load.
type Cursor struct {
	file  *source.File
	off   uint32
	limit uint32
	cur   rune
	width uint32

	// pending is the single rollback slot: the offset of the character the
	// last Advance stepped over. ok is cleared by Retract, so a second
	// Retract without an Advance in between is refused.
	pending struct {
		off uint32
		ok  bool
	}
}

// NewCursor creates a new cursor for the provided file.
func NewCursor(f *source.File) (Cursor, error) {
	limit, err := safecast.Conv[uint32](len(f.Content))
	if err != nil {
		return Cursor{}, diag.WrapInternal(err, "file content too large for cursor")
	}
	c := Cursor{file: f, limit: limit}
	c.decode()
	return c, nil
}

// decode refreshes cur/width from off.
func (c *Cursor) decode() {
	if c.off >= c.limit {
		c.cur, c.width = 0, 0
		return
	}
	b := c.file.Content[c.off]
	if b < utf8.RuneSelf {
		c.cur, c.width = rune(b), 1
		return
	}
	r, sz := utf8.DecodeRune(c.file.Content[c.off:c.limit])
	// sz is 1..4
	c.cur, c.width = r, uint32(sz)
}

// EOF reports whether the cursor has reached the end of the buffer.
func (c *Cursor) EOF() bool {
	return c.off >= c.limit
}

// Current returns the character under the cursor, or 0 at end of input.
func (c *Cursor) Current() rune {
	return c.cur
}

// Width returns the byte length of the current character (0 at end of input).
func (c *Cursor) Width() uint32 {
	return c.width
}

// Offset returns the byte offset of the current character.
func (c *Cursor) Offset() uint32 {
	return c.off
}

// Advance moves forward exactly one character. At end of input it does nothing.
func (c *Cursor) Advance() {
	if c.EOF() {
		return
	}
	c.pending.off = c.off
	c.pending.ok = true
	c.off += c.width
	c.decode()
}

// Retract undoes the last Advance and makes ch current again.
// Only one step back is possible; ch must be the character that was stepped over.
func (c *Cursor) Retract(ch rune) error {
	if !c.pending.ok {
		return diag.Internalf("cursor retract of %q without a preceding advance", ch)
	}
	prev := c.pending.off
	r, _ := utf8.DecodeRune(c.file.Content[prev:c.limit])
	if r != ch {
		return diag.Internalf("cursor retract of %q, but %q was consumed at %d", ch, r, prev)
	}
	c.pending.ok = false
	c.off = prev
	c.decode()
	return nil
}

// PeekAt returns the character k positions ahead of the current one without
// moving the cursor. PeekAt(0) is Current. ok is false past end of input.
func (c *Cursor) PeekAt(k int) (r rune, ok bool) {
	off := c.off
	for i := 0; ; i++ {
		if off >= c.limit {
			return 0, false
		}
		r, sz := utf8.DecodeRune(c.file.Content[off:c.limit])
		if i == k {
			return r, true
		}
		off += uint32(sz)
	}
}

// Mark это метка, что бы быстро получать Span читаемого фрагмента
type Mark uint32

// Mark сохраняет текущую позицию курсора
func (c *Cursor) Mark() Mark {
	return Mark(c.off)
}

// SpanFrom получает Span для фрагмента, начиная с метки
func (c *Cursor) SpanFrom(m Mark) source.Span {
	return source.Span{
		File:  c.file.ID,
		Start: uint32(m),
		End:   c.off,
	}
}

// Eat consumes the current character if it equals ch.
func (c *Cursor) Eat(ch rune) bool {
	if !c.EOF() && c.cur == ch {
		c.Advance()
		return true
	}
	return false
}
