// Package cursor provides a forward-only byte cursor over text input.
package cursor

// Cursor walks a string one byte at a time.
// The underlying string is never modified and the offset never moves backwards
// except through Unread.
type Cursor struct {
	data   string
	offset int
}

// New creates a Cursor positioned at start. Out-of-range starts are clamped
// to the bounds of s.
func New(s string, start int) *Cursor {
	if start < 0 {
		start = 0
	}
	if start > len(s) {
		start = len(s)
	}
	return &Cursor{data: s, offset: start}
}

// Offset returns the current read position.
func (c *Cursor) Offset() int {
	return c.offset
}

// Done reports whether the cursor is at the end of input.
func (c *Cursor) Done() bool {
	return c.offset >= len(c.data)
}

// Peek returns the next byte without advancing, or 0 at end of input.
func (c *Cursor) Peek() byte {
	if c.offset >= len(c.data) {
		return 0
	}
	return c.data[c.offset]
}

// Advance moves forward by one byte if input remains.
func (c *Cursor) Advance() {
	if c.offset < len(c.data) {
		c.offset++
	}
}

// Unread steps back one byte, undoing the last Advance.
func (c *Cursor) Unread() {
	if c.offset > 0 {
		c.offset--
	}
}

// Accept consumes the next byte if it equals lower or upper.
func (c *Cursor) Accept(lower, upper byte) bool {
	b := c.Peek()
	if c.Done() || (b != lower && b != upper) {
		return false
	}
	c.offset++
	return true
}

// SkipWhile advances past every byte for which fn returns true and returns
// the number of bytes skipped.
func (c *Cursor) SkipWhile(fn func(byte) bool) int {
	start := c.offset
	for c.offset < len(c.data) && fn(c.data[c.offset]) {
		c.offset++
	}
	return c.offset - start
}

// SkipSpace advances past ASCII whitespace.
func (c *Cursor) SkipSpace() int {
	return c.SkipWhile(IsSpace)
}

// Slice returns the text between from and the current position.
func (c *Cursor) Slice(from int) string {
	if from < 0 {
		from = 0
	}
	if from > c.offset {
		return ""
	}
	return c.data[from:c.offset]
}

// IsSpace reports whether b is ASCII whitespace: space, \t, \n, \v, \f or \r.
func IsSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}
