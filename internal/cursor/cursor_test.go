package cursor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClampsStart(t *testing.T) {
	assert.Equal(t, 0, New("abc", -4).Offset())
	assert.Equal(t, 3, New("abc", 10).Offset())
	assert.Equal(t, 1, New("abc", 1).Offset())
}

func TestAdvanceAndPeek(t *testing.T) {
	c := New("ab", 0)
	assert.Equal(t, byte('a'), c.Peek())
	c.Advance()
	assert.Equal(t, byte('b'), c.Peek())
	c.Advance()
	assert.True(t, c.Done())
	assert.Equal(t, byte(0), c.Peek())

	c.Advance()
	assert.Equal(t, 2, c.Offset())

	c.Unread()
	assert.Equal(t, 1, c.Offset())
	assert.Equal(t, "b", c.Slice(1)+string(c.Peek()))
}

func TestAccept(t *testing.T) {
	c := New("Xy", 0)
	require.True(t, c.Accept('x', 'X'))
	assert.False(t, c.Accept('x', 'X'))
	assert.Equal(t, 1, c.Offset())

	// NUL at end of input must not match a NUL argument.
	end := New("", 0)
	assert.False(t, end.Accept(0, 0))
}

func TestSkipSpace(t *testing.T) {
	c := New(" \t\n\v\f\r7", 0)
	assert.Equal(t, 6, c.SkipSpace())
	assert.Equal(t, byte('7'), c.Peek())
	assert.Equal(t, " \t\n\v\f\r", c.Slice(0))
	assert.Equal(t, "", c.Slice(10))
}
