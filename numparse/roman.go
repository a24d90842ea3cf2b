package numparse

import (
	"github.com/skdltmxn/numparse-go/internal/cursor"
)

// roman accumulates Roman numeral symbols. The grammar is permissive:
// non-canonical sequences such as IIII or VX are given a value by the plain
// subtractive rule, and the numeral ends at the first byte that is not a
// symbol. Arithmetic wraps; there is no overflow status.
type roman struct{}

func romanValue(b byte) uint64 {
	switch b {
	case 'I', 'i':
		return 1
	case 'V', 'v':
		return 5
	case 'X', 'x':
		return 10
	case 'L', 'l':
		return 50
	case 'C', 'c':
		return 100
	case 'D', 'd':
		return 500
	case 'M', 'm':
		return 1000
	default:
		return 0
	}
}

func (roman) accumulate(c *cursor.Cursor) (uint64, Status) {
	var total, prev uint64
	for !c.Done() {
		v := romanValue(c.Peek())
		if v == 0 {
			break
		}
		c.Advance()

		if prev != 0 && prev < v {
			// Undo the previous addition and subtract it once: IV = 1 + (5 - 2).
			total += v - 2*prev
		} else {
			total += v
		}
		prev = v
	}
	return total, OK
}
