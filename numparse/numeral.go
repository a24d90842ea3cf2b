package numparse

import (
	"github.com/skdltmxn/numparse-go/internal/cursor"
)

// Status reports the outcome of a conversion.
type Status uint8

const (
	// OK means the value is exact.
	OK Status = iota
	// OutOfRange means the numeral exceeds the target type and the value was
	// saturated.
	OutOfRange
)

func (s Status) String() string {
	switch s {
	case OK:
		return "ok"
	case OutOfRange:
		return "out of range"
	default:
		return "unknown"
	}
}

// Accepted base values.
const (
	// AutoBase selects the base from the numeral prefix: 0x, 0o, 0b, 0r
	// (Roman) or decimal when no prefix is present.
	AutoBase = 0
	MinBase  = 2
	MaxBase  = 36
)

// ValidBase reports whether base is accepted by the parse functions.
func ValidBase(base int) bool {
	return base == AutoBase || (base >= MinBase && base <= MaxBase)
}

// numeral is the grammar resolved for one parse. Implementations consume
// the numeral body from c and return its value.
type numeral interface {
	accumulate(c *cursor.Cursor) (uint64, Status)
}

// detectNumeral resolves base to a grammar, consuming a recognized prefix.
// base must already be valid.
func detectNumeral(c *cursor.Cursor, base int) numeral {
	if base != AutoBase {
		return positional{radix: base}
	}

	if c.Peek() != '0' {
		return positional{radix: 10}
	}
	c.Advance()

	switch {
	case c.Accept('x', 'X'):
		return positional{radix: 16}
	case c.Accept('o', 'O'):
		return positional{radix: 8}
	case c.Accept('b', 'B'):
		return positional{radix: 2}
	case c.Accept('r', 'R'):
		return roman{}
	}

	// A lone leading zero is a decimal digit; put it back.
	c.Unread()
	return positional{radix: 10}
}
