package numparse

import (
	"math"

	"github.com/skdltmxn/numparse-go/internal/cursor"
)

// absMinInt64 is the magnitude of math.MinInt64, which has no positive
// int64 counterpart.
const absMinInt64 = uint64(1) << 63

// Result is the outcome of ParseUnsigned.
type Result struct {
	Value  uint64 // Parsed value, math.MaxUint64 when Status is OutOfRange
	End    int    // Offset one past the last consumed byte
	Status Status

	// Set only when Status is OutOfRange.
	num    string
	offset int
}

// Err returns a *NumError wrapping ErrRange when the value was saturated,
// nil otherwise.
func (r Result) Err() error {
	if r.Status == OutOfRange {
		return &NumError{Func: "ParseUnsigned", Num: r.num, Offset: r.offset, Err: ErrRange}
	}
	return nil
}

// SignedResult is the outcome of ParseSigned.
type SignedResult struct {
	Value  int64 // Parsed value, math.MaxInt64 when Status is OutOfRange
	End    int   // Offset one past the last consumed byte
	Status Status

	// Set only when Status is OutOfRange.
	num    string
	offset int
}

// Err returns a *NumError wrapping ErrRange when the value was saturated,
// nil otherwise.
func (r SignedResult) Err() error {
	if r.Status == OutOfRange {
		return &NumError{Func: "ParseSigned", Num: r.num, Offset: r.offset, Err: ErrRange}
	}
	return nil
}

// ParseUnsigned converts the numeral starting at byte offset start of s.
//
// Leading ASCII whitespace is skipped. With base 0 the base is taken from the
// prefix: 0x or 0X for 16, 0o for 8, 0b for 2, 0r for Roman numerals and
// decimal otherwise. Bases 2 through 36 are used as given, with letters a-z
// (either case) standing for digits 10 through 35.
//
// End is the offset just past the numeral. A value that does not fit in
// 64 bits yields math.MaxUint64 with Status OutOfRange, and End still covers
// every digit of the numeral. An invalid base yields a zero Result with End
// equal to start.
func ParseUnsigned(s string, start, base int) Result {
	c := cursor.New(s, start)
	if !ValidBase(base) {
		return Result{End: c.Offset()}
	}

	c.SkipSpace()
	from := c.Offset()

	v, status, _ := parseUnsigned(c, base)
	r := Result{Value: v, End: c.Offset(), Status: status}
	if status == OutOfRange {
		r.num, r.offset = c.Slice(from), from
	}
	return r
}

// ParseSigned converts an optionally signed numeral starting at byte offset
// start of s. The sign precedes any base prefix, so -0x1A is -26.
//
// Values outside the int64 range yield math.MaxInt64 with Status OutOfRange.
// The magnitude of math.MinInt64 is accepted when negated. Cursor reporting is
// the same as for ParseUnsigned.
func ParseSigned(s string, start, base int) SignedResult {
	c := cursor.New(s, start)
	if !ValidBase(base) {
		return SignedResult{End: c.Offset()}
	}

	c.SkipSpace()
	from := c.Offset()

	r, _ := parseSigned(c, base)
	r.End = c.Offset()
	if r.Status == OutOfRange {
		r.num, r.offset = c.Slice(from), from
	}
	return r
}

// parseUnsigned runs the engine at the cursor. digits is the length of the
// numeral body, excluding whitespace and prefix.
func parseUnsigned(c *cursor.Cursor, base int) (value uint64, status Status, digits int) {
	c.SkipSpace()
	n := detectNumeral(c, base)

	bodyStart := c.Offset()
	value, status = n.accumulate(c)
	return value, status, c.Offset() - bodyStart
}

// parseSigned captures an optional sign and delegates to parseUnsigned.
// The returned End is left for the caller to fill in.
func parseSigned(c *cursor.Cursor, base int) (SignedResult, int) {
	c.SkipSpace()

	negative := false
	switch c.Peek() {
	case '-':
		negative = true
		c.Advance()
	case '+':
		c.Advance()
	}

	u, _, digits := parseUnsigned(c, base)

	var r SignedResult
	switch {
	case u <= math.MaxInt64:
		r.Value = int64(u)
		if negative {
			r.Value = -r.Value
		}
	case negative && u == absMinInt64:
		r.Value = math.MinInt64
	default:
		r.Value = math.MaxInt64
		r.Status = OutOfRange
	}
	return r, digits
}
