package numparse

import (
	"math"

	"github.com/skdltmxn/numparse-go/internal/cursor"
)

// ParseUint converts the whole of s, which must hold exactly one unsigned
// numeral optionally surrounded by whitespace.
//
// Errors are *NumError values wrapping ErrInvalidBase, ErrSyntax or ErrRange.
// On ErrRange the returned value is math.MaxUint64.
func ParseUint(s string, base int) (uint64, error) {
	const fn = "ParseUint"

	if !ValidBase(base) {
		return 0, &NumError{Func: fn, Num: s, Err: ErrInvalidBase}
	}

	c := cursor.New(s, 0)
	v, status, digits := parseUnsigned(c, base)
	if err := checkWhole(fn, s, c, digits); err != nil {
		return 0, err
	}
	if status == OutOfRange {
		return math.MaxUint64, &NumError{Func: fn, Num: s, Offset: numeralStart(s), Err: ErrRange}
	}
	return v, nil
}

// ParseInt is like ParseUint but accepts a leading + or - sign.
// On ErrRange the returned value is math.MaxInt64.
func ParseInt(s string, base int) (int64, error) {
	const fn = "ParseInt"

	if !ValidBase(base) {
		return 0, &NumError{Func: fn, Num: s, Err: ErrInvalidBase}
	}

	c := cursor.New(s, 0)
	r, digits := parseSigned(c, base)
	if err := checkWhole(fn, s, c, digits); err != nil {
		return 0, err
	}
	if r.Status == OutOfRange {
		return math.MaxInt64, &NumError{Func: fn, Num: s, Offset: numeralStart(s), Err: ErrRange}
	}
	return r.Value, nil
}

// checkWhole rejects an empty numeral body and any non-space text after it.
func checkWhole(fn, s string, c *cursor.Cursor, digits int) error {
	if digits == 0 {
		return &NumError{Func: fn, Num: s, Offset: c.Offset(), Err: ErrSyntax}
	}
	c.SkipSpace()
	if !c.Done() {
		return &NumError{Func: fn, Num: s, Offset: c.Offset(), Err: ErrSyntax}
	}
	return nil
}

func numeralStart(s string) int {
	return cursor.New(s, 0).SkipSpace()
}
