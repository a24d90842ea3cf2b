package numparse

import (
	"math"
	"math/bits"

	"github.com/skdltmxn/numparse-go/internal/cursor"
)

// noDigit marks bytes that are not alphanumeric digits.
const noDigit = 0xff

// Per-base lookup tables, built once at package initialization and never
// written afterwards.
var (
	// digitLimit[base] is floor(log_base(2^64)): the number of digits that can
	// be accumulated without any overflow check.
	digitLimit = buildDigitLimits()

	// maxBeforeMultiply[base] is the largest value that can still be
	// multiplied by base without overflow.
	maxBeforeMultiply = buildMaxBeforeMultiply()

	// digitValues maps 0-9, a-z and A-Z to 0..35, everything else to noDigit.
	digitValues = buildDigitValues()
)

func buildDigitLimits() [MaxBase + 1]int {
	var t [MaxBase + 1]int
	for base := MinBase; base <= MaxBase; base++ {
		b := uint64(base)
		pow := uint64(1)
		n := 0
		for {
			hi, lo := bits.Mul64(pow, b)
			if hi != 0 {
				// base^(n+1) == 2^64 still leaves every (n+1)-digit value
				// representable.
				if hi == 1 && lo == 0 {
					n++
				}
				break
			}
			pow = lo
			n++
		}
		t[base] = n
	}
	return t
}

func buildMaxBeforeMultiply() [MaxBase + 1]uint64 {
	var t [MaxBase + 1]uint64
	for base := MinBase; base <= MaxBase; base++ {
		t[base] = math.MaxUint64 / uint64(base)
	}
	return t
}

func buildDigitValues() [256]uint8 {
	var t [256]uint8
	for i := range t {
		t[i] = noDigit
	}
	for c := '0'; c <= '9'; c++ {
		t[c] = uint8(c - '0')
	}
	for c := 'a'; c <= 'z'; c++ {
		t[c] = uint8(c-'a') + 10
		t[c-'a'+'A'] = uint8(c-'a') + 10
	}
	return t
}

// digitValue returns the value of b as a base-36 digit, or noDigit.
func digitValue(b byte) uint8 {
	return digitValues[b]
}

// Limits returns the overflow thresholds used for base: the number of digits
// that never overflow and the largest value that may still be multiplied by
// base. ok is false for bases outside 2..36.
func Limits(base int) (digits int, maxBeforeMul uint64, ok bool) {
	if base < MinBase || base > MaxBase {
		return 0, 0, false
	}
	return digitLimit[base], maxBeforeMultiply[base], true
}

// positional accumulates digits in a fixed radix between 2 and 36.
type positional struct {
	radix int
}

func (p positional) accumulate(c *cursor.Cursor) (uint64, Status) {
	base := uint64(p.radix)

	// Leading zeros carry no magnitude and do not count against digitLimit.
	c.SkipWhile(func(b byte) bool { return b == '0' })

	var result uint64
	remaining := digitLimit[p.radix]
	status := OK

	for !c.Done() {
		d := digitValue(c.Peek())
		if uint64(d) >= base {
			break
		}
		c.Advance()

		// Once overflowed, keep consuming so the cursor ends after the whole
		// digit run.
		if status == OutOfRange {
			continue
		}

		if remaining > 0 {
			result = result*base + uint64(d)
			remaining--
			continue
		}

		if result > maxBeforeMultiply[p.radix] {
			status = OutOfRange
			continue
		}
		product := result * base
		sum := product + uint64(d)
		if sum < product {
			status = OutOfRange
			continue
		}
		result = sum
	}

	if status == OutOfRange {
		return math.MaxUint64, OutOfRange
	}
	return result, OK
}
