package numparse

import (
	"iter"
)

// Token is one integer literal found by Tokens.
type Token struct {
	Offset int    // Offset of the first byte, including any sign
	End    int    // Offset one past the last byte
	Text   string // s[Offset:End]
	Value  int64
	Status Status
}

// Tokens yields every integer literal in s, parsed with ParseSigned in the
// given base. Scanning resumes at the End reported for each literal, so a
// literal that overflows is still skipped as a whole.
//
// A literal must start at a word boundary; digits inside identifiers such as
// abc123 are ignored. A + or - directly before a literal belongs to it only
// when the sign itself starts a word, so 3-4 yields 3 and 4.
// An invalid base yields nothing.
func Tokens(s string, base int) iter.Seq[Token] {
	return func(yield func(Token) bool) {
		if !ValidBase(base) {
			return
		}

		i := 0
		for i < len(s) {
			if i > 0 && isWordByte(s[i-1]) && isWordByte(s[i]) {
				i++
				continue
			}

			atStart := canStartNumeral(s[i], base)
			signed := (s[i] == '+' || s[i] == '-') &&
				i+1 < len(s) && canStartNumeral(s[i+1], base) &&
				(i == 0 || !isWordByte(s[i-1]))
			if !atStart && !signed {
				i++
				continue
			}

			r := ParseSigned(s, i, base)
			end := r.End
			if end <= i {
				end = i + 1
			}
			tok := Token{
				Offset: i,
				End:    end,
				Text:   s[i:end],
				Value:  r.Value,
				Status: r.Status,
			}
			if !yield(tok) {
				return
			}
			i = end
		}
	}
}

// canStartNumeral reports whether b can be the first byte of a numeral.
func canStartNumeral(b byte, base int) bool {
	if base == AutoBase {
		return b >= '0' && b <= '9'
	}
	return int(digitValue(b)) < base
}

func isWordByte(b byte) bool {
	return digitValue(b) != noDigit || b == '_'
}
