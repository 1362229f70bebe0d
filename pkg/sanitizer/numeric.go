package sanitizer

import (
	"strings"

	"github.com/dmitrymomot/textcanon/pkg/field"
)

// ExtractNumbersSafe escapes v and keeps only ASCII digits, plus the decimal
// point when decimals is true. With decimals, anything from the second point
// onwards is dropped ("1.2.3" becomes "1.2").
//
// The result starts with "-" exactly when the text form of v starts with "-".
// Null yields an empty string.
func ExtractNumbersSafe(v field.Value, decimals bool) string {
	return extractNumbers(v.String(), decimals)
}

func extractNumbers(s string, decimals bool) string {
	escaped := escape(s)

	var b strings.Builder
	b.Grow(len(escaped) + 1)
	if strings.HasPrefix(s, "-") {
		b.WriteByte('-')
	}

	seenPoint := false
	for i := 0; i < len(escaped); i++ {
		c := escaped[i]
		switch {
		case c >= '0' && c <= '9':
			b.WriteByte(c)
		case c == '.' && decimals:
			if seenPoint {
				return b.String()
			}
			seenPoint = true
			b.WriteByte(c)
		}
	}

	return b.String()
}

// AddLeadingPadding truncates the text form of v to length runes and then
// left-pads it with pad up to length. Over-long input is clipped, not padded.
func AddLeadingPadding(v field.Value, pad rune, length int) string {
	if length <= 0 {
		return ""
	}

	runes := []rune(v.String())
	if len(runes) > length {
		runes = runes[:length]
	}
	if len(runes) == length {
		return string(runes)
	}

	return strings.Repeat(string(pad), length-len(runes)) + string(runes)
}

func digitsOnly(s string) string {
	return strings.TrimPrefix(extractNumbers(s, false), "-")
}
