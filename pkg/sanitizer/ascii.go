package sanitizer

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/dmitrymomot/textcanon/pkg/field"
)

// asciiLetters covers letters and punctuation that NFKD does not decompose
// into an ASCII base character.
var asciiLetters = strings.NewReplacer(
	"ß", "ss", "æ", "ae", "Æ", "AE", "œ", "oe", "Œ", "OE",
	"ø", "o", "Ø", "O", "ł", "l", "Ł", "L", "đ", "d", "Đ", "D",
	"ð", "d", "Ð", "D", "þ", "th", "Þ", "Th", "ı", "i",
	"‘", "'", "’", "'", "‚", "'", "“", `"`, "”", `"`, "„", `"`,
	"–", "-", "—", "--", "«", "<<", "»", ">>", "•", "*",
)

// ToASCII folds v to plain ASCII: compatibility decomposition, removal of
// combining marks, transliteration of a few common letters, and finally
// removal of anything still outside ASCII. "Crème brûlée" becomes
// "Creme brulee". Null and non-text values are returned unchanged.
func ToASCII(v field.Value) field.Value {
	s, ok := v.Text()
	if !ok {
		return v
	}
	return field.Text(foldASCII(s))
}

func foldASCII(s string) string {
	if isASCII(s) {
		return s
	}

	// transform.Chain keeps state, so each call builds its own.
	folder := transform.Chain(
		norm.NFKD,
		runes.Remove(runes.In(unicode.Mn)),
		runes.Remove(runes.Predicate(func(r rune) bool { return r >= utf8.RuneSelf })),
	)

	out, _, err := transform.String(folder, asciiLetters.Replace(s))
	if err != nil {
		return strings.Map(func(r rune) rune {
			if r >= utf8.RuneSelf {
				return -1
			}
			return r
		}, s)
	}
	return out
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}
