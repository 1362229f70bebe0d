package sanitizer

import (
	"regexp"
	"strings"

	"github.com/dmitrymomot/textcanon/pkg/field"
)

// Slugify converts v to a URL-safe slug: lowercase ASCII letters, digits and
// single hyphens. Accented letters are folded to ASCII first, punctuation is
// dropped, and runs of whitespace, hyphens and underscores become one hyphen.
//
//	Slugify(field.Text(`"oh_hai!"`)) // "oh-hai"
//
// Slugify is idempotent. Null and non-text values are returned unchanged.
func Slugify(v field.Value) field.Value {
	s, ok := v.Text()
	if !ok {
		return v
	}
	return field.Text(slugify(s))
}

func slugify(s string) string {
	return makeSlug(s, nonSlugRegex)
}

// makeSlug is shared with the taxonomy splitter, which needs to keep its
// hyphen sentinel through the punctuation strip.
func makeSlug(s string, strip *regexp.Regexp) string {
	s = strings.ToLower(foldASCII(s))
	s = strings.TrimSpace(strip.ReplaceAllString(s, ""))
	s = slugSeparatorRegex.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
