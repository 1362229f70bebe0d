package sanitizer

import (
	"strings"

	"github.com/dmitrymomot/textcanon/pkg/field"
)

// hyphenSentinel stands in for hyphens that belong to a tag ("well-known")
// while the slug pass turns word separators into hyphens.
const hyphenSentinel = "*"

// SplitTaxonomyTags splits a delimited tag string into normalized tags.
// Commas, semicolons, slashes and colons all delimit tags. Each tag is
// stripped of markup, lowercased and cleaned of punctuation; words are joined
// by single spaces and hyphens inside words are preserved.
//
//	SplitTaxonomyTags(field.Text("Hi, There friend, How goes it?"))
//	// []string{"hi", "there friend", "how goes it"}
//
// Order is preserved, duplicates are kept and empty tags are dropped.
// Null and non-text values yield nil.
func SplitTaxonomyTags(v field.Value) []string {
	s, ok := v.Text()
	if !ok {
		return nil
	}

	s = stripTags(s)
	s = taxonomyDelimiterRegex.ReplaceAllString(s, ",")
	s = strings.ReplaceAll(s, "-", hyphenSentinel)

	segments := strings.Split(s, ",")
	tags := make([]string, 0, len(segments))
	for _, seg := range segments {
		slug := makeSlug(stripAndCompact(seg), nonTaxonomyRegex)
		if slug == "" {
			continue
		}
		tag := strings.ReplaceAll(slug, "-", " ")
		tag = strings.ReplaceAll(tag, hyphenSentinel, "-")
		tags = append(tags, tag)
	}

	return tags
}
