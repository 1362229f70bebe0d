package sanitizer

import "regexp"

// Pre-compiled regular expressions for performance
var (
	// Tag stripping: block-level tags become a space, everything else goes.
	paragraphTagRegex = regexp.MustCompile(`(?i)</?(?:p|div|br)\b[^>]*?>`)
	tagRegex          = regexp.MustCompile(`<[^>]*?>`)

	// Whitespace compression
	whitespaceRegex = regexp.MustCompile(`[\s\v]+`)

	// Slugs
	nonSlugRegex       = regexp.MustCompile(`[^\w\s-]`)
	nonTaxonomyRegex   = regexp.MustCompile(`[^\w\s*-]`)
	slugSeparatorRegex = regexp.MustCompile(`[-_\s]+`)

	// Taxonomy delimiters that are normalized to commas
	taxonomyDelimiterRegex = regexp.MustCompile(`[;/:]`)
)
