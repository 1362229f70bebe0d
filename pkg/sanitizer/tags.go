package sanitizer

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/dmitrymomot/textcanon/pkg/field"
)

// StripTags removes markup tags from text. Paragraph-like tags (p, div, br)
// are replaced by a single space so adjacent blocks do not run together; all
// other tags are dropped. This is a lexical strip, not an HTML parser.
//
// Whitespace the strip leaves at either end is trimmed unless the input
// already started (or ended) with whitespace. Null and non-text values are
// returned unchanged.
func StripTags(v field.Value) field.Value {
	s, ok := v.Text()
	if !ok {
		return v
	}
	return field.Text(stripTags(s))
}

func stripTags(s string) string {
	if !strings.ContainsRune(s, '<') {
		return s
	}

	out := paragraphTagRegex.ReplaceAllString(s, " ")
	out = tagRegex.ReplaceAllString(out, "")

	if !startsWithSpace(s) {
		out = strings.TrimLeftFunc(out, unicode.IsSpace)
	}
	if !endsWithSpace(s) {
		out = strings.TrimRightFunc(out, unicode.IsSpace)
	}
	return out
}

// CompressWhitespace converts v to text, trims it and collapses every run of
// whitespace (spaces, tabs, line breaks) into a single space.
func CompressWhitespace(v field.Value) string {
	return compressWhitespace(v.String())
}

func compressWhitespace(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	return whitespaceRegex.ReplaceAllString(s, " ")
}

// StripAndCompact strips tags and then compresses whitespace.
// Null and non-text values are returned unchanged.
func StripAndCompact(v field.Value) field.Value {
	s, ok := v.Text()
	if !ok {
		return v
	}
	return field.Text(stripAndCompact(s))
}

func stripAndCompact(s string) string {
	return compressWhitespace(stripTags(s))
}

func startsWithSpace(s string) bool {
	r, _ := utf8.DecodeRuneInString(s)
	return s != "" && unicode.IsSpace(r)
}

func endsWithSpace(s string) bool {
	r, _ := utf8.DecodeLastRuneInString(s)
	return s != "" && unicode.IsSpace(r)
}
