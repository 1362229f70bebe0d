package entity

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/net/html"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/unicode/norm"

	"github.com/dmitrymomot/textcanon/pkg/field"
)

// Process-wide tables, built once and never mutated.
var (
	codepoints = resolveNames(entityNames) // name -> codepoint
	names      = reverseNames(entityNames, codepoints)

	namedTable   = newTable(buildNamedPairs())
	numericTable = newTable(buildNumericPairs())
	simpleTable  = newTable(simpleForms)
)

// SubGreeks replaces every non-ASCII character that has an HTML 4 named
// entity with that entity, e.g. U+00A0 becomes "&nbsp;" and "é" becomes
// "&eacute;". Decomposed spellings ("e" + U+0301) are matched as well.
// Bytes that are not valid UTF-8 are read as Windows-1252 first.
func SubGreeks(v field.Value) string {
	return namedTable.Replace(Canonical(v))
}

// SwapEntities replaces named entities with numeric character references
// ("&mdash;" becomes "&#8212;") and then encodes every remaining ampersand
// that does not start a numeric reference as "&#38;".
func SwapEntities(s string) string {
	return escapeBareAmpersands(numericTable.Replace(s))
}

// SimplifyEntities maps a curated set of common entities, smart punctuation
// and literal "\r"/"\n" escapes to plain ASCII approximations.
func SimplifyEntities(s string) string {
	return simpleTable.Replace(s)
}

// Canonical returns the text form of v as valid UTF-8. Invalid bytes are
// decoded as Windows-1252, the usual source of stray smart quotes.
func Canonical(v field.Value) string {
	s := v.String()
	if utf8.ValidString(s) {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) + 8)
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			b.WriteRune(charmap.Windows1252.DecodeByte(s[i]))
			i++
			continue
		}
		b.WriteString(s[i : i+size])
		i += size
	}
	return b.String()
}

// Lookup returns the codepoint of a named entity. The name may be given bare
// ("mdash") or in reference form ("&mdash;").
func Lookup(name string) (rune, bool) {
	name = strings.TrimSuffix(strings.TrimPrefix(name, "&"), ";")
	r, ok := codepoints[name]
	return r, ok
}

// Name returns the entity name for a codepoint.
func Name(r rune) (string, bool) {
	n, ok := names[r]
	return n, ok
}

// NamedTable returns the codepoint to named-entity table used by SubGreeks.
func NamedTable() *Table { return namedTable }

// NumericTable returns the named to numeric entity table used by SwapEntities.
func NumericTable() *Table { return numericTable }

// SimpleTable returns the table used by SimplifyEntities.
func SimpleTable() *Table { return simpleTable }

func resolveNames(list []string) map[string]rune {
	out := make(map[string]rune, len(list))
	for _, n := range list {
		ref := "&" + n + ";"
		decoded := html.UnescapeString(ref)
		if decoded == ref {
			continue
		}
		r, size := utf8.DecodeRuneInString(decoded)
		if r == utf8.RuneError || size != len(decoded) {
			continue
		}
		out[n] = r
	}
	return out
}

func reverseNames(list []string, cps map[string]rune) map[rune]string {
	out := make(map[rune]string, len(cps))
	for _, n := range list {
		r, ok := cps[n]
		if !ok {
			continue
		}
		if _, taken := out[r]; taken {
			continue
		}
		out[r] = n
	}
	return out
}

func buildNamedPairs() map[string]string {
	pairs := make(map[string]string, len(names)*2)
	for r, n := range names {
		if r < utf8.RuneSelf {
			continue
		}
		ref := "&" + n + ";"
		ch := string(r)
		pairs[ch] = ref
		if d := norm.NFD.String(ch); d != ch {
			pairs[d] = ref
		}
	}
	return pairs
}

func buildNumericPairs() map[string]string {
	pairs := make(map[string]string, len(codepoints))
	for n, r := range codepoints {
		pairs["&"+n+";"] = "&#" + strconv.Itoa(int(r)) + ";"
	}
	return pairs
}

func escapeBareAmpersands(s string) string {
	if !strings.Contains(s, "&") {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) + 8)
	for i := 0; i < len(s); i++ {
		if s[i] == '&' && (i+1 >= len(s) || s[i+1] != '#') {
			b.WriteString("&#38;")
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String()
}
