package sanitizer

import (
	"strings"

	"github.com/dmitrymomot/textcanon/pkg/field"
)

// htmlEscaper matches escaping &, <, >, ", ' one after another with the
// ampersand first; a single pass cannot double-escape its own output.
var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

// Escape converts v to text and encodes ampersands, angle brackets and quotes.
// Null yields an empty string.
func Escape(v field.Value) string {
	return escape(v.String())
}

func escape(s string) string {
	return htmlEscaper.Replace(s)
}

// SafeSplit escapes v and splits the result on delimiter.
// An empty delimiter splits on underscores.
func SafeSplit(v field.Value, delimiter string) []string {
	if delimiter == "" {
		delimiter = "_"
	}
	return strings.Split(Escape(v), delimiter)
}
