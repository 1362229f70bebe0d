package sanitizer

import (
	"strings"

	"github.com/dmitrymomot/textcanon/pkg/field"
)

var sqlDefanger = strings.NewReplacer(
	";", "",
	"--", " ",
	"/", "",
	"*", "",
	"'", `\'`,
	`"`, `\"`,
)

// SQLSafe strips tags and defangs characters commonly used to break out of a
// SQL string literal: semicolons, comment markers and slashes are removed and
// quotes are backslash-escaped. It is not a substitute for bound parameters.
// Null and non-text values are returned unchanged.
func SQLSafe(v field.Value) field.Value {
	s, ok := v.Text()
	if !ok {
		return v
	}
	return field.Text(strings.TrimSpace(sqlDefanger.Replace(stripTags(s))))
}
