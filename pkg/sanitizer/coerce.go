package sanitizer

import (
	"math"
	"strconv"
	"strings"

	"github.com/dmitrymomot/textcanon/pkg/field"
)

// SafeBool coerces v to a boolean. Null is false. Text is stripped of tags
// first; "0" and "False" are false, any other non-empty text is true.
// Numbers and booleans use their usual truthiness.
func SafeBool(v field.Value) bool {
	if v.IsNull() {
		return false
	}

	stripped := StripTags(v)
	if s, ok := stripped.Text(); ok && (s == "0" || s == "False") {
		return false
	}

	return stripped.Truthy()
}

// SafeInt coerces v to an integer. It first parses the text form directly and
// then falls back to the digits found in it, so "12.3" and "<1a2b3c/>" yield
// 123. Numbers truncate toward zero and booleans map to 0 and 1.
// The boolean is false when no integer can be produced.
func SafeInt(v field.Value) (int64, bool) {
	switch v.Kind() {
	case field.KindNull:
		return 0, false
	case field.KindBoolean:
		if b, _ := v.Bool(); b {
			return 1, true
		}
		return 0, true
	case field.KindNumber:
		f, _ := v.Number()
		if math.IsNaN(f) || math.IsInf(f, 0) || f >= math.MaxInt64 || f < math.MinInt64 {
			return 0, false
		}
		return int64(f), true
	}

	s := v.String()
	if n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64); err == nil {
		return n, true
	}
	if n, err := strconv.ParseInt(extractNumbers(s, false), 10, 64); err == nil {
		return n, true
	}
	return 0, false
}

// SafeIntOr is SafeInt with a fallback value.
func SafeIntOr(v field.Value, def int64) int64 {
	if n, ok := SafeInt(v); ok {
		return n
	}
	return def
}
