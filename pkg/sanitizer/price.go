package sanitizer

import (
	"strconv"
	"strings"

	"github.com/dmitrymomot/textcanon/pkg/field"
)

// PriceLike normalizes v to a "<dollars>.<cents>" string with exactly two
// cent digits: "19.5" becomes "19.50", "$1,200" becomes "1200.00".
//
// Empty input and input with more than one decimal point yield "".
// Cents are truncated to two digits, never rounded.
func PriceLike(v field.Value) string {
	s := strings.TrimSpace(v.String())
	if s == "" {
		return ""
	}

	var dollars, cents string

	parts := strings.Split(s, ".")
	switch len(parts) {
	case 1:
		dollars = extractNumbers(parts[0], false)
		cents = "00"
	case 2:
		dollars = extractNumbers(parts[0], false)
		cents = digitsOnly(parts[1])
	default:
		return ""
	}

	switch len(cents) {
	case 0:
		cents = "00"
	case 1:
		cents += "0"
	case 2:
	default:
		cents = cents[:2]
	}

	switch dollars {
	case "":
		dollars = "0"
	case "-":
		dollars = "-0"
	}

	return dollars + "." + cents
}

// PriceLikeFloat is PriceLike parsed as a float64. The boolean is false when
// there is no price.
func PriceLikeFloat(v field.Value) (float64, bool) {
	p := PriceLike(v)
	if p == "" {
		return 0, false
	}

	f, err := strconv.ParseFloat(p, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}
