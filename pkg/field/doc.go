// Package field defines Value, the tagged variant every transform in textcanon
// consumes and produces.
//
// A Value holds exactly one of four variants: Null, Text, Number or Boolean.
// The zero Value is Null, so an unset struct field or map entry behaves like a
// missing cell in a delimited file.
//
// # Usage
//
//	import "github.com/dmitrymomot/textcanon/pkg/field"
//
//	v := field.Of(row["price"]) // string, number, bool or nil
//	if v.IsNull() {
//	    // propagate the missing value
//	}
//	s := v.String() // canonical text form
//
// # Canonical text form
//
// String is the single coercion used by transforms that accept any value:
// Null renders as the empty string, booleans as "True" and "False", and
// numbers in their shortest decimal form without an exponent.
//
// # JSON
//
// Value implements json.Marshaler and json.Unmarshaler and round-trips
// through null, string, number and bool literals.
package field
