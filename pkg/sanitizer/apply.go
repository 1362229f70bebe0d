package sanitizer

import "github.com/dmitrymomot/textcanon/pkg/field"

// Transform is a single canonicalization step over a field value.
type Transform func(field.Value) field.Value

// Apply runs value through transforms in order.
func Apply[T any](value T, transforms ...func(T) T) T {
	result := value

	for _, transform := range transforms {
		result = transform(result)
	}

	return result
}

// Compose builds a reusable pipeline from transforms.
// Preferred over repeated Apply calls when the same chain runs for every row.
func Compose[T any](transforms ...func(T) T) func(T) T {
	return func(value T) T {
		return Apply(value, transforms...)
	}
}

// TextOnly lifts a string function into a Transform that only touches Text
// values. Null and non-text values pass through unchanged.
func TextOnly(fn func(string) string) Transform {
	return func(v field.Value) field.Value {
		s, ok := v.Text()
		if !ok {
			return v
		}
		return field.Text(fn(s))
	}
}

// Stringify lifts a function returning text into a Transform that always
// yields Text, except that Null stays Null.
func Stringify(fn func(field.Value) string) Transform {
	return func(v field.Value) field.Value {
		if v.IsNull() {
			return v
		}
		return field.Text(fn(v))
	}
}
