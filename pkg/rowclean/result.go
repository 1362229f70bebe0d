package rowclean

import "github.com/dmitrymomot/textcanon/pkg/field"

// Result is the outcome of cleaning one field.
type Result struct {
	Field string
	// Value is what the output row holds for Field.
	Value field.Value
	// Prior is the input of the cleaner that failed, or the raw value when
	// nothing failed. On failure Value equals Prior.
	Prior field.Value
	// Err joins every cleaner failure for the field.
	Err error
	// Applied reports whether any cleaner was configured for the field.
	Applied bool
}

// OK reports whether every configured cleaner succeeded.
func (r Result) OK() bool {
	return r.Err == nil
}
