package rowclean

import "github.com/dmitrymomot/textcanon/pkg/field"

// Cleaner maps a raw field value to its cleaned form. A non-nil error means
// the value could not be cleaned; the caller keeps the value it already had.
type Cleaner func(field.Value) (field.Value, error)

// Lift adapts an infallible transform into a Cleaner.
func Lift(fn func(field.Value) field.Value) Cleaner {
	return func(v field.Value) (field.Value, error) {
		return fn(v), nil
	}
}

// Chain runs cleaners left to right and stops at the first error.
// Nil cleaners are skipped; an empty chain returns its input.
func Chain(cleaners ...Cleaner) Cleaner {
	steps := make([]Cleaner, 0, len(cleaners))
	for _, c := range cleaners {
		if c != nil {
			steps = append(steps, c)
		}
	}

	return func(v field.Value) (field.Value, error) {
		for _, step := range steps {
			next, err := step(v)
			if err != nil {
				return v, err
			}
			v = next
		}
		return v, nil
	}
}
