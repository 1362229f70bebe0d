package rowclean

import (
	"github.com/dmitrymomot/textcanon/pkg/cache"
	"github.com/dmitrymomot/textcanon/pkg/field"
)

type memoResult struct {
	value field.Value
	err   error
}

// Memoize caches the results of c for up to size distinct inputs.
// c must be a pure function of its input; panics are not cached.
// A non-positive size returns c unchanged.
func Memoize(c Cleaner, size int) Cleaner {
	if c == nil || size <= 0 {
		return c
	}
	lru := cache.NewLRU[field.Value, memoResult](size)

	return func(v field.Value) (field.Value, error) {
		if r, ok := lru.Get(v); ok {
			return r.value, r.err
		}
		out, err := c(v)
		lru.Put(v, memoResult{value: out, err: err})
		return out, err
	}
}
