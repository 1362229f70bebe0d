// Package cache provides a generic, thread-safe LRU cache.
//
// textcanon uses it to memoize cleaners: catalog files repeat the same
// category, ZIP or price text on many rows, and a cleaner is a pure function
// of its input.
//
//	c := cache.NewLRU[string, int](1024)
//	c.Put("a", 1)
//	v, ok := c.Get("a")
//
// Stats reports hits and misses so callers can log cache effectiveness.
package cache
