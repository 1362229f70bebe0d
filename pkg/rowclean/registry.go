package rowclean

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
)

// Registry maps cleaner names to cleaners. It is safe for concurrent use.
type Registry struct {
	mu       sync.RWMutex
	cleaners map[string]Cleaner
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{cleaners: make(map[string]Cleaner)}
}

// DefaultRegistry returns a new registry holding every built-in cleaner.
// Each call returns an independent registry.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	for name, c := range builtins() {
		r.cleaners[name] = c
	}
	return r
}

// Register sets or replaces the cleaner for name.
func (r *Registry) Register(name string, c Cleaner) error {
	name = strings.TrimSpace(name)
	if name == "" || c == nil {
		return fmt.Errorf("%w: %q", ErrInvalidCleaner, name)
	}

	r.mu.Lock()
	r.cleaners[name] = c
	r.mu.Unlock()
	return nil
}

// Lookup returns the cleaner registered under name.
func (r *Registry) Lookup(name string) (Cleaner, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.cleaners[strings.TrimSpace(name)]
	return c, ok
}

// Resolve chains the named cleaners in order. Blank names are ignored.
// Every unknown name is reported, each wrapping ErrUnknownCleaner.
func (r *Registry) Resolve(names ...string) (Cleaner, error) {
	steps := make([]Cleaner, 0, len(names))
	var errs []error
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		c, ok := r.Lookup(name)
		if !ok {
			errs = append(errs, fmt.Errorf("%w: %q", ErrUnknownCleaner, name))
			continue
		}
		steps = append(steps, c)
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return Chain(steps...), nil
}

// ParseChain resolves a comma-separated list such as "compact,slugify".
func (r *Registry) ParseChain(list string) (Cleaner, error) {
	return r.Resolve(strings.Split(list, ",")...)
}

// Names returns the registered names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	names := make([]string, 0, len(r.cleaners))
	for name := range r.cleaners {
		names = append(names, name)
	}
	r.mu.RUnlock()

	slices.Sort(names)
	return names
}
