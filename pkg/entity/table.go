package entity

import (
	"cmp"
	"slices"
	"strings"
)

// Table is an immutable substitution table. Keys are matched as exact,
// non-overlapping substrings, scanning left to right; when several keys match
// at the same position the longest one is used.
type Table struct {
	pairs map[string]string
	keys  []string
	repl  *strings.Replacer
}

func newTable(pairs map[string]string) *Table {
	keys := make([]string, 0, len(pairs))
	for k := range pairs {
		if k == "" {
			continue
		}
		keys = append(keys, k)
	}

	// strings.Replacer tries candidates in argument order at each position,
	// so longest-first ordering makes the result independent of map order.
	slices.SortFunc(keys, func(a, b string) int {
		if c := cmp.Compare(len(b), len(a)); c != 0 {
			return c
		}
		return strings.Compare(a, b)
	})

	oldnew := make([]string, 0, len(keys)*2)
	for _, k := range keys {
		oldnew = append(oldnew, k, pairs[k])
	}

	return &Table{
		pairs: pairs,
		keys:  keys,
		repl:  strings.NewReplacer(oldnew...),
	}
}

// Replace applies the table to s in a single pass.
func (t *Table) Replace(s string) string {
	if s == "" || len(t.keys) == 0 {
		return s
	}
	return t.repl.Replace(s)
}

// Lookup returns the replacement for key.
func (t *Table) Lookup(key string) (string, bool) {
	v, ok := t.pairs[key]
	return v, ok
}

// Len returns the number of keys in the table.
func (t *Table) Len() int { return len(t.keys) }

// Keys returns the table keys in match priority order.
func (t *Table) Keys() []string { return slices.Clone(t.keys) }
