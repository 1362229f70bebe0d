// Package rowclean applies cleaning functions to the fields of a row.
//
// A Cleaner maps one field.Value to its cleaned form and may fail. A
// Reformatter runs an optional global Cleaner on every field, then the
// Cleaner registered for that field name. Failures never abort a row: the
// field keeps the value the failing cleaner received, the failure is logged
// at warn level, and it is reported in the per-field Result.
//
// # Usage
//
//	reg := rowclean.DefaultRegistry()
//	title, _ := reg.ParseChain("compact,entities")
//
//	rf := rowclean.New(
//	    rowclean.WithGlobal(rowclean.Lift(sanitizer.TextOnly(strings.TrimSpace))),
//	    rowclean.WithField("title", title),
//	    rowclean.WithLogger(log),
//	)
//
//	cleaned, results := rf.Reformat(ctx, row)
//	for _, res := range results {
//	    if !res.OK() {
//	        // res.Value == res.Prior
//	    }
//	}
//
// # Registry
//
// DefaultRegistry exposes the sanitizer and entity transforms by name:
// trim, lower, upper, strip_tags, compact, compress_whitespace, escape,
// slugify, price, price_float, zipcode, bool, int, numbers, decimals,
// sql_safe, ascii, sub_greeks, swap_entities, simplify_entities and entities
// (sub_greeks followed by swap_entities). Unknown names wrap
// ErrUnknownCleaner.
//
// # Profiles
//
// A Profile lists cleaner names in YAML and builds a Reformatter:
//
//	p, err := rowclean.LoadProfile("products.yaml")
//	rf, err := p.Build(rowclean.DefaultRegistry(), rowclean.WithLogger(log))
package rowclean
