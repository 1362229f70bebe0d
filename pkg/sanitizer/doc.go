// Package sanitizer canonicalizes untrusted free-form text into safe,
// consistent representations for ingestion pipelines.
//
// Every function takes a field.Value (Null, Text, Number or Boolean) and
// states what it does with each variant: text-only transforms return Null and
// non-text values unchanged, while extractors such as PriceLike or
// FormatZipcode coerce any value through its canonical text form.
//
// The functions are grouped conceptually into several areas:
//
//   - Markup & whitespace – StripTags, CompressWhitespace, StripAndCompact,
//     Escape, SafeSplit.
//
//   - Slugs & tags – Slugify, SplitTaxonomyTags.
//
//   - Numbers & formats – ExtractNumbersSafe, PriceLike, PriceLikeFloat,
//     FormatZipcode, AddLeadingPadding.
//
//   - Coercion – SafeBool, SafeInt, SafeIntOr.
//
//   - Defanging & folding – SQLSafe, ToASCII.
//
// Entity transcoding lives in the sibling package entity.
//
// The higher-order Apply and Compose helpers build pipelines:
//
//	clean := sanitizer.Compose(
//	    sanitizer.StripAndCompact,
//	    sanitizer.ToASCII,
//	)
//
//	v := clean(field.Text("  <b>Crème</b>\n brûlée ")) // "Creme brulee"
//
// # Usage
//
//	import "github.com/dmitrymomot/textcanon/pkg/sanitizer"
//
//	sanitizer.PriceLike(field.Text("$19.5"))      // "19.50"
//	sanitizer.FormatZipcode(field.Text("9021012")) // "00902-1012"
//	sanitizer.Slugify(field.Text(`"oh_hai!"`))     // "oh-hai"
//
// # Error handling
//
// None of the helpers returns an error or panics. Malformed input resolves to
// an empty string or a false "ok" flag; type mismatches pass through.
//
// # Performance
//
// Regular expressions are compiled once at package initialisation. There is no
// mutable global state, so every helper is safe for concurrent use.
package sanitizer
