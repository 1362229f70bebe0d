// Package entity transcodes between raw characters, named HTML entities,
// numeric character references and plain ASCII approximations.
//
// The package exposes three independent single-pass stages:
//
//   - SubGreeks – non-ASCII characters to named entities ("é" → "&eacute;").
//   - SwapEntities – named entities to numeric references ("&mdash;" →
//     "&#8212;"), then every bare ampersand to "&#38;".
//   - SimplifyEntities – common entities and smart punctuation to readable
//     ASCII ("&ldquo;" → `"`, "—" → "--").
//
// The stages compose but are not inverse to each other: simplification only
// covers a subset of what the other stages produce.
//
// # Tables
//
// Each stage is backed by a Table built once at package initialisation from
// the HTML 4 entity name list. Codepoints are resolved with
// golang.org/x/net/html, decomposed spellings of accented letters are derived
// with golang.org/x/text/unicode/norm. Keys are matched longest first, so the
// output never depends on map iteration order.
//
// # Usage
//
//	import "github.com/dmitrymomot/textcanon/pkg/entity"
//
//	named := entity.SubGreeks(field.Text("café — crème"))
//	// "caf&eacute; &mdash; cr&egrave;me"
//
//	numeric := entity.SwapEntities(named)
//	// "caf&#233; &#8212; cr&#232;me"
//
// All functions are safe for concurrent use.
package entity
