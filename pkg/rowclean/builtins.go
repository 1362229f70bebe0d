package rowclean

import (
	"fmt"
	"strings"

	"github.com/dmitrymomot/textcanon/pkg/entity"
	"github.com/dmitrymomot/textcanon/pkg/field"
	"github.com/dmitrymomot/textcanon/pkg/sanitizer"
)

func builtins() map[string]Cleaner {
	subGreeks := sanitizer.Stringify(entity.SubGreeks)
	swapEntities := sanitizer.TextOnly(entity.SwapEntities)

	return map[string]Cleaner{
		"trim":                Lift(sanitizer.TextOnly(strings.TrimSpace)),
		"lower":               Lift(sanitizer.TextOnly(strings.ToLower)),
		"upper":               Lift(sanitizer.TextOnly(strings.ToUpper)),
		"strip_tags":          Lift(sanitizer.StripTags),
		"compact":             Lift(sanitizer.StripAndCompact),
		"compress_whitespace": Lift(sanitizer.Stringify(sanitizer.CompressWhitespace)),
		"escape":              Lift(sanitizer.Stringify(sanitizer.Escape)),
		"slugify":             Lift(sanitizer.Slugify),
		"price":               Lift(sanitizer.Stringify(sanitizer.PriceLike)),
		"price_float":         priceFloat,
		"zipcode":             Lift(sanitizer.Stringify(sanitizer.FormatZipcode)),
		"bool":                Lift(toBool),
		"int":                 toInt,
		"numbers":             Lift(sanitizer.Stringify(digits)),
		"decimals":            Lift(sanitizer.Stringify(decimals)),
		"sql_safe":            Lift(sanitizer.SQLSafe),
		"ascii":               Lift(sanitizer.ToASCII),
		"sub_greeks":          Lift(subGreeks),
		"swap_entities":       Lift(swapEntities),
		"simplify_entities":   Lift(sanitizer.TextOnly(entity.SimplifyEntities)),
		"entities":            Lift(sanitizer.Compose[field.Value](subGreeks, swapEntities)),
	}
}

func digits(v field.Value) string   { return sanitizer.ExtractNumbersSafe(v, false) }
func decimals(v field.Value) string { return sanitizer.ExtractNumbersSafe(v, true) }

func toBool(v field.Value) field.Value {
	return field.Bool(sanitizer.SafeBool(v))
}

func toInt(v field.Value) (field.Value, error) {
	if v.IsNull() {
		return v, nil
	}
	n, ok := sanitizer.SafeInt(v)
	if !ok {
		return v, fmt.Errorf("%w: %q", ErrNotNumber, v.String())
	}
	return field.Int(n), nil
}

func priceFloat(v field.Value) (field.Value, error) {
	if v.IsNull() {
		return v, nil
	}
	f, ok := sanitizer.PriceLikeFloat(v)
	if !ok {
		return v, fmt.Errorf("%w: %q", ErrNotNumber, v.String())
	}
	return field.Number(f), nil
}
