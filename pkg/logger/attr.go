package logger

import (
	"fmt"
	"log/slog"
)

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Field records a field (column) name under the key "field".
func Field(name string) slog.Attr {
	return slog.String("field", name)
}

// Row records a 1-based data row number under the key "row".
func Row(n int) slog.Attr {
	return slog.Int("row", n)
}

// Cleaner records the cleaner name under the key "cleaner".
func Cleaner(name string) slog.Attr {
	return slog.String("cleaner", name)
}

// Value records a field value under the key "value", truncated to 64 runes so
// a malformed cell cannot flood the log.
func Value(v any) slog.Attr {
	if s, ok := v.(fmt.Stringer); ok {
		v = s.String()
	}
	if s, ok := v.(string); ok {
		if r := []rune(s); len(r) > 64 {
			v = string(r[:64]) + "…"
		}
	}
	return slog.Any("value", v)
}

// RunID records the invocation identifier under the key "run_id".
// If id is empty, it returns an empty Attr.
func RunID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("run_id", id)
}
