package csvjson

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/textcanon/pkg/logger"
)

type rowKey struct{}

// WithRowNumber returns a copy of ctx carrying the 1-based data row number.
func WithRowNumber(ctx context.Context, n int) context.Context {
	return context.WithValue(ctx, rowKey{}, n)
}

// RowNumber returns the data row number stored in ctx.
func RowNumber(ctx context.Context) (int, bool) {
	n, ok := ctx.Value(rowKey{}).(int)
	return n, ok
}

// RowExtractor adds the current row number to log records emitted while a
// row is being cleaned. Register it with logger.WithContextExtractors.
func RowExtractor(ctx context.Context) (slog.Attr, bool) {
	n, ok := RowNumber(ctx)
	if !ok {
		return slog.Attr{}, false
	}
	return logger.Row(n), true
}
