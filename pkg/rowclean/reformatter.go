package rowclean

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/dmitrymomot/textcanon/pkg/field"
	"github.com/dmitrymomot/textcanon/pkg/logger"
)

// Reformatter applies a global cleaner and per-field cleaners to rows.
// It is safe for concurrent use once built.
type Reformatter struct {
	global Cleaner
	fields map[string]Cleaner
	logger *slog.Logger
}

// New builds a Reformatter. Without options it copies rows unchanged.
func New(opts ...Option) *Reformatter {
	r := &Reformatter{
		fields: make(map[string]Cleaner),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.logger = r.logger.With(logger.Component("rowclean"))
	return r
}

// Reformat returns a cleaned copy of row and one Result per field, in field
// order. For every field the global cleaner runs first, then the field's own
// cleaner on the globally cleaned value. A failing or panicking cleaner is
// logged at warn level and the value it received is kept; the row is never
// dropped.
func (r *Reformatter) Reformat(ctx context.Context, row *Row) (*Row, []Result) {
	if row == nil {
		return NewRow(nil, nil), nil
	}

	out := row.Clone()
	results := make([]Result, 0, row.Len())

	for _, name := range row.names {
		raw := row.values[name]
		res := Result{Field: name, Value: raw, Prior: raw}

		if r.global != nil {
			res.Applied = true
			r.step(ctx, name, r.global, &res)
		}
		if c, ok := r.fields[name]; ok {
			res.Applied = true
			r.step(ctx, name, c, &res)
		}

		out.values[name] = res.Value
		results = append(results, res)
	}

	return out, results
}

// HasCleaners reports whether any cleaner is configured.
func (r *Reformatter) HasCleaners() bool {
	return r.global != nil || len(r.fields) > 0
}

func (r *Reformatter) step(ctx context.Context, name string, c Cleaner, res *Result) {
	in := res.Value
	cleaned, err := safeCall(c, in)
	if err == nil {
		res.Value = cleaned
		return
	}

	err = fmt.Errorf("field %q: %w", name, err)
	res.Prior = in
	res.Value = in
	res.Err = errors.Join(res.Err, err)

	r.logger.WarnContext(ctx, "cleaner failed, prior value kept",
		logger.Field(name),
		logger.Value(in),
		logger.Error(err),
	)
}

func safeCall(c Cleaner, v field.Value) (out field.Value, err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("%w: %v", ErrCleanerPanic, p)
		}
	}()

	out, err = c(v)
	if err != nil {
		return v, errors.Join(ErrCleanerFailed, err)
	}
	return out, nil
}
