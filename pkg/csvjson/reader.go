package csvjson

import (
	"context"
	"encoding/csv"
	"errors"
	"io"
	"iter"
	"strings"

	"github.com/dmitrymomot/textcanon/pkg/field"
	"github.com/dmitrymomot/textcanon/pkg/logger"
	"github.com/dmitrymomot/textcanon/pkg/rowclean"
)

const utf8BOM = "\ufeff"

// Records reads a delimited file with a header line and yields one row per
// record, in input order, cleaned by the configured Reformatter.
//
// Short records are padded with empty text and long records are truncated to
// the header width. Malformed records are logged and skipped unless
// WithStrict is set. Iteration stops at the first I/O error or when ctx is
// done, yielding that error.
func Records(ctx context.Context, r io.Reader, opts ...Option) iter.Seq2[*rowclean.Row, error] {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	log := o.logger.With(logger.Component("csvjson"))

	return func(yield func(*rowclean.Row, error) bool) {
		reader := csv.NewReader(r)
		reader.Comma = o.comma
		reader.FieldsPerRecord = -1
		reader.ReuseRecord = true

		header, err := reader.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return
			}
			yield(nil, errors.Join(ErrReadHeader, err))
			return
		}
		names := make([]string, len(header))
		copy(names, header)
		if len(names) > 0 {
			names[0] = strings.TrimPrefix(names[0], utf8BOM)
		}

		n := 0
		for {
			if err := ctx.Err(); err != nil {
				yield(nil, err)
				return
			}

			record, err := reader.Read()
			if errors.Is(err, io.EOF) {
				return
			}
			if err != nil {
				var perr *csv.ParseError
				if errors.As(err, &perr) && !o.strict {
					log.WarnContext(ctx, "skipping malformed record",
						logger.Row(n+1),
						logger.Error(err),
					)
					continue
				}
				if !yield(nil, errors.Join(ErrReadRecord, err)) || perr == nil {
					return
				}
				continue
			}

			n++
			row := rowclean.NewRow(names, toValues(record, len(names)))

			if o.reformatter != nil && !(o.rawFirstRow && n == 1) {
				row, _ = o.reformatter.Reformat(WithRowNumber(ctx, n), row)
			}

			if !yield(row, nil) {
				return
			}
		}
	}
}

// Rows is Records with every row encoded as a JSON object whose keys follow
// the header order.
func Rows(ctx context.Context, r io.Reader, opts ...Option) iter.Seq2[[]byte, error] {
	return func(yield func([]byte, error) bool) {
		for row, err := range Records(ctx, r, opts...) {
			if err != nil {
				if !yield(nil, err) {
					return
				}
				continue
			}

			data, err := row.MarshalJSON()
			if err != nil {
				if !yield(nil, errors.Join(ErrEncodeRow, err)) {
					return
				}
				continue
			}

			if !yield(data, nil) {
				return
			}
		}
	}
}

func toValues(record []string, width int) []field.Value {
	values := make([]field.Value, width)
	for i := range values {
		if i < len(record) {
			values[i] = field.Text(record[i])
		} else {
			values[i] = field.Text("")
		}
	}
	return values
}
