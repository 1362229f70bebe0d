package csvjson

import (
	"bufio"
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/dmitrymomot/textcanon/pkg/logger"
)

// Convert writes one JSON object per line to w for every record read from r
// and returns the number of rows written. It stops at the first error.
func Convert(ctx context.Context, r io.Reader, w io.Writer, opts ...Option) (int, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	bw := bufio.NewWriter(w)
	written := 0

	for data, err := range Rows(ctx, r, opts...) {
		if err != nil {
			_ = bw.Flush()
			return written, err
		}
		if _, err := bw.Write(data); err != nil {
			return written, errors.Join(ErrWrite, err)
		}
		if err := bw.WriteByte('\n'); err != nil {
			return written, errors.Join(ErrWrite, err)
		}
		written++
	}

	if err := bw.Flush(); err != nil {
		return written, errors.Join(ErrWrite, err)
	}

	o.logger.DebugContext(ctx, "conversion finished",
		logger.Component("csvjson"),
		slog.Int("rows", written),
	)
	return written, nil
}
