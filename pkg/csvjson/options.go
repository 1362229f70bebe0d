package csvjson

import (
	"log/slog"

	"github.com/dmitrymomot/textcanon/pkg/rowclean"
)

// Option configures the reader.
type Option func(*options)

type options struct {
	reformatter *rowclean.Reformatter
	rawFirstRow bool
	comma       rune
	strict      bool
	logger      *slog.Logger
}

func defaultOptions() *options {
	return &options{
		comma:  ',',
		logger: slog.Default(),
	}
}

// WithReformatter cleans every row with rf.
func WithReformatter(rf *rowclean.Reformatter) Option {
	return func(o *options) {
		o.reformatter = rf
	}
}

// WithRawFirstRow emits the first data row without cleaning.
func WithRawFirstRow() Option {
	return func(o *options) {
		o.rawFirstRow = true
	}
}

// WithComma sets the field delimiter. Zero is ignored.
func WithComma(r rune) Option {
	return func(o *options) {
		if r != 0 {
			o.comma = r
		}
	}
}

// WithStrict yields malformed records as errors instead of skipping them.
func WithStrict() Option {
	return func(o *options) {
		o.strict = true
	}
}

// WithLogger sets the logger for skipped records and conversion summaries.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}
