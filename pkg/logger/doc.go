// Package logger builds the *slog.Logger used by textcanon commands and
// supplies attribute helpers with consistent key names.
//
// New creates a logger configured by Option functions:
//
//   - WithEnvironment – development (text, debug) or staging/production
//     (JSON, info) defaults plus service and env attributes.
//   - WithFormat / WithTextFormatter / WithJSONFormatter – output format.
//   - WithLevel – minimum level; ParseLevel turns a config string into one.
//   - WithOutput – destination writer (stderr by default, so cleaned data on
//     stdout stays machine-readable).
//   - WithAttr – static attributes.
//   - WithContextExtractors / WithContextValue – attributes read from the
//     context on every record.
//
// # Usage
//
//	import "github.com/dmitrymomot/textcanon/pkg/logger"
//
//	log := logger.New(
//	    logger.WithEnvironment("production", "textcanon"),
//	    logger.WithContextValue("run_id", runIDKey{}),
//	)
//	log.WarnContext(ctx, "cleaner failed, value kept",
//	    logger.Row(12),
//	    logger.Field("price"),
//	    logger.Error(err),
//	)
//
// Error and RunID return an empty Attr for nil or empty input, which slog
// drops, so callers need no nil checks.
package logger
