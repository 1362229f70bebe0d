package rowclean

import "log/slog"

// Option configures a Reformatter.
type Option func(*Reformatter)

// WithGlobal sets the cleaner applied to every field before its per-field cleaner.
func WithGlobal(c Cleaner) Option {
	return func(r *Reformatter) {
		r.global = c
	}
}

// WithFieldCleaners merges cleaners keyed by field name.
func WithFieldCleaners(cleaners map[string]Cleaner) Option {
	return func(r *Reformatter) {
		for name, c := range cleaners {
			if c != nil {
				r.fields[name] = c
			}
		}
	}
}

// WithField sets the cleaner for a single field.
func WithField(name string, c Cleaner) Option {
	return func(r *Reformatter) {
		if c != nil {
			r.fields[name] = c
		}
	}
}

// WithLogger sets the logger used to report cleaner failures.
func WithLogger(l *slog.Logger) Option {
	return func(r *Reformatter) {
		if l != nil {
			r.logger = l
		}
	}
}
