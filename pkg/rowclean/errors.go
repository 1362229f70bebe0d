package rowclean

import "errors"

var (
	// ErrCleanerFailed wraps an error returned by a cleaner.
	ErrCleanerFailed = errors.New("cleaner failed")

	// ErrCleanerPanic is reported when a cleaner panics.
	ErrCleanerPanic = errors.New("cleaner panicked")

	// ErrUnknownCleaner is returned when a name is not in the registry.
	ErrUnknownCleaner = errors.New("unknown cleaner")

	// ErrInvalidCleaner is returned when registering an empty name or a nil cleaner.
	ErrInvalidCleaner = errors.New("invalid cleaner registration")

	// ErrNotNumber is returned by numeric cleaners when no number can be derived.
	ErrNotNumber = errors.New("value is not a number")

	// ErrInvalidProfile is returned when a profile document cannot be parsed.
	ErrInvalidProfile = errors.New("invalid cleaning profile")

	// ErrProfileRead is returned when a profile file cannot be read.
	ErrProfileRead = errors.New("failed to read cleaning profile")
)
