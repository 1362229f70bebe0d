package csvjson

import "errors"

var (
	// ErrReadHeader is returned when the header line cannot be read.
	ErrReadHeader = errors.New("failed to read header row")

	// ErrReadRecord is returned when a data record cannot be read.
	ErrReadRecord = errors.New("failed to read record")

	// ErrEncodeRow is returned when a cleaned row cannot be encoded as JSON.
	ErrEncodeRow = errors.New("failed to encode row")

	// ErrWrite is returned when output cannot be written.
	ErrWrite = errors.New("failed to write output")
)
