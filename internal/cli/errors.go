package cli

import "errors"

var (
	ErrInvalidFieldFlag = errors.New("invalid --field value, expected column=cleaner[,cleaner...]")
	ErrInvalidComma     = errors.New("invalid --comma value, expected a single character")
	ErrInvalidLogFormat = errors.New("invalid log format, expected json or text")
)
