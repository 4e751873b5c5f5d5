package cli

import "errors"

var (
	// ErrInvalidNumber is returned when a numeric argument cannot be parsed.
	ErrInvalidNumber = errors.New("arrdrill: invalid number")

	// ErrInvalidRecords is returned when stdin is not a JSON array of objects.
	ErrInvalidRecords = errors.New("arrdrill: expected a JSON array of objects on stdin")

	// ErrUnknownLogFormat is returned for a --log-format other than text or json.
	ErrUnknownLogFormat = errors.New("arrdrill: unknown log format")
)
