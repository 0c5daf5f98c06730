package ioformat

import "errors"

var (
	// ErrMalformedLine indicates a loader could not parse a line of input.
	ErrMalformedLine = errors.New("ioformat: malformed input line")

	// ErrIOFailure indicates a read or write operation failed.
	ErrIOFailure = errors.New("ioformat: I/O failure")
)
