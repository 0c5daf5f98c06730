package engine

import "errors"

var (
	// ErrMalformedInput indicates a loader could not parse a line of the
	// input file.
	ErrMalformedInput = errors.New("engine: malformed input")

	// ErrRatioOutOfRange indicates a requested ratio was not in (0, 1].
	ErrRatioOutOfRange = errors.New("engine: ratio out of range")

	// ErrDegenerateTarget indicates the requested target triangle count is
	// below 4 ("Object will not survive such extreme decimation").
	ErrDegenerateTarget = errors.New("engine: object will not survive such extreme decimation")

	// ErrIOFailure indicates the input or output file could not be opened.
	ErrIOFailure = errors.New("engine: I/O failure")
)
