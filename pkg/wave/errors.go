package wave

import "errors"

var (
	// ErrInvalidArgument marks a rejected input: a non-positive target
	// length or an empty sample buffer.
	ErrInvalidArgument = errors.New("wave: invalid argument")
)
