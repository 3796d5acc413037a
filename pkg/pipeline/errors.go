package pipeline

import "errors"

var (
	// ErrNotFunc reports a stage value that is not callable.
	ErrNotFunc = errors.New("pipeline: stage is not a function")

	// ErrUnsupportedUnpack reports an unrecognized result unpack mode.
	ErrUnsupportedUnpack = errors.New("pipeline: unsupported unpack mode")

	// ErrUnpack reports a tuple-unpack stage whose result is not an ordered
	// sequence of positional arguments.
	ErrUnpack = errors.New("pipeline: result cannot be unpacked as positional arguments")
)
