package codec

import "errors"

const namespace = "codec"

var (
	// ErrInsufficientCapacity is returned when the block compressor could
	// not fit its output in the destination buffer. The caller may retry
	// with a larger buffer; the input is unaffected.
	ErrInsufficientCapacity = errors.New(namespace + ": insufficient destination capacity")

	// ErrCorrupt is returned for a frame with a bad version, inconsistent
	// flags (delta set on a type without a delta capability), or a
	// negative size reported by the block compressor. Not recoverable;
	// the frame is rejected outright.
	ErrCorrupt = errors.New(namespace + ": corrupt frame")
)
