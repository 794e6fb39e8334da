package timelinedb

import "errors"

// Sentinel errors returned by this package's operations, matching the
// error taxonomy of the system this library implements. Callers should
// use errors.Is against these values; wrapped context is added with
// fmt.Errorf("%w: ...", ...) at each call site.
var (
	// ErrAllocFailed is returned when an aligned allocation cannot be
	// sized or satisfied. Fatal to the operation that raised it.
	ErrAllocFailed = errors.New("timelinedb: aligned allocation failed")

	// ErrTypeMismatch is returned when a typed accessor's bit width
	// does not match the buffer's declared layout.
	ErrTypeMismatch = errors.New("timelinedb: accessor type mismatch")

	// ErrOutOfBounds is returned when a sample or channel index is
	// beyond the buffer's declared counts.
	ErrOutOfBounds = errors.New("timelinedb: index out of bounds")

	// ErrBadShape is returned when a backend kernel is invoked on a
	// layout or channel count it cannot service.
	ErrBadShape = errors.New("timelinedb: unsupported shape")

	// ErrInvalidBackend is returned by SetBackend for an unknown index.
	ErrInvalidBackend = errors.New("timelinedb: invalid backend index")

	// ErrEmptyInput is returned when the source has fewer samples than
	// an operation requires for interpolation.
	ErrEmptyInput = errors.New("timelinedb: input has too few samples")
)
