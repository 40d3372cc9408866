package perclearn

import "errors"

// Errors returned by compositing and dataset assembly.
var (
	// ErrOutOfBounds is returned when an offset places the foreground
	// partly or wholly outside the background.
	ErrOutOfBounds = errors.New("perclearn: foreground does not fit background at offset")

	// ErrNotSquare is returned when a dataset row length is not a perfect square.
	ErrNotSquare = errors.New("perclearn: row length is not a perfect square")

	// ErrNoOffsets is returned when the offset list is empty.
	ErrNoOffsets = errors.New("perclearn: no candidate offsets")

	// ErrInvalidSize is returned for a negative background size.
	// Zero selects the default size.
	ErrInvalidSize = errors.New("perclearn: invalid background size")
)
