package mines

import "errors"

var (
	// ErrInvalidConfiguration is returned when a board cannot be built from
	// the given parameters. Retrying with the same parameters will fail again.
	ErrInvalidConfiguration = errors.New("invalid board configuration")

	// ErrOutOfBounds is returned when a move or a coordinate lookup
	// addresses a cell outside the grid. The board is left untouched.
	ErrOutOfBounds = errors.New("cell out of bounds")
)
