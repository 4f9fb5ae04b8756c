package seqmatrix

import "errors"

// Sentinel errors for seqmatrix operations. Callers match them with errors.Is.
var (
	// ErrEmptySequence indicates one or both input sequences have zero length.
	ErrEmptySequence = errors.New("seqmatrix: input sequences must be non-empty")

	// ErrAlreadyPadded indicates Pad was called on a grid that is already padded.
	ErrAlreadyPadded = errors.New("seqmatrix: grid is already padded")

	// ErrAlreadyFilled indicates a fill pass was requested on a filled grid.
	ErrAlreadyFilled = errors.New("seqmatrix: grid is already filled")

	// ErrOutOfRange indicates a row or column outside the grid.
	ErrOutOfRange = errors.New("seqmatrix: coordinate out of range")
)
