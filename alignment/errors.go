package alignment

import "errors"

// Sentinel errors for alignment operations. Callers match them with errors.Is.
var (
	// ErrCoordinateNotFound indicates a coordinate that is not part of the path.
	ErrCoordinateNotFound = errors.New("alignment: coordinate not in path")

	// ErrNotScored indicates a grid that is nil or not Needleman–Wunsch filled.
	ErrNotScored = errors.New("alignment: grid is not filled with global alignment scores")

	// ErrEmptyPath indicates a path with no coordinates.
	ErrEmptyPath = errors.New("alignment: path must contain at least one coordinate")

	// ErrMalformedPath indicates a path that breaks the terminal-to-origin step rules.
	ErrMalformedPath = errors.New("alignment: malformed path")
)
