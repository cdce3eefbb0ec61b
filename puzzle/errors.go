package puzzle

import "errors"

var (
	// ErrInvalidBoard indicates a board that is not a permutation of 0..8.
	ErrInvalidBoard = errors.New("puzzle: invalid board")

	// ErrInvalidDepth indicates a search depth below one level.
	ErrInvalidDepth = errors.New("puzzle: depth must be at least 1")
)
