package game

import "github.com/pkg/errors"

var (
	ErrOutOfBounds      = errors.New("coordinates out of bounds")
	ErrNotPopulated     = errors.New("board has not been populated")
	ErrAlreadyPopulated = errors.New("board has already been populated")
	ErrFlagOnRevealed   = errors.New("cannot flag or unflag a revealed tile")
	ErrInvalidParams    = errors.New("invalid board parameters")
	ErrInvalidTile      = errors.New("invalid tile state")
)
