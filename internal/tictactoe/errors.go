package tictactoe

import "errors"

var (
	// ErrInvalidMove is returned when a move targets a cell outside the
	// board or one that is already occupied.
	ErrInvalidMove = errors.New("invalid move")
)
