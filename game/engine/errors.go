package engine

import "errors"

// The three recoverable game errors. Anything else a caller can trigger
// (such as a wrong-length position vector) is a contract violation and
// panics instead of being reported through these.
var (
	// ErrTooFewDimensions is returned when a board is requested with fewer
	// than two axes. A 0-D or 1-D board has no drop-axis split and no
	// four-in-a-row geometry.
	ErrTooFewDimensions = errors.New("board needs at least two dimensions")

	// ErrAxisFull is returned when the drop axis at the given fixed
	// coordinates has no empty cell left. The board is unchanged and the
	// caller may retry at a different position.
	ErrAxisFull = errors.New("drop axis is full at this position")

	// ErrBoardFull is returned when a move is attempted after the round
	// counter has exceeded the board's capacity. Terminal for the game
	// instance.
	ErrBoardFull = errors.New("board is full")
)
