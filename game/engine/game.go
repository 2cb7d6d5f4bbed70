package engine

// Game composes a Board with a WinDetector behind the move API and tracks
// round count and the board-full condition. One Game instance serves one
// game, driven by a single caller issuing moves sequentially.
type Game struct {
	board    *Board
	detector *WinDetector
	round    int
	won      bool
}

// NewGame creates a game on an all-empty board with the given dimension
// sizes. It fails with ErrTooFewDimensions under the same condition as
// NewBoard. The round counter starts at 1.
func NewGame(dims []int) (*Game, error) {
	board, err := NewBoard(dims)
	if err != nil {
		return nil, err
	}

	return &Game{
		board:    board,
		detector: NewWinDetector(board.NDim()),
		round:    1,
	}, nil
}

// PlayDisk drops a disk of the given color at the fixed coordinates in
// partial (one per axis except the drop axis) and reports whether the move
// won. It fails with ErrBoardFull once the round counter exceeds the board
// capacity, before touching the board, and propagates ErrAxisFull from the
// board with the round counter unchanged. A wrong-length partial panics.
// The round counter advances only on an accepted non-winning move.
func (g *Game) PlayDisk(color Color, partial []int) (bool, error) {
	if g.round > g.board.Capacity() {
		return false, ErrBoardFull
	}

	pos, err := g.board.Insert(color, partial)
	if err != nil {
		return false, err
	}

	won := g.detector.IsWinningMove(g.board, color, pos)
	if won {
		g.won = true
	} else {
		g.round++
	}
	return won, nil
}

// Board returns the game's board for read access.
func (g *Game) Board() *Board {
	return g.board
}

// Capacity returns the total cell count of the board.
func (g *Game) Capacity() int {
	return g.board.Capacity()
}

// Round returns the current round, starting at 1.
func (g *Game) Round() int {
	return g.round
}

// DisksPlayed returns the number of disks placed by accepted non-winning
// moves, which is always Round()-1.
func (g *Game) DisksPlayed() int {
	return g.round - 1
}

// Won reports whether a winning move has been played.
func (g *Game) Won() bool {
	return g.won
}
