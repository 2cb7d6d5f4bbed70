package engine

// WinDetector checks whether a just-placed disk completes a run of
// WinLength same-color disks. It caches the canonical direction set for
// one dimension count and is reused for every move of a game.
type WinDetector struct {
	directions []Direction
}

// NewWinDetector creates a detector for boards with ndim axes.
func NewWinDetector(ndim int) *WinDetector {
	return &WinDetector{directions: CheckDirections(ndim)}
}

// Directions returns the detector's canonical direction set.
func (w *WinDetector) Directions() []Direction {
	return w.directions
}

// IsWinningMove reports whether the disk of the given color just placed at
// pos is part of a run of at least WinLength cells. For each canonical
// direction it counts the placed disk plus up to WinLength-1 steps both
// ways, stopping at the board edge or at a cell not holding color, and
// short-circuits on the first direction that reaches WinLength.
func (w *WinDetector) IsWinningMove(board *Board, color Color, pos []int) bool {
	for _, dir := range w.directions {
		count := 1
		count += w.countRun(board, color, pos, dir)
		count += w.countRun(board, color, pos, dir.negated())
		if count >= WinLength {
			return true
		}
	}
	return false
}

// countRun walks up to WinLength-1 steps from pos along dir and returns
// how many consecutive cells hold color.
func (w *WinDetector) countRun(board *Board, color Color, pos []int, dir Direction) int {
	cur := append([]int(nil), pos...)
	count := 0
	for step := 0; step < WinLength-1; step++ {
		for i, d := range dir {
			cur[i] += d
		}
		if !board.InBounds(cur) || board.At(cur) != color {
			break
		}
		count++
	}
	return count
}
