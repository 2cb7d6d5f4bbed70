package engine

import "fmt"

// Board owns the D-dimensional grid of cells. Cells are stored in a flat
// buffer in row-major order, with strides computed once at construction.
// The last axis is the drop axis: disks inserted at a fixed prefix of
// coordinates fall to the lowest empty index along it.
type Board struct {
	dims     []int
	strides  []int
	cells    []Color
	capacity int
}

// NewBoard creates an all-empty board with the given dimension sizes.
// It returns ErrTooFewDimensions for fewer than two axes, and a plain
// validation error for non-positive sizes.
func NewBoard(dims []int) (*Board, error) {
	if len(dims) < MinDimensions {
		return nil, ErrTooFewDimensions
	}

	capacity := 1
	for i, size := range dims {
		if size < 1 {
			return nil, fmt.Errorf("board validation: dimension %d must be positive, got %d", i, size)
		}
		capacity *= size
	}

	// Row-major strides: the last axis is contiguous, which keeps a full
	// drop-axis column adjacent in the buffer.
	strides := make([]int, len(dims))
	stride := 1
	for i := len(dims) - 1; i >= 0; i-- {
		strides[i] = stride
		stride *= dims[i]
	}

	return &Board{
		dims:     append([]int(nil), dims...),
		strides:  strides,
		cells:    make([]Color, capacity),
		capacity: capacity,
	}, nil
}

// NDim returns the board's dimension count.
func (b *Board) NDim() int {
	return len(b.dims)
}

// Dimensions returns a copy of the board's dimension sizes.
func (b *Board) Dimensions() []int {
	return append([]int(nil), b.dims...)
}

// Capacity returns the total number of cells.
func (b *Board) Capacity() int {
	return b.capacity
}

// InBounds reports whether every component of pos lies inside the board.
// It panics if pos does not have one component per axis.
func (b *Board) InBounds(pos []int) bool {
	if len(pos) != len(b.dims) {
		panic(fmt.Sprintf("position has %d coordinates, board has %d dimensions", len(pos), len(b.dims)))
	}
	for i, v := range pos {
		if v < 0 || v >= b.dims[i] {
			return false
		}
	}
	return true
}

// At returns the cell at the given full coordinate. It panics on an
// out-of-bounds or wrong-length coordinate.
func (b *Board) At(pos []int) Color {
	return b.cells[b.flatIndex(pos)]
}

// Insert drops a disk of the given color at the fixed coordinates in
// partial, which must cover every axis except the last. The disk lands on
// the first empty cell scanning the drop axis from index 0 upward. It
// returns the full landing coordinate, or ErrAxisFull with the board left
// unchanged. A wrong-length partial is a caller bug and panics.
func (b *Board) Insert(color Color, partial []int) ([]int, error) {
	if len(partial) != len(b.dims)-1 {
		panic(fmt.Sprintf("the insert position has to specify the coordinates in %d dimensions, but %d were given",
			len(b.dims)-1, len(partial)))
	}

	pos := make([]int, len(b.dims))
	copy(pos, partial)

	dropAxis := len(b.dims) - 1
	base := 0
	for i, v := range partial {
		if v < 0 || v >= b.dims[i] {
			panic(fmt.Sprintf("coordinate %d out of range for axis %d (size %d)", v, i, b.dims[i]))
		}
		base += v * b.strides[i]
	}

	// The drop axis is the last one, so its stride is 1 and the column is
	// contiguous in the buffer.
	for i := 0; i < b.dims[dropAxis]; i++ {
		if b.cells[base+i] == Empty {
			b.cells[base+i] = color
			pos[dropAxis] = i
			return pos, nil
		}
	}

	return nil, ErrAxisFull
}

// flatIndex converts a full coordinate into an offset into the cell buffer.
func (b *Board) flatIndex(pos []int) int {
	if !b.InBounds(pos) {
		panic(fmt.Sprintf("position %v out of bounds for board %v", pos, b.dims))
	}
	idx := 0
	for i, v := range pos {
		idx += v * b.strides[i]
	}
	return idx
}
