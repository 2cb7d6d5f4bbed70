package engine

// Color represents the contents of a single board cell. The zero value is
// an empty cell; Red and Yellow are the two players' disk colors.
type Color int8

const (
	Empty Color = iota
	Red
	Yellow

	// Validation constants
	MinDimensions = 2
	WinLength     = 4
)

// String returns a lower-case name for the color, suitable for CLI output.
func (c Color) String() string {
	switch c {
	case Red:
		return "red"
	case Yellow:
		return "yellow"
	case Empty:
		return "empty"
	}
	return "unknown"
}

// Direction is a unit-step vector over {-1, 0, 1} per axis, defining a
// candidate winning line through the grid. Its length equals the board's
// dimension count.
type Direction []int

// negated returns the component-wise negation of the direction.
func (d Direction) negated() Direction {
	neg := make(Direction, len(d))
	for i, v := range d {
		neg[i] = -v
	}
	return neg
}

// key encodes the direction as a compact string usable as a set key.
// Components are mapped to '-', '0', '+'.
func (d Direction) key() string {
	buf := make([]byte, len(d))
	for i, v := range d {
		switch {
		case v < 0:
			buf[i] = '-'
		case v > 0:
			buf[i] = '+'
		default:
			buf[i] = '0'
		}
	}
	return string(buf)
}
