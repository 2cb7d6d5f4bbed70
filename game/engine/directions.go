package engine

// CheckDirections generates the canonical direction set for a board with
// ndim axes: every vector over {-1, 0, 1}^ndim except the zero vector,
// deduplicated by inverse. Checking both signed directions from a placed
// disk covers the discarded half, so the result has exactly
// (3^ndim - 1) / 2 elements.
//
// Generation cost is O(3^ndim), which is why callers compute the set once
// per game rather than per move.
func CheckDirections(ndim int) []Direction {
	nVecs := 1
	for i := 0; i < ndim; i++ {
		nVecs *= 3
	}
	nVecs = (nVecs - 1) / 2

	seen := make(map[string]struct{}, nVecs)
	directions := make([]Direction, 0, nVecs)

	vec := make(Direction, ndim)
	var walk func(axis int)
	walk = func(axis int) {
		if axis == ndim {
			candidate := append(Direction(nil), vec...)
			if candidate.isZero() {
				return
			}
			if _, ok := seen[candidate.negated().key()]; ok {
				return
			}
			seen[candidate.key()] = struct{}{}
			directions = append(directions, candidate)
			return
		}
		for _, step := range []int{1, 0, -1} {
			vec[axis] = step
			walk(axis + 1)
		}
	}
	walk(0)

	return directions
}

// isZero reports whether every component of the direction is zero.
func (d Direction) isZero() bool {
	for _, v := range d {
		if v != 0 {
			return false
		}
	}
	return true
}
