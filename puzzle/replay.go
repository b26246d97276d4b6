package puzzle

// NoFailure is the Replay index reported when every move applied cleanly.
const NoFailure = -1

// Replay applies moves in order to a raw grid that may still contain hidden
// items. A move fails when it is not valid on the current position — which
// includes a source topped by a hidden item.
//
// On success the final grid and NoFailure are returned. On the first
// failure at index i, the grid just before move i is returned together
// with i. A grid that cannot be constructed at all fails at index 0.
func Replay(grid [][]string, moves []Move) ([][]string, int) {
	current, err := New(grid)
	if err != nil {
		return grid, 0
	}
	for i, m := range moves {
		next, err := current.After(m)
		if err != nil {
			return current.Grid(), i
		}
		current = next
	}

	return current.Grid(), NoFailure
}
