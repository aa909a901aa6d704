package traverse

// Grids are [][]E in row-major order: g[row][col]. Rows may have
// different lengths.

// eachCell walks g row by row until f returns true.
// It reports whether the walk was stopped.
func eachCell[G ~[][]E, E any](g G, f func(row, col int, v E) (stop bool)) (stopped bool) {
	Rotate(0, len(g), func(row int) bool {
		cells := g[row]
		Rotate(0, len(cells), func(col int) bool {
			stopped = f(row, col, cells[col])
			return stopped
		})
		return stopped
	})
	return
}

// EachCell calls f for every cell of g, visiting
// (0,0), (0,1), ..., (1,0), (1,1), ...
func EachCell[G ~[][]E, E any](g G, f func(v E)) {
	if f == nil {
		return
	}

	eachCell[G, E](g, func(_, _ int, v E) bool {
		f(v)
		return false
	})
}

// EachCellIndexed calls f with the row, column and value of every cell of g
// in row-major order.
func EachCellIndexed[G ~[][]E, E any](g G, f func(row, col int, v E)) {
	if f == nil {
		return
	}

	eachCell[G, E](g, func(row, col int, v E) bool {
		f(row, col, v)
		return false
	})
}

// FindCell returns the first cell of g, in row-major order, for which pred
// returns true. If there is none, ok is false and v is the zero value.
func FindCell[G ~[][]E, E any](g G, pred func(v E) bool) (v E, ok bool) {
	if pred == nil {
		return
	}

	eachCell[G, E](g, func(_, _ int, cell E) bool {
		if pred(cell) {
			v, ok = cell, true
		}
		return ok
	})
	return
}
