package solver

import (
	"github.com/katalvlaran/sudoku/grid"
)

// Propagate repeatedly scans g in row-major order and commits the first
// empty cell whose candidate set has exactly one element, restarting the
// scan after every assignment, until a full scan makes no assignment.
// It mutates g in place — callers hand it a private working copy — and
// returns the number of cells committed.
//
// Propagation is a pure optimization: it reduces the branching factor
// before combinatorial search and performs no conflict detection. A
// singleton candidate is trusted to be safe to commit, which holds while
// the board represents a consistent partial assignment. Termination is
// guaranteed: each assignment strictly reduces the number of empty cells,
// so at most 81 scans succeed.
// Complexity: O(81²·27) worst case.
func Propagate(g *grid.Grid) int {
	forced := 0
	for commitSole(g) {
		forced++
	}

	return forced
}

// commitSole assigns the first empty cell (row-major) that has exactly one
// candidate and reports whether any cell was changed.
func commitSole(g *grid.Grid) bool {
	for r := 0; r < grid.Size; r++ {
		for c := 0; c < grid.Size; c++ {
			if g.Cell(r, c) != grid.Empty {
				continue
			}
			if v, ok := Candidates(g, r, c).Sole(); ok {
				g.SetCell(r, c, v)

				return true
			}
		}
	}

	return false
}
