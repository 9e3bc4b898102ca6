package grid

import (
	"fmt"
)

// Grid is a 9×9 Sudoku board. The zero value is a fully empty board.
// The backing fixed array gives Grid value semantics: assigning or
// dereferencing a Grid copies all 81 cells.
type Grid struct {
	cells [Size][Size]Value
}

// New returns a board with every cell set to Empty.
// Complexity: O(1) — the zero value is already the empty board.
func New() *Grid {
	return &Grid{}
}

// FromRows constructs a Grid from a 9×9 source of cell values.
// It deep-copies the input, so later mutation of rows does not affect
// the returned Grid.
// Returns ErrDimension if the outer extent or any inner row extent is
// not exactly Size, and ErrSymbol if any value lies outside {Empty, 1..9}.
// Complexity: O(81) time and memory.
func FromRows(rows [][]Value) (*Grid, error) {
	// 1. Outer extent must be exactly Size.
	if len(rows) != Size {
		return nil, fmt.Errorf("%w: got %d rows", ErrDimension, len(rows))
	}

	g := &Grid{}
	for r, row := range rows {
		// 2. Each inner extent must be exactly Size.
		if len(row) != Size {
			return nil, fmt.Errorf("%w: row %d has %d values", ErrDimension, r, len(row))
		}
		// 3. Each value must belong to the allowed symbol set.
		for c, v := range row {
			if v > 9 {
				return nil, fmt.Errorf("%w: got %d at (%d,%d)", ErrSymbol, v, r, c)
			}
			g.cells[r][c] = v
		}
	}

	return g, nil
}

// Clone returns a fully independent deep copy of g.
// Mutating the copy never affects the original.
// Complexity: O(81).
func (g *Grid) Clone() *Grid {
	// Array assignment copies all cells by value.
	c := *g

	return &c
}

// Cell returns the value at (r, c). Coordinates are trusted to be 0..8;
// out-of-range access panics like any slice index.
func (g *Grid) Cell(r, c int) Value {
	return g.cells[r][c]
}

// SetCell assigns v to the cell at (r, c), mutating only that cell.
func (g *Grid) SetCell(r, c int, v Value) {
	g.cells[r][c] = v
}

// IsSolved reports whether no cell holds Empty. This checks completeness,
// not correctness: a complete board with duplicate digits is reported
// solved. Search preserves consistency by construction, so a board that
// started consistent and was completed by the solver is also correct.
func (g *Grid) IsSolved() bool {
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if g.cells[r][c] == Empty {
				return false
			}
		}
	}

	return true
}

// Empties returns the number of cells currently holding Empty.
func (g *Grid) Empties() int {
	n := 0
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if g.cells[r][c] == Empty {
				n++
			}
		}
	}

	return n
}

// Equal reports whether g and other hold identical cell values.
// A nil argument is never equal to a non-nil receiver.
func (g *Grid) Equal(other *Grid) bool {
	if other == nil {
		return false
	}

	return g.cells == other.cells
}
