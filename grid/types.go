// Package grid defines the 9×9 Sudoku state container, its dimension
// constants, and sentinel errors for the grid subpackage of
// github.com/katalvlaran/sudoku.
package grid

import (
	"errors"
)

// Fixed Sudoku geometry: a puzzle is BoxesPerSide×BoxesPerSide boxes of
// BoxWidth×BoxWidth cells, giving a Size×Size board.
const (
	// BoxWidth is the side length of one 3×3 box.
	BoxWidth = 3
	// BoxesPerSide is the number of boxes along one board edge.
	BoxesPerSide = 3
	// Size is the side length of the full board: BoxWidth × BoxesPerSide.
	Size = BoxWidth * BoxesPerSide
)

// Value is the content of a single cell: Empty, or a digit 1..9.
type Value uint8

// Empty marks an unfilled cell.
const Empty Value = 0

// Sentinel errors for grid operations.
var (
	// ErrDimension indicates a construction source whose outer or inner
	// extent is not exactly Size.
	ErrDimension = errors.New("grid: input must be exactly 9 rows of 9 values")
	// ErrSymbol indicates a cell value outside {Empty, 1..9}.
	ErrSymbol = errors.New("grid: cell value must be empty or a digit 1-9")
	// ErrShortInput indicates a textual source that ended before 9 rows
	// were read.
	ErrShortInput = errors.New("grid: input ended before 9 rows were read")
	// ErrLineLength indicates a textual source row longer than 9 characters.
	ErrLineLength = errors.New("grid: input line longer than 9 characters")
)

// CellRef identifies a cell on the board by (row, column), each 0..8.
type CellRef struct {
	Row, Col int
}
