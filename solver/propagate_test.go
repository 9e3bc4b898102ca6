package solver_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sudoku/grid"
	"github.com/katalvlaran/sudoku/solver"
)

// TestPropagate_SolvesClassic verifies single-candidate propagation alone
// completes the classic sample: all 51 empties are forced.
func TestPropagate_SolvesClassic(t *testing.T) {
	g := grid.MustParse(classicText)

	forced := solver.Propagate(g)
	assert.Equal(t, 51, forced)
	require.True(t, g.IsSolved())
	assert.Empty(t, g.Conflicts())
	assert.Equal(t, classicSolvedText, g.String())
}

// TestPropagate_NoSingletons verifies propagation leaves a board without
// single-candidate cells untouched: on the empty board every cell admits
// nine digits.
func TestPropagate_NoSingletons(t *testing.T) {
	g := grid.New()

	forced := solver.Propagate(g)
	assert.Equal(t, 0, forced)
	assert.True(t, g.Equal(grid.New()))
}

// TestPropagate_LastCellOfRow verifies the minimal forced case: a row
// missing one digit gets it committed.
func TestPropagate_LastCellOfRow(t *testing.T) {
	g := grid.New()
	for c := 0; c < 8; c++ {
		g.SetCell(3, c, grid.Value(c+1))
	}

	forced := solver.Propagate(g)
	assert.Equal(t, 1, forced)
	assert.Equal(t, grid.Value(9), g.Cell(3, 8))
}

// TestPropagate_MutatesInPlace verifies Propagate works on the board it
// is handed — callers are expected to pass a private working copy.
func TestPropagate_MutatesInPlace(t *testing.T) {
	g := grid.MustParse(classicText)
	before := g.Empties()

	_ = solver.Propagate(g)
	assert.Less(t, g.Empties(), before)
}
