package solver_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sudoku/grid"
	"github.com/katalvlaran/sudoku/solver"
)

// classicText is a well-known solvable puzzle with 30 givens.
const classicText = "53  7    \n" +
	"6  195   \n" +
	" 98    6 \n" +
	"8   6   3\n" +
	"4  8 3  1\n" +
	"7   2   6\n" +
	" 6    28 \n" +
	"   419  5\n" +
	"    8  79\n"

// classicSolvedText is the unique solution of classicText.
const classicSolvedText = "534678912\n" +
	"672195348\n" +
	"198342567\n" +
	"859761423\n" +
	"426853791\n" +
	"713924856\n" +
	"961537284\n" +
	"287419635\n" +
	"345286179\n"

// noSolutionText carries two 5s in row 0; rows 1..8 are consistent, so the
// contradiction is discovered by search, not by construction.
const noSolutionText = "55       \n" +
	"258417369\n" +
	"413296587\n" +
	"974568123\n" +
	"382941675\n" +
	"165732498\n" +
	"546189732\n" +
	"739625841\n" +
	"821374956\n"

// requireCompleteAndValid asserts g is fully filled and every row, column,
// and box holds each digit exactly once.
func requireCompleteAndValid(t *testing.T, g *grid.Grid) {
	t.Helper()
	require.NotNil(t, g)
	require.True(t, g.IsSolved())
	require.Empty(t, g.Conflicts())
}

// TestSolve_Classic solves the classic sample and checks the exact
// (unique) solution.
func TestSolve_Classic(t *testing.T) {
	in := grid.MustParse(classicText)

	out, stats, err := solver.Solve(in)
	require.NoError(t, err)
	requireCompleteAndValid(t, out)
	assert.Equal(t, classicSolvedText, out.String())
	assert.GreaterOrEqual(t, stats.Nodes, 1)
}

// TestSolve_NeverMutatesInput verifies the caller's board is identical
// before and after solving.
func TestSolve_NeverMutatesInput(t *testing.T) {
	in := grid.MustParse(classicText)
	snapshot := in.Clone()

	_, _, err := solver.Solve(in)
	require.NoError(t, err)
	assert.True(t, in.Equal(snapshot))
}

// TestSolve_EmptyGrid verifies the empty board solves to some fully valid
// completion (the solution need not be unique).
func TestSolve_EmptyGrid(t *testing.T) {
	in := grid.New()

	out, _, err := solver.Solve(in)
	require.NoError(t, err)
	requireCompleteAndValid(t, out)
	assert.True(t, in.Equal(grid.New()))
}

// TestSolve_SeededRow solves a board whose row 0 is 1..9 in order and all
// else empty; row 0 must survive unchanged and all constraints must hold.
func TestSolve_SeededRow(t *testing.T) {
	in := grid.New()
	for c := 0; c < grid.Size; c++ {
		in.SetCell(0, c, grid.Value(c+1))
	}

	out, _, err := solver.Solve(in)
	require.NoError(t, err)
	requireCompleteAndValid(t, out)
	for c := 0; c < grid.Size; c++ {
		assert.Equal(t, grid.Value(c+1), out.Cell(0, c))
	}
}

// TestSolve_NoSolution verifies a board with two identical digits in one
// row yields ErrNoSolution, not a grid and not a panic.
func TestSolve_NoSolution(t *testing.T) {
	in := grid.MustParse(noSolutionText)
	snapshot := in.Clone()

	out, _, err := solver.Solve(in)
	require.ErrorIs(t, err, solver.ErrNoSolution)
	assert.Nil(t, out)
	assert.True(t, in.Equal(snapshot))
}

// TestSolve_AlreadySolved verifies a fully and validly filled board comes
// back value-equal from Solve.
func TestSolve_AlreadySolved(t *testing.T) {
	in := grid.MustParse(classicSolvedText)

	out, stats, err := solver.Solve(in)
	require.NoError(t, err)
	assert.True(t, out.Equal(in))
	assert.Equal(t, 1, stats.Nodes)
	assert.Equal(t, 0, stats.Forced)
}

// TestSolve_Idempotent verifies solving a solved board reproduces it.
func TestSolve_Idempotent(t *testing.T) {
	first, _, err := solver.Solve(grid.MustParse(classicText))
	require.NoError(t, err)

	second, _, err := solver.Solve(first)
	require.NoError(t, err)
	assert.True(t, first.Equal(second))
}

// TestSolve_NilGrid verifies the nil-input sentinel.
func TestSolve_NilGrid(t *testing.T) {
	_, _, err := solver.Solve(nil)
	require.ErrorIs(t, err, solver.ErrGridNil)
}

// TestSolve_ContextCanceled verifies a canceled context aborts the search
// with the context's error rather than ErrNoSolution.
func TestSolve_ContextCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := solver.Solve(grid.New(), solver.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
	require.NotErrorIs(t, err, solver.ErrNoSolution)
}

// TestSolve_NodeBudget verifies WithMaxNodes aborts a branching search
// with ErrNodeBudget, a failure kind distinct from ErrNoSolution.
func TestSolve_NodeBudget(t *testing.T) {
	// The empty board cannot finish within a single node: propagation
	// commits nothing, so the root must branch.
	_, stats, err := solver.Solve(grid.New(), solver.WithMaxNodes(1))
	require.ErrorIs(t, err, solver.ErrNodeBudget)
	require.NotErrorIs(t, err, solver.ErrNoSolution)
	assert.Equal(t, 2, stats.Nodes)
}

// TestSolve_WithinBudget verifies a budget large enough for the search is
// not triggered: the classic sample resolves by propagation alone.
func TestSolve_WithinBudget(t *testing.T) {
	out, stats, err := solver.Solve(grid.MustParse(classicText), solver.WithMaxNodes(1))
	require.NoError(t, err)
	requireCompleteAndValid(t, out)
	assert.Equal(t, 1, stats.Nodes)
	assert.Equal(t, 51, stats.Forced)
}
