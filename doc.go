// Package sudoku is a small engine for solving standard 9×9 Sudoku
// puzzles: given a partially filled board it produces a complete board
// consistent with the row, column, and box uniqueness rules, or proves
// that no solution exists.
//
// What's inside?
//
//	A focused, deterministic solving core plus thin CLI glue:
//		• grid/   — the 9×9 value-semantics board: construction with
//		  validation, deep copies, completeness and conflict checks, and
//		  the definitive 9-line textual representation
//		• solver/ — candidate computation, single-candidate constraint
//		  propagation, and recursive backtracking search with optional
//		  cancellation and node budgets
//		• cmd/sudoku — a CLI that reads a puzzle from a file or stdin and
//		  prints the solution or "No solution"
//
// Why this shape?
//
//   - Non-destructive search — every hypothesis owns an exclusive clone
//     of the board, so the caller's puzzle is never mutated
//   - Expected outcomes as values — "no solution" is a sentinel error
//     tested with errors.Is, never a panic
//   - Deterministic — first empty cell in row-major order, candidates in
//     ascending digit order, same input, same answer
//
// Quick example:
//
//	g := grid.MustParse(puzzleText)
//	solution, stats, err := solver.Solve(g)
//	if errors.Is(err, solver.ErrNoSolution) {
//		fmt.Println("No solution")
//	}
//
// Out of scope: non-9×9 and irregular variants, puzzle generation,
// difficulty rating, multiple-solution enumeration, and bitmask or
// constraint-network acceleration.
package sudoku
