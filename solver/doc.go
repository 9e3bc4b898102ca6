// Package solver implements candidate computation, single-candidate
// constraint propagation, and recursive backtracking search over a
// grid.Grid, supporting cancellation and an optional node budget.
//
// What:
//
//   - Candidates(g, r, c): the set of digits cell (r,c) may legally hold,
//     given the digits already present in its row, column, and 3×3 box.
//   - Propagate(g): repeatedly commits cells that have exactly one legal
//     candidate, shrinking the search space before any branching.
//   - Solve(g, opts...): clones the input, propagates to a fixed point,
//     then branches depth-first on the first empty cell, candidates in
//     ascending digit order, one fresh clone per hypothesis.
//
// Why:
//
//   - Solve a standard 9×9 Sudoku, or prove that no solution exists.
//   - The caller's board is never mutated: every hypothesis owns an
//     exclusive copy, so solving is safe around shared inputs.
//
// Key Types & Functions:
//
//   - CandidateSet: digits still admissible for one cell (Len, Has, Sole,
//     Values).
//   - Option / SolveOptions: functional options (WithContext, WithMaxNodes).
//   - Stats: diagnostics — nodes visited, forced assignments, duration.
//   - Solve(g *grid.Grid, opts ...Option) (*grid.Grid, Stats, error).
//
// Complexity:
//
//   - Candidates: O(27) cell inspections.  Propagate: O(81²·27) worst case.
//   - Solve: exponential worst case — branch order is first empty cell
//     (row-major) and ascending digit, not a minimum-remaining-values
//     heuristic; propagation prunes every node.
//
// Errors:
//
//   - ErrGridNil: Solve received a nil board.
//   - ErrNoSolution: search exhausted every branch — an expected outcome
//     of valid puzzle semantics, not a fault; test with errors.Is.
//   - ErrNodeBudget: the WithMaxNodes budget was exceeded before the
//     search could finish (distinct from ErrNoSolution).
//   - context.Canceled / context.DeadlineExceeded: via WithContext.
package solver
