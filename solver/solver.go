// Package solver implements depth-first backtracking search with
// single-candidate propagation pruning at every node. The search is
// single-threaded and purely functional over copies: each branch owns an
// exclusive clone of the board, so no state crosses sibling branches and
// the caller's input is guaranteed unchanged.
package solver

import (
	"errors"
	"time"

	"github.com/katalvlaran/sudoku/grid"
)

// searcher carries per-Solve state through the recursion.
type searcher struct {
	opts   SolveOptions // cancellation and budget
	nodes  int          // solver invocations so far
	forced int          // propagation commits across all branches
}

// Solve returns a completed board consistent with Sudoku's row, column,
// and box uniqueness rules, or ErrNoSolution when the search exhausts
// every branch. The input board is never mutated: the search clones it on
// entry and again for every hypothesis.
//
// Algorithm per node: run Propagate to a fixed point; if the board is
// complete, succeed; otherwise locate the first empty cell in row-major
// order and try each of its candidates in ascending digit order on a
// fresh clone, short-circuiting on the first success. An empty candidate
// set, or exhaustion of all candidates, fails the branch.
//
// Stats are returned for both success and failure. Cancellation via
// WithContext surfaces the context's error; exceeding a WithMaxNodes
// budget surfaces ErrNodeBudget. Both abort the whole search, unlike a
// branch-local ErrNoSolution which merely backtracks.
func Solve(g *grid.Grid, opts ...Option) (*grid.Grid, Stats, error) {
	// 1. Validate input.
	if g == nil {
		return nil, Stats{}, ErrGridNil
	}

	// 2. Apply options.
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	// 3. Run the recursive search and collect diagnostics.
	start := time.Now()
	s := &searcher{opts: o}
	solved, err := s.solve(g)
	stats := Stats{Nodes: s.nodes, Forced: s.forced, Duration: time.Since(start)}
	if err != nil {
		return nil, stats, err
	}

	return solved, stats, nil
}

// solve explores one search node over its own clone of g.
// It returns ErrNoSolution for a locally unsatisfiable branch; any other
// error (cancellation, budget) aborts the whole search.
func (s *searcher) solve(g *grid.Grid) (*grid.Grid, error) {
	// 1. Cancellation check.
	if err := s.opts.Ctx.Err(); err != nil {
		return nil, err
	}

	// 2. Node accounting and budget check.
	s.nodes++
	if s.opts.MaxNodes > 0 && s.nodes > s.opts.MaxNodes {
		return nil, ErrNodeBudget
	}

	// 3. Own working copy: the caller's board stays untouched.
	work := g.Clone()

	// 4. Commit all forced cells before branching.
	s.forced += Propagate(work)
	if work.IsSolved() {
		return work, nil
	}

	// 5. Branch on the first empty cell in row-major order.
	r, c := firstEmpty(work)

	// 6. Hypothesize each candidate in ascending digit order on a fresh
	//    clone. An empty candidate set skips the loop entirely.
	for _, v := range Candidates(work, r, c).Values() {
		sub := work.Clone()
		sub.SetCell(r, c, v)

		res, err := s.solve(sub)
		if err == nil {
			// Short-circuit: first success propagates upward.
			return res, nil
		}
		if !errors.Is(err, ErrNoSolution) {
			// Cancellation or budget exhaustion is a global abort.
			return nil, err
		}
		// Branch-local dead end: discard the clone, try the next digit.
	}

	// 7. All candidates exhausted: this branch has no solution.
	return nil, ErrNoSolution
}

// firstEmpty returns the row-major coordinates of the first Empty cell.
// Callers only invoke it on boards known to be incomplete.
func firstEmpty(g *grid.Grid) (int, int) {
	for r := 0; r < grid.Size; r++ {
		for c := 0; c < grid.Size; c++ {
			if g.Cell(r, c) == grid.Empty {
				return r, c
			}
		}
	}

	return 0, 0
}
