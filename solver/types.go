// Package solver defines options, sentinel errors, and diagnostics for
// the solver subpackage of github.com/katalvlaran/sudoku.
package solver

import (
	"context"
	"errors"
	"time"
)

// Sentinel errors for solver operations.
var (
	// ErrGridNil is returned when a nil *grid.Grid is passed to Solve.
	ErrGridNil = errors.New("solver: grid is nil")

	// ErrNoSolution indicates the search exhausted every branch without
	// completing the board. It is an expected outcome — "no solution
	// exists" is valid puzzle semantics, not a fault.
	ErrNoSolution = errors.New("solver: no solution")

	// ErrNodeBudget indicates the WithMaxNodes budget was exceeded before
	// the search finished. Distinct from ErrNoSolution: the puzzle may
	// still be solvable.
	ErrNodeBudget = errors.New("solver: node budget exceeded")
)

// Option configures optional behavior of Solve.
// Use with Solve(g, opts...).
type Option func(*SolveOptions)

// SolveOptions holds configurable parameters for the backtracking search.
type SolveOptions struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	// Cancelling the context aborts the search with the context's error.
	Ctx context.Context

	// MaxNodes, if positive, bounds the number of search nodes (the root
	// plus every hypothesis) the solver may visit. Exceeding the budget
	// aborts with ErrNodeBudget. Default is 0 (no limit).
	MaxNodes int
}

// DefaultOptions returns a SolveOptions struct with:
//   - Background context
//   - No node budget (MaxNodes = 0)
func DefaultOptions() SolveOptions {
	return SolveOptions{
		Ctx:      context.Background(),
		MaxNodes: 0,
	}
}

// WithContext returns an Option that sets the Context for the search.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *SolveOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxNodes returns an Option that bounds the number of search nodes.
// A non-positive n leaves the search unbounded.
func WithMaxNodes(n int) Option {
	return func(o *SolveOptions) {
		o.MaxNodes = n
	}
}

// Stats captures diagnostics of one Solve call, across all branches
// explored (including abandoned ones).
type Stats struct {
	// Nodes counts solver invocations: the root plus every hypothesis.
	Nodes int
	// Forced counts cells committed by constraint propagation.
	Forced int
	// Duration is the wall-clock time of the whole search.
	Duration time.Duration
}
