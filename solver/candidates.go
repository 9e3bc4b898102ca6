package solver

import (
	"github.com/katalvlaran/sudoku/grid"
)

// CandidateSet is the ephemeral set of digits one cell may legally hold.
// The zero value is the empty set.
type CandidateSet struct {
	present [10]bool // index 1..9; index 0 unused (Empty is never a member)
	count   int
}

// add inserts digit v into the set.
func (s *CandidateSet) add(v grid.Value) {
	if !s.present[v] {
		s.present[v] = true
		s.count++
	}
}

// remove deletes digit v from the set. Removing Empty is a no-op, so the
// digit-elimination loops can feed cell values straight through.
func (s *CandidateSet) remove(v grid.Value) {
	if v != grid.Empty && s.present[v] {
		s.present[v] = false
		s.count--
	}
}

// Has reports whether digit v is a member of the set.
func (s CandidateSet) Has(v grid.Value) bool {
	return v != grid.Empty && v <= 9 && s.present[v]
}

// Len returns the number of candidate digits (0..9).
func (s CandidateSet) Len() int {
	return s.count
}

// Sole returns the single member and true when the set has exactly one
// candidate, and (Empty, false) otherwise.
func (s CandidateSet) Sole() (grid.Value, bool) {
	if s.count != 1 {
		return grid.Empty, false
	}
	for v := grid.Value(1); v <= 9; v++ {
		if s.present[v] {
			return v, true
		}
	}

	return grid.Empty, false
}

// Values returns the candidate digits in ascending order — the branch
// order the backtracking search commits to.
func (s CandidateSet) Values() []grid.Value {
	out := make([]grid.Value, 0, s.count)
	for v := grid.Value(1); v <= 9; v++ {
		if s.present[v] {
			out = append(out, v)
		}
	}

	return out
}

// Candidates computes the set of digits cell (r, c) of g may legally hold.
// A filled cell admits exactly its current value (the set is never empty
// for a filled cell). An empty cell admits the full digit set {1..9} minus
// every digit already present in row r, in column c, and in the 3×3 box
// containing (r, c). The result may be empty: the cell has no legal value
// under current constraints, which signals an unsatisfiable branch.
// Complexity: O(27) cell inspections.
func Candidates(g *grid.Grid, r, c int) CandidateSet {
	var s CandidateSet

	// 1. A filled cell admits only its own value.
	if v := g.Cell(r, c); v != grid.Empty {
		s.add(v)

		return s
	}

	// 2. Start from the full digit set.
	for v := grid.Value(1); v <= 9; v++ {
		s.add(v)
	}

	// 3. Eliminate every digit present in row r or column c.
	for k := 0; k < grid.Size; k++ {
		s.remove(g.Cell(r, k))
		s.remove(g.Cell(k, c))
	}

	// 4. Eliminate every digit present in the box at (r/3, c/3).
	//    Integer division truncates, anchoring the box origin.
	br := (r / grid.BoxWidth) * grid.BoxWidth
	bc := (c / grid.BoxWidth) * grid.BoxWidth
	for dr := 0; dr < grid.BoxWidth; dr++ {
		for dc := 0; dc < grid.BoxWidth; dc++ {
			s.remove(g.Cell(br+dr, bc+dc))
		}
	}

	return s
}
