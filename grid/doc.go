// Package grid provides the 9×9 Sudoku board: a fixed-size value-semantics
// container with construction-time validation, deep copying, completeness
// checks, conflict detection, and the definitive textual representation.
//
// What:
//
//   - Grid wraps a [9][9] cell array; each cell holds Empty or a digit 1..9.
//   - New builds an all-empty board; FromRows validates a 9×9 source.
//   - Clone yields a fully independent copy (value semantics) so hypothesis
//     testing during search never touches the caller's board.
//   - IsSolved reports completeness (no empty cells) — not correctness.
//   - Conflicts / Valid report row, column, and box duplicates.
//   - Read / String convert between a Grid and its 9-line textual form
//     (one character per cell, a single space meaning "empty").
//
// Why:
//
//   - Solvers: a consistent, copy-safe board for backtracking search.
//   - Tooling: parse puzzles from files or stdin, print solutions.
//   - Validation: locate duplicate digits for diagnostics and tests.
//
// Invariants:
//
//   - Every cell value is Empty or a digit 1..9; FromRows and Read enforce
//     this at construction, solvers preserve it thereafter.
//   - A Grid may describe an unsatisfiable puzzle (duplicate digits in a
//     unit); construction does not reject such boards — only solving
//     discovers them.
//
// Complexity:
//
//   - Cell/SetCell: O(1).  Clone/Equal/IsSolved/String: O(81).
//   - Conflicts: O(81) with per-unit bitmasks.
//
// Errors:
//
//   - ErrDimension: construction source is not exactly 9×9.
//   - ErrSymbol: a cell value or character outside {empty, "1".."9"}.
//   - ErrShortInput: textual source ended before 9 rows were read.
//   - ErrLineLength: textual source row longer than 9 characters.
package grid
