package grid

// Conflicts scans every row, column, and 3×3 box and returns the positions
// of cells whose digit repeats an earlier digit in the same unit. Empty
// cells never conflict. The result is empty for a consistent board.
// Complexity: O(81) per unit family using a bitmask of seen digits.
func (g *Grid) Conflicts() []CellRef {
	conf := make([]CellRef, 0, 8)

	// 1. Rows: a repeated digit within row r flags the later cell.
	for r := 0; r < Size; r++ {
		m := 0
		for c := 0; c < Size; c++ {
			v := g.cells[r][c]
			if v == Empty {
				continue
			}
			bit := 1 << v
			if m&bit != 0 {
				conf = append(conf, CellRef{Row: r, Col: c})
			}
			m |= bit
		}
	}

	// 2. Columns.
	for c := 0; c < Size; c++ {
		m := 0
		for r := 0; r < Size; r++ {
			v := g.cells[r][c]
			if v == Empty {
				continue
			}
			bit := 1 << v
			if m&bit != 0 {
				conf = append(conf, CellRef{Row: r, Col: c})
			}
			m |= bit
		}
	}

	// 3. Boxes, scanned in row-major box order.
	for br := 0; br < BoxesPerSide; br++ {
		for bc := 0; bc < BoxesPerSide; bc++ {
			m := 0
			for dr := 0; dr < BoxWidth; dr++ {
				for dc := 0; dc < BoxWidth; dc++ {
					r, c := br*BoxWidth+dr, bc*BoxWidth+dc
					v := g.cells[r][c]
					if v == Empty {
						continue
					}
					bit := 1 << v
					if m&bit != 0 {
						conf = append(conf, CellRef{Row: r, Col: c})
					}
					m |= bit
				}
			}
		}
	}

	return conf
}

// Valid reports whether the board contains no duplicate digit in any row,
// column, or box. Empty cells are ignored, so a partial board can be valid.
func (g *Grid) Valid() bool {
	return len(g.Conflicts()) == 0
}
