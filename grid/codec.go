package grid

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// emptySymbol is the character denoting an unfilled cell in the textual form.
const emptySymbol = ' '

// Read parses the definitive textual representation from r: 9 rows of up
// to 9 characters each, one character per cell, a single space meaning
// "empty". Rows shorter than 9 characters are generously padded with
// spaces; rows longer than 9 fail with ErrLineLength; any character
// outside {space, '1'..'9'} fails with ErrSymbol; fewer than 9 rows fail
// with ErrShortInput. Content beyond the 9th row is ignored.
func Read(r io.Reader) (*Grid, error) {
	sc := bufio.NewScanner(r)
	g := &Grid{}

	for i := 0; i < Size; i++ {
		// 1. One line per board row.
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return nil, fmt.Errorf("grid: read row %d: %w", i, err)
			}

			return nil, fmt.Errorf("%w: got %d rows", ErrShortInput, i)
		}
		line := sc.Text()

		// 2. Pad short lines so trailing empties need not be typed.
		if len(line) < Size {
			line += strings.Repeat(string(emptySymbol), Size-len(line))
		}
		if len(line) != Size {
			return nil, fmt.Errorf("%w: row %d has %d characters", ErrLineLength, i, len(line))
		}

		// 3. Decode each character into a cell value.
		for j := 0; j < Size; j++ {
			v, err := decodeSymbol(line[j])
			if err != nil {
				return nil, fmt.Errorf("%w: %q at (%d,%d)", ErrSymbol, line[j], i, j)
			}
			g.cells[i][j] = v
		}
	}

	return g, nil
}

// decodeSymbol maps one textual cell character to its Value.
func decodeSymbol(ch byte) (Value, error) {
	switch {
	case ch == emptySymbol:
		return Empty, nil
	case ch >= '1' && ch <= '9':
		return Value(ch - '0'), nil
	default:
		return Empty, ErrSymbol
	}
}

// String renders the definitive textual representation: each cell's symbol
// concatenated per row, one row per line, a trailing newline after every
// row. Read(strings.NewReader(g.String())) reproduces g exactly.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow(Size * (Size + 1))

	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if v := g.cells[r][c]; v == Empty {
				b.WriteByte(emptySymbol)
			} else {
				b.WriteByte('0' + byte(v))
			}
		}
		b.WriteByte('\n')
	}

	return b.String()
}

// MustParse parses the textual representation in s and panics on any
// error. Intended for fixtures in tests and examples.
func MustParse(s string) *Grid {
	g, err := Read(strings.NewReader(s))
	if err != nil {
		panic(err)
	}

	return g
}
