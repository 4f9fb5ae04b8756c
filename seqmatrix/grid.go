package seqmatrix

import "fmt"

// Grid is the comparison matrix of two sequences.
//
// Row 0 carries sequence 1 as header symbols starting at column 1 (column 2
// once padded); column 0 carries sequence 2 starting at row 1 (row 2 once
// padded). The corner and any unfilled body cell are KindEmpty.
//
// A Grid is mutated only by Pad and the two fill passes. After a fill it is
// read-only and safe to share.
type Grid struct {
	seq1, seq2 []rune
	cells      [][]Cell
	padded     bool
	mode       Mode
	scoring    Scoring
}

// Build creates the header row and column for seq1 (along the top) and seq2
// (down the side) with a zero-initialised body. A nil opts selects
// DefaultOptions.
//
// Returns ErrEmptySequence if either sequence is empty.
func Build(seq1, seq2 string, opts *Options) (*Grid, error) {
	a, b := []rune(seq1), []rune(seq2)
	if len(a) == 0 || len(b) == 0 {
		return nil, ErrEmptySequence
	}
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}

	rows, cols := len(b)+1, len(a)+1
	cells := make([][]Cell, rows)
	for i := range cells {
		cells[i] = make([]Cell, cols)
	}
	for j, r := range a {
		cells[0][j+1] = HeaderCell(r)
	}
	for i, r := range b {
		cells[i+1][0] = HeaderCell(r)
	}

	return &Grid{seq1: a, seq2: b, cells: cells, scoring: o.Scoring}, nil
}

// Rows returns the number of grid rows, headers included.
func (g *Grid) Rows() int { return len(g.cells) }

// Cols returns the number of grid columns, headers included.
func (g *Grid) Cols() int { return len(g.cells[0]) }

// Mode reports which fill pass has been applied.
func (g *Grid) Mode() Mode { return g.mode }

// Padded reports whether the boundary row and column have been inserted.
func (g *Grid) Padded() bool { return g.padded }

// Scoring returns the weights the grid was built with.
func (g *Grid) Scoring() Scoring { return g.scoring }

// Sequence1 returns the sequence laid along the header row.
func (g *Grid) Sequence1() string { return string(g.seq1) }

// Sequence2 returns the sequence laid down the header column.
func (g *Grid) Sequence2() string { return string(g.seq2) }

// BodyStart returns the first row and column index of the body region:
// 1 for an unpadded grid, 2 once padded.
func (g *Grid) BodyStart() int {
	if g.padded {
		return 2
	}
	return 1
}

// InBounds reports whether (row, col) addresses a cell of the grid.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && col >= 0 && row < g.Rows() && col < g.Cols()
}

// At returns the cell at (row, col).
func (g *Grid) At(row, col int) (Cell, error) {
	if !g.InBounds(row, col) {
		return Cell{}, fmt.Errorf("At(%d,%d) on %dx%d grid: %w", row, col, g.Rows(), g.Cols(), ErrOutOfRange)
	}
	return g.cells[row][col], nil
}

// Value returns the integer held by a boundary or score cell. Any other
// cell, and any coordinate outside the grid, reports 0.
func (g *Grid) Value(row, col int) int {
	if !g.InBounds(row, col) {
		return 0
	}
	return g.cells[row][col].Value
}

// ColSymbol returns the sequence-1 symbol heading column col.
func (g *Grid) ColSymbol(col int) (rune, bool) {
	if col < 0 || col >= g.Cols() {
		return 0, false
	}
	c := g.cells[0][col]
	return c.Symbol, c.Kind == KindHeader
}

// RowSymbol returns the sequence-2 symbol heading row row.
func (g *Grid) RowSymbol(row int) (rune, bool) {
	if row < 0 || row >= g.Rows() {
		return 0, false
	}
	c := g.cells[row][0]
	return c.Symbol, c.Kind == KindHeader
}

// Cells returns a deep copy of every cell, row by row, for renderers.
func (g *Grid) Cells() [][]Cell {
	out := make([][]Cell, len(g.cells))
	for i, row := range g.cells {
		out[i] = append([]Cell(nil), row...)
	}
	return out
}
