package alignment

import (
	"fmt"

	"github.com/katalvlaran/seqalign/seqmatrix"
)

// Traceback returns the optimal path of g, from the terminal cell
// (Rows-1, Cols-1) to Origin.
//
// At every cell the next step is chosen as follows:
//  1. On the boundary row (row 1) step left; on the boundary column
//     (col 1) step up.
//  2. Otherwise compare top, diag and left neighbour scores. Step diagonally
//     if diag is not below either of the others, else step up if top is not
//     below left, else step left.
//
// The tie-break order diagonal > up > left is fixed for reproducible output.
//
// Returns ErrNotScored unless g is in seqmatrix.ModeGlobal.
func Traceback(g *seqmatrix.Grid) (*Path, error) {
	if err := checkScored(g); err != nil {
		return nil, err
	}
	start := Coord{Row: g.Rows() - 1, Col: g.Cols() - 1}

	return Continue(&Path{grid: g, cells: []Coord{start}})
}

// Continue returns a copy of partial extended from its last cell to Origin
// with the same step policy as Traceback. partial itself is not modified.
//
// Truncating a path and continuing the unmodified prefix reproduces the
// original path.
func Continue(partial *Path) (*Path, error) {
	if partial == nil || len(partial.cells) == 0 {
		return nil, ErrEmptyPath
	}
	g := partial.grid
	if err := checkScored(g); err != nil {
		return nil, err
	}
	cur := partial.Last()
	if cur.Row < 1 || cur.Col < 1 || !g.InBounds(cur.Row, cur.Col) {
		return nil, fmt.Errorf("continue from %v: %w", cur, ErrMalformedPath)
	}

	cells := make([]Coord, len(partial.cells), len(partial.cells)+cur.Row+cur.Col)
	copy(cells, partial.cells)
	for cur != Origin {
		cur = nextStep(g, cur)
		cells = append(cells, cur)
	}

	return &Path{grid: g, cells: cells}, nil
}

// nextStep applies the traceback policy at c, which must not be Origin.
func nextStep(g *seqmatrix.Grid, c Coord) Coord {
	if c.Row == 1 {
		return c.Left()
	}
	if c.Col == 1 {
		return c.Up()
	}

	top := g.Value(c.Row-1, c.Col)
	diag := g.Value(c.Row-1, c.Col-1)
	left := g.Value(c.Row, c.Col-1)
	switch {
	case diag >= top && diag >= left:
		return c.Diag()
	case top >= left:
		return c.Up()
	default:
		return c.Left()
	}
}

func checkScored(g *seqmatrix.Grid) error {
	if g == nil || g.Mode() != seqmatrix.ModeGlobal {
		return ErrNotScored
	}
	return nil
}
