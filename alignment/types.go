package alignment

import "fmt"

// Markers used by Render.
const (
	// Gap fills the side of an aligned column that consumed no symbol.
	Gap = '-'
	// MatchMarker marks a column whose two symbols are equal.
	MatchMarker = '|'
	// MismatchMarker marks any other column.
	MismatchMarker = ' '
)

// Coord addresses a grid cell.
type Coord struct {
	Row, Col int
}

// Origin is the top-left cell every complete path ends at.
var Origin = Coord{Row: 1, Col: 1}

// String renders the coordinate as "(row,col)".
func (c Coord) String() string { return fmt.Sprintf("(%d,%d)", c.Row, c.Col) }

// Up returns the cell above c.
func (c Coord) Up() Coord { return Coord{Row: c.Row - 1, Col: c.Col} }

// Diag returns the cell above and to the left of c.
func (c Coord) Diag() Coord { return Coord{Row: c.Row - 1, Col: c.Col - 1} }

// Left returns the cell to the left of c.
func (c Coord) Left() Coord { return Coord{Row: c.Row, Col: c.Col - 1} }

// Steps reports whether next is one legal move (up, left or diagonal) from c.
func (c Coord) Steps(next Coord) bool {
	return next == c.Up() || next == c.Diag() || next == c.Left()
}

// Rendered is the three-line text form of an alignment. All three lines
// have the same number of symbols.
type Rendered struct {
	Seq1    string // sequence 1 with gaps
	Markers string // MatchMarker or MismatchMarker per column
	Seq2    string // sequence 2 with gaps
}

// String joins the three lines with newlines.
func (r Rendered) String() string {
	return r.Seq1 + "\n" + r.Markers + "\n" + r.Seq2
}
