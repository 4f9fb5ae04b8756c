package alignment

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/seqalign/seqmatrix"
)

// Path is an ordered, non-empty list of grid coordinates stored
// terminal-first. It references its grid read-only and never copies cell
// contents. A Path is never modified after construction.
type Path struct {
	grid  *seqmatrix.Grid
	cells []Coord
}

// NewPath wraps a copy of cells as a path over g. It only checks that the
// list is non-empty and that g is scored; use Validate for the full
// terminal-to-origin rules.
func NewPath(g *seqmatrix.Grid, cells []Coord) (*Path, error) {
	if err := checkScored(g); err != nil {
		return nil, err
	}
	if len(cells) == 0 {
		return nil, ErrEmptyPath
	}

	return &Path{grid: g, cells: append([]Coord(nil), cells...)}, nil
}

// Grid returns the grid the path walks.
func (p *Path) Grid() *seqmatrix.Grid { return p.grid }

// Len returns the number of coordinates.
func (p *Path) Len() int { return len(p.cells) }

// Cells returns a copy of the coordinates, terminal first.
func (p *Path) Cells() []Coord { return append([]Coord(nil), p.cells...) }

// First returns the first coordinate (the terminal cell of a complete path).
func (p *Path) First() Coord { return p.cells[0] }

// Last returns the last coordinate (Origin for a complete path).
func (p *Path) Last() Coord { return p.cells[len(p.cells)-1] }

// Complete reports whether the path has reached Origin.
func (p *Path) Complete() bool { return p.Last() == Origin }

// Equal reports whether both paths hold identical coordinates in the same
// order. Two nil paths are equal.
func (p *Path) Equal(other *Path) bool {
	if p == nil || other == nil {
		return p == other
	}
	if len(p.cells) != len(other.cells) {
		return false
	}
	for i, c := range p.cells {
		if c != other.cells[i] {
			return false
		}
	}
	return true
}

// Index returns the position of c in the path, or -1.
func (p *Path) Index(c Coord) int {
	for i, cell := range p.cells {
		if cell == c {
			return i
		}
	}
	return -1
}

// Contains reports whether c lies on the path.
func (p *Path) Contains(c Coord) bool { return p.Index(c) >= 0 }

// Previous returns the coordinate visited just before c. ok is false if c is
// absent or is the first coordinate.
func (p *Path) Previous(c Coord) (prev Coord, ok bool) {
	i := p.Index(c)
	if i <= 0 {
		return Coord{}, false
	}
	return p.cells[i-1], true
}

// Next returns the coordinate visited just after c. ok is false if c is
// absent or is the last coordinate.
func (p *Path) Next(c Coord) (next Coord, ok bool) {
	i := p.Index(c)
	if i < 0 || i == len(p.cells)-1 {
		return Coord{}, false
	}
	return p.cells[i+1], true
}

// Truncate returns a new path holding this path's prefix up to and
// including stop. Returns ErrCoordinateNotFound if stop is absent.
func (p *Path) Truncate(stop Coord) (*Path, error) {
	i := p.Index(stop)
	if i < 0 {
		return nil, fmt.Errorf("truncate at %v: %w", stop, ErrCoordinateNotFound)
	}

	return &Path{grid: p.grid, cells: append([]Coord(nil), p.cells[:i+1]...)}, nil
}

// Extend returns a new path with c appended.
func (p *Path) Extend(c Coord) *Path {
	cells := make([]Coord, len(p.cells), len(p.cells)+1)
	copy(cells, p.cells)

	return &Path{grid: p.grid, cells: append(cells, c)}
}

// Validate checks the complete-path rules: the first coordinate is the
// terminal cell, the last is Origin, and every step moves up, left or
// diagonally by exactly one.
func (p *Path) Validate() error {
	terminal := Coord{Row: p.grid.Rows() - 1, Col: p.grid.Cols() - 1}
	if p.First() != terminal {
		return fmt.Errorf("first cell %v, want terminal %v: %w", p.First(), terminal, ErrMalformedPath)
	}
	if !p.Complete() {
		return fmt.Errorf("last cell %v, want origin %v: %w", p.Last(), Origin, ErrMalformedPath)
	}
	for i := 1; i < len(p.cells); i++ {
		if !p.cells[i-1].Steps(p.cells[i]) {
			return fmt.Errorf("step %v -> %v: %w", p.cells[i-1], p.cells[i], ErrMalformedPath)
		}
	}
	return nil
}

// Candidates returns the neighbours of c a user may redirect through: up,
// diagonal and left in that order, minus the path's own successor of c and
// any cell on row 0 or column 0.
func (p *Path) Candidates(c Coord) []Coord {
	next, hasNext := p.Next(c)
	out := make([]Coord, 0, 3)
	for _, n := range []Coord{c.Up(), c.Diag(), c.Left()} {
		if hasNext && n == next {
			continue
		}
		if n.Row <= 0 || n.Col <= 0 {
			continue
		}
		out = append(out, n)
	}
	return out
}

// Render walks the path from terminal to origin and builds the three
// alignment lines, then reverses them so they read origin to terminal.
//
// For each consecutive pair of cells, a side whose index does not change
// receives a Gap: an up step gaps sequence 1, a left step gaps sequence 2,
// a diagonal step consumes a symbol from both.
func (p *Path) Render() Rendered {
	n := len(p.cells) - 1
	top := make([]rune, 0, n)
	mid := make([]rune, 0, n)
	bot := make([]rune, 0, n)

	for i := 0; i < n; i++ {
		cur, nxt := p.cells[i], p.cells[i+1]

		a := Gap
		if cur.Col != nxt.Col {
			a, _ = p.grid.ColSymbol(cur.Col)
		}
		b := Gap
		if cur.Row != nxt.Row {
			b, _ = p.grid.RowSymbol(cur.Row)
		}
		m := MismatchMarker
		if a == b {
			m = MatchMarker
		}

		top, mid, bot = append(top, a), append(mid, m), append(bot, b)
	}
	reverse(top)
	reverse(mid)
	reverse(bot)

	return Rendered{Seq1: string(top), Markers: string(mid), Seq2: string(bot)}
}

// String returns the rendered alignment.
func (p *Path) String() string { return p.Render().String() }

// Score renders the path and scores the text with the grid's weights.
func (p *Path) Score() int { return ScoreRendered(p.Render(), p.grid.Scoring()) }

// ScoreString returns the rendered alignment followed by a score label.
func (p *Path) ScoreString() string {
	r := p.Render()
	return r.String() + "  Score: " + strconv.Itoa(ScoreRendered(r, p.grid.Scoring()))
}

// ScoreRendered scores alignment text column by column: s.Match for equal
// symbols, s.Indel when either side is a Gap, s.Mismatch otherwise. It does
// not consult grid scores, so any path renders to a scoreable text.
func ScoreRendered(r Rendered, s seqmatrix.Scoring) int {
	top, bot := []rune(r.Seq1), []rune(r.Seq2)
	score := 0
	for i := 0; i < len(top) && i < len(bot); i++ {
		switch {
		case top[i] == bot[i]:
			score += s.Match
		case top[i] == Gap || bot[i] == Gap:
			score += s.Indel
		default:
			score += s.Mismatch
		}
	}
	return score
}

func reverse(rs []rune) {
	for l, r := 0, len(rs)-1; l < r; l, r = l+1, r-1 {
		rs[l], rs[r] = rs[r], rs[l]
	}
}
