package cli

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/katalvlaran/seqalign/alignment"
	"github.com/katalvlaran/seqalign/seqinput"
	"github.com/katalvlaran/seqalign/seqmatrix"
)

// PathView is the serialisable form of an alignment path.
type PathView struct {
	Seq1    string   `json:"seq1" yaml:"seq1"`
	Markers string   `json:"markers" yaml:"markers"`
	Seq2    string   `json:"seq2" yaml:"seq2"`
	Score   int      `json:"score" yaml:"score"`
	Cells   [][2]int `json:"cells" yaml:"cells,flow"`
}

func newPathView(p *alignment.Path) PathView {
	r := p.Render()
	return PathView{
		Seq1:    r.Seq1,
		Markers: r.Markers,
		Seq2:    r.Seq2,
		Score:   alignment.ScoreRendered(r, p.Grid().Scoring()),
		Cells:   coordPairs(p.Cells()),
	}
}

func coordPairs(cs []alignment.Coord) [][2]int {
	out := make([][2]int, len(cs))
	for i, c := range cs {
		out[i] = [2]int{c.Row, c.Col}
	}
	return out
}

// gridStrings renders every cell with Cell.String.
func gridStrings(g *seqmatrix.Grid) [][]string {
	cells := g.Cells()
	out := make([][]string, len(cells))
	for i, row := range cells {
		out[i] = make([]string, len(row))
		for j, c := range row {
			out[i][j] = c.String()
		}
	}
	return out
}

// gridText right-aligns every cell to the widest one.
func gridText(rows [][]string) string {
	width := 1
	for _, row := range rows {
		for _, s := range row {
			width = max(width, utf8.RuneCountInString(s))
		}
	}
	var b strings.Builder
	for i, row := range rows {
		if i > 0 {
			b.WriteByte('\n')
		}
		for j, s := range row {
			if j > 0 {
				b.WriteByte(' ')
			}
			fmt.Fprintf(&b, "%*s", width, s)
		}
	}
	return b.String()
}

// readPair parses and validates both positional sequence arguments.
func readPair(args []string, maxLen int) (string, string, error) {
	var seqs [2]string
	for i, raw := range args[:2] {
		seq, err := seqinput.Read(raw, maxLen)
		if err != nil {
			return "", "", usageError(fmt.Sprintf("sequence %d", i+1), err)
		}
		seqs[i] = seq
	}
	return seqs[0], seqs[1], nil
}

// parseCoord reads a "row,col" flag value.
func parseCoord(s string) (alignment.Coord, error) {
	r, c, ok := strings.Cut(s, ",")
	if !ok {
		return alignment.Coord{}, fmt.Errorf("coordinate %q: want row,col", s)
	}
	row, err := strconv.Atoi(strings.TrimSpace(r))
	if err != nil {
		return alignment.Coord{}, fmt.Errorf("coordinate %q: row: %w", s, err)
	}
	col, err := strconv.Atoi(strings.TrimSpace(c))
	if err != nil {
		return alignment.Coord{}, fmt.Errorf("coordinate %q: col: %w", s, err)
	}
	return alignment.Coord{Row: row, Col: col}, nil
}

func coordList(cs []alignment.Coord) string {
	if len(cs) == 0 {
		return "none"
	}
	parts := make([]string, len(cs))
	for i, c := range cs {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}
