package seqmatrix

// NewDotMatrix builds the grid for seq1 and seq2 and fills it with match
// flags. No traceback is defined for a dot matrix.
func NewDotMatrix(seq1, seq2 string) (*Grid, error) {
	g, err := Build(seq1, seq2, nil)
	if err != nil {
		return nil, err
	}
	if err = g.FillDotMatrix(); err != nil {
		return nil, err
	}

	return g, nil
}

// NewGlobal builds the grid for seq1 and seq2 and fills it with
// Needleman–Wunsch scores. A nil opts selects DefaultOptions.
func NewGlobal(seq1, seq2 string, opts *Options) (*Grid, error) {
	g, err := Build(seq1, seq2, opts)
	if err != nil {
		return nil, err
	}
	if err = g.FillNeedlemanWunsch(); err != nil {
		return nil, err
	}

	return g, nil
}

// Matches returns the body of a dot-matrix grid as a len(seq2) x len(seq1)
// boolean table, indexed [sequence-2 position][sequence-1 position].
// It returns nil for a grid not in ModeDotMatrix.
func (g *Grid) Matches() [][]bool {
	if g.mode != ModeDotMatrix {
		return nil
	}
	out := make([][]bool, g.Rows()-1)
	for i := range out {
		out[i] = make([]bool, g.Cols()-1)
		for j := range out[i] {
			out[i][j] = g.cells[i+1][j+1].Match
		}
	}

	return out
}
