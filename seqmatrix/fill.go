package seqmatrix

// Pad inserts a boundary row after row 0 and a boundary column after
// column 0, shifting the body outward by one in each direction.
//
// Pad must be called at most once and before any fill pass. A second call
// returns ErrAlreadyPadded; a call on a filled grid returns ErrAlreadyFilled.
func (g *Grid) Pad() error {
	if g.padded {
		return ErrAlreadyPadded
	}
	if g.mode != ModeNone {
		return ErrAlreadyFilled
	}

	for i, row := range g.cells {
		padded := make([]Cell, 0, len(row)+1)
		padded = append(padded, row[0])
		if i == 0 {
			padded = append(padded, Cell{})
		} else {
			padded = append(padded, BoundaryCell(0))
		}
		g.cells[i] = append(padded, row[1:]...)
	}

	boundary := make([]Cell, g.Cols())
	for j := 1; j < len(boundary); j++ {
		boundary[j] = BoundaryCell(0)
	}
	g.cells = append(g.cells[:1], append([][]Cell{boundary}, g.cells[1:]...)...)
	g.padded = true

	return nil
}

// FillDotMatrix sets every body cell to whether its row and column header
// symbols are equal. The grid must be unpadded and unfilled.
func (g *Grid) FillDotMatrix() error {
	if g.mode != ModeNone {
		return ErrAlreadyFilled
	}
	if g.padded {
		return ErrAlreadyPadded
	}

	for i := 1; i < g.Rows(); i++ {
		rowSym := g.cells[i][0].Symbol
		for j := 1; j < g.Cols(); j++ {
			g.cells[i][j] = MatchCell(rowSym == g.cells[0][j].Symbol)
		}
	}
	g.mode = ModeDotMatrix

	return nil
}

// FillNeedlemanWunsch pads the grid (unless already padded), initialises
// the boundary with the cumulative indel cost from the corner cell (1,1),
// and fills every body cell with
//
//	max(diag + substitution, top + indel, left + indel)
//
// Cells are visited row-major, top-to-bottom then left-to-right: each cell
// depends only on its top, left and top-left neighbours, which are already
// final at that point.
func (g *Grid) FillNeedlemanWunsch() error {
	if g.mode != ModeNone {
		return ErrAlreadyFilled
	}
	if !g.padded {
		if err := g.Pad(); err != nil {
			return err
		}
	}

	s := g.scoring
	for j := 1; j < g.Cols(); j++ {
		g.cells[1][j] = BoundaryCell((j - 1) * s.Indel)
	}
	for i := 1; i < g.Rows(); i++ {
		g.cells[i][1] = BoundaryCell((i - 1) * s.Indel)
	}

	for i := 2; i < g.Rows(); i++ {
		rowSym := g.cells[i][0].Symbol
		for j := 2; j < g.Cols(); j++ {
			diag := g.cells[i-1][j-1].Value + s.Substitution(rowSym, g.cells[0][j].Symbol)
			top := g.cells[i-1][j].Value + s.Indel
			left := g.cells[i][j-1].Value + s.Indel
			g.cells[i][j] = ScoreCell(max(diag, top, left))
		}
	}
	g.mode = ModeGlobal

	return nil
}
