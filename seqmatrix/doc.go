// Package seqmatrix builds the comparison grid between two short symbol
// sequences and fills it either with dot-matrix match markers or with
// Needleman–Wunsch global alignment scores.
//
// 🚀 What is a sequence matrix?
//
//	A 2-D grid with the first sequence laid along the top header row and the
//	second sequence down the left header column. Every body cell compares
//	one symbol of each sequence:
//	  • dot-matrix mode — a boolean "these two symbols match" flag
//	  • global mode     — the best cumulative alignment score ending there
//
// ✨ Layout after FillNeedlemanWunsch (A = "AG", B = "A"):
//
//	          col0  col1  col2  col3
//	  row0     ·     ·     A     G      ← header row (sequence 1)
//	  row1     ·     0    -1    -2      ← boundary row (cumulative indel)
//	  row2     A    -1     1     0      ← body
//	           ↑     ↑
//	       header  boundary column
//
// Every cell is a tagged variant (see Kind) selected by position and fill
// mode, never by inspecting the stored value.
//
// ⚙️ Usage:
//
//	g, err := seqmatrix.NewGlobal("GATTACA", "GCATGCU", seqmatrix.DefaultOptions())
//	if err != nil {
//	  // handle ErrEmptySequence
//	}
//	fmt.Println(g.Value(g.Rows()-1, g.Cols()-1)) // optimal global score
//
// Fill order:
//
//	Body cells are filled row-major (top-to-bottom, left-to-right). Each cell
//	reads only its top, left and top-left neighbours, all of which are final
//	by the time it is visited. Changing the loop order breaks the recurrence.
//
// Complexity:
//
//   - Build: O(N·M) time & memory
//   - FillDotMatrix / FillNeedlemanWunsch: O(N·M) time, in place
//
// A filled grid is immutable: no exported method mutates a grid once a fill
// pass has completed, so it may be shared by any number of readers.
package seqmatrix
