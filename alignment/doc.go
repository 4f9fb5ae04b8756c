// Package alignment recovers and manipulates optimal paths through a
// Needleman–Wunsch grid built by package seqmatrix.
//
// 🚀 What is an alignment path?
//
//	An ordered list of grid coordinates running from the terminal cell
//	(bottom-right) back to the origin cell (1,1). Each step moves up,
//	left, or diagonally up-left by exactly one:
//	  • diagonal — both sequences consume a symbol (match or mismatch)
//	  • up       — sequence 2 consumes a symbol, sequence 1 gets a gap
//	  • left     — sequence 1 consumes a symbol, sequence 2 gets a gap
//
// ✨ Key features:
//   - Traceback with the fixed tie-break policy diagonal > up > left
//   - Continue: finish a partial path from its last cell with the same policy
//   - Truncate / Extend: redirect part of a path without touching the original
//   - Render: three-line alignment text (sequence 1, markers, sequence 2)
//   - Score: recomputed from the rendered text, so user-edited paths score too
//   - Candidates: the alternative next cells a user may redirect through
//
// ⚙️ Usage:
//
//	g, _ := seqmatrix.NewGlobal("AG", "A", nil)
//	main, _ := alignment.Traceback(g)
//	fmt.Println(main.ScoreString())
//	// AG
//	// |
//	// A-  Score: 0
//
// Paths are values: Truncate, Extend and Continue always return a new Path
// and never modify the receiver or the grid, so a retained main path and an
// in-progress active path never observe each other.
//
// Complexity:
//
//   - Traceback / Continue: O(rows + cols)
//   - Render / Score: O(len(path))
//   - Truncate / Previous / Next / Equal: O(len(path))
package alignment
