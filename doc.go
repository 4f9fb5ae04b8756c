// Package seqalign is an in-memory engine for computing and interactively
// exploring optimal pairwise alignments of two short symbol sequences.
//
// 🚀 What is seqalign?
//
//	A small, deterministic toolkit that brings together:
//		• Matrix construction: dot-matrix and Needleman–Wunsch global scores
//		• Traceback: the optimal path from the terminal cell to the origin
//		• Path editing: truncate, redirect and continue an alignment
//		• Rendering: three-line alignment text and independent re-scoring
//
// ✨ Why seqalign?
//
//   - Reproducible – fixed tie-break order (diagonal > up > left)
//   - Value semantics – paths never mutate, grids are read-only after fill
//   - Pure Go – no cgo, single-threaded, no hidden state between calls
//
// Under the hood, everything is organized under these subpackages:
//
//	seqmatrix/ — Grid, tagged cells, Pad, FillDotMatrix, FillNeedlemanWunsch
//	alignment/ — Path, Traceback, Continue, Render, Score, Candidates
//	session/   — Idle/Editing state machine over a main and an active path
//	seqinput/  — raw text / FASTA parsing and length validation
//	cmd/       — the seqalign command line tool
//
// Quick ASCII example (A = "AG", B = "A"):
//
//	         A    G
//	    0   -1   -2
//	      ↖
//	A  -1    1 ←  0      AG
//	                     |
//	                     A-   Score: 0
//
// The traceback starts at the bottom-right 0, steps left onto the match
// at (2,2) and then diagonally onto the corner.
//
//	go install github.com/katalvlaran/seqalign/cmd/seqalign@latest
package seqalign
